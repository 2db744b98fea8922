// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package wire

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// Funcs is a [Codec] built out of a pair of functions.
type Funcs[T any] struct {
	AppendFunc  func(b []byte, v T) ([]byte, error)
	ConsumeFunc func(b []byte) (T, int, error)
}

var _ Codec[int] = Funcs[int]{}

// Append implements [Codec].
func (f Funcs[T]) Append(b []byte, v T) ([]byte, error) {
	return f.AppendFunc(b, v)
}

// Consume implements [Codec].
func (f Funcs[T]) Consume(b []byte) (T, int, error) {
	return f.ConsumeFunc(b)
}

// Varint encodes integers as base-128 varints.
//
// Negative values are sign-extended to 64 bits first, so they always take ten
// bytes; prefer [Zigzag] for signed values that are often negative.
func Varint[T constraints.Integer]() Codec[T] {
	return Funcs[T]{
		AppendFunc: func(b []byte, v T) ([]byte, error) {
			return protowire.AppendVarint(b, uint64(v)), nil
		},
		ConsumeFunc: func(b []byte) (T, int, error) {
			x, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, 0, protowire.ParseError(n)
			}
			return T(x), n, nil
		},
	}
}

// Zigzag encodes signed integers as zigzag varints.
func Zigzag[T constraints.Signed]() Codec[T] {
	return Funcs[T]{
		AppendFunc: func(b []byte, v T) ([]byte, error) {
			return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v))), nil
		},
		ConsumeFunc: func(b []byte) (T, int, error) {
			x, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, 0, protowire.ParseError(n)
			}
			return T(protowire.DecodeZigZag(x)), n, nil
		},
	}
}

// Fixed32 encodes 32-bit integers as four little-endian bytes.
func Fixed32[T ~int32 | ~uint32]() Codec[T] {
	return Funcs[T]{
		AppendFunc: func(b []byte, v T) ([]byte, error) {
			return protowire.AppendFixed32(b, uint32(v)), nil
		},
		ConsumeFunc: func(b []byte) (T, int, error) {
			x, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return 0, 0, protowire.ParseError(n)
			}
			return T(x), n, nil
		},
	}
}

// Fixed64 encodes 64-bit integers as eight little-endian bytes.
func Fixed64[T ~int64 | ~uint64]() Codec[T] {
	return Funcs[T]{
		AppendFunc: func(b []byte, v T) ([]byte, error) {
			return protowire.AppendFixed64(b, uint64(v)), nil
		},
		ConsumeFunc: func(b []byte) (T, int, error) {
			x, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return 0, 0, protowire.ParseError(n)
			}
			return T(x), n, nil
		},
	}
}

// Float32 encodes float32s by their IEEE 754 bits, like [Fixed32].
func Float32() Codec[float32] {
	return Funcs[float32]{
		AppendFunc: func(b []byte, v float32) ([]byte, error) {
			return protowire.AppendFixed32(b, math.Float32bits(v)), nil
		},
		ConsumeFunc: func(b []byte) (float32, int, error) {
			x, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return 0, 0, protowire.ParseError(n)
			}
			return math.Float32frombits(x), n, nil
		},
	}
}

// Float64 encodes float64s by their IEEE 754 bits, like [Fixed64].
func Float64() Codec[float64] {
	return Funcs[float64]{
		AppendFunc: func(b []byte, v float64) ([]byte, error) {
			return protowire.AppendFixed64(b, math.Float64bits(v)), nil
		},
		ConsumeFunc: func(b []byte) (float64, int, error) {
			x, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return 0, 0, protowire.ParseError(n)
			}
			return math.Float64frombits(x), n, nil
		},
	}
}

// Bool encodes bools as single-byte varints.
func Bool() Codec[bool] {
	return Funcs[bool]{
		AppendFunc: func(b []byte, v bool) ([]byte, error) {
			return protowire.AppendVarint(b, protowire.EncodeBool(v)), nil
		},
		ConsumeFunc: func(b []byte) (bool, int, error) {
			x, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return false, 0, protowire.ParseError(n)
			}
			return protowire.DecodeBool(x), n, nil
		},
	}
}

// String encodes strings with a varint length prefix.
func String() Codec[string] {
	return Funcs[string]{
		AppendFunc: func(b []byte, v string) ([]byte, error) {
			return protowire.AppendString(b, v), nil
		},
		ConsumeFunc: func(b []byte) (string, int, error) {
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return "", 0, protowire.ParseError(n)
			}
			return s, n, nil
		},
	}
}

// Bytes encodes byte slices with a varint length prefix.
//
// Decoded slices are copies, so they do not alias the input.
func Bytes() Codec[[]byte] {
	return Funcs[[]byte]{
		AppendFunc: func(b []byte, v []byte) ([]byte, error) {
			return protowire.AppendBytes(b, v), nil
		},
		ConsumeFunc: func(b []byte) ([]byte, int, error) {
			s, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, 0, protowire.ParseError(n)
			}
			return slices.Clone(s), n, nil
		},
	}
}

// Message encodes protobuf messages with a varint length prefix, the way a
// message-typed field is encoded.
//
// newMessage is called to allocate each decoded message. Encoding is
// deterministic.
func Message[M proto.Message](newMessage func() M) Codec[M] {
	opts := proto.MarshalOptions{Deterministic: true}
	return Funcs[M]{
		AppendFunc: func(b []byte, m M) ([]byte, error) {
			b = protowire.AppendVarint(b, uint64(opts.Size(m)))
			b, err := opts.MarshalAppend(b, m)
			if err != nil {
				return b, fmt.Errorf("marshaling %s: %w", m.ProtoReflect().Descriptor().FullName(), err)
			}
			return b, nil
		},
		ConsumeFunc: func(b []byte) (M, int, error) {
			m := newMessage()
			data, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return m, 0, protowire.ParseError(n)
			}
			if err := proto.Unmarshal(data, m); err != nil {
				return m, 0, fmt.Errorf("unmarshaling %s: %w", m.ProtoReflect().Descriptor().FullName(), err)
			}
			return m, n, nil
		},
	}
}
