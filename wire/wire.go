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


// Package wire encodes [smallvec.Vec] values in a compact binary form built
// on the protobuf wire format.
//
// A vector is encoded as a varint element count followed by each element, as
// encoded by a [Codec]. Whether the vector was spilled is not recorded: a
// decoded vector is inline whenever its elements fit.
package wire

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bufbuild/smallvec"
)

// Codec encodes and decodes single elements of type T.
//
// Every encoding must be at least one byte long.
type Codec[T any] interface {
	// Append appends the encoding of v to b.
	Append(b []byte, v T) ([]byte, error)

	// Consume decodes a value from the start of b, returning it along with
	// the number of bytes it occupied.
	Consume(b []byte) (T, int, error)
}

var errEmptyElement = errors.New("codec consumed no input")

// Append appends the encoding of v to b.
func Append[T, A any](b []byte, v *smallvec.Vec[T, A], c Codec[T]) ([]byte, error) {
	b = protowire.AppendVarint(b, uint64(v.Len()))
	for i, e := range v.All() {
		var err error
		if b, err = c.Append(b, e); err != nil {
			return b, fmt.Errorf("wire: encoding element %d: %w", i, err)
		}
	}
	return b, nil
}

// Marshal returns the encoding of v.
func Marshal[T, A any](v *smallvec.Vec[T, A], c Codec[T]) ([]byte, error) {
	return Append(nil, v, c)
}

// Consume decodes a vector from the start of b, returning it along with the
// number of bytes it occupied.
//
// The count prefix is validated against the length of b before anything is
// allocated, so a corrupt count cannot trigger a huge allocation.
func Consume[T, A any](b []byte, c Codec[T]) (smallvec.Vec[T, A], int, error) {
	var v smallvec.Vec[T, A]

	count, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return v, 0, fmt.Errorf("wire: decoding element count: %w", protowire.ParseError(n))
	}
	rest := b[n:]
	if count > uint64(len(rest)) {
		return v, 0, fmt.Errorf(
			"wire: element count %d exceeds remaining %d bytes: %w",
			count, len(rest), io.ErrUnexpectedEOF,
		)
	}

	v.ReserveExact(int(count))
	for i := range int(count) {
		e, m, err := c.Consume(rest)
		if err == nil && m <= 0 {
			err = errEmptyElement
		}
		if err != nil {
			v.Drop()
			return v, 0, fmt.Errorf("wire: decoding element %d: %w", i, err)
		}
		v.Push(e)
		rest = rest[m:]
	}

	return v, len(b) - len(rest), nil
}

// Unmarshal decodes b, which must contain exactly one encoded vector, into v.
//
// v's old elements are dropped only if decoding succeeds; otherwise v is left
// untouched.
func Unmarshal[T, A any](b []byte, c Codec[T], v *smallvec.Vec[T, A]) error {
	got, n, err := Consume[T, A](b, c)
	if err != nil {
		return err
	}
	if n != len(b) {
		got.Drop()
		return fmt.Errorf("wire: %d trailing bytes after vector", len(b)-n)
	}

	v.Drop()
	*v = got
	return nil
}
