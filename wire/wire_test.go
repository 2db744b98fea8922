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


package wire_test

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/bufbuild/smallvec"
	"github.com/bufbuild/smallvec/wire"
)

func roundTrip[T, A any](t *testing.T, v *smallvec.Vec[T, A], c wire.Codec[T]) smallvec.Vec[T, A] {
	t.Helper()

	b, err := wire.Marshal(v, c)
	require.NoError(t, err)

	var got smallvec.Vec[T, A]
	require.NoError(t, wire.Unmarshal(b, c, &got))
	return got
}

func TestScalars(t *testing.T) {
	t.Parallel()

	ints := smallvec.Of[int32, [2]int32](1, -2, math.MaxInt32, math.MinInt32)
	for _, c := range []wire.Codec[int32]{wire.Varint[int32](), wire.Zigzag[int32](), wire.Fixed32[int32]()} {
		got := roundTrip(t, &ints, c)
		assert.Equal(t, ints.Slice(), got.Slice())
		assert.True(t, got.Spilled())
	}

	u64 := smallvec.Of[uint64, [8]uint64](0, 1, math.MaxUint64)
	got64 := roundTrip(t, &u64, wire.Fixed64[uint64]())
	assert.Equal(t, u64.Slice(), got64.Slice())
	assert.False(t, got64.Spilled())

	floats := smallvec.Of[float64, [1]float64](0.5, math.Inf(-1), -0.0)
	gotFloats := roundTrip(t, &floats, wire.Float64())
	assert.Equal(t, floats.Slice(), gotFloats.Slice())

	f32 := smallvec.Of[float32, [4]float32](1.25, 3)
	gotF32 := roundTrip(t, &f32, wire.Float32())
	assert.Equal(t, f32.Slice(), gotF32.Slice())

	bools := smallvec.Of[bool, [4]bool](true, false, true)
	gotBools := roundTrip(t, &bools, wire.Bool())
	assert.Equal(t, bools.Slice(), gotBools.Slice())
}

func TestVarintEncoding(t *testing.T) {
	t.Parallel()

	v := smallvec.Of[uint32, [4]uint32](1, 300)
	b, err := wire.Marshal(&v, wire.Varint[uint32]())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01, 0xac, 0x02}, b)

	s := smallvec.Of[int64, [4]int64](-1)
	b, err = wire.Marshal(&s, wire.Zigzag[int64]())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01}, b)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	v := smallvec.Of[string, [2]string]("hello", "", "there")
	got := roundTrip(t, &v, wire.String())
	assert.Equal(t, v.Slice(), got.Slice())

	in := []byte{0x01, 0x03, 'a', 'b', 'c'}
	bs, n, err := wire.Consume[[]byte, [1][]byte](in, wire.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(in), n)
	assert.Equal(t, [][]byte{[]byte("abc")}, bs.Slice())

	// The decoded slice must not alias the input.
	in[2] = 'x'
	assert.Equal(t, []byte("abc"), bs.At(0))
}

func TestMessages(t *testing.T) {
	t.Parallel()

	v := smallvec.Of[*wrapperspb.StringValue, [2]*wrapperspb.StringValue](
		wrapperspb.String("hello"),
		wrapperspb.String(""),
		wrapperspb.String("burma"),
	)
	got := roundTrip(t, &v, wire.Message(func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }))
	if diff := cmp.Diff(v.Slice(), got.Slice(), protocmp.Transform()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	ts := smallvec.Of[*timestamppb.Timestamp, [4]*timestamppb.Timestamp](
		&timestamppb.Timestamp{Seconds: 1, Nanos: 2},
		&timestamppb.Timestamp{Seconds: -62135596800},
	)
	gotTS := roundTrip(t, &ts, wire.Message(func() *timestamppb.Timestamp { return new(timestamppb.Timestamp) }))
	if diff := cmp.Diff(ts.Slice(), gotTS.Slice(), protocmp.Transform()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	a := smallvec.Of[int, [2]int](1, 2)
	b := smallvec.Of[int, [2]int](3)

	buf, err := wire.Append([]byte("x"), &a, wire.Varint[int]())
	require.NoError(t, err)
	buf, err = wire.Append(buf, &b, wire.Varint[int]())
	require.NoError(t, err)
	assert.Equal(t, []byte{'x', 2, 1, 2, 1, 3}, buf)

	buf = buf[1:]
	gotA, n, err := wire.Consume[int, [2]int](buf, wire.Varint[int]())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	gotB, m, err := wire.Consume[int, [2]int](buf[n:], wire.Varint[int]())
	require.NoError(t, err)
	assert.Equal(t, 2, m)

	assert.Equal(t, []int{1, 2}, gotA.Slice())
	assert.Equal(t, []int{3}, gotB.Slice())
}

func TestMalformed(t *testing.T) {
	t.Parallel()

	c := wire.Varint[int]()

	tests := []struct {
		name string
		in   []byte
		is   error
	}{
		{name: "empty", in: nil, is: protowire.ParseError(-1)},
		{name: "truncated-count", in: []byte{0x80}, is: protowire.ParseError(-1)},
		{name: "huge-count", in: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, is: io.ErrUnexpectedEOF},
		{name: "truncated-element", in: []byte{0x02, 0x01, 0x80}, is: protowire.ParseError(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := wire.Consume[int, [4]int](tt.in, c)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestUnmarshalFailureKeepsVector(t *testing.T) {
	t.Parallel()

	v := smallvec.Of[int, [4]int](7, 8)

	err := wire.Unmarshal([]byte{0x01, 0x01, 0x00}, wire.Varint[int](), &v)
	require.ErrorContains(t, err, "trailing bytes")
	assert.Equal(t, []int{7, 8}, v.Slice())

	boom := errors.New("boom")
	failing := wire.Funcs[int]{
		ConsumeFunc: func([]byte) (int, int, error) { return 0, 0, boom },
	}
	err = wire.Unmarshal([]byte{0x01, 0x01}, failing, &v)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []int{7, 8}, v.Slice())

	empty := wire.Funcs[int]{
		ConsumeFunc: func([]byte) (int, int, error) { return 0, 0, nil },
	}
	err = wire.Unmarshal([]byte{0x01, 0x01}, empty, &v)
	require.ErrorContains(t, err, "consumed no input")

	require.NoError(t, wire.Unmarshal([]byte{0x01, 0x09}, wire.Varint[int](), &v))
	assert.Equal(t, []int{9}, v.Slice())
}

func TestAppendError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := wire.Funcs[string]{
		AppendFunc: func(b []byte, s string) ([]byte, error) {
			if s == "bad" {
				return b, boom
			}
			return protowire.AppendString(b, s), nil
		},
	}

	v := smallvec.Of[string, [1]string]("ok", "bad")
	_, err := wire.Marshal(&v, failing)
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "element 1")
}
