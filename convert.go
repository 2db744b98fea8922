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

package smallvec

import (
	"iter"

	"github.com/bufbuild/smallvec/internal/ext/unsafex"
)

// WithCapacity returns an empty vector that can hold n elements without
// reallocating.
//
// If n fits inline, this does not allocate. Otherwise, the vector is spilled
// with a capacity of exactly n.
func WithCapacity[T, A any](n int) Vec[T, A] {
	var v Vec[T, A]
	v.Grow(n)
	return v
}

// FromArray returns an inline vector containing the elements of a.
func FromArray[T, A any](a A) Vec[T, A] {
	v := Vec[T, A]{inline: a}
	v.len = v.InlineCap()
	return v
}

// FromSlice returns a vector containing a copy of the elements of s.
//
// The result is inline if s fits, and otherwise spilled with a capacity of
// exactly len(s).
func FromSlice[T, A any](s []T) Vec[T, A] {
	var v Vec[T, A]
	v.ReserveExact(len(s))
	copy(v.buf(), s)
	v.len = len(s)
	return v
}

// Of is like [FromSlice], but takes its elements variadically.
func Of[T, A any](elems ...T) Vec[T, A] {
	return FromSlice[T, A](elems)
}

// FromVec returns a vector that takes ownership of s, which must not be used
// afterwards.
//
// If cap(s) exceeds the inline capacity, s's backing array becomes the
// vector's heap buffer as-is, even if len(s) would fit inline; call
// [Vec.ShrinkToFit] to move it inline. Otherwise, the elements are moved
// inline.
func FromVec[T, A any](s []T) Vec[T, A] {
	var v Vec[T, A]
	if cap(s) <= v.InlineCap() {
		copy(v.buf(), s)
		clear(s)
		v.len = len(s)
		return v
	}

	v.heap = s[:cap(s)]
	clear(v.heap[len(s):])
	v.len = len(s)
	return v
}

// Collect collects the elements of seq into a new vector.
func Collect[T, A any](seq iter.Seq[T]) Vec[T, A] {
	var v Vec[T, A]
	v.Extend(seq)
	return v
}

// Clone returns a copy of v. The elements themselves are copied as if by
// assignment.
//
// The copy is inline whenever its elements fit.
func (v *Vec[T, A]) Clone() Vec[T, A] {
	return FromSlice[T, A](v.Slice())
}

// IntoSlice moves v's elements into a slice, leaving v empty and inline.
//
// If v is spilled, this returns its heap buffer without copying.
func (v *Vec[T, A]) IntoSlice() []T {
	var s []T
	if v.heap != nil {
		s = v.heap[:v.len]
	} else {
		s = make([]T, v.len)
		copy(s, v.Slice())
	}

	*v = Vec[T, A]{}
	return s
}

// IntoArray moves v's elements into an array, leaving v empty and inline.
//
// This only succeeds if Len() == InlineCap(). Otherwise, it returns an
// [*ArrayLenError] and v is left untouched.
func (v *Vec[T, A]) IntoArray() (A, error) {
	var a A
	if want := v.InlineCap(); v.len != want {
		return a, &ArrayLenError[T, A]{Vec: v, Len: v.len, Want: want}
	}

	copy(unsafex.ArraySlice[T](&a), v.Slice())
	*v = Vec[T, A]{}
	return a, nil
}
