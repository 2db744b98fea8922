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
	"cmp"
	"slices"
)

// The functions in this file need constraints on T that Vec's methods cannot
// add, so they are free functions.
//
// The two vectors may have different inline capacities: whether an element is
// stored inline never affects comparisons.

// Equal returns whether a and b have the same length and equal elements.
func Equal[T comparable, A, B any](a *Vec[T, A], b *Vec[T, B]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like [Equal], but uses eq to compare elements.
func EqualFunc[T, U, A, B any](a *Vec[T, A], b *Vec[U, B], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically, like [slices.Compare].
func Compare[T cmp.Ordered, A, B any](a *Vec[T, A], b *Vec[T, B]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like [Compare], but uses compare to compare elements.
func CompareFunc[T, U, A, B any](a *Vec[T, A], b *Vec[U, B], compare func(T, U) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}

// Dedup removes consecutive equal elements of v, keeping the first of each
// run. See [Vec.DedupFunc].
func Dedup[T comparable, A any](v *Vec[T, A]) {
	v.DedupFunc(func(a, b T) bool { return a == b })
}

// Index returns the index of the first element of v equal to e, or -1.
func Index[T comparable, A any](v *Vec[T, A], e T) int {
	return slices.Index(v.Slice(), e)
}

// Contains returns whether e is an element of v.
func Contains[T comparable, A any](v *Vec[T, A], e T) bool {
	return Index(v, e) >= 0
}
