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

	"github.com/bufbuild/smallvec/internal/ext/slicesx"
)

// All returns an iterator over the indices and elements of v, like
// [slices.All].
//
// v must not be resized while the iterator runs.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.Slice() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of v, like [slices.Values].
func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.Slice() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the indices and elements of v in reverse,
// like [slices.Backward].
func (v *Vec[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to the elements of v.
//
// The pointers are invalidated by anything that changes v's capacity.
func (v *Vec[T, A]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s := v.Slice()
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// IntoIter is an iterator that owns the elements it yields. See
// [Vec.IntoIter].
type IntoIter[T, A any] struct {
	vec Vec[T, A] // vec.len is always zero; [front, back) is live instead.

	front, back int
}

// IntoIter moves v's elements into a new iterator, leaving v empty and inline.
//
// The iterator yields each element exactly once, from either end. Elements it
// does not yield are dropped by [IntoIter.Close].
func (v *Vec[T, A]) IntoIter() *IntoIter[T, A] {
	it := &IntoIter[T, A]{vec: *v, back: v.len}
	it.vec.len = 0
	*v = Vec[T, A]{}
	return it
}

// Len returns the number of elements left to yield.
func (it *IntoIter[T, A]) Len() int {
	return it.back - it.front
}

// Next yields the next element from the front.
func (it *IntoIter[T, A]) Next() (T, bool) {
	if it.front == it.back {
		var z T
		return z, false
	}
	it.front++
	return slicesx.Take(it.vec.buf(), it.front-1)
}

// NextBack yields the next element from the back.
func (it *IntoIter[T, A]) NextBack() (T, bool) {
	if it.front == it.back {
		var z T
		return z, false
	}
	it.back--
	return slicesx.Take(it.vec.buf(), it.back)
}

// All returns an iterator that calls [IntoIter.Next] until it is exhausted.
//
// Breaking out of the loop early leaves the rest of the elements in it.
func (it *IntoIter[T, A]) All() iter.Seq[T] {
	return drive(it.Next)
}

// Backward returns an iterator that calls [IntoIter.NextBack] until it is
// exhausted.
func (it *IntoIter[T, A]) Backward() iter.Seq[T] {
	return drive(it.NextBack)
}

// Close drops every element that has not been yielded yet and releases the
// iterator's storage.
func (it *IntoIter[T, A]) Close() {
	rest := it.vec.buf()[it.front:it.back]
	it.front = it.back
	defer func() { it.vec = Vec[T, A]{} }()
	dropAll(rest)
}

// Drain is an iterator that removes the elements of a [Vec] as it yields
// them. See [Vec.Drain].
type Drain[T, A any] struct {
	buf         []T
	front, back int
}

// Drain removes every element from v and returns an iterator over them.
//
// v is empty as soon as Drain returns, and keeps its capacity. v must not be
// used again until the iterator has been exhausted or closed; elements the
// iterator does not yield are dropped by [Drain.Close].
func (v *Vec[T, A]) Drain() *Drain[T, A] {
	d := &Drain[T, A]{buf: v.Slice(), back: v.len}
	v.len = 0
	return d
}

// Len returns the number of elements left to yield.
func (d *Drain[T, A]) Len() int {
	return d.back - d.front
}

// Next yields the next element from the front.
func (d *Drain[T, A]) Next() (T, bool) {
	if d.front == d.back {
		var z T
		return z, false
	}
	d.front++
	return slicesx.Take(d.buf, d.front-1)
}

// NextBack yields the next element from the back.
func (d *Drain[T, A]) NextBack() (T, bool) {
	if d.front == d.back {
		var z T
		return z, false
	}
	d.back--
	return slicesx.Take(d.buf, d.back)
}

// All returns an iterator that calls [Drain.Next] until it is exhausted.
func (d *Drain[T, A]) All() iter.Seq[T] {
	return drive(d.Next)
}

// Backward returns an iterator that calls [Drain.NextBack] until it is
// exhausted.
func (d *Drain[T, A]) Backward() iter.Seq[T] {
	return drive(d.NextBack)
}

// Close drops every element that has not been yielded yet.
func (d *Drain[T, A]) Close() {
	rest := d.buf[d.front:d.back]
	d.front = d.back
	dropAll(rest)
}

func drive[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			e, ok := next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
