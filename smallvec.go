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
	"fmt"

	"github.com/bufbuild/smallvec/internal/ext/slicesx"
	"github.com/bufbuild/smallvec/internal/ext/unsafex"
)

// Vec is a growable sequence of T that stores up to N elements inline, where
// A is [N]T.
//
// A zero Vec is empty and ready to use.
type Vec[T, A any] struct {
	_ [0]chan int // Make the type incomparable.

	// The number of live elements. Slots [0, len) of the active storage are
	// live; every other slot holds the zero value.
	len int

	// Nil while the elements are stored inline. Once spilled,
	// len(heap) == cap(heap) > N is the capacity, and heap is not shared with
	// anything else.
	heap []T

	inline A
}

// InlineCap returns the number of elements v can hold without allocating.
func (v *Vec[T, A]) InlineCap() int {
	return unsafex.ArrayLen[A, T]()
}

// Len returns the number of elements in v.
func (v *Vec[T, A]) Len() int {
	return v.len
}

// Cap returns the number of elements v can hold before it must reallocate.
//
// This is InlineCap() unless v is spilled.
func (v *Vec[T, A]) Cap() int {
	if v.heap != nil {
		return len(v.heap)
	}
	return v.InlineCap()
}

// IsEmpty returns whether v has no elements.
func (v *Vec[T, A]) IsEmpty() bool {
	return v.len == 0
}

// Spilled returns whether v's elements are stored in a separately allocated
// buffer rather than inline.
func (v *Vec[T, A]) Spilled() bool {
	return v.heap != nil
}

// Slice returns the elements of v.
//
// The returned slice aliases v's storage, so writes through it are visible in
// v. It remains valid until the next operation that changes v's capacity, much
// like a slice passed to append.
func (v *Vec[T, A]) Slice() []T {
	return v.buf()[:v.len]
}

// At returns the element at index n.
//
// Panics if the index is out of range.
func (v *Vec[T, A]) At(n int) T {
	e, ok := slicesx.Get(v.Slice(), n)
	if !ok {
		panic(v.indexError("At", n))
	}
	return e
}

// Get returns the element at index n, or false if n is out of range.
func (v *Vec[T, A]) Get(n int) (T, bool) {
	return slicesx.Get(v.Slice(), n)
}

// SetAt replaces the element at index n with e, dropping the old element.
//
// Panics if the index is out of range.
func (v *Vec[T, A]) SetAt(n int, e T) {
	s := v.Slice()
	if uint(n) >= uint(len(s)) {
		panic(v.indexError("SetAt", n))
	}
	old := s[n]
	s[n] = e
	dropOne(&old)
}

// Drop drops every element of v and releases its heap buffer, if any.
//
// Afterwards, v is empty, inline and ready to use again.
func (v *Vec[T, A]) Drop() {
	live := v.Slice()
	v.len = 0
	v.heap = nil
	dropAll(live)
}

// Format implements [fmt.Formatter].
func (v Vec[T, A]) Format(out fmt.State, verb rune) {
	if out.Flag('#') {
		fmt.Fprintf(out, "%T{", v)
	} else {
		fmt.Fprint(out, "[")
	}

	for i, e := range v.All() {
		if i > 0 {
			if out.Flag('#') {
				fmt.Fprint(out, ", ")
			} else {
				fmt.Fprint(out, " ")
			}
		}
		fmt.Fprintf(out, fmt.FormatString(out, verb), e)
	}

	if out.Flag('#') {
		fmt.Fprint(out, "}")
	} else {
		fmt.Fprint(out, "]")
	}
}

// buf returns every slot of the active storage, live or not.
func (v *Vec[T, A]) buf() []T {
	if v.heap != nil {
		return v.heap
	}
	return unsafex.ArraySlice[T](&v.inline)
}

func (v *Vec[T, A]) indexError(op string, n int) *IndexError {
	return &IndexError{Op: op, Index: n, Len: v.len}
}
