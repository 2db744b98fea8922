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
	"slices"

	"github.com/bufbuild/smallvec/internal/ext/slicesx"
)

// Push appends e to the end of v.
func (v *Vec[T, A]) Push(e T) {
	if v.len == v.Cap() {
		v.Reserve(1)
	}
	v.buf()[v.len] = e
	v.len++
}

// Pop removes and returns the last element of v, or returns false if v is
// empty.
func (v *Vec[T, A]) Pop() (T, bool) {
	if v.len == 0 {
		var z T
		return z, false
	}
	v.len--
	return slicesx.Take(v.buf(), v.len)
}

// Insert inserts e at index n, shifting all elements after it to the right.
//
// Panics if n > Len().
func (v *Vec[T, A]) Insert(n int, e T) {
	if uint(n) > uint(v.len) {
		panic(v.indexError("Insert", n))
	}
	if v.len == v.Cap() {
		v.Reserve(1)
	}

	s := v.buf()
	copy(s[n+1:v.len+1], s[n:v.len])
	s[n] = e
	v.len++
}

// Remove removes and returns the element at index n, shifting all elements
// after it to the left.
//
// Panics if n >= Len().
func (v *Vec[T, A]) Remove(n int) T {
	s := v.Slice()
	if uint(n) >= uint(len(s)) {
		panic(v.indexError("Remove", n))
	}

	e := s[n]
	copy(s[n:], s[n+1:])
	clear(s[len(s)-1:])
	v.len--
	return e
}

// SwapRemove removes and returns the element at index n, replacing it with the
// last element of v.
//
// This does not preserve order, but takes constant time.
//
// Panics if n >= Len().
func (v *Vec[T, A]) SwapRemove(n int) T {
	s := v.Slice()
	if uint(n) >= uint(len(s)) {
		panic(v.indexError("SwapRemove", n))
	}

	last := len(s) - 1
	e := s[n]
	s[n] = s[last]
	clear(s[last:])
	v.len = last
	return e
}

// Truncate drops every element at index n and beyond. If n >= Len(), this does
// nothing.
//
// Truncate never changes v's capacity. Panics if n is negative.
func (v *Vec[T, A]) Truncate(n int) {
	if n < 0 {
		panic(v.indexError("Truncate", n))
	}
	if n >= v.len {
		return
	}

	tail := v.buf()[n:v.len]
	v.len = n
	dropAll(tail)
}

// Clear drops every element of v.
//
// Clear never changes v's capacity; see [Vec.Drop] for releasing storage too.
func (v *Vec[T, A]) Clear() {
	v.Truncate(0)
}

// Extend appends every element of seq to v.
func (v *Vec[T, A]) Extend(seq iter.Seq[T]) {
	for e := range seq {
		v.Push(e)
	}
}

// ExtendFromSlice appends a copy of every element of s to v.
//
// s may alias v's own storage.
func (v *Vec[T, A]) ExtendFromSlice(s []T) {
	v.InsertFromSlice(v.len, s)
}

// InsertFromSlice inserts a copy of every element of s at index n.
//
// s may alias v's own storage. Panics if n > Len().
func (v *Vec[T, A]) InsertFromSlice(n int, s []T) {
	if uint(n) > uint(v.len) {
		panic(v.indexError("InsertFromSlice", n))
	}
	if len(s) == 0 {
		return
	}
	if slicesx.Overlaps(v.buf(), s) {
		// Growing or shifting would pull s out from under us.
		s = slices.Clone(s)
	}

	v.Reserve(len(s))
	b := v.buf()
	copy(b[n+len(s):v.len+len(s)], b[n:v.len])
	copy(b[n:], s)
	v.len += len(s)
}

// InsertMany inserts every element of seq at index n, in order.
//
// Panics if n > Len().
func (v *Vec[T, A]) InsertMany(n int, seq iter.Seq[T]) {
	v.InsertManyHint(n, seq, 0)
}

// InsertManyHint is like [Vec.InsertMany], but takes a hint for how many
// elements seq will yield.
//
// v reserves room for hint elements up front, and moves the tail of v only
// once for them. The hint need not be accurate: if seq yields more elements,
// the rest are inserted one at a time, and if it yields fewer, the unused room
// is closed back up.
//
// If seq panics, the elements it yielded so far remain inserted and v is
// consistent when the panic reaches the caller.
//
// seq must not access v.
func (v *Vec[T, A]) InsertManyHint(n int, seq iter.Seq[T], hint int) {
	if uint(n) > uint(v.len) {
		panic(v.indexError("InsertMany", n))
	}
	hint = max(hint, 0)
	v.Reserve(hint)

	// Open a gap of hint slots at n. Only the prefix is live while seq runs,
	// so the tail is never visible twice.
	s := v.buf()
	tail := v.len - n
	slicesx.Shift(s, n+hint, n, tail)
	if hint > 0 {
		v.len = n
	}

	at, gap := n, hint
	defer func() {
		if gap > 0 {
			slicesx.Shift(v.buf(), at, at+gap, tail)
		}
		v.len = at + tail
	}()

	for e := range seq {
		if gap == 0 {
			v.Insert(at, e)
			at++
			continue
		}

		s[at] = e
		at++
		gap--
		if gap == 0 {
			v.len = at + tail
		} else {
			v.len = at
		}
	}
}

// Retain keeps only the elements for which keep returns true, preserving their
// order, and drops the rest.
//
// keep is called exactly once for each element, in order. If keep panics, the
// element it was called with and every element after it are kept.
func (v *Vec[T, A]) Retain(keep func(T) bool) {
	s := v.Slice()
	drop := dropFunc[T]()

	var w, r int // Next slot to write, next slot to read.
	defer func() {
		slicesx.Shift(s, w, r, len(s)-r)
		v.len = w + len(s) - r
	}()

	for r < len(s) {
		if keep(s[r]) {
			if w != r {
				s[w], _ = slicesx.Take(s, r)
			}
			w++
			r++
			continue
		}

		e, _ := slicesx.Take(s, r)
		r++
		if drop != nil {
			drop(&e)
		}
	}
}

// DedupFunc removes every element for which same(kept, e) returns true, where
// kept is the last element that was kept. The first of each run is kept, and
// removed elements are dropped.
//
// Only adjacent runs are removed; see [Dedup] for comparable elements.
func (v *Vec[T, A]) DedupFunc(same func(kept, e T) bool) {
	s := v.Slice()
	if len(s) < 2 {
		return
	}
	drop := dropFunc[T]()

	w, r := 1, 1
	defer func() {
		slicesx.Shift(s, w, r, len(s)-r)
		v.len = w + len(s) - r
	}()

	for r < len(s) {
		if !same(s[w-1], s[r]) {
			if w != r {
				s[w], _ = slicesx.Take(s, r)
			}
			w++
			r++
			continue
		}

		e, _ := slicesx.Take(s, r)
		r++
		if drop != nil {
			drop(&e)
		}
	}
}

// Resize changes v's length to n, either by appending copies of fill or by
// truncating.
func (v *Vec[T, A]) Resize(n int, fill T) {
	v.ResizeFunc(n, func() T { return fill })
}

// ResizeFunc is like [Vec.Resize], but calls f to make each new element.
func (v *Vec[T, A]) ResizeFunc(n int, f func() T) {
	if n <= v.len {
		v.Truncate(n)
		return
	}

	v.Reserve(n - v.len)
	s := v.buf()
	for v.len < n {
		s[v.len] = f()
		v.len++
	}
}
