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

// Package slicesx contains extensions to Go's package slices.
package slicesx

import (
	"unsafe"

	"github.com/bufbuild/smallvec/internal/ext/unsafex"
)

// Get performs a bounds check and returns the value at idx.
//
// If the bounds check fails, returns the zero value and false.
func Get[S ~[]E, E any](s S, idx int) (element E, ok bool) {
	if uint(idx) >= uint(len(s)) {
		return element, false
	}

	// Dodge the bounds check, since Go probably won't be able to
	// eliminate it even after stenciling.
	return *unsafex.Index(unsafe.SliceData(s), idx), true
}

// Take moves the value at idx out of s, leaving the zero value in its place.
//
// If the bounds check fails, returns the zero value and false.
func Take[S ~[]E, E any](s S, idx int) (element E, ok bool) {
	if uint(idx) >= uint(len(s)) {
		return element, false
	}

	p := unsafex.Index(unsafe.SliceData(s), idx)
	element, *p = *p, element
	return element, true
}

// Shift moves s[from:from+n] to s[to:to+n], like copy, and then zeroes
// whichever part of the source range the destination did not overwrite.
//
// After Shift returns, no value in the source range is present twice in s.
func Shift[S ~[]E, E any](s S, to, from, n int) {
	if n <= 0 || to == from {
		return
	}
	copy(s[to:to+n], s[from:from+n])
	if to < from {
		clear(s[max(to+n, from) : from+n])
	} else {
		clear(s[from:min(from+n, to)])
	}
}

// PointerIndex returns an integer n such that p == &s[n], or -1 if there is
// no such integer.
func PointerIndex[S ~[]E, E any](s S, p *E) int {
	size := unsafex.LayoutOf[E]().Size
	if size == 0 {
		// Every element of a zero-sized type has the same address, so there
		// is no way to tell them apart.
		return -1
	}

	a := unsafe.Pointer(p)
	b := unsafe.Pointer(unsafe.SliceData(s))

	diff := uintptr(a) - uintptr(b)
	byteLen := len(s) * size

	// This comparison checks for the following things:
	//
	// 1. Obviously, that diff is not past the end of s.
	//
	// 2. That the subtraction did not overflow. If it did, diff will be
	//    negative two's complement, i.e. the MSB is set, so it will be
	//    greater than byteLen, which, due to allocation limitations on
	//    every platform ever, cannot be greater than MaxInt, which all
	//    "negative" uintptrs are greater than.
	//
	// 3. That byteLen is not zero. If it is zero, this branch is taken
	//    regardless of the value of diff
	//
	// 4. That p is not nil. If it is nil, then either diff will be huge
	//    (because s is a nonempty slice) or byteLen will be zero in which case
	//    (3) applies.
	if diff >= uintptr(byteLen) {
		return -1
	}

	return int(diff) / size
}

// Overlaps returns whether a and b share any elements of the same backing
// array.
func Overlaps[S ~[]E, E any](a, b S) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return PointerIndex(a, unsafe.SliceData(b)) >= 0 ||
		PointerIndex(b, unsafe.SliceData(a)) >= 0
}
