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

// Package unsafex contains extensions to Go's package unsafe.
//
// Importing this package should be treated as equivalent to importing unsafe.
package unsafex

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Layout is the layout of a type.
//
// This is a more convenient abstraction that manipulating the size and
// alignment separately.
type Layout struct {
	Size, Align int
}

// LayoutOf returns the layout of some type.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{
		Size:  int(unsafe.Sizeof(v)),
		Align: int(unsafe.Alignof(v)),
	}
}

// Index is like [unsafe.Add], but it operates on a typed pointer and scales the
// offset by that type's size, similar to pointer arithmetic in Rust or C.
//
// This function has the same safety caveats as [unsafe.Add].
//
//go:nosplit
func Index[T any](p *T, idx int) *T {
	raw := unsafe.Pointer(p)
	raw = unsafe.Add(raw, idx*LayoutOf[T]().Size)
	return (*T)(raw)
}

// ArrayLen returns N, given that A is an array type with underlying type [N]E.
//
// Panics if A is not an array of E. The check only inspects type descriptors,
// so it does not allocate.
func ArrayLen[A, E any]() int {
	a := reflect.TypeFor[A]()
	if a.Kind() != reflect.Array || a.Elem() != reflect.TypeFor[E]() {
		panic(badArray[A, E]{})
	}
	return a.Len()
}

// ArraySlice reinterprets a pointer to an [N]E as a slice of length and
// capacity N that aliases it.
//
// Because the memory really is an [N]E, the garbage collector sees the slice's
// pointers exactly as it would see the array's. A must satisfy [ArrayLen].
func ArraySlice[E, A any](p *A) []E {
	return unsafe.Slice((*E)(unsafe.Pointer(p)), ArrayLen[A, E]())
}

type badArray[A, E any] struct{}

func (badArray[A, E]) Error() string {
	return fmt.Sprintf(
		"unsafex: %v is not an array of %v",
		reflect.TypeFor[A](), reflect.TypeFor[E](),
	)
}

// StringBytes returns a slice that aliases the bytes of s.
//
// The returned slice must not be written to: strings are immutable, and their
// bytes may live in read-only memory.
func StringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
