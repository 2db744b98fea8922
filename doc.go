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

// Package smallvec provides Vec, a growable sequence that stores a small,
// fixed number of elements inside the Vec value itself and only allocates a
// separate buffer once that number is exceeded.
//
// A Vec holding few elements costs no allocation at all: it can live on the
// stack or inside another struct. Once it grows past its inline capacity it
// "spills" to an ordinary heap-allocated slice and behaves like one from then
// on. [Vec.ShrinkToFit] and [Vec.Grow] can move it back inline when it is short
// enough again.
//
// # Inline capacity
//
// Go does not have const generics, so the inline capacity is expressed by the
// second type parameter, which must be an array of the element type:
//
//	var v smallvec.Vec[string, [4]string] // Up to four strings inline.
//	v.Push("hello")
//
// Using any other type as the second parameter panics on first use.
//
// The zero Vec is empty, inline and ready to use.
//
// # Ownership
//
// A Vec owns its elements. Element types that implement [Dropper] are told
// when the Vec discards one of them, e.g. because of [Vec.Truncate] or
// [Vec.Retain]. Operations that hand an element back to the caller, such as
// [Vec.Pop], do not drop it. Calling [Vec.Drop] drops every remaining element
// and releases the heap buffer, if any.
//
// A Vec must not be copied after it has been mutated, because the copy would
// share the spilled buffer with the original; use [Vec.Clone] instead. A Vec
// is not safe for concurrent use.
//
// # Panics
//
// Out-of-range indices and invalid capacity requests are programmer errors,
// and they panic with an [*IndexError] or a [*CapacityError]. When code supplied
// by the caller panics, such as a Drop method or a Retain predicate, the panic
// propagates only after the Vec has restored its invariants, so that every
// element is still owned exactly once.
package smallvec
