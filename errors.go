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

import "fmt"

// IndexError is the panic value for an out-of-range index.
type IndexError struct {
	Op         string // The method that was called.
	Index, Len int
}

// Error implements [error].
func (e *IndexError) Error() string {
	return fmt.Sprintf("smallvec: %s: index out of range [%d] with length %d", e.Op, e.Index, e.Len)
}

// CapacityError is the panic value for a capacity request that cannot be
// satisfied: one below the current length, or one that overflows an int.
type CapacityError struct {
	Op string // The method that was called.

	// The capacity that was asked for. Meaningless if Overflow is set.
	Requested int
	Len       int
	Overflow  bool
}

// Error implements [error].
func (e *CapacityError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("smallvec: %s: capacity overflow with length %d", e.Op, e.Len)
	}
	return fmt.Sprintf("smallvec: %s: capacity %d is less than length %d", e.Op, e.Requested, e.Len)
}

// ArrayLenError is returned by [Vec.IntoArray] when the vector's length does
// not match its inline capacity.
type ArrayLenError[T, A any] struct {
	// The vector that could not be converted. It is exactly as it was before
	// the call.
	Vec *Vec[T, A]

	Len, Want int
}

// Error implements [error].
func (e *ArrayLenError[T, A]) Error() string {
	return fmt.Sprintf("smallvec: cannot convert vector of length %d into an array of length %d", e.Len, e.Want)
}
