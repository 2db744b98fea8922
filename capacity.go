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
	"math"

	"github.com/bufbuild/smallvec/internal/ext/bitsx"
)

// Reserve ensures that v can hold at least additional more elements without
// reallocating.
//
// When v needs to grow, its new capacity is the smallest power of two that
// fits the request, so that repeated pushes take amortized constant time.
func (v *Vec[T, A]) Reserve(additional int) {
	need := v.need("Reserve", additional)
	if need <= v.Cap() {
		return
	}
	v.setCap(bitsx.RoundCap(need))
}

// ReserveExact is like [Vec.Reserve], but does not round the new capacity up.
func (v *Vec[T, A]) ReserveExact(additional int) {
	need := v.need("ReserveExact", additional)
	if need <= v.Cap() {
		return
	}
	v.setCap(need)
}

// Grow sets v's capacity to exactly capacity.
//
// If capacity is at most InlineCap(), this moves v's elements back inline.
// Growing to the current capacity does nothing.
//
// Panics with a [*CapacityError] if capacity is less than Len().
func (v *Vec[T, A]) Grow(capacity int) {
	if capacity < v.len {
		panic(&CapacityError{Op: "Grow", Requested: capacity, Len: v.len})
	}
	v.setCap(capacity)
}

// ShrinkToFit reduces v's capacity as far as possible.
//
// If v's elements fit inline, they are moved back inline, and the capacity
// becomes InlineCap(). Otherwise, the heap buffer is shrunk to Len().
func (v *Vec[T, A]) ShrinkToFit() {
	if v.heap == nil {
		return
	}
	v.setCap(v.len)
}

// need returns Len() + additional, panicking if that is not a valid capacity.
func (v *Vec[T, A]) need(op string, additional int) int {
	if additional > math.MaxInt-v.len {
		panic(&CapacityError{Op: op, Len: v.len, Overflow: true})
	}
	need := v.len + additional
	if need < v.len {
		panic(&CapacityError{Op: op, Requested: need, Len: v.len})
	}
	return need
}

// setCap moves v's elements into storage of exactly the given capacity, or
// inline if capacity <= InlineCap().
//
// capacity must be at least v.len.
func (v *Vec[T, A]) setCap(capacity int) {
	if capacity <= v.InlineCap() {
		v.unspill()
		return
	}
	if capacity == len(v.heap) {
		return
	}

	live := v.Slice()
	heap := make([]T, capacity)
	copy(heap, live)
	if v.heap == nil {
		// The inline slots no longer own these elements.
		clear(live)
	}
	v.heap = heap
}

// unspill moves v's elements back inline. v.len must be at most InlineCap().
func (v *Vec[T, A]) unspill() {
	if v.heap == nil {
		return
	}
	live := v.heap[:v.len]
	v.heap = nil
	copy(v.buf(), live)
}
