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


package smallvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/smallvec"
)

// counted counts how many times it is dropped.
type counted struct {
	drops *int
}

func (c counted) Drop() { *c.drops++ }

// tracked records its id every time it is dropped, so that double drops show
// up as duplicates.
type tracked struct {
	id    int
	drops *[]int
}

func (t *tracked) Drop() { *t.drops = append(*t.drops, t.id) }

// panicky panics when dropped, if boom is set.
type panicky struct {
	drops *int
	boom  bool
}

func (p panicky) Drop() {
	*p.drops++
	if p.boom {
		panic("boom")
	}
}

func ids[A any](v *smallvec.Vec[tracked, A]) []int {
	var out []int
	for _, e := range v.All() {
		out = append(out, e.id)
	}
	return out
}

// assertZeroTail asserts that every slot past v.Len() holds the zero value.
func assertZeroTail[T comparable, A any](t *testing.T, v *smallvec.Vec[T, A]) {
	t.Helper()

	var zero T
	for i, e := range smallvec.Slots(v)[v.Len():] {
		assert.Equal(t, zero, e, "slot %d of %d", v.Len()+i, v.Cap())
	}
}
