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

	"github.com/bufbuild/smallvec"
)

func BenchmarkPushInline(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var v smallvec.Vec[int, [16]int]
		for i := range 16 {
			v.Push(i)
		}
		sinkInt = v.Len()
	}
}

func BenchmarkPushSpilled(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var v smallvec.Vec[int, [16]int]
		for i := range 100 {
			v.Push(i)
		}
		sinkInt = v.Len()
	}
}

func BenchmarkPushSlice(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var v []int
		for i := range 16 {
			v = append(v, i)
		}
		sinkInt = len(v)
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	var v smallvec.Vec[int, [16]int]
	for i := range 8 {
		v.Push(i)
	}

	b.ReportAllocs()
	for b.Loop() {
		v.Insert(0, 1)
		sinkInt = v.Remove(0)
	}
}

func BenchmarkExtendFromSlice(b *testing.B) {
	src := make([]int, 12)

	b.ReportAllocs()
	for b.Loop() {
		var v smallvec.Vec[int, [16]int]
		v.ExtendFromSlice(src)
		sinkInt = v.Len()
	}
}

func BenchmarkIntoIter(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		v := smallvec.Of[int, [8]int](1, 2, 3, 4, 5, 6, 7, 8)
		var sum int
		for e := range v.IntoIter().All() {
			sum += e
		}
		sinkInt = sum
	}
}

var sinkInt int
