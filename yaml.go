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
	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Vec[int, [1]int]{}
	_ yaml.Unmarshaler = (*Vec[int, [1]int])(nil)
)

// MarshalYAML implements [yaml.Marshaler], encoding v as a YAML sequence.
func (v Vec[T, A]) MarshalYAML() (any, error) {
	if v.len == 0 {
		// Avoid "null" for an empty vector.
		return []T{}, nil
	}
	return v.Slice(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler], replacing v's contents with the
// elements of a YAML sequence.
//
// v's old elements are dropped only once node has been decoded successfully.
func (v *Vec[T, A]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return err
	}
	v.replace(elems)
	return nil
}
