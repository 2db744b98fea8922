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
	json "github.com/goccy/go-json"
)

var (
	_ json.Marshaler   = Vec[int, [1]int]{}
	_ json.Unmarshaler = (*Vec[int, [1]int])(nil)
)

// MarshalJSON implements [json.Marshaler], encoding v as a JSON array.
func (v Vec[T, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Slice())
}

// UnmarshalJSON implements [json.Unmarshaler], replacing v's contents with the
// elements of a JSON array. A JSON null leaves v empty.
//
// v's old elements are dropped only once data has been decoded successfully.
func (v *Vec[T, A]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	v.replace(elems)
	return nil
}

// replace drops v's elements and takes ownership of elems in their place.
func (v *Vec[T, A]) replace(elems []T) {
	v.Drop()
	*v = FromVec[T, A](elems)
}
