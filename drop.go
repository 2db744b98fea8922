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

import "reflect"

// Dropper is implemented by element types that want to be notified when a
// [Vec] discards them.
//
// Drop may be implemented on either T or *T. If T is an interface type, each
// element is checked individually.
//
// A Vec calls Drop exactly once for every element it discards, and never for an
// element it hands back to the caller. If Drop panics, the Vec still drops the
// other elements it was discarding before the panic propagates.
type Dropper interface {
	Drop()
}

// dropFunc returns a function that drops the element it is given, or nil if
// elements of type T are never dropped.
func dropFunc[T any]() func(*T) {
	if _, ok := any((*T)(nil)).(Dropper); ok {
		return func(p *T) { any(p).(Dropper).Drop() }
	}

	var zero T
	if _, ok := any(zero).(Dropper); ok {
		return func(p *T) { any(*p).(Dropper).Drop() }
	}

	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return func(p *T) {
			if d, ok := any(*p).(Dropper); ok {
				d.Drop()
			}
		}
	}

	return nil
}

// dropOne drops a single element.
func dropOne[T any](p *T) {
	if drop := dropFunc[T](); drop != nil {
		drop(p)
	}
}

// dropAll drops every element of s and then zeroes s.
func dropAll[T any](s []T) {
	drop := dropFunc[T]()
	if drop == nil {
		clear(s)
		return
	}
	dropEach(s, drop)
}

func dropEach[T any](s []T, drop func(*T)) {
	var i int
	defer func() {
		if i < len(s) {
			// drop panicked on s[i]; finish the rest while the panic unwinds.
			dropEach(s[i+1:], drop)
		}
		clear(s)
	}()

	for ; i < len(s); i++ {
		drop(&s[i])
	}
}
