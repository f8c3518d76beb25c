// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package orderedmap

import (
	"iter"

	"seqlist/pkg/seqlist"
)

// OrderedMap is a map that remembers the order in which keys were first set.
// Key order is held in a seqlist.List, so Delete is linear in the number of
// keys.
type OrderedMap[K comparable, V any] struct {
	keys *seqlist.List[K]
	m    map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]V),
		keys: seqlist.New[K](),
	}
}

// Keys returns the keys of the map in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys.Values()
}

// Values returns the values of the map in the order of the keys.
func (m *OrderedMap[K, V]) Values() []V {
	rs := make([]V, 0, m.keys.Len())
	for k := range m.keys.All() {
		rs = append(rs, m.m[k])
	}
	return rs
}

func (m *OrderedMap[K, V]) Len() int {
	return m.keys.Len()
}

// Set sets the value associated with the given key. A key that is already
// present keeps its position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.m[k]; !ok {
		if err := m.keys.Push(k); err != nil {
			// nil keys are not recorded
			return
		}
	}
	m.m[k] = v
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Delete removes the key and its value.
func (m *OrderedMap[K, V]) Delete(k K) {
	if _, ok := m.m[k]; !ok {
		return
	}
	i := m.keys.IndexFunc(func(key K) bool { return key == k })
	m.keys.Remove(i)
	delete(m.m, k)
}

// Range calls f for each element in the map in the order of the keys.
func (m *OrderedMap[K, V]) Range(f func(k K, v V)) {
	m.keys.Range(func(k K) {
		f(k, m.m[k])
	})
}

// All returns an iterator over key/value pairs in key order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k := range m.keys.All() {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

func (m *OrderedMap[K, V]) Clear() {
	m.keys.Clear()
	m.m = make(map[K]V)
}

func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m.Len() == 0
}
