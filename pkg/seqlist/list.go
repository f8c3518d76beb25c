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

// Package seqlist implements a singly linked sequential container with
// constant time access to both ends and linear time indexed access.
//
// The list keeps a head reference, a tail reference and a length counter.
// All three are updated together by every mutating method. There is no
// backward link, so Pop walks the whole chain to find the new tail.
//
// A List is not safe for concurrent use.
package seqlist

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/modern-go/reflect2"
	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is returned by Insert when the index is negative
	// or greater than the list length.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrMissingValue is returned by Insert when the value is nil.
	ErrMissingValue = errors.New("missing value")
)

type node[T any] struct {
	value T
	next  *node[T]
}

// newNode refuses to build a node around a nil value.
func newNode[T any](v T) *node[T] {
	if isMissing(v) {
		return nil
	}
	return &node[T]{value: v}
}

// isMissing reports whether v is nil. Only kinds that can hold nil are
// checked; structs and arrays are never missing.
func isMissing[T any](v T) bool {
	obj := any(v)
	if obj == nil {
		return true
	}
	switch reflect2.TypeOf(obj).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return reflect2.IsNil(obj)
	}
	return false
}

// List is an ordered, 0-indexed sequence of values. The zero value is an
// empty list ready to use.
type List[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// New returns a list holding values in the given order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	l.InsertAll(0, values...)
	return l
}

// Collect returns a list holding the values produced by seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	i := 0
	for v := range seq {
		_ = l.Insert(i, v)
		i++
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty returns true if the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// First returns the value at the head of the list.
func (l *List[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Last returns the value at the tail of the list.
func (l *List[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Get returns the value at index.
func (l *List[T]) Get(index int) (T, bool) {
	n := l.nodeAt(index)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (l *List[T]) nodeAt(index int) *node[T] {
	if index < 0 || index >= l.length {
		return nil
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if i == index {
			return n
		}
		i++
	}
	return nil
}

// Insert links value in at index, shifting the element previously at index
// and everything after it one position towards the tail. Valid indexes are
// 0 through Len(); Len() appends.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d, length %d", index, l.length)
	}

	n := newNode(value)
	if n == nil {
		return errors.Wrapf(ErrMissingValue, "insert at %d", index)
	}

	switch {
	case index == 0:
		n.next = l.head
		l.head = n
		if l.tail == nil {
			l.tail = n
		}
	case index == l.length:
		l.tail.next = n
		l.tail = n
	default:
		prev := l.nodeAt(index - 1)
		if prev == nil {
			return errors.Wrapf(ErrIndexOutOfRange, "insert at %d, length %d", index, l.length)
		}
		n.next = prev.next
		prev.next = n
	}

	l.length++
	return nil
}

// InsertAll inserts values at consecutive indexes starting at start. The
// target index advances after every value whether or not it was linked in,
// and the returned count is the number of positions advanced, which is
// always len(values).
func (l *List[T]) InsertAll(start int, values ...T) int {
	next := start
	for _, v := range values {
		_ = l.Insert(next, v)
		next++
	}
	return next - start
}

// Remove unlinks the element at index and returns its value.
func (l *List[T]) Remove(index int) (T, bool) {
	var (
		prev   *node[T]
		target *node[T]
		i      int
	)
	for n := l.head; n != nil; n = n.next {
		if i == index {
			target = n
			break
		}
		prev = n
		i++
	}

	if target == nil {
		var zero T
		return zero, false
	}

	if prev != nil {
		prev.next = target.next
	} else {
		l.head = target.next
	}
	if target == l.tail {
		l.tail = prev
	}
	target.next = nil

	l.length--
	return target.value, true
}

// Push appends v to the end of the list.
func (l *List[T]) Push(v T) error {
	return l.Insert(l.Len(), v)
}

// Pop removes and returns the value at the end of the list. It walks the
// whole chain.
func (l *List[T]) Pop() (T, bool) {
	return l.Remove(l.Len() - 1)
}

// Unshift prepends v to the list.
func (l *List[T]) Unshift(v T) error {
	return l.Insert(0, v)
}

// Shift removes and returns the value at the front of the list.
func (l *List[T]) Shift() (T, bool) {
	return l.Remove(0)
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

// All returns an iterator over the values from head to tail. Each call
// starts a fresh walk. Mutating the list during iteration is not supported.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Range calls f for each element in the list.
func (l *List[T]) Range(f func(T)) {
	for n := l.head; n != nil; n = n.next {
		f(n.value)
	}
}

// Values returns all values in the list.
func (l *List[T]) Values() []T {
	rs := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		rs = append(rs, n.value)
	}
	return rs
}

// IndexFunc returns the index of the first value satisfying f, or -1.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if f(n.value) {
			return i
		}
		i++
	}
	return -1
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
