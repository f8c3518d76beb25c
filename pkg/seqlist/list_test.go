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

package seqlist

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkChain walks the chain and verifies head, tail and length agree.
func checkChain[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.length == 0 {
		if l.head != nil || l.tail != nil {
			t.Fatalf("empty list must have nil head and tail, got head=%v tail=%v", l.head, l.tail)
		}
		return
	}
	if l.head == nil || l.tail == nil {
		t.Fatalf("list of length %d has nil head or tail", l.length)
	}
	if l.tail.next != nil {
		t.Fatal("tail.next must be nil")
	}
	n := l.head
	for i := 1; i < l.length; i++ {
		if n.next == nil {
			t.Fatalf("chain ends after %d nodes, length is %d", i, l.length)
		}
		n = n.next
	}
	if n != l.tail {
		t.Fatalf("node at position %d is not the tail", l.length-1)
	}
	if l.length == 1 && l.head != l.tail {
		t.Fatal("single element list must have head == tail")
	}
}

func assertValues(t *testing.T, l *List[int], want ...int) {
	t.Helper()
	checkChain(t, l)
	if diff := cmp.Diff(want, l.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if l.Len() != len(want) {
		t.Errorf("Expected length to be %d, got %d", len(want), l.Len())
	}
}

func TestNew(t *testing.T) {
	l := New(0, 1, 2, 3)
	assertValues(t, l, 0, 1, 2, 3)

	empty := New[int]()
	assertValues(t, empty)
	if _, ok := empty.First(); ok {
		t.Error("Expected no first value for empty list")
	}
	if _, ok := empty.Last(); ok {
		t.Error("Expected no last value for empty list")
	}
	count := 0
	for range empty.All() {
		count++
	}
	if count != 0 {
		t.Errorf("Expected empty iteration, got %d values", count)
	}

	var zero List[string]
	require.NoError(t, zero.Push("a"))
	assert.Equal(t, []string{"a"}, zero.Values())
}

func TestCollect(t *testing.T) {
	l := Collect(slices.Values([]string{"x", "y", "z"}))
	checkChain(t, l)
	assert.Equal(t, []string{"x", "y", "z"}, l.Values())
}

func TestFirstLast(t *testing.T) {
	l := New[int]()
	require.NoError(t, l.Push(7))
	first, ok := l.First()
	assert.True(t, ok)
	assert.Equal(t, 7, first)
	last, ok := l.Last()
	assert.True(t, ok)
	assert.Equal(t, 7, last)

	require.NoError(t, l.Push(8))
	last, _ = l.Last()
	assert.Equal(t, 8, last)
	first, _ = l.First()
	assert.Equal(t, 7, first)
}

func TestGet(t *testing.T) {
	l := New(10, 20, 30)
	for i, want := range []int{10, 20, 30} {
		v, ok := l.Get(i)
		if !ok || v != want {
			t.Errorf("Get(%d) = %d, %v, want %d, true", i, v, ok, want)
		}
	}
	for _, i := range []int{-1, 3, 100} {
		if _, ok := l.Get(i); ok {
			t.Errorf("Get(%d) should not find a value", i)
		}
	}
	if _, ok := New[int]().Get(0); ok {
		t.Error("Get(0) on empty list should not find a value")
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	l := New[int]()
	require.NoError(t, l.Insert(0, 1))
	assertValues(t, l, 1)
	if l.head != l.tail {
		t.Error("Expected head and tail to be the same node")
	}

	l = New[int]()
	require.NoError(t, l.Unshift(1))
	assertValues(t, l, 1)

	l = New[int]()
	require.NoError(t, l.Push(1))
	assertValues(t, l, 1)
}

func TestInsert(t *testing.T) {
	l := New(1, 3)
	require.NoError(t, l.Insert(1, 2))
	assertValues(t, l, 1, 2, 3)

	require.NoError(t, l.Insert(0, 0))
	assertValues(t, l, 0, 1, 2, 3)

	require.NoError(t, l.Insert(l.Len(), 4))
	assertValues(t, l, 0, 1, 2, 3, 4)
	last, _ := l.Last()
	assert.Equal(t, 4, last)

	require.NoError(t, l.Insert(4, 35))
	assertValues(t, l, 0, 1, 2, 3, 35, 4)
}

func TestInsertRejected(t *testing.T) {
	l := New(1, 2)

	err := l.Insert(-1, 9)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange), "got %v", err)
	assertValues(t, l, 1, 2)

	err = l.Insert(3, 9)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange), "got %v", err)
	assertValues(t, l, 1, 2)

	empty := New[int]()
	err = empty.Insert(1, 9)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange), "got %v", err)
	assertValues(t, empty)
}

func TestInsertMissingValue(t *testing.T) {
	x := 1
	l := New(&x)
	err := l.Push(nil)
	assert.True(t, errors.Is(err, ErrMissingValue), "got %v", err)
	err = l.Insert(0, nil)
	assert.True(t, errors.Is(err, ErrMissingValue), "got %v", err)
	checkChain(t, l)
	assert.Equal(t, 1, l.Len())

	var a List[any]
	assert.Error(t, a.Push(nil))
	require.NoError(t, a.Push(0))
	require.NoError(t, a.Push(""))
	checkChain(t, &a)
	assert.Equal(t, 2, a.Len())

	var m map[string]int
	assert.Error(t, a.Push(m))
	var f func()
	assert.Error(t, a.Push(f))
	assert.Equal(t, 2, a.Len())
}

type wrapPtr struct{ p *int }

type pair struct {
	a int
	b string
}

func TestInsertZeroComposite(t *testing.T) {
	t.Run("struct with pointer field", func(t *testing.T) {
		l := New[wrapPtr]()
		require.NoError(t, l.Push(wrapPtr{}))
		require.NoError(t, l.Insert(0, wrapPtr{}))
		checkChain(t, l)
		assert.Equal(t, 2, l.Len())
		assert.Equal(t, 2, New(wrapPtr{}, wrapPtr{}).Len())
	})
	t.Run("array of pointer", func(t *testing.T) {
		l := New[[1]*int]()
		require.NoError(t, l.Push([1]*int{}))
		checkChain(t, l)
		assert.Equal(t, 1, l.Len())
	})
	t.Run("plain struct", func(t *testing.T) {
		l := New[pair]()
		require.NoError(t, l.Push(pair{}))
		require.NoError(t, l.Unshift(pair{a: 1, b: "x"}))
		checkChain(t, l)
		assert.Equal(t, []pair{{a: 1, b: "x"}, {}}, l.Values())
	})
	t.Run("boxed in any", func(t *testing.T) {
		var l List[any]
		require.NoError(t, l.Push(wrapPtr{}))
		require.NoError(t, l.Push([1]*int{}))
		require.NoError(t, l.Push(false))
		checkChain(t, &l)
		assert.Equal(t, 3, l.Len())
	})
}

func TestInsertAll(t *testing.T) {
	l := New(10, 11)
	n := l.InsertAll(1, 20, 21, 22)
	assert.Equal(t, 3, n)
	assertValues(t, l, 10, 20, 21, 22, 11)

	n = l.InsertAll(l.Len(), 30, 31)
	assert.Equal(t, 2, n)
	assertValues(t, l, 10, 20, 21, 22, 11, 30, 31)

	assert.Equal(t, 0, l.InsertAll(0))
}

func TestInsertAllCountsRejected(t *testing.T) {
	l := New(1)
	// -2 and -1 are rejected, 0 links in; three positions are still reported.
	n := l.InsertAll(-2, 7, 8, 9)
	assert.Equal(t, 3, n)
	assertValues(t, l, 9, 1)

	p := 5
	ptrs := New[*int]()
	n = ptrs.InsertAll(0, &p, nil, &p)
	assert.Equal(t, 3, n)
	checkChain(t, ptrs)
	// the nil at index 1 is refused, the last value lands at index 2 which
	// is out of range for a one element list.
	assert.Equal(t, 1, ptrs.Len())
}

func TestRemove(t *testing.T) {
	l := New(0, 1, 2, 3)

	v, ok := l.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assertValues(t, l, 0, 2, 3)

	v, ok = l.Remove(2)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assertValues(t, l, 0, 2)
	last, _ := l.Last()
	assert.Equal(t, 2, last)

	v, ok = l.Remove(0)
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assertValues(t, l, 2)

	for _, i := range []int{-1, 1, 5} {
		if _, ok := l.Remove(i); ok {
			t.Errorf("Remove(%d) should not find a value", i)
		}
	}
	assertValues(t, l, 2)

	v, ok = l.Remove(0)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assertValues(t, l)

	// the list must be reusable after being emptied
	require.NoError(t, l.Push(5))
	assertValues(t, l, 5)
}

func TestRemoveOutOfRange(t *testing.T) {
	l := New(1, 2, 3)
	_, ok := l.Remove(l.Len())
	assert.False(t, ok)
	_, ok = l.Get(l.Len())
	assert.False(t, ok)
	assertValues(t, l, 1, 2, 3)
}

func TestPushPopRoundTrip(t *testing.T) {
	l := New(1, 2)
	require.NoError(t, l.Push(3))
	v, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assertValues(t, l, 1, 2)

	require.NoError(t, l.Unshift(0))
	v, ok = l.Shift()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assertValues(t, l, 1, 2)
}

func TestEmptyPopShift(t *testing.T) {
	l := New[int]()
	for i := 0; i < 3; i++ {
		if _, ok := l.Pop(); ok {
			t.Error("Pop on empty list should not find a value")
		}
		if _, ok := l.Shift(); ok {
			t.Error("Shift on empty list should not find a value")
		}
		assertValues(t, l)
	}

	require.NoError(t, l.Push(1))
	_, _ = l.Pop()
	_, ok := l.Pop()
	assert.False(t, ok)
	assertValues(t, l)
}

func TestScenario(t *testing.T) {
	l := New(0, 1)

	require.NoError(t, l.Push(2))
	assertValues(t, l, 0, 1, 2)

	v, _ := l.Pop()
	assert.Equal(t, 2, v)
	assertValues(t, l, 0, 1)

	require.NoError(t, l.Push(3))
	require.NoError(t, l.Push(4))
	require.NoError(t, l.Push(5))
	assertValues(t, l, 0, 1, 3, 4, 5)

	v, _ = l.Remove(1)
	assert.Equal(t, 1, v)
	assertValues(t, l, 0, 3, 4, 5)

	v, _ = l.Remove(2)
	assert.Equal(t, 4, v)
	assertValues(t, l, 0, 3, 5)

	v, _ = l.Shift()
	assert.Equal(t, 0, v)
	assertValues(t, l, 3, 5)

	require.NoError(t, l.Unshift(0))
	assertValues(t, l, 0, 3, 5)

	require.NoError(t, l.Insert(0, 10))
	assertValues(t, l, 10, 0, 3, 5)

	require.NoError(t, l.Insert(l.Len(), 11))
	assertValues(t, l, 10, 0, 3, 5, 11)

	require.NoError(t, l.Insert(1, 12))
	assertValues(t, l, 10, 12, 0, 3, 5, 11)

	l.InsertAll(2, 20, 21, 22)
	assertValues(t, l, 10, 12, 20, 21, 22, 0, 3, 5, 11)

	assert.Equal(t, 9, l.Len())
	first, _ := l.First()
	assert.Equal(t, 10, first)
	last, _ := l.Last()
	assert.Equal(t, 11, last)
}

func TestAll(t *testing.T) {
	l := New(1, 2, 3, 4)

	var got []int
	for v := range l.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	// restartable, and early break stops the walk
	got = got[:0]
	for v := range l.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.All()))
}

func TestRange(t *testing.T) {
	l := New[int]()
	var count int
	l.Range(func(int) {
		count++
	})
	if count != 0 {
		t.Errorf("Expected count to be 0 for empty list, got %d", count)
	}

	l.InsertAll(0, 1, 2, 3)
	var sum int
	l.Range(func(val int) {
		sum += val
	})
	if sum != 6 {
		t.Errorf("Expected sum of values to be 6, got %d", sum)
	}
}

func TestClear(t *testing.T) {
	l := New(1, 2)
	l.Clear()
	assertValues(t, l)
	assert.True(t, l.IsEmpty())
	require.NoError(t, l.Push(3))
	assertValues(t, l, 3)
}

func TestIndexFunc(t *testing.T) {
	l := New("a", "b", "c", "b")
	assert.Equal(t, 1, l.IndexFunc(func(s string) bool { return s == "b" }))
	assert.Equal(t, -1, l.IndexFunc(func(s string) bool { return s == "z" }))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[]", New[int]().String())
	assert.Equal(t, "[1 2 3]", New(1, 2, 3).String())
}

func TestLengthMatchesChain(t *testing.T) {
	l := New[int]()
	ops := []func(){
		func() { _ = l.Push(1) },
		func() { _ = l.Unshift(2) },
		func() { _ = l.Insert(1, 3) },
		func() { _, _ = l.Pop() },
		func() { _ = l.Insert(-1, 4) },
		func() { _, _ = l.Remove(7) },
		func() { l.InsertAll(1, 5, 6, 7) },
		func() { _, _ = l.Shift() },
		func() { _, _ = l.Remove(l.Len() - 1) },
		func() { _, _ = l.Pop() },
		func() { _, _ = l.Pop() },
		func() { _, _ = l.Pop() },
		func() { _, _ = l.Shift() },
	}
	for _, op := range ops {
		op()
		checkChain(t, l)
		assert.Equal(t, l.Len(), len(l.Values()))
	}
}
