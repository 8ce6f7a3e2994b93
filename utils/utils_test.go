// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pet struct {
	name string
	tags []string
}

type boxed struct {
	V any
}

func TestDefaultEquals(t *testing.T) {
	require := require.New(t)

	require.True(DefaultEquals("a", "a"))
	require.False(DefaultEquals("a", "b"))
	require.True(DefaultEquals(1, 1))

	// pointers compare by identity
	p1, p2 := &pet{name: "rex"}, &pet{name: "rex"}
	require.True(DefaultEquals(p1, p1))
	require.False(DefaultEquals(p1, p2))

	// non-comparable values fall back to deep equality
	require.True(DefaultEquals([]int{1, 2}, []int{1, 2}))
	require.False(DefaultEquals([]int{1, 2}, []int{2, 1}))
	require.True(DefaultEquals(pet{name: "rex", tags: []string{"dog"}}, pet{name: "rex", tags: []string{"dog"}}))

	// interface element types
	require.True(DefaultEquals[any](nil, nil))
	require.False(DefaultEquals[any](nil, 1))
	require.False(DefaultEquals[any](1, "1"))
	require.True(DefaultEquals[any]([]int{3}, []int{3}))

	// comparable static type holding an uncomparable dynamic value
	require.True(DefaultEquals(boxed{V: []int{1}}, boxed{V: []int{1}}))
	require.False(DefaultEquals(boxed{V: []int{1}}, boxed{V: []int{2}}))
	require.False(DefaultEquals(boxed{V: 1}, boxed{V: []int{1}}))
	require.False(DefaultEquals(boxed{V: []int{1}}, boxed{V: 1}))
	require.True(DefaultEquals(boxed{V: "a"}, boxed{V: "a"}))
	require.True(DefaultEquals[any](boxed{V: map[string]int{"a": 1}}, boxed{V: map[string]int{"a": 1}}))
}

func TestIsAbsent(t *testing.T) {
	require := require.New(t)

	var (
		nilPtr   *pet
		nilSlice []int
		nilMap   map[string]int
		nilFunc  func()
		nilChan  chan int
		nilAny   any
	)
	require.True(IsAbsent(nilPtr))
	require.True(IsAbsent(nilSlice))
	require.True(IsAbsent(nilMap))
	require.True(IsAbsent(nilFunc))
	require.True(IsAbsent(nilChan))
	require.True(IsAbsent(nilAny))
	require.True(IsAbsent[any](nilPtr))

	require.False(IsAbsent(""))
	require.False(IsAbsent(0))
	require.False(IsAbsent(false))
	require.False(IsAbsent(pet{}))
	require.False(IsAbsent(&pet{}))
	require.False(IsAbsent([]int{}))
}

func TestDefaultToString(t *testing.T) {
	require := require.New(t)

	var nilPtr *pet
	require.Equal("", DefaultToString(nil))
	require.Equal("", DefaultToString(nilPtr))
	require.Equal("a", DefaultToString("a"))
	require.Equal("12", DefaultToString(12))
	require.Equal("true", DefaultToString(true))
}

func TestBoundedBuffer(t *testing.T) {
	require := require.New(t)

	_, err := NewBoundedBuffer[int](0, nil)
	require.ErrorIs(err, errInvalidMaxSize)

	var evicted []int
	b, err := NewBoundedBuffer(3, func(i int) { evicted = append(evicted, i) })
	require.NoError(err)

	_, ok := b.Last()
	require.False(ok)
	require.Zero(b.Len())

	for i := 1; i <= 5; i++ {
		b.Insert(i)
	}
	require.Equal([]int{3, 4, 5}, b.Items())
	require.Equal([]int{1, 2}, evicted)
	require.Equal(3, b.Len())

	last, ok := b.Last()
	require.True(ok)
	require.Equal(5, last)
}
