// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package arrays holds slice helpers shared by the collections in this
// module. Every search helper accepts an optional [utils.EqualsFunc]; a nil
// predicate means [utils.DefaultEquals].
package arrays

import (
	"golang.org/x/exp/slices"

	"github.com/ava-labs/collections/utils"
)

func equalsOrDefault[T any](equals utils.EqualsFunc[T]) utils.EqualsFunc[T] {
	if equals == nil {
		return utils.DefaultEquals[T]
	}
	return equals
}

// IndexOf returns the position of the first element of [s] equal to [item],
// or -1 if there is none.
func IndexOf[T any](s []T, item T, equals utils.EqualsFunc[T]) int {
	equals = equalsOrDefault(equals)
	return slices.IndexFunc(s, func(v T) bool {
		return equals(v, item)
	})
}

// LastIndexOf returns the position of the last element of [s] equal to
// [item], or -1 if there is none.
func LastIndexOf[T any](s []T, item T, equals utils.EqualsFunc[T]) int {
	equals = equalsOrDefault(equals)
	for i := len(s) - 1; i >= 0; i-- {
		if equals(s[i], item) {
			return i
		}
	}
	return -1
}

func Contains[T any](s []T, item T, equals utils.EqualsFunc[T]) bool {
	return IndexOf(s, item, equals) >= 0
}

// Frequency returns how many elements of [s] are equal to [item].
func Frequency[T any](s []T, item T, equals utils.EqualsFunc[T]) int {
	equals = equalsOrDefault(equals)
	freq := 0
	for _, v := range s {
		if equals(v, item) {
			freq++
		}
	}
	return freq
}

// Equals reports whether [a] and [b] have the same length and hold equal
// elements in the same order.
func Equals[T any](a, b []T, equals utils.EqualsFunc[T]) bool {
	return slices.EqualFunc(a, b, (func(T, T) bool)(equalsOrDefault(equals)))
}

// Copy returns a shallow copy of [s].
func Copy[T any](s []T) []T {
	return slices.Clone(s)
}

// Swap exchanges the elements at [i] and [j]. It returns false, leaving [s]
// untouched, if either index is out of range.
func Swap[T any](s []T, i, j int) bool {
	if i < 0 || i >= len(s) || j < 0 || j >= len(s) {
		return false
	}
	s[i], s[j] = s[j], s[i]
	return true
}

// Remove drops the first element of [s] equal to [item]. The returned slice
// shares the backing array of [s]; the vacated tail slot is zeroed.
func Remove[T any](s []T, item T, equals utils.EqualsFunc[T]) ([]T, bool) {
	i := IndexOf(s, item, equals)
	if i < 0 {
		return s, false
	}
	return RemoveAt(s, i), true
}

// RemoveAt drops the element at [i], which must be in range.
func RemoveAt[T any](s []T, i int) []T {
	last := len(s) - 1
	copy(s[i:], s[i+1:])
	var zero T
	s[last] = zero
	return s[:last]
}
