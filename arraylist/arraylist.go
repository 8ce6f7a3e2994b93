// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arraylist

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/collections/arrays"
	"github.com/ava-labs/collections/utils"
)

// List is an insertion-ordered, index-addressable list backed by a slice.
//
// Search and removal use the list's default equality unless a call supplies
// its own [utils.EqualsFunc]. The zero value is an empty list that compares
// elements with [utils.DefaultEquals].
//
// Absent values (see [utils.IsAbsent]) are never stored.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type List[T any] struct {
	items  []T
	equals utils.EqualsFunc[T]
}

// New returns an empty list comparing elements with ==.
func New[T comparable]() *List[T] {
	return &List[T]{
		equals: func(a, b T) bool { return a == b },
	}
}

// NewWithEquals returns an empty list using [equals] as its default
// equality. A nil [equals] means [utils.DefaultEquals].
func NewWithEquals[T any](equals utils.EqualsFunc[T]) *List[T] {
	return &List[T]{equals: equals}
}

// Of returns a list holding [items] in order. Absent values are skipped.
func Of[T comparable](items ...T) *List[T] {
	l := New[T]()
	for _, item := range items {
		l.Add(item)
	}
	return l
}

func (l *List[T]) equalsOr(equals utils.EqualsFunc[T]) utils.EqualsFunc[T] {
	if equals != nil {
		return equals
	}
	if l.equals != nil {
		return l.equals
	}
	return utils.DefaultEquals[T]
}

// Add appends [item]. It returns false if [item] is absent.
func (l *List[T]) Add(item T) bool {
	return l.Insert(len(l.items), item)
}

// Insert places [item] before position [index], shifting later elements
// toward the end. It returns false, without modifying the list, unless
// 0 <= index <= Size() and [item] is present.
func (l *List[T]) Insert(index int, item T) bool {
	if index < 0 || index > len(l.items) || utils.IsAbsent(item) {
		return false
	}
	l.items = slices.Insert(l.items, index, item)
	return true
}

func (l *List[T]) First() (T, bool) {
	return l.ElementAt(0)
}

func (l *List[T]) Last() (T, bool) {
	return l.ElementAt(len(l.items) - 1)
}

// ElementAt returns the element at [index] and true, or the zero value and
// false if [index] is out of bounds.
func (l *List[T]) ElementAt(index int) (T, bool) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

// IndexOf returns the position of the first element equal to [item] under
// the list's default equality, or -1.
func (l *List[T]) IndexOf(item T) int {
	return l.IndexOfFunc(item, nil)
}

// IndexOfFunc is like [List.IndexOf] but compares with [equals]. An absent
// [item] is never found.
func (l *List[T]) IndexOfFunc(item T, equals utils.EqualsFunc[T]) int {
	if utils.IsAbsent(item) {
		return -1
	}
	return arrays.IndexOf(l.items, item, l.equalsOr(equals))
}

func (l *List[T]) Contains(item T) bool {
	return l.ContainsFunc(item, nil)
}

func (l *List[T]) ContainsFunc(item T, equals utils.EqualsFunc[T]) bool {
	return l.IndexOfFunc(item, equals) >= 0
}

// Remove drops the first element equal to [item] and reports whether one
// was found.
func (l *List[T]) Remove(item T) bool {
	return l.RemoveFunc(item, nil)
}

func (l *List[T]) RemoveFunc(item T, equals utils.EqualsFunc[T]) bool {
	if len(l.items) == 0 || utils.IsAbsent(item) {
		return false
	}
	var removed bool
	l.items, removed = arrays.Remove(l.items, item, l.equalsOr(equals))
	return removed
}

// RemoveAll drops every element equal to [item] and reports whether at
// least one was removed.
func (l *List[T]) RemoveAll(item T) bool {
	return l.RemoveAllFunc(item, nil)
}

func (l *List[T]) RemoveAllFunc(item T, equals utils.EqualsFunc[T]) bool {
	if len(l.items) == 0 || utils.IsAbsent(item) {
		return false
	}
	equals = l.equalsOr(equals)

	// Compact survivors toward the front so every original index is
	// examined exactly once.
	kept := 0
	for _, v := range l.items {
		if equals(v, item) {
			continue
		}
		l.items[kept] = v
		kept++
	}
	if kept == len(l.items) {
		return false
	}
	clear(l.items[kept:])
	l.items = l.items[:kept]
	return true
}

// RemoveAt removes and returns the element at [index]. It returns the zero
// value and false, leaving the list untouched, if [index] is out of bounds.
func (l *List[T]) RemoveAt(index int) (T, bool) {
	item, ok := l.ElementAt(index)
	if !ok {
		return item, false
	}
	l.items = arrays.RemoveAt(l.items, index)
	return item, true
}

func (l *List[T]) Clear() {
	l.items = nil
}

// ForEach calls [visitor] on each element in ascending index order until
// [visitor] returns false.
//
// The length is re-read before every step, so a visitor that mutates the
// list observes the mutation: elements may be skipped or visited twice.
func (l *List[T]) ForEach(visitor utils.LoopFunc[T]) {
	for i := 0; i < len(l.items); i++ {
		if !visitor(l.items[i]) {
			return
		}
	}
}

func (l *List[T]) Reverse() {
	slices.Reverse(l.items)
}

// ToSlice returns the backing slice. It is not a copy: writes through it
// are visible to the list. Use [List.Clone] or [arrays.Copy] for an
// independent slice.
func (l *List[T]) ToSlice() []T {
	return l.items
}

func (l *List[T]) Size() int {
	return len(l.items)
}

func (l *List[T]) IsEmpty() bool {
	return len(l.items) <= 0
}

// Clone returns an independent list with the same elements and default
// equality.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		items:  arrays.Copy(l.items),
		equals: l.equals,
	}
}

// Equals reports whether [other] holds equal elements in the same order.
// A nil [equals] means the receiver's default equality.
func (l *List[T]) Equals(other *List[T], equals utils.EqualsFunc[T]) bool {
	if other == nil {
		return false
	}
	return arrays.Equals(l.items, other.items, l.equalsOr(equals))
}

// String joins the elements, in order, with commas.
func (l *List[T]) String() string {
	var b strings.Builder
	for i, v := range l.items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(utils.DefaultToString(v))
	}
	return b.String()
}
