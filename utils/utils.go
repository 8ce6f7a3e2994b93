// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"reflect"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

// EqualsFunc reports whether [a] and [b] should be treated as the same
// element. It must be reflexive and symmetric for search results to be
// meaningful.
type EqualsFunc[T any] func(a, b T) bool

// LoopFunc is invoked once per element during iteration. Returning false
// stops the iteration.
type LoopFunc[T any] func(item T) bool

// DefaultEquals compares with == when both values are comparable and falls
// back to [reflect.DeepEqual] otherwise. Comparability is decided on the
// values, not their types, so a struct whose interface field holds a slice
// takes the deep path.
func DefaultEquals[T any](a, b T) bool {
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == vb
	}
	if reflect.ValueOf(va).Comparable() && reflect.ValueOf(vb).Comparable() {
		return va == vb
	}
	return reflect.DeepEqual(va, vb)
}

// IsAbsent reports whether [v] carries no value: a nil interface or a nil
// pointer, map, slice, func, chan or unsafe pointer.
func IsAbsent[T any](v T) bool {
	iv := any(v)
	if iv == nil {
		return true
	}
	rv := reflect.ValueOf(iv)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// DefaultToString renders [v] with its default format. Absent values render
// as the empty string.
func DefaultToString(v any) string {
	if IsAbsent(v) {
		return ""
	}
	return fmt.Sprint(v)
}

// Outputs to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Outf("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}
