// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arraylist

import "encoding/json"

var (
	_ json.Marshaler   = (*List[int])(nil)
	_ json.Unmarshaler = (*List[int])(nil)
)

// MarshalJSON encodes the list as a JSON array. An empty list encodes as [].
func (l *List[T]) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON replaces the contents of the list with the decoded array.
// Decoded elements go through [List.Add], so absent values are dropped.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	l.Clear()
	for _, item := range items {
		l.Add(item)
	}
	return nil
}
