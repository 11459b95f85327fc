// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import "fmt"

// Path traverses a sequence of nested object keys and array indices starting
// from v, and returns the value reached. A string element selects the member
// of an object with that key; an int element selects an element of an array,
// with negative offsets counting backward from the end (-1 is last).
//
// Path reports an error if the path does not exist in v, or if the value
// reached does not have type T. It panics if a path element is neither a
// string nor an int.
func Path[T Value](v Value, path ...any) (T, error) {
	var zero T
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(*Object)
			if !ok {
				return zero, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			m := obj.Find(t)
			if m == nil {
				return zero, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value

		case int:
			arr, ok := cur.(Array)
			if !ok {
				return zero, fmt.Errorf("cannot traverse %T with %d", cur, t)
			}
			i, ok := fixArrayBound(len(arr), t)
			if !ok {
				return zero, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(arr))
			}
			cur = arr[i]

		default:
			panic(fmt.Sprintf("invalid path element %T", elt))
		}
	}
	out, ok := cur.(T)
	if !ok {
		return zero, fmt.Errorf("wrong value type %T", cur)
	}
	return out, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
