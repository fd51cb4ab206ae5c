// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package lookup implements path traversal over the tokens of a JSON
// document, without building a tree.
package lookup

import (
	"errors"
	"fmt"

	jsoneat "github.com/zwiebert/mbed-jsoneat"
)

// Get traverses path from c as Find does, and converts the value reached into
// a T as jsoneat.Get does.
func Get[T jsoneat.Value](c jsoneat.Cursor, path ...any) (T, error) {
	var result T
	v, err := Find(c, path...)
	if err != nil {
		return result, err
	}
	if !jsoneat.Get(v, &result) {
		tok, _ := v.Peek(0)
		return result, fmt.Errorf("cannot convert %v to %T", tok.Kind, result)
	}
	return result, nil
}

// Find traverses a sequential path into the value at c, where path elements
// are either strings (denoting object keys) or integers (denoting offsets into
// arrays). If the path is valid, Find returns a cursor positioned on the value
// reached. Otherwise it returns c along with an error. Find reports an error
// if c is not valid, even for an empty path.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the value of the first member with that key. Keys
// are compared with the raw text of the document, so escapes are not decoded.
//
// If a path element is an integer, the corresponding value must be an array,
// and the integer selects an element of the array. Negative indices count
// backward from the end of the array (-1 is last, -2 second last).
//
// Only the values along the path are visited; everything else is skipped by
// the child counts of its tokens.
func Find(c jsoneat.Cursor, path ...any) (jsoneat.Cursor, error) {
	if !c.Valid() {
		return c, errors.New("invalid cursor")
	}
	cur := c
	for _, elt := range path {
		tok := cur.Token()
		switch t := elt.(type) {
		case string:
			if tok.Kind != jsoneat.Object {
				return c, fmt.Errorf("cannot traverse %v with %q", tok.Kind, t)
			}
			next, ok := findKey(cur, t)
			if !ok {
				return c, fmt.Errorf("key %q not found", t)
			}
			cur = next

		case int:
			if tok.Kind != jsoneat.Array {
				return c, fmt.Errorf("cannot traverse %v with %v", tok.Kind, t)
			}
			i, ok := fixArrayBound(tok.Size, t)
			if !ok {
				return c, fmt.Errorf("array index %d out of bounds (n=%d)", i, tok.Size)
			}
			next, ok := elementAt(cur, i)
			if !ok {
				return c, fmt.Errorf("array element %d is missing", i)
			}
			cur = next

		default:
			return c, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func findKey(obj jsoneat.Cursor, key string) (jsoneat.Cursor, bool) {
	for k, v := range obj.Members() {
		if k.KeyEquals(key) {
			return v, true
		}
	}
	return obj, false
}

func elementAt(arr jsoneat.Cursor, i int) (jsoneat.Cursor, bool) {
	var n int
	for v := range arr.Elements() {
		if n == i {
			return v, true
		}
		n++
	}
	return arr, false
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
