// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import "iter"

// Members returns a sequence of the members of the object at c, as pairs of
// cursors positioned on the key and on the value of each member. The sequence
// is empty if c is not a valid Object cursor. Iteration stops early if the
// token array does not match the declared size of the object.
//
// The cursors yielded may be copied and moved freely; doing so does not
// affect the iteration.
func (c Cursor) Members() iter.Seq2[Cursor, Cursor] {
	return func(yield func(Cursor, Cursor) bool) {
		tok, ok := c.current()
		if !ok || tok.Kind != Object {
			return
		}
		cur := c
		cur.pos++
		for range tok.Size {
			if key, ok := cur.current(); !ok || key.Kind != String {
				return
			}
			val := cur
			val.pos++
			if !val.Valid() || !yield(cur, val) {
				return
			}
			if !cur.SkipKeyAndValue() {
				return
			}
		}
	}
}

// Elements returns a sequence of cursors positioned on the elements of the
// array at c. The sequence is empty if c is not a valid Array cursor.
func (c Cursor) Elements() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		tok, ok := c.current()
		if !ok || tok.Kind != Array {
			return
		}
		cur := c
		cur.pos++
		for range tok.Size {
			if !cur.Valid() || !yield(cur) {
				return
			}
			if !cur.SkipValue() {
				return
			}
		}
	}
}
