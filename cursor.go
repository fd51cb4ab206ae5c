// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import (
	"cmp"
	"fmt"

	"go4.org/mem"
)

// A Cursor is a position in the token array of a Document.
//
// A cursor is valid when its position is in [0, Len) of its document. Moving a
// cursor never checks bounds; use Valid to find out whether a cursor still
// points at a token. The zero Cursor is not valid.
//
// A Cursor does not own anything and may be copied freely. Copies move
// independently.
type Cursor struct {
	doc *Document
	pos int
}

// Valid reports whether c points at a token of its document.
func (c Cursor) Valid() bool { return c.doc != nil && c.pos >= 0 && c.pos < c.doc.n }

// Pos reports the index of c in the token array.
func (c Cursor) Pos() int { return c.pos }

// Document returns the document c belongs to.
func (c Cursor) Document() *Document { return c.doc }

// Token returns the token at c. It panics if c is not valid.
func (c Cursor) Token() Token {
	tok, ok := c.current()
	if !ok {
		panic(fmt.Sprintf("jsoneat: cursor position %d out of range", c.pos))
	}
	return tok
}

// Peek returns the token i positions after c (before c, if i < 0), and
// reports whether that position is valid.
func (c Cursor) Peek(i int) (Token, bool) { return c.at(c.pos + i) }

// Text returns the raw text of the token at c. String tokens do not include
// their quotation marks, and escapes are not decoded. If c is not valid, Text
// returns an empty view.
func (c Cursor) Text() mem.RO {
	tok, ok := c.current()
	if !ok {
		return mem.RO{}
	}
	return c.doc.span(tok)
}

// Advance moves c forward by n tokens and returns c to permit chaining.
func (c *Cursor) Advance(n int) *Cursor { c.pos += n; return c }

// Retreat moves c backward by n tokens and returns c to permit chaining.
func (c *Cursor) Retreat(n int) *Cursor { c.pos -= n; return c }

// Next advances c by one token and returns the new position.
func (c *Cursor) Next() Cursor { c.pos++; return *c }

// PostNext advances c by one token and returns the position before the move.
func (c *Cursor) PostNext() Cursor { old := *c; c.pos++; return old }

// Equal reports whether c and o are at the same position of the same
// document.
func (c Cursor) Equal(o Cursor) bool { return c.doc == o.doc && c.pos == o.pos }

// Compare compares the positions of c and o, returning -1, 0, or +1.
// The result is only meaningful for cursors of the same document.
func (c Cursor) Compare(o Cursor) int { return cmp.Compare(c.pos, o.pos) }

// Less reports whether c is positioned before o.
func (c Cursor) Less(o Cursor) bool { return c.pos < o.pos }

func (c Cursor) String() string {
	if tok, ok := c.current(); ok {
		return fmt.Sprintf("@%d %v", c.pos, tok)
	}
	return fmt.Sprintf("@%d invalid", c.pos)
}

func (c Cursor) current() (Token, bool) { return c.at(c.pos) }

func (c Cursor) at(i int) (Token, bool) {
	if c.doc == nil || i < 0 || i >= c.doc.n {
		return Token{}, false
	}
	return c.doc.toks[i], true
}
