// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import "go4.org/mem"

// A Document is a JSON object tokenized into a flat array of tokens, together
// with the text the tokens refer to. The text is treated as read-only.
//
// A Document is valid only if tokenizing succeeded and the root value is an
// object. An invalid Document has no tokens, and its Begin and End cursors are
// equal.
type Document struct {
	text mem.RO
	toks []Token
	n    int // number of parsed tokens, 0 if invalid
}

// New tokenizes text into a token array of the given capacity owned by the
// Document. If text needs more than capacity tokens, the Document is invalid.
func New(text []byte, capacity int) *Document {
	var t Tokenizer
	return t.New(text, capacity)
}

// NewString is as New, but accepts a string.
func NewString(text string, capacity int) *Document {
	var t Tokenizer
	return t.NewString(text, capacity)
}

// NewWithTokens tokenizes text into toks, which the caller continues to own.
// The capacity of the Document is len(toks). To keep the tokens off the heap,
// pass a slice of a local array:
//
//	var toks [64]jsoneat.Token
//	doc := jsoneat.NewWithTokens(text, toks[:])
//
// The caller must not modify toks while the Document is in use.
func NewWithTokens(text []byte, toks []Token) *Document {
	var t Tokenizer
	return t.NewWithTokens(text, toks)
}

// New is as the package function [New], using the options configured on t.
func (t *Tokenizer) New(text []byte, capacity int) *Document {
	return t.parse(mem.B(text), make([]Token, max(capacity, 0)))
}

// NewString is as the package function [NewString], using the options
// configured on t.
func (t *Tokenizer) NewString(text string, capacity int) *Document {
	return t.parse(mem.S(text), make([]Token, max(capacity, 0)))
}

// NewWithTokens is as the package function [NewWithTokens], using the options
// configured on t.
func (t *Tokenizer) NewWithTokens(text []byte, toks []Token) *Document {
	return t.parse(mem.B(text), toks)
}

// parse runs the tokenizer exactly once. Any failure is collapsed into an
// invalid document.
func (t *Tokenizer) parse(text mem.RO, toks []Token) *Document {
	d := &Document{text: text, toks: toks}
	if n, err := t.tokenize(text, toks); err == nil && n > 0 && toks[0].Kind == Object {
		d.n = n
	}
	return d
}

// Valid reports whether d holds a successfully parsed JSON object.
func (d *Document) Valid() bool { return d.n > 0 }

// Text returns a read-only view of the text d was parsed from.
func (d *Document) Text() mem.RO { return d.text }

// Len reports the number of parsed tokens in d, which is 0 if d is invalid.
func (d *Document) Len() int { return d.n }

// Cap reports the token capacity of d.
func (d *Document) Cap() int { return len(d.toks) }

// Tokens returns the parsed tokens of d. The caller must not modify the
// contents of the returned slice.
func (d *Document) Tokens() []Token { return d.toks[:d.n] }

// Begin returns a cursor positioned on the root object of d.
func (d *Document) Begin() Cursor { return Cursor{doc: d, pos: 0} }

// End returns a cursor positioned one past the last token of d.
// The End cursor is never valid.
func (d *Document) End() Cursor { return Cursor{doc: d, pos: d.n} }

// span returns the text of tok.
func (d *Document) span(tok Token) mem.RO { return d.text.Slice(tok.Pos, tok.End) }

// A MutableDocument is a Document whose text the caller has handed over for
// exclusive use. In addition to everything a Document does, its cursors can
// terminate string values in place (see [MutableCursor.Terminate]).
type MutableDocument struct {
	Document
	buf []byte
}

// NewMutable tokenizes buf into a token array of the given capacity owned by
// the document. The caller must not read or write buf concurrently with the
// use of the document.
func NewMutable(buf []byte, capacity int) *MutableDocument {
	var t Tokenizer
	return t.NewMutable(buf, capacity)
}

// NewMutableWithTokens is as NewMutable, but tokenizes into toks, which the
// caller continues to own.
func NewMutableWithTokens(buf []byte, toks []Token) *MutableDocument {
	var t Tokenizer
	return t.NewMutableWithTokens(buf, toks)
}

// NewMutable is as the package function [NewMutable], using the options
// configured on t.
func (t *Tokenizer) NewMutable(buf []byte, capacity int) *MutableDocument {
	return &MutableDocument{Document: *t.New(buf, capacity), buf: buf}
}

// NewMutableWithTokens is as the package function [NewMutableWithTokens],
// using the options configured on t.
func (t *Tokenizer) NewMutableWithTokens(buf []byte, toks []Token) *MutableDocument {
	return &MutableDocument{Document: *t.NewWithTokens(buf, toks), buf: buf}
}

// Bytes returns the text of m, including any terminators written by
// [MutableCursor.Terminate].
func (m *MutableDocument) Bytes() []byte { return m.buf }

// Begin returns a cursor positioned on the root object of m.
func (m *MutableDocument) Begin() MutableCursor {
	return MutableCursor{Cursor: m.Document.Begin(), buf: m.buf}
}

// End returns a cursor positioned one past the last token of m.
func (m *MutableDocument) End() MutableCursor {
	return MutableCursor{Cursor: m.Document.End(), buf: m.buf}
}
