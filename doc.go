// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsoneat walks a JSON object through a flat array of tokens, without
// building a tree. It is meant for programs that pick a few values out of a
// document and cannot afford to decode all of it.
//
// # Tokens
//
// The tokenizer converts JSON text into a preorder array of tokens. Each
// Token records its Kind, its byte Span in the text, and the number of its
// direct children (Size). The children of a composite token follow it
// immediately; for an object they alternate between key and value:
//
//	{"a": 1, "b": [2, 3]}
//
//	0  object     Size 2
//	1  string  a
//	2  primitive  1
//	3  string  b
//	4  array      Size 2
//	5  primitive  2
//	6  primitive  3
//
// The token storage is allocated by New, or supplied by the caller to
// NewWithTokens. If the text needs more tokens than the storage holds, or is
// not a JSON object, the Document is invalid:
//
//	doc := jsoneat.New(text, 64)
//	if !doc.Valid() {
//	   log.Fatal("Invalid input")
//	}
//
// # Cursors
//
// A Cursor is a position in the token array. Begin returns a cursor on the
// root object, End a cursor one past the last token. Moving a cursor does not
// check bounds; call Valid to find out whether it still points at a token.
//
//	for c := doc.Begin(); c.Valid(); c.Next() {
//	   log.Printf("Token: %v", c.Token())
//	}
//
// Key and value tests compare the raw text of a token, and report false for
// an invalid cursor or a token of the wrong kind:
//
//	c.KeyEquals("name")                     // key is exactly "name"
//	c.KeyEqualsTyped("tags", jsoneat.Array) // ... and its value is an array
//	c.KeyHasPrefix("adapter.")              // key starts with and is longer than
//	c.IsNull()                              // value is null
//
// # Values
//
// The generic functions Get and Take convert the token at a cursor into a
// Go value. GetKey and TakeKey first check that the cursor is on a given key
// and then convert the value that follows it. The Take forms advance the
// cursor on success, so a sequence of them walks the members of an object:
//
//	c := doc.Begin()
//	c.Next() // first key
//	var name string
//	var size int
//	for c.Valid() {
//	   switch {
//	   case jsoneat.TakeKey(&c, "name", &name):
//	   case jsoneat.TakeKey(&c, "size", &size):
//	   default:
//	      c.SkipKeyAndValue()
//	   }
//	}
//
// A failed conversion leaves both the cursor and the destination unchanged.
//
// # Skipping
//
// SkipValue moves a cursor past a complete value, and SkipKeyAndValue past an
// object member, using only the Size of the tokens. This is how uninteresting
// parts of a document are ignored without looking at their text.
//
// # Mutable text
//
// A MutableDocument takes exclusive use of a byte slice. Its cursors can
// Terminate a string or primitive in place, by writing a 0 byte after it in
// the text, for callers that need terminated strings without copying.
package jsoneat
