// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import "fmt"

// Kind is the type of a token in the flattened token array.
//
// The values match the token types of the jsmn tokenizer, so token arrays can
// be exchanged with code that speaks its wire format.
type Kind byte

// Constants defining the valid Kind values.
const (
	Undefined Kind = 0      // not a valid token
	Object    Kind = 1 << 0 // object: { ... }
	Array     Kind = 1 << 1 // array: [ ... ]
	String    Kind = 1 << 2 // string, without its quotation marks
	Primitive Kind = 1 << 3 // number, true, false, or null
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Primitive:
		return "primitive"
	default:
		return "undefined"
	}
}

// A Token describes one element of a parsed JSON value.
//
// Tokens are stored in preorder: a composite token is followed immediately by
// the tokens of its children. The children of an object alternate between a
// key (always a String) and its value.
type Token struct {
	Kind Kind
	Span

	// Size is the number of direct children of the token: the number of
	// key/value pairs for an Object, the number of elements for an Array, and
	// zero for a String or Primitive.
	Size int
}

func (t Token) String() string {
	return fmt.Sprintf("%v[%d:%d]#%d", t.Kind, t.Pos, t.End, t.Size)
}
