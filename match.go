// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import "go4.org/mem"

// ValueEquals reports whether the token at c has the given kind and its raw
// text is exactly lit.
func (c Cursor) ValueEquals(lit string, kind Kind) bool {
	tok, ok := c.current()
	return ok && tok.Kind == kind && c.doc.span(tok).EqualString(lit)
}

// IsNull reports whether the token at c is the constant null.
func (c Cursor) IsNull() bool { return c.ValueEquals("null", Primitive) }

// IsTrue reports whether the token at c is the constant true.
func (c Cursor) IsTrue() bool { return c.ValueEquals("true", Primitive) }

// IsFalse reports whether the token at c is the constant false.
func (c Cursor) IsFalse() bool { return c.ValueEquals("false", Primitive) }

// KeyEquals reports whether the token at c is a String whose raw text is
// exactly key. Escapes in the token are not decoded.
func (c Cursor) KeyEquals(key string) bool { return c.ValueEquals(key, String) }

// KeyEqualsTyped reports whether KeyEquals(key) is true and the value
// following the key has kind vk.
func (c Cursor) KeyEqualsTyped(key string, vk Kind) bool {
	return c.AnyKeyTyped(vk) && c.KeyEquals(key)
}

// AnyKeyTyped reports whether the token following c has kind vk. It is the
// wildcard form of KeyEqualsTyped and KeyHasPrefixTyped: the key text itself
// is not examined.
func (c Cursor) AnyKeyTyped(vk Kind) bool {
	next, ok := c.at(c.pos + 1)
	return ok && next.Kind == vk
}

// KeyHasPrefix reports whether the token at c is a String that begins with
// prefix and is strictly longer than prefix.
//
// A key equal to prefix does not match. Use KeyEquals to test for that.
func (c Cursor) KeyHasPrefix(prefix string) bool {
	tok, ok := c.current()
	return ok && tok.Kind == String &&
		len(prefix) < tok.Len() &&
		mem.HasPrefix(c.doc.span(tok), mem.S(prefix))
}

// KeyHasPrefixTyped reports whether KeyHasPrefix(prefix) is true and the
// value following the key has kind vk.
func (c Cursor) KeyHasPrefixTyped(prefix string, vk Kind) bool {
	return c.AnyKeyTyped(vk) && c.KeyHasPrefix(prefix)
}
