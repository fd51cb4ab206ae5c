// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import (
	"strconv"

	"github.com/zwiebert/mbed-jsoneat/internal/escape"
	"go4.org/mem"
)

// Value is the set of destination types supported by Get and Take.
type Value interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 |
		string
}

// maxScalarLen is the longest primitive accepted for conversion to a bool or
// a number.
const maxScalarLen = 31

// Get converts the token at c into *dst and reports whether it succeeded.
// If Get fails, *dst is not modified.
//
// The accepted tokens depend on the destination type:
//
//	Type      | Token     | Accepted text
//	--------- | --------- | ----------------------------------------------
//	bool      | Primitive | true, 1 (true) or false, 0 (false)
//	integers  | Primitive | a decimal integer in range for the type
//	floats    | Primitive | a number in range for the type
//	string    | String    | any; the raw text is copied without unescaping
//
// Numeric and Boolean text longer than 31 bytes is rejected. Integer
// conversion does not truncate: a value that does not fit the destination, a
// negative value for an unsigned destination, or a number with a fraction or
// exponent is rejected. The literal -0 is zero for every integer type.
func Get[T Value](c Cursor, dst *T) bool {
	tok, ok := c.current()
	return ok && decode(c.doc.span(tok), tok.Kind, dst)
}

// Take is as Get, but advances c by one token if it succeeds.
func Take[T Value](c *Cursor, dst *T) bool {
	if !Get(*c, dst) {
		return false
	}
	c.Advance(1)
	return true
}

// GetKey reports whether the token at c is the key of an object member with
// the given name, and if so converts the following value into *dst as Get
// does. If GetKey fails, *dst is not modified.
func GetKey[T Value](c Cursor, key string, dst *T) bool {
	if !c.KeyEquals(key) {
		return false
	}
	tok, ok := c.at(c.pos + 1)
	return ok && decode(c.doc.span(tok), tok.Kind, dst)
}

// TakeKey is as GetKey, but if it succeeds it advances c past the key and its
// value, so that c is positioned on the key of the next member.
func TakeKey[T Value](c *Cursor, key string, dst *T) bool {
	if !GetKey(*c, key, dst) {
		return false
	}
	c.Advance(2)
	return true
}

func decode[T Value](text mem.RO, kind Kind, dst *T) bool {
	if p, ok := any(dst).(*string); ok {
		if kind != String {
			return false
		}
		*p = text.StringCopy()
		return true
	}
	if kind != Primitive || text.Len() > maxScalarLen {
		return false
	}
	switch p := any(dst).(type) {
	case *bool:
		return decodeBool(text, p)
	case *int:
		return decodeInt(text, strconv.IntSize, p)
	case *int8:
		return decodeInt(text, 8, p)
	case *int16:
		return decodeInt(text, 16, p)
	case *int32:
		return decodeInt(text, 32, p)
	case *int64:
		return decodeInt(text, 64, p)
	case *uint:
		return decodeUint(text, strconv.IntSize, p)
	case *uint8:
		return decodeUint(text, 8, p)
	case *uint16:
		return decodeUint(text, 16, p)
	case *uint32:
		return decodeUint(text, 32, p)
	case *uint64:
		return decodeUint(text, 64, p)
	case *uintptr:
		return decodeUint(text, strconv.IntSize, p)
	case *float32:
		return decodeFloat(text, 32, p)
	case *float64:
		return decodeFloat(text, 64, p)
	}
	return false
}

func decodeBool(text mem.RO, dst *bool) bool {
	switch {
	case text.EqualString("true"), text.EqualString("1"):
		*dst = true
	case text.EqualString("false"), text.EqualString("0"):
		*dst = false
	default:
		return false
	}
	return true
}

func decodeInt[T int | int8 | int16 | int32 | int64](text mem.RO, bits int, dst *T) bool {
	v, err := mem.ParseInt(text, 10, bits)
	if err != nil {
		return false
	}
	*dst = T(v)
	return true
}

func decodeUint[T uint | uint8 | uint16 | uint32 | uint64 | uintptr](text mem.RO, bits int, dst *T) bool {
	if text.EqualString("-0") {
		*dst = 0
		return true
	}
	v, err := mem.ParseUint(text, 10, bits)
	if err != nil {
		return false
	}
	*dst = T(v)
	return true
}

func decodeFloat[T float32 | float64](text mem.RO, bits int, dst *T) bool {
	digits := text
	if digits.Len() > 0 && digits.At(0) == '-' {
		digits = digits.SliceFrom(1)
	}
	if digits.Len() == 0 || !isDigit(digits.At(0)) {
		return false // reject inf, nan, and friends
	}
	v, err := mem.ParseFloat(text, bits)
	if err != nil {
		return false
	}
	*dst = T(v)
	return true
}

// GetValueAsString copies the raw text of the String or Primitive token at c
// into dst, followed by a 0 byte, and reports the number of text bytes
// copied. It fails if the token has another kind, or if dst cannot hold the
// text and its terminator; in that case dst is not modified.
func (c Cursor) GetValueAsString(dst []byte) (int, bool) {
	tok, ok := c.current()
	if !ok || (tok.Kind != String && tok.Kind != Primitive) || len(dst) <= tok.Len() {
		return 0, false
	}
	n := c.doc.span(tok).Copy(dst)
	dst[n] = 0
	return n, true
}

// TakeValueAsString is as GetValueAsString, but advances c by one token if
// it succeeds.
func (c *Cursor) TakeValueAsString(dst []byte) (int, bool) {
	n, ok := c.GetValueAsString(dst)
	if ok {
		c.Advance(1)
	}
	return n, ok
}

// ValueString returns a copy of the raw text of the String or Primitive token
// at c. Escapes are not decoded.
func (c Cursor) ValueString() (string, bool) {
	tok, ok := c.current()
	if !ok || (tok.Kind != String && tok.Kind != Primitive) {
		return "", false
	}
	return c.doc.span(tok).StringCopy(), true
}

// Unquote returns the text of the String token at c with its escape
// sequences decoded. It fails if the token is not a String or contains an
// incomplete escape.
func (c Cursor) Unquote() (string, bool) {
	tok, ok := c.current()
	if !ok || tok.Kind != String {
		return "", false
	}
	s, err := escape.Unquote(c.doc.span(tok))
	if err != nil {
		return "", false
	}
	return s, true
}

// A MutableCursor is a Cursor on a MutableDocument. Besides the methods of a
// Cursor, it can terminate values in place.
type MutableCursor struct {
	Cursor
	buf []byte
}

// Terminate writes a 0 byte into the document text immediately after the
// String or Primitive token at c, and returns the text of the token. The
// returned slice aliases the document text.
//
// This overwrites the byte following the token (the closing quote of a
// string, or the delimiter after a primitive), so it should be called at most
// once per token. The token array is unaffected. If the token ends at the end
// of the text, nothing is written.
func (c MutableCursor) Terminate() ([]byte, bool) {
	tok, ok := c.current()
	if !ok || (tok.Kind != String && tok.Kind != Primitive) {
		return nil, false
	}
	if tok.End < len(c.buf) {
		c.buf[tok.End] = 0
	}
	return c.buf[tok.Pos:tok.End], true
}

// TakeTerminated is as Terminate, but advances c by one token if it
// succeeds.
func (c *MutableCursor) TakeTerminated() ([]byte, bool) {
	s, ok := c.Terminate()
	if ok {
		c.Advance(1)
	}
	return s, ok
}
