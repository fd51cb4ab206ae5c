// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

// SkipValue advances c past the complete value at c, and reports whether it
// succeeded. Only the child counts of the tokens are consulted; the text is
// never examined.
//
// SkipValue fails if c is not valid, if the tokens run out before the value
// is complete, or if an object member does not begin with a String key. On
// failure c is left wherever the skip stopped.
func (c *Cursor) SkipValue() bool {
	tok, ok := c.current()
	if !ok {
		return false
	}
	c.pos++
	switch tok.Kind {
	case Object:
		for range tok.Size {
			if key, ok := c.current(); !ok || key.Kind != String {
				return false
			}
			if !c.SkipKeyAndValue() {
				return false
			}
		}
	case Array:
		for range tok.Size {
			if !c.SkipValue() {
				return false
			}
		}
	}
	return true
}

// SkipKeyAndValue advances c past the object member whose key is at c, and
// reports whether it succeeded.
func (c *Cursor) SkipKeyAndValue() bool {
	c.pos++
	if !c.Valid() {
		return false
	}
	return c.SkipValue()
}
