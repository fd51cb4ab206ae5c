// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import (
	"io"
	"strings"

	"go4.org/mem"
)

// lexeme is the type of a lexical token in the JSON grammar.
type lexeme byte

const (
	lexInvalid lexeme = iota // invalid lexeme
	lexLBrace                // left brace "{"
	lexRBrace                // right brace "}"
	lexLSquare               // left square bracket "["
	lexRSquare               // right square bracket "]"
	lexComma                 // comma ","
	lexColon                 // colon ":"
	lexNumber                // number
	lexString                // quoted string
	lexTrue                  // constant: true
	lexFalse                 // constant: false
	lexNull                  // constant: null
)

var lexemeStr = [...]string{
	lexInvalid: "invalid token",
	lexLBrace:  `"{"`,
	lexRBrace:  `"}"`,
	lexLSquare: `"["`,
	lexRSquare: `"]"`,
	lexComma:   `","`,
	lexColon:   `":"`,
	lexNumber:  "number",
	lexString:  "string",
	lexTrue:    "true",
	lexFalse:   "false",
	lexNull:    "null",
}

func (t lexeme) String() string {
	v := int(t)
	if v >= len(lexemeStr) {
		return lexemeStr[lexInvalid]
	}
	return lexemeStr[v]
}

// A lexer splits source text into lexemes. Each call to next advances the
// lexer to the next lexeme, or reports an error.
type lexer struct {
	src mem.RO
	tok lexeme

	pos, end int // start and end offsets of the current lexeme
}

// next advances l to the next lexeme of the input, or reports an error.
// At the end of the input, next returns io.EOF.
func (l *lexer) next() error {
	l.tok = lexInvalid

	// Discard whitespace.
	for l.end < l.src.Len() && isSpace(l.src.At(l.end)) {
		l.end++
	}
	l.pos = l.end
	if l.end == l.src.Len() {
		return io.EOF
	}
	ch := l.src.At(l.end)
	l.end++

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		l.tok = t
		return nil
	}

	// Handle numbers.
	if isNumStart(ch) {
		return l.scanNumber(ch)
	}

	// Handle string values.
	if ch == '"' {
		return l.scanString()
	}

	// Handle constants: true, false, null
	switch ch {
	case 't':
		return l.scanName(lexTrue, "true")
	case 'f':
		return l.scanName(lexFalse, "false")
	case 'n':
		return l.scanName(lexNull, "null")
	}
	return l.failf(ErrInvalid, "unexpected %q", ch)
}

// text returns the undecoded text of the current lexeme.
func (l *lexer) text() mem.RO { return l.src.Slice(l.pos, l.end) }

// atEOF reports whether the input is exhausted.
func (l *lexer) atEOF() bool { return l.end >= l.src.Len() }

func (l *lexer) scanString() error {
	var esc bool
	for !l.atEOF() {
		ch := l.src.At(l.end)
		l.end++
		if esc {
			// We are awaiting the completion of a \-escape.
			switch ch {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if err := l.readHex4(); err != nil {
					return err
				}
			default:
				return l.failf(ErrInvalid, "invalid %q after escape", ch)
			}
			esc = false
		} else if ch == '"' {
			l.tok = lexString
			return nil
		} else if ch < ' ' {
			return l.failf(ErrInvalid, "unescaped control %q", ch)
		} else {
			esc = ch == '\\'
		}
	}
	return l.failf(ErrPartial, "unterminated string")
}

func (l *lexer) scanNumber(start byte) error {
	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		if err := l.require(isDigit, "digit"); err != nil {
			return err
		}
	}

	// Consume the remainder of an integer.
	l.readWhile(isDigit)

	// Check for extra leading zeroes, which JSON does not allow.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(l.text()) {
		return l.failf(ErrInvalid, "extra leading zeroes")
	}

	// If a decimal point follows, consume a fractional part.
	if l.peek() == '.' {
		l.end++
		if l.readWhile(isDigit) == 0 {
			return l.missing("digits after decimal point")
		}
	}

	// If an exponent follows, consume it.
	if ch := l.peek(); ch == 'E' || ch == 'e' {
		l.end++
		if ch := l.peek(); ch == '-' || ch == '+' {
			l.end++
		}
		if l.readWhile(isDigit) == 0 {
			return l.missing("exponent digits")
		}
	}
	l.tok = lexNumber
	return nil
}

func (l *lexer) scanName(tok lexeme, want string) error {
	l.readWhile(isNameByte)
	got := l.text()
	if got.EqualString(want) {
		l.tok = tok
		return nil
	} else if l.atEOF() && mem.HasPrefix(mem.S(want), got) {
		return l.failf(ErrPartial, "incomplete constant %q", got.StringCopy())
	}
	return l.failf(ErrInvalid, "unknown constant %q", got.StringCopy())
}

// peek returns the next unread byte of the input without consuming it, or 0
// if the input is exhausted.
func (l *lexer) peek() byte {
	if l.atEOF() {
		return 0
	}
	return l.src.At(l.end)
}

// require reads a single byte matching f from the input, or returns an error
// mentioning the desired label.
func (l *lexer) require(f func(byte) bool, label string) error {
	if l.atEOF() {
		return l.failf(ErrPartial, "want %s, got end of input", label)
	} else if ch := l.src.At(l.end); !f(ch) {
		return l.failf(ErrInvalid, "got %q, want %s", ch, label)
	}
	l.end++
	return nil
}

// readWhile consumes bytes matching f from the input until EOF or until a
// byte not matching f is found. It reports the number of bytes consumed.
func (l *lexer) readWhile(f func(byte) bool) int {
	var nr int
	for !l.atEOF() && f(l.src.At(l.end)) {
		l.end++
		nr++
	}
	return nr
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (l *lexer) readHex4() error {
	for range 4 {
		if err := l.require(isHexDigit, "hex digit"); err != nil {
			return err
		}
	}
	return nil
}

// missing reports that the current lexeme lacks the named part. If the input
// ran out first, the input is treated as truncated rather than invalid.
func (l *lexer) missing(what string) error {
	if l.atEOF() {
		return l.failf(ErrPartial, "missing %s", what)
	}
	return l.failf(ErrInvalid, "missing %s", what)
}

func (l *lexer) failf(code error, msg string, args ...any) error {
	return newSyntaxError(l.end, code, msg, args...)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the representation of an integer in
// buf has redundant leading zeroes, which JSON does not allow.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf mem.RO) bool {
	if buf.At(0) == '-' {
		buf = buf.SliceFrom(1) // skip leading sign
	}
	if buf.At(0) == '0' {
		// A leading zero is OK if it's the only digit.
		return buf.Len() > 1
	}
	return false
}

var self = [...]lexeme{lexLBrace, lexRBrace, lexLSquare, lexRSquare, lexComma, lexColon}

func selfDelim(ch byte) (lexeme, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return lexInvalid, false
}
