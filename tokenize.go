// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// Errors reported by the tokenizer. Every error returned by Tokenize has
// concrete type [*SyntaxError] and wraps exactly one of these.
var (
	// ErrNoMemory means the token storage was too small for the input.
	ErrNoMemory = errors.New("not enough tokens")

	// ErrInvalid means the input is not valid JSON.
	ErrInvalid = errors.New("invalid input")

	// ErrPartial means the input ended before the value was complete.
	ErrPartial = errors.New("incomplete input")
)

// SyntaxError is the concrete type of errors reported by the tokenizer.
type SyntaxError struct {
	Offset  int // byte offset of the failure
	Message string

	err error
}

func newSyntaxError(offset int, code error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(msg, args...), err: code}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// A Tokenizer converts JSON text into a flat array of tokens. The zero value
// is ready for use and accepts strict JSON only.
type Tokenizer struct {
	jwcc bool // accept comments and trailing commas
}

// AllowJWCC configures the tokenizer to accept (true) or reject (false) JSON
// with comments and trailing commas. Comments and trailing commas are treated
// as whitespace, so token offsets still refer to the original text.
func (t *Tokenizer) AllowJWCC(ok bool) { t.jwcc = ok }

// Tokenize parses a single JSON value from text into toks and reports the
// number of tokens written. Only whitespace may follow the value. Empty input
// yields 0 tokens and no error.
//
// In case of error, the count reports the tokens written before the failure
// and the error wraps one of [ErrNoMemory], [ErrInvalid], or [ErrPartial].
func Tokenize(text []byte, toks []Token) (int, error) {
	var t Tokenizer
	return t.Tokenize(text, toks)
}

// Tokenize parses a single JSON value from text into toks, as the package
// function [Tokenize] does, using the options configured on t.
func (t *Tokenizer) Tokenize(text []byte, toks []Token) (int, error) {
	return t.tokenize(mem.B(text), toks)
}

func (t *Tokenizer) tokenize(src mem.RO, toks []Token) (int, error) {
	if t.jwcc {
		// Standardizing blanks out comments and trailing commas in place, so
		// offsets are unchanged. If the text does not parse as JWCC, tokenize it
		// as written to classify the error.
		if std, err := hujson.Standardize(mem.Append(nil, src)); err == nil {
			src = mem.B(std)
		}
	}
	p := &parser{lex: lexer{src: src}, toks: toks}
	return p.parse()
}

// A parser is a recursive-descent parser that writes the preorder flattening
// of its input into a token array.
type parser struct {
	lex  lexer
	toks []Token
	n    int // tokens written
}

func (p *parser) parse() (n int, err error) {
	defer func() {
		if x := recover(); x != nil {
			serr, ok := x.(*SyntaxError)
			if !ok {
				panic(x)
			}
			n, err = p.n, serr
		}
	}()

	if err := p.lex.next(); err == io.EOF {
		return 0, nil
	} else if err != nil {
		panic(err)
	}
	p.parseElement()

	if err := p.lex.next(); err == nil {
		p.syntaxError(ErrInvalid, "unexpected %v after value", p.lex.tok)
	} else if err != io.EOF {
		panic(err)
	}
	return p.n, nil
}

// parseElement consumes a single value of any type.
// Precondition: the lexer is positioned on the first lexeme of the value.
func (p *parser) parseElement() {
	switch tok := p.lex.tok; tok {
	case lexLBrace:
		i := p.alloc(Object, p.lex.pos, p.lex.end)
		p.parseMembers(i)
		p.toks[i].End = p.lex.end
	case lexLSquare:
		i := p.alloc(Array, p.lex.pos, p.lex.end)
		p.parseElements(i)
		p.toks[i].End = p.lex.end
	case lexString:
		p.alloc(String, p.lex.pos+1, p.lex.end-1) // without quotes
	case lexNumber, lexTrue, lexFalse, lexNull:
		p.alloc(Primitive, p.lex.pos, p.lex.end)
	default:
		p.syntaxError(ErrInvalid, "unexpected %v", tok)
	}
}

// parseMembers consumes zero of more key:value object members of the object
// token at index i.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (p *parser) parseMembers(i int) {
	if p.advance(lexRBrace, lexString) == lexRBrace {
		return // end of object
	}
	for {
		// Parse a single member: "key": value
		p.toks[i].Size++
		p.alloc(String, p.lex.pos+1, p.lex.end-1)
		p.advance(lexColon)
		p.advance()
		p.parseElement()

		// Check whether we have more members (",") or are done ("}").
		if p.advance(lexRBrace, lexComma) == lexRBrace {
			return // end of object
		}
		p.advance(lexString) // advance to next key
	}
}

// parseElements consumes zero or more comma-separated values of the array
// token at index i.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (p *parser) parseElements(i int) {
	if p.advance() == lexRSquare {
		return // end of array
	}
	for {
		p.toks[i].Size++
		p.parseElement()
		if p.advance(lexRSquare, lexComma) == lexRSquare {
			return // end of array
		}
		p.advance()
	}
}

// alloc adds a token of the given kind and span and returns its index.
func (p *parser) alloc(kind Kind, pos, end int) int {
	if p.n >= len(p.toks) {
		p.syntaxError(ErrNoMemory, "out of token storage (capacity %d)", len(p.toks))
	}
	p.toks[p.n] = Token{Kind: kind, Span: Span{Pos: pos, End: end}}
	p.n++
	return p.n - 1
}

func (p *parser) advance(want ...lexeme) lexeme {
	if err := p.lex.next(); err == io.EOF {
		p.syntaxError(ErrPartial, "%v", tokLabel(want, "end of input"))
	} else if err != nil {
		panic(err)
	}
	tok := p.lex.tok
	if len(want) != 0 && !slices.Contains(want, tok) {
		p.syntaxError(ErrInvalid, "%v", tokLabel(want, tok))
	}
	return tok
}

func (p *parser) syntaxError(code error, msg string, args ...any) {
	panic(newSyntaxError(p.lex.pos, code, msg, args...))
}

// tokLabel makes a human-readable summary string for the given lexemes.
func tokLabel(want []lexeme, got any) string {
	if len(want) == 0 {
		return fmt.Sprintf("expected more input, got %v", got)
	}
	var exp string
	if len(want) == 1 {
		exp = want[0].String()
	} else {
		last := len(want) - 1
		ss := make([]string, last)
		for i, tok := range want[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + want[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
