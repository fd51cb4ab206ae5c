// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	jsoneat "github.com/zwiebert/mbed-jsoneat"
)

func tok(kind jsoneat.Kind, pos, end, size int) jsoneat.Token {
	return jsoneat.Token{Kind: kind, Span: jsoneat.Span{Pos: pos, End: end}, Size: size}
}

func TestTokenize(t *testing.T) {
	const (
		O = jsoneat.Object
		A = jsoneat.Array
		S = jsoneat.String
		P = jsoneat.Primitive
	)
	tests := []struct {
		input string
		want  []jsoneat.Token
	}{
		// Empty inputs
		{"", nil},
		{"  \n\t\r ", nil},

		// Scalars
		{`true`, []jsoneat.Token{tok(P, 0, 4, 0)}},
		{` null `, []jsoneat.Token{tok(P, 1, 5, 0)}},
		{`-0.5e+10`, []jsoneat.Token{tok(P, 0, 8, 0)}},
		{`""`, []jsoneat.Token{tok(S, 1, 1, 0)}},
		{`"a\"bé"`, []jsoneat.Token{tok(S, 1, 7, 0)}},

		// Composites
		{`{}`, []jsoneat.Token{tok(O, 0, 2, 0)}},
		{`[ ]`, []jsoneat.Token{tok(A, 0, 3, 0)}},
		{`{"a":1,"b":[2,3]}`, []jsoneat.Token{
			tok(O, 0, 17, 2),
			tok(S, 2, 3, 0), tok(P, 5, 6, 0),
			tok(S, 8, 9, 0), tok(A, 11, 16, 2),
			tok(P, 12, 13, 0), tok(P, 14, 15, 0),
		}},
		{`[{"x": null}, [], "s", false]`, []jsoneat.Token{
			tok(A, 0, 29, 4),
			tok(O, 1, 12, 1), tok(S, 3, 4, 0), tok(P, 7, 11, 0),
			tok(A, 14, 16, 0),
			tok(S, 19, 20, 0),
			tok(P, 23, 28, 0),
		}},
		{`{"o": {"p": {"q": []}}}`, []jsoneat.Token{
			tok(O, 0, 23, 1),
			tok(S, 2, 3, 0), tok(O, 6, 22, 1),
			tok(S, 8, 9, 0), tok(O, 12, 21, 1),
			tok(S, 14, 15, 0), tok(A, 18, 20, 0),
		}},
	}

	for _, test := range tests {
		toks := make([]jsoneat.Token, 16)
		n, err := jsoneat.Tokenize([]byte(test.input), toks)
		if err != nil {
			t.Errorf("Tokenize %#q: unexpected error: %v", test.input, err)
			continue
		}
		var got []jsoneat.Token
		if n > 0 {
			got = toks[:n]
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		cap   int
		want  error
	}{
		// Truncated input.
		{`{`, 8, jsoneat.ErrPartial},
		{`{"a":1`, 8, jsoneat.ErrPartial},
		{`{"a":`, 8, jsoneat.ErrPartial},
		{`{"a":tr`, 8, jsoneat.ErrPartial},
		{`{"a":"xy`, 8, jsoneat.ErrPartial},
		{`{"a":"\u00`, 8, jsoneat.ErrPartial},
		{`{"a":1.`, 8, jsoneat.ErrPartial},
		{`{"a":-`, 8, jsoneat.ErrPartial},
		{`[1, 2,`, 8, jsoneat.ErrPartial},

		// Invalid syntax.
		{`}`, 8, jsoneat.ErrInvalid},
		{`{"a" 1}`, 8, jsoneat.ErrInvalid},
		{`{a:1}`, 8, jsoneat.ErrInvalid},
		{`{"a":01}`, 8, jsoneat.ErrInvalid},
		{`{"a":1.x}`, 8, jsoneat.ErrInvalid},
		{`{"a":trux}`, 8, jsoneat.ErrInvalid},
		{`{"a":"\q"}`, 8, jsoneat.ErrInvalid},
		{"{\"a\":\"\x01\"}", 8, jsoneat.ErrInvalid},
		{`{"a":1,}`, 8, jsoneat.ErrInvalid},
		{`[1,]`, 8, jsoneat.ErrInvalid},
		{`{"a":1}x`, 8, jsoneat.ErrInvalid},
		{`{"a":1} {}`, 8, jsoneat.ErrInvalid},

		// Not enough token storage.
		{`{"a":[1,2]}`, 4, jsoneat.ErrNoMemory},
		{`{}`, 0, jsoneat.ErrNoMemory},
	}
	for _, test := range tests {
		toks := make([]jsoneat.Token, test.cap)
		_, err := jsoneat.Tokenize([]byte(test.input), toks)
		if !errors.Is(err, test.want) {
			t.Errorf("Tokenize %#q: got error %v, want %v", test.input, err, test.want)
			continue
		}
		var serr *jsoneat.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Tokenize %#q: error has type %T, want *SyntaxError", test.input, err)
		} else {
			t.Logf("Tokenize %#q: got expected error: %v", test.input, err)
		}
	}
}

func TestTokenizeJWCC(t *testing.T) {
	const input = `{
  // A line comment.
  "a": 1, /* a block comment */
  "b": [2, 3,],
}`
	var tz jsoneat.Tokenizer
	toks := make([]jsoneat.Token, 8)
	if _, err := tz.Tokenize([]byte(input), toks); err == nil {
		t.Fatal("Tokenize with comments: got nil error, want error")
	}

	tz.AllowJWCC(true)
	doc := tz.NewString(input, 8)
	if !doc.Valid() {
		t.Fatal("Document is not valid")
	}
	type kindText struct {
		Kind jsoneat.Kind
		Text string
	}
	want := []kindText{
		{jsoneat.Object, input},
		{jsoneat.String, "a"},
		{jsoneat.Primitive, "1"},
		{jsoneat.String, "b"},
		{jsoneat.Array, "[2, 3,]"},
		{jsoneat.Primitive, "2"},
		{jsoneat.Primitive, "3"},
	}
	var got []kindText
	for c := doc.Begin(); c.Valid(); c.Next() {
		got = append(got, kindText{c.Token().Kind, c.Text().StringCopy()})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens (-want, +got):\n%s", diff)
	}
	if doc.Text().StringCopy() != input {
		t.Error("Document text was modified")
	}
}
