// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsoneat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	jsoneat "github.com/zwiebert/mbed-jsoneat"
)

var skipInputs = []string{
	`{}`,
	`{"a":1}`,
	`{"a":1,"b":[2,3]}`,
	`{"a":{},"b":[],"c":""}`,
	`{"a":[[[[]]]],"b":{"c":{"d":{"e":null}}}}`,
	`{"list":[{"x":1},{"x":2}],"y":{"hello":"there"},"o":["hi","yourself"],"xyz":{"p":true,"d":true,"q":false}}`,
	`{"json":{"auto":{"adapter.0":{"name":"Neutral","flags":{"exists":1,"neutral":1,"read_only":1},"temp":0.06,"wind":0.001,"humi":0.01,"clouds":0.01}}}}`,
	`{"json":{}}`,
}

// subtreeLen reports the number of tokens in the subtree rooted at toks[i],
// using only the spans of the tokens.
func subtreeLen(toks []jsoneat.Token, i int) int {
	n := 1
	for j := i + 1; j < len(toks) && toks[j].Pos < toks[i].End; j++ {
		n++
	}
	return n
}

func TestSkipRoot(t *testing.T) {
	for _, input := range skipInputs {
		doc := mustDocument(t, input)
		c := doc.Begin()
		if !c.SkipValue() {
			t.Errorf("SkipValue %#q: got false, want true", input)
		}
		if !c.Equal(doc.End()) {
			t.Errorf("SkipValue %#q: cursor at %d, want End at %d", input, c.Pos(), doc.Len())
		}
	}
}

func TestSkipSubtrees(t *testing.T) {
	for _, input := range skipInputs {
		doc := mustDocument(t, input)
		toks := doc.Tokens()
		for i := range toks {
			c := at(doc, i)
			if !c.SkipValue() {
				// Skipping a key at the end of the document fails only if its
				// value is missing, which cannot happen here.
				t.Errorf("SkipValue %#q at %d: got false, want true", input, i)
				continue
			}
			if got, want := c.Pos()-i, subtreeLen(toks, i); got != want {
				t.Errorf("SkipValue %#q at %d (%v): moved %d, want %d", input, i, toks[i], got, want)
			}
		}
	}
}

func TestSkipScenario(t *testing.T) {
	doc := mustDocument(t, `{"a":1,"b":[2,3]}`)
	c := doc.Begin()
	if tok := c.Token(); tok.Kind != jsoneat.Object || tok.Size != 2 {
		t.Fatalf("Root: got %v, want object of size 2", tok)
	}

	c.Advance(1)
	var v int
	if !c.KeyEquals("a") || !jsoneat.TakeKey(&c, "a", &v) || v != 1 {
		t.Fatalf(`TakeKey("a"): got %d at %v`, v, c)
	}
	if !c.KeyEquals("b") {
		t.Fatalf("Cursor at %v, want key b", c)
	}
	c.Advance(1)
	if tok := c.Token(); tok.Kind != jsoneat.Array || tok.Size != 2 {
		t.Fatalf("Value of b: got %v, want array of size 2", tok)
	}
	start := c.Pos()
	if !c.SkipValue() {
		t.Fatal("SkipValue: got false, want true")
	}
	if got := c.Pos() - start; got != 3 {
		t.Errorf("SkipValue moved %d, want 3", got)
	}
	if !c.Equal(doc.End()) {
		t.Errorf("Cursor at %d, want End", c.Pos())
	}
}

func TestSkipKeyAndValue(t *testing.T) {
	doc := mustDocument(t, `{"a":1,"b":{"c":[true,false]},"d":"e"}`)
	c := at(doc, 1)

	var keys []string
	for c.Valid() {
		keys = append(keys, c.Text().StringCopy())
		if !c.SkipKeyAndValue() {
			t.Fatalf("SkipKeyAndValue at %v: got false", c)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "d"}, keys); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if !c.Equal(doc.End()) {
		t.Errorf("Cursor at %d, want End", c.Pos())
	}
}

func TestSkipFailures(t *testing.T) {
	doc := mustDocument(t, `{"a":1}`)

	end := doc.End()
	if end.SkipValue() {
		t.Error("SkipValue at End: got true")
	}
	var zero jsoneat.Cursor
	if zero.SkipValue() {
		t.Error("SkipValue on zero cursor: got true")
	}
	before := doc.Begin()
	before.Retreat(1)
	if before.SkipValue() {
		t.Error("SkipValue before Begin: got true")
	}

	// Skipping a value as if it were a key runs off the end.
	last := at(doc, 2)
	if last.SkipKeyAndValue() {
		t.Error("SkipKeyAndValue on the last value: got true")
	}
	if last.Valid() {
		t.Errorf("Cursor at %d is valid", last.Pos())
	}

	bad := jsoneat.NewString(`{"a":[1,2`, 16)
	c := bad.Begin()
	if c.SkipValue() {
		t.Error("SkipValue on an invalid document: got true")
	}
	if c.Pos() != 0 {
		t.Errorf("Failed SkipValue moved the cursor to %d", c.Pos())
	}
}

func TestMembers(t *testing.T) {
	doc := mustDocument(t, `{"a":1,"b":{"c":[true,false]},"d":"e"}`)

	type member struct {
		Key   string
		Value jsoneat.Kind
	}
	var got []member
	for k, v := range doc.Begin().Members() {
		got = append(got, member{k.Text().StringCopy(), v.Token().Kind})
	}
	want := []member{
		{"a", jsoneat.Primitive},
		{"b", jsoneat.Object},
		{"d", jsoneat.String},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Members (-want, +got):\n%s", diff)
	}

	// Stopping early.
	var n int
	for range doc.Begin().Members() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("Members after break: visited %d, want 1", n)
	}

	// Non-objects have no members.
	for k := range at(doc, 1).Members() {
		t.Errorf("Members of a string: got %v", k)
	}
	for k := range doc.End().Members() {
		t.Errorf("Members of End: got %v", k)
	}
}

func TestElements(t *testing.T) {
	doc := mustDocument(t, `{"x":[1,[2,3],{"y":4},"z",null]}`)

	var kinds []jsoneat.Kind
	for v := range at(doc, 2).Elements() {
		kinds = append(kinds, v.Token().Kind)
	}
	want := []jsoneat.Kind{
		jsoneat.Primitive, jsoneat.Array, jsoneat.Object, jsoneat.String, jsoneat.Primitive,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Elements (-want, +got):\n%s", diff)
	}

	var sum int
	for v := range at(doc, 4).Elements() {
		var x int
		if !jsoneat.Get(v, &x) {
			t.Errorf("Get at %v failed", v)
		}
		sum += x
	}
	if sum != 5 {
		t.Errorf("Sum of nested elements: got %d, want 5", sum)
	}

	for v := range doc.Begin().Elements() {
		t.Errorf("Elements of an object: got %v", v)
	}
}
