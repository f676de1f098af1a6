package scanner

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizeSplitsOnWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleygrammar.scanner")
	defer teardown()
	//
	got := Tokenize("the   dog\truns\n")
	want := []Token{"the", "dog", "runs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if got := Tokenize("   \n\t"); len(got) != 0 {
		t.Errorf("expected no tokens from blank input, got %v", got)
	}
}

func TestWhitespaceTokenizerSpans(t *testing.T) {
	tok := NewWhitespaceTokenizer("the dog runs")
	wantSpans := []Span{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}
	wantTokens := []Token{"the", "dog", "runs"}
	for i := 0; i < 3; i++ {
		word, span, ok := tok.NextToken()
		if !ok {
			t.Fatalf("token %d: expected ok, got false", i)
		}
		if word != wantTokens[i] || span != wantSpans[i] {
			t.Errorf("token %d = (%v,%v), want (%v,%v)", i, word, span, wantTokens[i], wantSpans[i])
		}
	}
	if _, _, ok := tok.NextToken(); ok {
		t.Errorf("expected exhausted tokenizer to return ok=false")
	}
}
