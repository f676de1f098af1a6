// Package scanner splits raw sentence text into the token sequence the
// grammar package's Earley parser expects. The alphabet is
// whitespace-separated words, not characters, so there is no need for
// the character-category or DFA-generator machinery a general-purpose
// lexer would carry — WhitespaceTokenizer is deliberately the only
// implementation.
package scanner

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/kosuzu/earleygrammar"
)

// tracer traces with key 'earleygrammar.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("earleygrammar.scanner")
}

type (
	Token = earleygrammar.Token
	Span  = earleygrammar.Span
)

// Tokenizer delivers the sentence one token at a time. ok is false
// once the input is exhausted; span positions are 1-based chart
// positions, not byte offsets, matching the parser's convention.
type Tokenizer interface {
	NextToken() (tok Token, span Span, ok bool)
}

// WhitespaceTokenizer splits sentence text on runs of whitespace. It
// is the only Tokenizer this package provides: the grammar's alphabet
// is whitespace-separated words, so there is nothing for a
// character-level scanner to do.
type WhitespaceTokenizer struct {
	tokens []Token
	pos    int
}

var _ Tokenizer = (*WhitespaceTokenizer)(nil)

// NewWhitespaceTokenizer prepares a tokenizer over text.
func NewWhitespaceTokenizer(text string) *WhitespaceTokenizer {
	fields := strings.Fields(text)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token(f)
	}
	return &WhitespaceTokenizer{tokens: tokens}
}

// NextToken returns the next word and its 1-based position span.
func (t *WhitespaceTokenizer) NextToken() (Token, Span, bool) {
	if t.pos >= len(t.tokens) {
		tracer().Debugf("WhitespaceTokenizer reached end of input")
		return "", Span{}, false
	}
	i := t.pos + 1
	tok := t.tokens[t.pos]
	t.pos++
	tracer().Debugf("WhitespaceTokenizer read %q @ %d", tok, i)
	return tok, Span{From: i, To: i + 1}, true
}

// Tokens returns every word remaining in the tokenizer's queue,
// draining it.
func (t *WhitespaceTokenizer) Tokens() []Token {
	rest := append([]Token(nil), t.tokens[t.pos:]...)
	t.pos = len(t.tokens)
	return rest
}

// Tokenize splits text on whitespace and returns the resulting token
// sequence in one call, for callers that do not need incremental
// scanning — the common case of handing a sentence straight to
// earley.ParseEarley.
func Tokenize(text string) []Token {
	return NewWhitespaceTokenizer(text).Tokens()
}
