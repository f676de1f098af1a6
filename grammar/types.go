package grammar

import "github.com/kosuzu/earleygrammar"

// Category and Token are re-exported from the root package so that
// callers of package grammar need not import it separately.
type (
	Category = earleygrammar.Category
	Token    = earleygrammar.Token
)

// Productions maps a left-hand category to its ordered alternatives.
// Insertion order is preserved for determinism but carries no semantic
// weight; duplicates are tolerated rather than deduplicated.
type Productions map[Category][][]Category

// Add appends one alternative right-hand side for lhs.
func (p Productions) Add(lhs Category, rhs []Category) {
	p[lhs] = append(p[lhs], rhs)
}

// Lexicon maps an input token to the set of pre-terminal categories
// it may be tagged with. Multiple categories per token encode lexical
// ambiguity.
type Lexicon map[Token][]Category

// Add associates token with cat, unless the pair is already present.
func (l Lexicon) Add(token Token, cat Category) {
	for _, c := range l[token] {
		if c == cat {
			return
		}
	}
	l[token] = append(l[token], cat)
}

// Has reports whether token may be tagged with cat.
func (l Lexicon) Has(token Token, cat Category) bool {
	for _, c := range l[token] {
		if c == cat {
			return true
		}
	}
	return false
}

// PartsOfSpeech returns the union of all categories appearing as
// lexicon values.
func (l Lexicon) PartsOfSpeech() map[Category]struct{} {
	pos := make(map[Category]struct{})
	for _, cats := range l {
		for _, c := range cats {
			pos[c] = struct{}{}
		}
	}
	return pos
}
