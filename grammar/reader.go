package grammar

import "strings"

// defaultRepetitionBound is the hard-coded fold for "X+" expansion: a
// pragmatic truncation, not a language feature. Configurable via
// RepetitionBound, but implementations default to this value for test
// compatibility.
const defaultRepetitionBound = 6

type readerConfig struct {
	repetitionBound int
}

// Option configures ReadRules.
type Option func(*readerConfig)

// RepetitionBound overrides the number of copies "X+" expands into
// (default 6).
func RepetitionBound(n int) Option {
	return func(c *readerConfig) {
		c.repetitionBound = n
	}
}

// ReadRules parses grammar text, one rule per non-empty line, into a
// production table and a lexicon. Two rule forms are recognized:
//
//	LHS -> R1 R2 … Rn      (syntactic, Ri may carry (X), X+ or A | B sugar)
//	CAT : token            (lexical)
//	CAT : {tok1, tok2, …}  (lexical, braced set)
//
// Blank lines are ignored; other lines are trimmed before parsing. A
// line that is neither form, or that repeats its "->" or ":"
// separator, aborts the read with a MalformedGrammarLineError.
func ReadRules(text string, opts ...Option) (Productions, Lexicon, error) {
	cfg := readerConfig{repetitionBound: defaultRepetitionBound}
	for _, opt := range opts {
		opt(&cfg)
	}
	productions := Productions{}
	lexicon := Lexicon{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		hasArrow := strings.Contains(line, "->")
		hasColon := strings.Contains(line, ":")
		switch {
		case hasArrow:
			if strings.Count(line, "->") > 1 {
				return nil, nil, malformed(line, "more than one '->'")
			}
			if err := readSyntacticRule(line, productions, cfg); err != nil {
				return nil, nil, err
			}
		case hasColon:
			if strings.Count(line, ":") > 1 {
				return nil, nil, malformed(line, "more than one ':'")
			}
			if err := readLexicalRule(line, lexicon); err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, malformed(line, "line contains neither ':' nor '->'")
		}
	}
	return productions, lexicon, nil
}

func readSyntacticRule(line string, productions Productions, cfg readerConfig) error {
	parts := strings.SplitN(line, "->", 2)
	lhs := strings.TrimSpace(parts[0])
	rhsText := strings.TrimSpace(parts[1])
	if lhs == "" {
		return malformed(line, "empty left-hand side")
	}
	for _, altText := range splitAlternatives(rhsText) {
		if altText == "" {
			return malformed(line, "empty right-hand side")
		}
		fields := strings.Fields(altText)
		for _, repSeq := range expandRepetitions(fields, cfg.repetitionBound) {
			for _, optSeq := range GenOptPoss(repSeq) {
				rhs := make([]Category, len(optSeq))
				for i, s := range optSeq {
					rhs[i] = Category(s)
				}
				productions.Add(Category(lhs), rhs)
			}
		}
	}
	return nil
}

func readLexicalRule(line string, lexicon Lexicon) error {
	parts := strings.SplitN(line, ":", 2)
	cat := strings.TrimSpace(parts[0])
	rhsText := strings.TrimSpace(parts[1])
	if cat == "" || rhsText == "" {
		return malformed(line, "empty lexical rule")
	}
	for _, tok := range splitLexicalTokens(rhsText) {
		if tok != "" {
			lexicon.Add(Token(tok), Category(cat))
		}
	}
	return nil
}

// splitLexicalTokens splits the right-hand side of a lexical rule,
// accepting both "token" and "{tok1, tok2, …}" forms.
func splitLexicalTokens(rhsText string) []string {
	if !strings.HasPrefix(rhsText, "{") {
		return []string{rhsText}
	}
	inner := strings.Trim(rhsText, "{}")
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitAlternatives splits a syntactic right-hand side on top-level
// "|", i.e. bars that are not nested inside an optionality group.
func splitAlternatives(rhsText string) []string {
	var alts []string
	depth := 0
	start := 0
	runes := []rune(rhsText)
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '|':
			if depth == 0 {
				alts = append(alts, strings.TrimSpace(string(runes[start:i])))
				start = i + 1
			}
		}
	}
	alts = append(alts, strings.TrimSpace(string(runes[start:])))
	return alts
}

// expandRepetitions expands every "X+" field into the union of
// alternatives with 1..bound copies of X in place, leaving other
// fields untouched. A field combining "(" with "+" is left as-is:
// optionality and repetition do not compose in this grammar notation.
func expandRepetitions(fields []string, bound int) [][]string {
	type repSlot struct {
		idx  int
		name string
	}
	var reps []repSlot
	for i, f := range fields {
		if name, ok := parseRepeat(f); ok {
			reps = append(reps, repSlot{idx: i, name: name})
		}
	}
	if len(reps) == 0 {
		return [][]string{append([]string(nil), fields...)}
	}
	counts := [][]int{{}}
	for range reps {
		var next [][]int
		for _, c := range counts {
			for n := 1; n <= bound; n++ {
				next = append(next, append(append([]int(nil), c...), n))
			}
		}
		counts = next
	}
	out := make([][]string, 0, len(counts))
	for _, cnt := range counts {
		seq := make([]string, 0, len(fields))
		ri := 0
		for i, f := range fields {
			if ri < len(reps) && reps[ri].idx == i {
				for n := 0; n < cnt[ri]; n++ {
					seq = append(seq, reps[ri].name)
				}
				ri++
				continue
			}
			seq = append(seq, f)
		}
		out = append(out, seq)
	}
	return out
}

func parseRepeat(field string) (string, bool) {
	if len(field) < 2 || field[len(field)-1] != '+' {
		return "", false
	}
	inner := field[:len(field)-1]
	if inner == "" || strings.ContainsAny(inner, "()") {
		return "", false
	}
	return inner, true
}

// GenOptPoss expands a sequence of grammar symbols in which any symbol
// wrapped in parens, e.g. "(D)", is optional, into every combination
// of including or excluding the optional symbols (2^k alternatives for
// k optional symbols; non-optional symbols are always present).
// Exposed for testing the optionality expander; ReadRules calls it
// internally once "+" repetition has already been expanded.
func GenOptPoss(seq []string) [][]string {
	type slot struct {
		text     string
		optional bool
	}
	slots := make([]slot, len(seq))
	var optionalIdx []int
	for i, s := range seq {
		if inner, ok := stripParens(s); ok {
			slots[i] = slot{text: inner, optional: true}
			optionalIdx = append(optionalIdx, i)
		} else {
			slots[i] = slot{text: s}
		}
	}
	k := uint(len(optionalIdx))
	out := make([][]string, 0, 1<<k)
	for mask := uint(0); mask < (1 << k); mask++ {
		include := make(map[int]bool, k)
		for b, idx := range optionalIdx {
			if mask&(1<<uint(b)) != 0 {
				include[idx] = true
			}
		}
		var seq2 []string
		for i, sl := range slots {
			if sl.optional && !include[i] {
				continue
			}
			seq2 = append(seq2, sl.text)
		}
		out = append(out, seq2)
	}
	return out
}

func stripParens(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1], true
	}
	return s, false
}
