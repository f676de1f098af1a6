package grammar

import (
	"reflect"
	"sort"
	"testing"
)

// S1: a single syntactic rule and a single-token lexical rule.
func TestReadRulesSimpleNP(t *testing.T) {
	productions, lexicon, err := ReadRules("NP -> D N\nD : dog")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	want := [][]Category{{"D", "N"}}
	if !reflect.DeepEqual(productions["NP"], want) {
		t.Errorf("productions[NP] = %v, want %v", productions["NP"], want)
	}
	if !lexicon.Has("dog", "D") {
		t.Errorf("lexicon[dog] does not contain D: %v", lexicon["dog"])
	}
}

// S2: a braced lexical rule fans out to one entry per token.
func TestReadRulesBracedLexicon(t *testing.T) {
	_, lexicon, err := ReadRules("D : {dog, cat, mouse}")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	for _, tok := range []Token{"dog", "cat", "mouse"} {
		if !lexicon.Has(tok, "D") {
			t.Errorf("lexicon[%s] does not contain D: %v", tok, lexicon[tok])
		}
	}
}

// S3 / property 4: (X) Y (Z) covers exactly the four combinations of
// including or excluding X and Z.
func TestReadRulesOptionalityExpansion(t *testing.T) {
	productions, _, err := ReadRules("NP -> (D) (Adj) N")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	want := map[string]bool{
		`[N]`:         true,
		`[D N]`:       true,
		`[Adj N]`:     true,
		`[D Adj N]`:   true,
	}
	got := map[string]bool{}
	for _, rhs := range productions["NP"] {
		got[categorySeqString(rhs)] = true
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got RHS set %v, want %v", got, want)
	}
}

func TestGenOptPossCombinations(t *testing.T) {
	got := GenOptPoss([]string{"(X)", "Y", "(Z)"})
	var seqs []string
	for _, seq := range got {
		seqs = append(seqs, "["+joinStrings(seq)+"]")
	}
	sort.Strings(seqs)
	want := []string{"[X Y Z]", "[X Y]", "[Y Z]", "[Y]"}
	sort.Strings(want)
	if !reflect.DeepEqual(seqs, want) {
		t.Errorf("GenOptPoss = %v, want %v", seqs, want)
	}
}

// Property 5: X+ at position k produces sequences with 1..6 copies of
// X, leaving other positions untouched.
func TestExpandRepetitionsBound(t *testing.T) {
	combos := expandRepetitions([]string{"D", "N+", "V"}, defaultRepetitionBound)
	if len(combos) != defaultRepetitionBound {
		t.Fatalf("got %d combinations, want %d", len(combos), defaultRepetitionBound)
	}
	for _, seq := range combos {
		if seq[0] != "D" || seq[len(seq)-1] != "V" {
			t.Errorf("non-repeated positions changed: %v", seq)
		}
		n := len(seq) - 2
		if n < 1 || n > defaultRepetitionBound {
			t.Errorf("repetition count %d out of [1,%d]: %v", n, defaultRepetitionBound, seq)
		}
		for _, sym := range seq[1 : len(seq)-1] {
			if sym != "N" {
				t.Errorf("expected only N copies, got %v", seq)
			}
		}
	}
}

func TestReadRulesTopLevelAlternation(t *testing.T) {
	productions, _, err := ReadRules("VP -> V | V NP")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	if len(productions["VP"]) != 2 {
		t.Fatalf("got %d alternatives, want 2: %v", len(productions["VP"]), productions["VP"])
	}
}

func TestReadRulesRejectsMissingSeparator(t *testing.T) {
	if _, _, err := ReadRules("NP D N"); err == nil {
		t.Errorf("expected MalformedGrammarLineError, got nil")
	}
}

func TestReadRulesRejectsDuplicateArrow(t *testing.T) {
	if _, _, err := ReadRules("NP -> D -> N"); err == nil {
		t.Errorf("expected MalformedGrammarLineError, got nil")
	}
}

func TestReadRulesRejectsDuplicateColon(t *testing.T) {
	if _, _, err := ReadRules("D : dog : cat"); err == nil {
		t.Errorf("expected MalformedGrammarLineError, got nil")
	}
}

func TestReadRulesBlankLinesIgnored(t *testing.T) {
	productions, _, err := ReadRules("\n\nNP -> D N\n\n")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	if len(productions) != 1 {
		t.Errorf("expected exactly one LHS, got %v", productions)
	}
}

func categorySeqString(rhs []Category) string {
	strs := make([]string, len(rhs))
	for i, c := range rhs {
		strs[i] = string(c)
	}
	return "[" + joinStrings(strs) + "]"
}

func joinStrings(strs []string) string {
	out := ""
	for i, s := range strs {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out
}
