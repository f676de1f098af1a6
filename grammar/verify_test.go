package grammar

import "testing"

func TestVerifyProductionsConsistent(t *testing.T) {
	productions, lexicon, err := ReadRules("NP -> D N\nD : dog\nN : bone")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	if !VerifyProductions(productions, lexicon) {
		t.Errorf("expected consistent grammar to verify")
	}
}

// S6: a production refers to a category D that is neither a
// production key nor a lexicon part of speech.
func TestVerifyProductionsUndefinedCategory(t *testing.T) {
	productions, lexicon, err := ReadRules("NP -> D N\nN : bone")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	if VerifyProductions(productions, lexicon) {
		t.Errorf("expected verification to fail for undefined category D")
	}
}

func TestVerifyLexiconCoversSentence(t *testing.T) {
	_, lexicon, err := ReadRules("D : dog\nN : bone")
	if err != nil {
		t.Fatalf("ReadRules: %v", err)
	}
	if !VerifyLexicon(lexicon, []Token{"dog", "bone"}) {
		t.Errorf("expected sentence to be covered by lexicon")
	}
	if VerifyLexicon(lexicon, []Token{"dog", "cat"}) {
		t.Errorf("expected cat to be uncovered")
	}
}
