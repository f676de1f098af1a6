package grammar

// VerifyProductions reports whether every category appearing on any
// right-hand side is either itself a production key or appears
// somewhere as a lexicon value. It is advisory: a false result does
// not prevent a parse, it only tells the caller the grammar is
// internally inconsistent.
func VerifyProductions(productions Productions, lexicon Lexicon) bool {
	partsOfSpeech := lexicon.PartsOfSpeech()
	for _, alternatives := range productions {
		for _, rhs := range alternatives {
			for _, sym := range rhs {
				if _, ok := productions[sym]; ok {
					continue
				}
				if _, ok := partsOfSpeech[sym]; ok {
					continue
				}
				return false
			}
		}
	}
	return true
}

// VerifyLexicon reports whether every token of sentence is a key of
// lexicon. Advisory, like VerifyProductions.
func VerifyLexicon(lexicon Lexicon, sentence []Token) bool {
	for _, tok := range sentence {
		if _, ok := lexicon[tok]; !ok {
			return false
		}
	}
	return true
}
