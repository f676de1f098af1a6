/*
Package grammar turns grammar source text into the two tables an
Earley parser consumes: a production table and a lexicon, and checks
that the result is internally consistent.

Grammar text has one rule per non-empty line. A syntactic rule reads

	LHS -> R1 R2 … Rn

where each Ri is a category, optionally wrapped in surface sugar:
(X) for optionality, X+ for one-or-more repetition, and A | B to
split a rule into alternatives. A lexical rule reads

	CAT : token

or, for several tokens sharing a category,

	CAT : {tok1, tok2, …}

ReadRules expands the sugar into plain alternatives and folds
lexical rules into a lexicon before returning. VerifyProductions and
VerifyLexicon are advisory checks a caller may run over the result
before handing it to an Earley parser.
*/
package grammar
