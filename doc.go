/*
Package earleygrammar parses natural-language sentences against a
user-supplied context-free grammar and recovers explicit parse trees.

Package structure is as follows:

■ grammar: reads a compact grammar notation (optionality, repetition,
alternation, braced lexical sets) into the plain production/lexicon
tables the parser consumes, and checks a grammar for internal
consistency.

■ grammar/earley: implements an Earley chart parser (predictor,
scanner, completer) together with a reconstructor that walks the
finished chart back into a forest of parse trees.

■ grammar/scanner: a minimal tokenizer that splits an input sentence
into the whitespace-separated words the parser and lexicon operate on.

The base package contains the handful of types shared across all of
the above: Category, Token and Span.
*/
package earleygrammar
