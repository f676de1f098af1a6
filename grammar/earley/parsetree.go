package earley

import "github.com/npillmayer/schuko/gconf"

/*
Reconstructing trees from a finished Earley chart means walking
backwards: a completed item

	Foo -> a b c •   [i, j)

only exists because, somewhere, these also do:

	Foo -> a b • c   [i, k)
	Foo -> a • b c   [i, m)
	Foo -> • a b c   [i, i)

and a completed (or scanned) "c" spanning [k, j), a completed "b"
spanning [m, k) and a completed "a" spanning [i, m). Given how charts
are indexed by end position, searching from the right is natural:
chart[j] holds exactly the states that end at j, so the last child of
any right-hand side is always found by looking in chart[j].

See Dick Grune and Ceriel J.H. Jacobs, "Parsing Techniques", section
7.2.1.2, for the general account this rewrite follows; and Loup
Vaillant's Earley tutorial (http://loup-vaillant.fr/tutorials/earley-parsing/parser)
for the specific left-to-right chart layout used here.

Ambiguity is not resolved: every distinct way of covering a right-hand
side contiguously is enumerated as a separate tree, in the order its
first (leftmost) child was found in its chart.
*/

// Tree is a reconstructed derivation: a Category together with either
// a single surface Token (pre-terminal) or an ordered list of child
// trees (non-terminal).
type Tree struct {
	Category Category
	Token    Token
	Terminal bool
	Children []*Tree
}

// List renders t in the external parse-tree shape: a nested sequence
// whose first element is the Category and whose remainder is either
// subtrees or, for a pre-terminal, a single-element sequence holding
// the surface token.
func (t *Tree) List() []interface{} {
	if t.Terminal {
		return []interface{}{string(t.Category), []interface{}{string(t.Token)}}
	}
	out := make([]interface{}, 0, len(t.Children)+1)
	out = append(out, string(t.Category))
	for _, c := range t.Children {
		out = append(out, c.List())
	}
	return out
}

// ChartToTree walks the finished chart array backwards from every
// completion of startSymbol spanning the whole sentence, returning one
// tree per distinct derivation. An empty sentence, or a sentence with
// no top-level completion, yields a nil slice — not an error.
func ChartToTree(charts Charts, sentence []Token, startSymbol Category) [][]interface{} {
	n := len(sentence)
	if n == 0 || n+1 >= len(charts) || charts[n+1] == nil {
		return nil
	}
	rec := &reconstructor{charts: charts}
	var trees [][]interface{}
	for _, top := range rec.findCompletions(startSymbol, 1, n+1) {
		for _, t := range rec.derive(top, newSpanGuard()) {
			trees = append(trees, t.List())
		}
	}
	return trees
}

// reconstructor holds the read-only chart array a single
// ChartToTree call walks; it carries no mutable state of its own, so
// one instance may be shared across every top-level completion.
type reconstructor struct {
	charts Charts
}

// findCompletions returns every complete state in the chart that
// recognizes cat over exactly [start, end).
func (rec *reconstructor) findCompletions(cat Category, start, end int) []*State {
	if end >= len(rec.charts) || rec.charts[end] == nil {
		return nil
	}
	chart := rec.charts[end]
	var out []*State
	for i := 0; i < chart.Len(); i++ {
		s := chart.At(i)
		if !s.IsIncomplete() && s.LeftHand == cat && s.Start == start && s.End == end {
			out = append(out, s)
		}
	}
	return out
}

// derive returns every tree rooted at s. A pre-terminal state (built
// directly by the scanner) always yields exactly one leaf tree;
// otherwise every contiguous decomposition of s.RightHand over
// [s.Start, s.End) contributes one tree.
func (rec *reconstructor) derive(s *State, guard spanGuard) []*Tree {
	if s.terminal {
		return []*Tree{{Category: s.LeftHand, Token: Token(s.RightHand[0]), Terminal: true}}
	}
	if guard.contains(s.LeftHand, s.Start, s.End) {
		cyclic(s)
		return nil // cyclic derivation over an identical span, give up this branch
	}
	guard = guard.add(s.LeftHand, s.Start, s.End)
	var trees []*Tree
	for _, children := range rec.decompose(s.RightHand, s.Start, s.End, guard) {
		trees = append(trees, &Tree{Category: s.LeftHand, Children: children})
	}
	return trees
}

// decompose enumerates every way to split [start, end) into completed
// sub-derivations of rightHand[0], rightHand[1], …, each directly
// abutting the next, per §4.5(b): c1.start = start, ck.end = end, and
// c(j+1).start = cj.end.
func (rec *reconstructor) decompose(rightHand []Category, start, end int, guard spanGuard) [][]*Tree {
	if len(rightHand) == 0 {
		if start == end {
			return [][]*Tree{{}}
		}
		return nil
	}
	head, rest := rightHand[0], rightHand[1:]
	var out [][]*Tree
	for mid := start; mid <= end; mid++ {
		candidates := rec.findCompletions(head, start, mid)
		if len(candidates) == 0 {
			continue
		}
		tails := rec.decompose(rest, mid, end, guard)
		if len(tails) == 0 {
			continue
		}
		for _, c := range candidates {
			for _, headTree := range rec.derive(c, guard) {
				for _, tailTrees := range tails {
					children := make([]*Tree, 0, len(tailTrees)+1)
					children = append(children, headTree)
					children = append(children, tailTrees...)
					out = append(out, children)
				}
			}
		}
	}
	return out
}

// cyclic logs a cut cyclic derivation branch. Configuration flag
// "panic-on-parser-stuck" turns this into a panic instead, for a
// post-mortem of why the reconstructor gave up on a span.
func cyclic(s *State) {
	msg := "cyclic derivation of " + string(s.LeftHand) + " over the same span, branch abandoned"
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(msg)
	}
}
