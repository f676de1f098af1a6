package earley

import "fmt"

// spanGuard remembers which (category, start, end) triples have already
// been visited along the current derivation path, so that a direct or
// indirect cycle (A -> A over the same span, typically via a nullable
// intermediary) terminates the walk instead of recursing forever.
// Immutable: add returns a new set, leaving sibling branches of the
// recursion unaffected by each other's visits.
type spanGuard map[string]struct{}

var exists = struct{}{}

func newSpanGuard() spanGuard {
	return spanGuard{}
}

func spanKey(cat Category, start, end int) string {
	return fmt.Sprintf("%s:%d:%d", cat, start, end)
}

func (set spanGuard) add(cat Category, start, end int) spanGuard {
	next := make(spanGuard, len(set)+1)
	for k := range set {
		next[k] = exists
	}
	next[spanKey(cat, start, end)] = exists
	return next
}

func (set spanGuard) contains(cat Category, start, end int) bool {
	_, ok := set[spanKey(cat, start, end)]
	return ok
}
