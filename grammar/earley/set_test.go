package earley

import "testing"

func TestSpanGuardEmpty(t *testing.T) {
	guard := newSpanGuard()
	if guard.contains("S", 1, 2) {
		t.Errorf("empty guard contains (S,1,2), should not")
	}
}

func TestSpanGuardAddIsImmutable(t *testing.T) {
	g1 := newSpanGuard()
	g2 := g1.add("S", 1, 2)
	if g1.contains("S", 1, 2) {
		t.Errorf("adding to g2 mutated g1")
	}
	if !g2.contains("S", 1, 2) {
		t.Errorf("g2 does not contain (S,1,2) after add")
	}
	if g2.contains("S", 1, 3) {
		t.Errorf("g2 contains an unrelated span")
	}
}
