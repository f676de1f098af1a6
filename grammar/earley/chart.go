package earley

// Chart is the ordered sequence of Earley states ending at one input
// position. Insertion order is preserved because the main loop keeps
// iterating over a chart while new states are appended to its own
// tail (predictor, completer) — see the main loop in ParseEarley.
type Chart struct {
	states []*State
	byKey  map[string]*State
}

func newChart() *Chart {
	return &Chart{byKey: make(map[string]*State)}
}

// Len reports the number of states currently in the chart. Callers
// iterate with an index, re-checking Len each step, so that states
// appended during iteration are themselves visited.
func (c *Chart) Len() int {
	return len(c.states)
}

func (c *Chart) At(i int) *State {
	return c.states[i]
}

// Add inserts s unless an identical (left_hand, right_hand, dot_index,
// start_index, end_index) tuple is already present, in which case the
// existing state's Originating set is merged with s's and the
// existing state is returned unchanged otherwise. Returns the state
// now resident in the chart and whether it was newly added.
func (c *Chart) Add(s *State) (*State, bool) {
	key := s.key()
	if existing, ok := c.byKey[key]; ok {
		existing.Originating.Add(s.Originating.Values()...)
		return existing, false
	}
	c.byKey[key] = s
	c.states = append(c.states, s)
	return s, true
}

func (c *Chart) has(leftHand Category, rightHand []Category, dot, start, end int) bool {
	_, ok := c.byKey[identityKey(leftHand, rightHand, dot, start, end)]
	return ok
}
