// Package earley implements a chart parser after Jay Earley's 1970
// algorithm, in the style described by Aycock and Horspool ("Practical
// Earley Parsing", 2002): predictor, scanner and completer applied to
// a work-queue of items per input position until no state is added.
package earley

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/kosuzu/earleygrammar"
)

type (
	Category = earleygrammar.Category
	Token    = earleygrammar.Token
)

// gamma is the canonical top symbol the parser wraps the grammar's
// start symbol in: charts[1] is seeded with a single dummy state
// γ → •S, so that a completed top-level parse always has the same
// shape regardless of what the caller names its start symbol.
const gamma Category = "γ"

// noSymbol is returned by NextCategory for a complete state.
const noSymbol Category = "NFound"

// InvalidDotIndexError is raised by NewState when dot is outside
// [1, len(rightHand)+1].
type InvalidDotIndexError struct {
	Dot       int
	RightHand []Category
}

func (e *InvalidDotIndexError) Error() string {
	return fmt.Sprintf("invalid dot index %d for right-hand side of length %d", e.Dot, len(e.RightHand))
}

// State is an Earley item: a grammar rule, a position within its
// right-hand side (the dot), and the chart positions it spans. Apart
// from Originating, which grows when a duplicate is merged into it,
// states are never mutated after insertion; advancing the dot always
// produces a new State with its own StateNum.
type State struct {
	StateNum    int
	Start       int
	End         int
	LeftHand    Category
	RightHand   []Category
	Dot         int
	Originating *treeset.Set // state numbers of states that produced/extended this one

	// terminal marks a state built by the scanner: its sole right-hand
	// symbol is a surface token, not a category, and tree
	// reconstruction emits the token rather than recursing.
	terminal bool
}

// NewState validates dot against rightHand before constructing s.
func NewState(stateNum, start, end int, leftHand Category, rightHand []Category, dot int) (*State, error) {
	if dot < 1 || dot > len(rightHand)+1 {
		return nil, &InvalidDotIndexError{Dot: dot, RightHand: rightHand}
	}
	return &State{
		StateNum:    stateNum,
		Start:       start,
		End:         end,
		LeftHand:    leftHand,
		RightHand:   rightHand,
		Dot:         dot,
		Originating: treeset.NewWith(utils.IntComparator),
	}, nil
}

// IsIncomplete reports whether the dot has not yet passed the last
// right-hand symbol.
func (s *State) IsIncomplete() bool {
	return s.Dot <= len(s.RightHand)
}

// NextCategory returns the right-hand symbol immediately after the
// dot, or noSymbol if s is complete.
func (s *State) NextCategory() Category {
	if !s.IsIncomplete() {
		return noSymbol
	}
	return s.RightHand[s.Dot-1]
}

// IsSpanning reports whether s is the accepting top-level completion
// for an n-token sentence: γ → S•, covering the whole input.
func (s *State) IsSpanning(n int, startSymbol Category) bool {
	return s.Start == 1 && s.End == n+1 && s.LeftHand == gamma &&
		len(s.RightHand) == 1 && s.RightHand[0] == startSymbol && s.Dot == 2
}

// identityKey is the (left_hand, right_hand, dot_index, start_index,
// end_index) tuple two states share iff they are duplicates within a
// chart, per the data model's no-duplicates invariant.
func identityKey(leftHand Category, rightHand []Category, dot, start, end int) string {
	h, err := structhash.Hash(struct {
		L     Category
		R     []Category
		Dot   int
		Start int
		End   int
	}{leftHand, rightHand, dot, start, end}, 1)
	if err != nil {
		panic(err)
	}
	return h
}

func (s *State) key() string {
	return identityKey(s.LeftHand, s.RightHand, s.Dot, s.Start, s.End)
}

func (s *State) String() string {
	parts := make([]string, len(s.RightHand))
	for i, c := range s.RightHand {
		parts[i] = string(c)
	}
	dotted := append([]string(nil), parts[:s.Dot-1]...)
	dotted = append(dotted, "•")
	dotted = append(dotted, parts[s.Dot-1:]...)
	return fmt.Sprintf("[%s -> %v, %d-%d]", s.LeftHand, dotted, s.Start, s.End)
}
