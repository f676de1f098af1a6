package earley

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/kosuzu/earleygrammar/grammar"
)

// tracer traces with key "earleygrammar.earley".
func tracer() tracing.Trace {
	return tracing.Select("earleygrammar.earley")
}

type config struct {
	startSymbol Category
	debug       bool
}

// Option configures a ParseEarley invocation.
type Option func(*config)

// StartSymbol overrides the default start symbol "S".
func StartSymbol(c Category) Option {
	return func(cfg *config) { cfg.startSymbol = c }
}

// Debug toggles trace output. With debug off, ParseEarley has no
// observable side effects beyond its return value.
func Debug(b bool) Option {
	return func(cfg *config) { cfg.debug = b }
}

// Charts is the result of a parse: one chart per input position,
// 1-based, so Charts[1] through Charts[len(sentence)+1] are populated
// and Charts[0] is unused.
type Charts []*Chart

// parser holds the mutable working state of a single ParseEarley
// invocation: the grammar, the sentence, the chart array and the
// monotone state counter. It is not reused across parses.
type parser struct {
	productions grammar.Productions
	lexicon     grammar.Lexicon
	sentence    []Token
	cfg         config
	charts      Charts
	stateCount  int
}

func (p *parser) nextStateNum() int {
	p.stateCount++
	return p.stateCount
}

// ParseEarley runs the chart construction algorithm over sentence
// against productions and lexicon, returning the finished chart array.
// It never fails for grammar reasons: an unrecognized sentence simply
// yields a chart with no top-level completion, checked separately by
// ChartRecognize.
func ParseEarley(productions grammar.Productions, lexicon grammar.Lexicon, sentence []Token, opts ...Option) Charts {
	cfg := config{startSymbol: "S"}
	for _, opt := range opts {
		opt(&cfg)
	}
	n := len(sentence)
	p := &parser{
		productions: productions,
		lexicon:     lexicon,
		sentence:    sentence,
		cfg:         cfg,
		charts:      make(Charts, n+2),
	}
	for i := 1; i <= n+1; i++ {
		p.charts[i] = newChart()
	}
	if productions == nil || len(productions) == 0 {
		return p.charts
	}

	partsOfSpeech := lexicon.PartsOfSpeech()

	seed, _ := NewState(p.nextStateNum(), 1, 1, gamma, []Category{cfg.startSymbol}, 1)
	p.charts[1].Add(seed)

	for i := 1; i <= n+1; i++ {
		chart := p.charts[i]
		for idx := 0; idx < chart.Len(); idx++ {
			s := chart.At(idx)
			if s.IsIncomplete() {
				next := s.NextCategory()
				if _, isPOS := partsOfSpeech[next]; !isPOS {
					p.predict(chart, s, i)
				} else if i <= n {
					p.scan(s, i)
				}
				continue
			}
			p.complete(chart, s, i)
		}
		if cfg.debug {
			dumpChart(chart, i)
		}
	}
	return p.charts
}

// predict implements §4.4 Predictor: for each alternative of
// next_category(s), insert a fresh dotless state into the current
// chart, skipping any already present with the same identity tuple.
// If next_category(s) has already been completed over the empty span
// [i, i) before s arrived, s is advanced over it at once.
func (p *parser) predict(chart *Chart, s *State, i int) {
	next := s.NextCategory()
	for _, alt := range p.productions[next] {
		if chart.has(next, alt, 1, i, i) {
			continue
		}
		st, err := NewState(p.nextStateNum(), i, i, next, alt, 1)
		if err != nil {
			panic(err)
		}
		chart.Add(st)
		if p.cfg.debug {
			tracer().Debugf("predict: %s", st)
		}
	}
	for j := 0; j < chart.Len(); j++ {
		if c := chart.At(j); !c.IsIncomplete() && c.LeftHand == next && c.Start == i {
			p.complete(chart, c, i)
		}
	}
}

// scan implements §4.4 Scanner: if the word at position i carries the
// category expected next, insert a complete one-symbol state spanning
// [i, i+1) into the following chart.
func (p *parser) scan(s *State, i int) {
	next := s.NextCategory()
	w := p.sentence[i-1] // sentence is 0-indexed, chart positions are 1-based
	if !p.lexicon.Has(w, next) {
		return
	}
	st, err := NewState(p.nextStateNum(), i, i+1, next, []Category{Category(w)}, 2)
	if err != nil {
		panic(err)
	}
	st.terminal = true
	p.charts[i+1].Add(st)
	if p.cfg.debug {
		tracer().Debugf("scan: %s", st)
	}
}

// complete implements §4.4 Completer: for every incomplete state t in
// the chart at s's start index that expects s's category next, insert
// an advanced copy of t into the current chart, recording s as one of
// its originating states. Duplicates are merged, never re-inserted.
func (p *parser) complete(chart *Chart, s *State, i int) {
	origin := p.charts[s.Start]
	for j := 0; j < origin.Len(); j++ {
		t := origin.At(j)
		if !t.IsIncomplete() || t.NextCategory() != s.LeftHand {
			continue
		}
		if existing, ok := chart.byKey[identityKey(t.LeftHand, t.RightHand, t.Dot+1, t.Start, i)]; ok {
			existing.Originating.Add(s.StateNum)
			continue
		}
		st, err := NewState(p.nextStateNum(), t.Start, i, t.LeftHand, t.RightHand, t.Dot+1)
		if err != nil {
			panic(err)
		}
		st.Originating.Add(t.Originating.Values()...)
		st.Originating.Add(s.StateNum)
		chart.Add(st)
		if p.cfg.debug {
			tracer().Debugf("complete: %s (via %s)", st, s)
		}
	}
}

// ChartRecognize reports whether charts contains a completed top-level
// state: γ → S•, spanning the whole sentence of length n.
func ChartRecognize(charts Charts, n int, startSymbol Category) bool {
	if n+1 >= len(charts) || charts[n+1] == nil {
		return false
	}
	last := charts[n+1]
	for i := 0; i < last.Len(); i++ {
		if last.At(i).IsSpanning(n, startSymbol) {
			return true
		}
	}
	return false
}
