package prakriya

import "sort"

// Rule is one rewriting rule. ID is the Aṣṭādhyāyī sūtra number it
// implements, Name its sūtra text or a short gloss. Apply must mutate the
// derivation and return true, or leave it untouched and return false; it
// never errors and never panics. A rule that has already done its work must
// report false on the next call, which is what lets the engine saturate.
//
// Rank makes rule precedence explicit: when several rules are applicable at
// once, the lowest rank wins, so an exception (apavāda) outranks its general
// rule by carrying a smaller number. Ranks are grouped in bands:
//
//	100  substitution on raw affix text (ādeśa)
//	150  augments
//	200  it-marker elision
//	300  aṅga operations (strengthening, lengthening, affix lopa)
//	400  vowel junction, exceptions before the general rules at 430
//	600  surface (tripādī) rules: ru, visarga, ṣatva, ṇatva
type Rule struct {
	ID    string
	Name  string
	Rank  int
	Apply func(*Prakriya) bool
}

// Engine is an immutable, rank-sorted rule set.
type Engine struct {
	rules []Rule
}

// maxSteps bounds the rewriting loop. Every rule disables itself after
// firing, so real derivations settle within a dozen steps; the bound only
// guards against a buggy rule.
const maxSteps = 64

// NewEngine builds an engine from rules, sorted by rank. The sort is stable,
// so rules of equal rank keep their declaration order.
func NewEngine(rules []Rule) *Engine {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})
	return &Engine{rules: sorted}
}

// Run rewrites p to saturation. Each iteration applies the lowest-ranked
// applicable rule, records a history step, and rescans from the top, so a
// newly enabled exception always wins over a pending general rule. Run
// returns when a full scan fires nothing; running a saturated derivation
// again is a no-op.
func (e *Engine) Run(p *Prakriya) {
	for n := 0; n < maxSteps; n++ {
		fired := false
		for i := range e.rules {
			r := &e.rules[i]
			if r.Apply(p) {
				p.Step(r.ID)
				fired = true
				break
			}
		}
		if !fired {
			return
		}
	}
}
