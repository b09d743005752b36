// Package cheda segments an SLP1 phrase into lexicon words, undoing the
// sandhi at word boundaries. The sandhi splitter proposes boundary
// decompositions and the lexicon disambiguates; neither knows about the
// other, this package is the glue.
package cheda

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/cours-de-sanskrit/vedyut/kosha"
	"github.com/cours-de-sanskrit/vedyut/sandhi"
)

// Segmentation is one reading of the input as a word sequence.
type Segmentation struct {
	Words []string `json:"words"`
}

// Segmenter decomposes phrases against a fixed lexicon. It is safe for
// concurrent use; the per-call search state is local.
type Segmenter struct {
	lex        *kosha.Lexicon
	maxResults int
	log        *zap.Logger
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithMaxResults caps how many readings Segment returns, and how many
// partial readings each search node keeps. The default is 16.
func WithMaxResults(n int) Option {
	return func(s *Segmenter) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithLogger attaches a logger for search diagnostics. The default discards.
func WithLogger(log *zap.Logger) Option {
	return func(s *Segmenter) {
		if log != nil {
			s.log = log
		}
	}
}

// New builds a segmenter over lex.
func New(lex *kosha.Lexicon, opts ...Option) *Segmenter {
	s := &Segmenter{lex: lex, maxResults: 16, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment returns the readings of text as lexicon words, fewest words first
// and alphabetical within equal length. An empty or undecipherable text
// yields no readings.
//
// The search peels one word off the front at a time. Reverse sandhi can
// rewrite the first phoneme of what remains, so remainders are arbitrary
// strings rather than suffixes of the input and the memo is keyed on the
// remainder itself. Every candidate consumes at least one phoneme, which
// bounds the recursion by the input length.
func (s *Segmenter) Segment(text string) []Segmentation {
	if text == "" {
		return nil
	}
	memo := make(map[string][][]string)
	tails := s.solve(text, memo)

	out := make([]Segmentation, 0, len(tails))
	for _, words := range tails {
		out = append(out, Segmentation{Words: words})
	}
	s.log.Debug("segmented",
		zap.String("text", text),
		zap.Int("readings", len(out)))
	return out
}

// solve returns the complete readings of rem, memoized.
func (s *Segmenter) solve(rem string, memo map[string][][]string) [][]string {
	if cached, ok := memo[rem]; ok {
		return cached
	}
	// Park an empty slot so a pathological re-entry sees "no readings"
	// instead of recursing.
	memo[rem] = nil

	var results [][]string
	seen := make(map[string]bool)
	add := func(words []string) {
		key := strings.Join(words, "|")
		if !seen[key] {
			seen[key] = true
			results = append(results, words)
		}
	}

	if s.lex.Contains(rem) {
		add([]string{rem})
	}
	for _, pair := range sandhi.Split(rem) {
		// Recurse only when the remainder strictly shrinks; that is what
		// bounds the search. The bound also discards splits whose left word
		// is fully absorbed into the first junction (a vowel inverse at
		// offset 0, e.g. a + iva for eva), so a reading can never open with
		// a bare single-vowel word.
		if pair.Left == "" || len(pair.Right) >= len(rem) {
			continue
		}
		if !s.lex.Contains(pair.Left) {
			continue
		}
		for _, tail := range s.solve(pair.Right, memo) {
			words := append([]string{pair.Left}, tail...)
			add(words)
			if len(results) >= s.maxResults*4 {
				break
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if len(results[i]) != len(results[j]) {
			return len(results[i]) < len(results[j])
		}
		return strings.Join(results[i], " ") < strings.Join(results[j], " ")
	})
	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	memo[rem] = results
	return results
}
