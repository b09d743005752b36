package cheda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-sanskrit/vedyut/kosha"
)

func newTestSegmenter(t *testing.T, opts ...Option) *Segmenter {
	t.Helper()
	return New(kosha.Builtin(), opts...)
}

func TestSegmentSingleWord(t *testing.T) {
	s := newTestSegmenter(t)
	got := s.Segment("rAma")
	require.NotEmpty(t, got)
	assert.Equal(t, []string{"rAma"}, got[0].Words)
}

func TestSegmentUndoesSandhi(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"ityAdi", []string{"iti", "Adi"}},
		{"devendra", []string{"deva", "indra"}},
		{"devAlaya", []string{"deva", "Alaya"}},
		{"itIti", []string{"iti", "iti"}},
	}
	s := newTestSegmenter(t)
	for _, tt := range tests {
		got := s.Segment(tt.text)
		require.NotEmpty(t, got, tt.text)
		found := false
		for _, seg := range got {
			if assert.ObjectsAreEqual(tt.want, seg.Words) {
				found = true
				break
			}
		}
		assert.True(t, found, "%s: want %v in %v", tt.text, tt.want, got)
	}
}

func TestSegmentRanksFewerWordsFirst(t *testing.T) {
	s := newTestSegmenter(t)
	got := s.Segment("devendra")
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, len(got[i].Words), len(got[i-1].Words))
	}
	assert.Equal(t, []string{"deva", "indra"}, got[0].Words)
}

func TestSegmentRejectsGibberish(t *testing.T) {
	s := newTestSegmenter(t)
	assert.Empty(t, s.Segment("xyzzy"))
	assert.Empty(t, s.Segment(""))
}

func TestSegmentMaxResults(t *testing.T) {
	s := newTestSegmenter(t, WithMaxResults(1))
	got := s.Segment("devendra")
	assert.Len(t, got, 1)
}

func TestSegmentIsDeterministic(t *testing.T) {
	s := newTestSegmenter(t)
	assert.Equal(t, s.Segment("ityAdi"), s.Segment("ityAdi"))
}

// TestSegmentProgressBound pins the search bound: a split whose remainder is
// as long as the input is discarded, so a reading cannot open with a word
// fully absorbed into the first junction. a + iva for eva is the classic
// casualty; the whole-word reading is unaffected.
func TestSegmentProgressBound(t *testing.T) {
	lex := kosha.New()
	lex.Add(kosha.Entry{Word: "a", Kind: kosha.KindAvyaya})
	lex.Add(kosha.Entry{Word: "iva", Kind: kosha.KindAvyaya})
	s := New(lex)
	assert.Empty(t, s.Segment("eva"))

	lex.Add(kosha.Entry{Word: "eva", Kind: kosha.KindAvyaya})
	got := New(lex).Segment("eva")
	require.NotEmpty(t, got)
	assert.Equal(t, []string{"eva"}, got[0].Words)
}
