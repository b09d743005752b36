package sandhi

import (
	"sort"

	"github.com/cours-de-sanskrit/vedyut/sounds"
)

// Pair is one candidate decomposition of a joined string.
type Pair struct {
	Left  string
	Right string
}

// vowelInverses maps each single sound that a vowel junction can produce to
// the (left, right) vowel pairs that produce it. A long vowel unwinds to the
// four short/long combinations of its quality; guṇa and vṛddhi results unwind
// to a/A plus the matching ik or ec grades.
var vowelInverses = map[byte][]Pair{
	'A': {{"a", "a"}, {"a", "A"}, {"A", "a"}, {"A", "A"}},
	'I': {{"i", "i"}, {"i", "I"}, {"I", "i"}, {"I", "I"}},
	'U': {{"u", "u"}, {"u", "U"}, {"U", "u"}, {"U", "U"}},
	'F': {{"f", "f"}, {"f", "F"}, {"F", "f"}, {"F", "F"}},
	'X': {{"x", "x"}, {"x", "X"}, {"X", "x"}, {"X", "X"}},
	'e': {{"a", "i"}, {"a", "I"}, {"A", "i"}, {"A", "I"}},
	'o': {{"a", "u"}, {"a", "U"}, {"A", "u"}, {"A", "U"}},
	'E': {{"a", "e"}, {"a", "E"}, {"A", "e"}, {"A", "E"}},
	'O': {{"a", "o"}, {"a", "O"}, {"A", "o"}, {"A", "O"}},
}

// digraphInverses maps the two-sound guṇa results (ar, al) to their sources.
var digraphInverses = map[string][]Pair{
	"ar": {{"a", "f"}, {"a", "F"}, {"A", "f"}, {"A", "F"}},
	"al": {{"a", "x"}, {"a", "X"}, {"A", "x"}, {"A", "X"}},
}

// yanSource maps each semivowel back to the ik vowels it substitutes for.
var yanSource = map[byte]string{
	'y': "iI",
	'v': "uU",
	'r': "fF",
	'l': "xX",
}

// ayadiSource maps each ayādi digraph back to the ec vowel it came from.
var ayadiSource = map[string]byte{
	"ay": 'e',
	"av": 'o',
	"Ay": 'E',
	"Av": 'O',
}

// Split enumerates every decomposition of text into a (left, right) pair
// consistent with some forward sandhi category, including the trivial
// "no sandhi occurred here" split at every character boundary. Sandhi
// combination is many-to-one, so this is deliberately a candidate multiset,
// complete rather than precise: checking which candidates are real words
// belongs to the lexicon-backed segmenter, never to this function.
//
// The empty string yields the single ("", "") candidate, the only
// decomposition the identity law admits.
func Split(text string) []Pair {
	if text == "" {
		return []Pair{{"", ""}}
	}

	seen := make(map[Pair]bool)
	var out []Pair
	add := func(left, right string) {
		if left == "" || right == "" {
			return
		}
		p := Pair{left, right}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	// Trivial splits: the boundary may simply have had no sandhi.
	for i := 1; i < len(text); i++ {
		add(text[:i], text[i:])
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		pre, post := text[:i], text[i+1:]

		// Single-sound vowel junctions (dīrgha, guṇa, vṛddhi).
		for _, inv := range vowelInverses[c] {
			add(pre+inv.Left, inv.Right+post)
		}

		// Two-sound guṇa results: ar, al.
		if i+1 < len(text) {
			for _, inv := range digraphInverses[text[i:i+2]] {
				add(pre+inv.Left, inv.Right+text[i+2:])
			}
		}

		// Yaṇ: a semivowel before a vowel unwinds to the matching ik vowel,
		// except where the vowels are savarṇa (dīrgha would have applied).
		if srcs, ok := yanSource[c]; ok && i+1 < len(text) && sounds.IsVowel(text[i+1]) {
			for j := 0; j < len(srcs); j++ {
				if !sounds.IsSavarna(srcs[j], text[i+1]) {
					add(pre+string(srcs[j]), text[i+1:])
				}
			}
		}

		// Ayādi: ay/av/Ay/Av before a vowel unwinds to e/o/ai/au.
		if i+2 < len(text) && sounds.IsVowel(text[i+2]) {
			if ec, ok := ayadiSource[text[i:i+2]]; ok {
				add(pre+string(ec), text[i+2:])
			}
		}

		// Consonant boundaries: undo jaśtva voicing and ścutva assimilation
		// of the final sound of the left word. The inverse is computed from
		// the forward table itself, so chained changes (t → c → j) unwind
		// too and the two directions can never disagree.
		if i > 0 && sounds.IsConsonant(text[i-1]) {
			lc := text[i-1]
			head := text[:i-1]
			for j := 0; j < len(sounds.Consonants); j++ {
				src := sounds.Consonants[j]
				if repl, changed := joinConsonant(src, c); changed && repl == lc {
					add(head+string(src), text[i:])
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})
	return out
}
