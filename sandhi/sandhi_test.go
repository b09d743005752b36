package sandhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineIdentity(t *testing.T) {
	for _, x := range []string{"", "a", "rAma", "ityAdi", "q?!"} {
		assert.Equal(t, x, Combine(x, ""), "right identity")
		assert.Equal(t, x, Combine("", x), "left identity")
	}
}

func TestCombineVowels(t *testing.T) {
	tests := []struct {
		left, right, want string
	}{
		// savarṇa-dīrgha
		{"deva", "Alaya", "devAlaya"},
		{"kavi", "indra", "kavIndra"},
		{"guru", "upadeSa", "gurUpadeSa"},
		{"pitf", "fRa", "pitFRa"},
		// guṇa
		{"deva", "indra", "devendra"},
		{"mahA", "indra", "mahendra"},
		{"hita", "upadeSa", "hitopadeSa"},
		{"mahA", "fzi", "maharzi"},
		// vṛddhi
		{"deva", "ESvarya", "devESvarya"},
		{"mahA", "ozaDi", "mahOzaDi"},
		{"kftsna", "ekatA", "kftsnEkatA"},
		// yaṇ
		{"iti", "Adi", "ityAdi"},
		{"su", "Agata", "svAgata"},
		{"pitf", "AjYA", "pitrAjYA"},
		// ayādi
		{"ne", "ana", "nayana"},
		{"po", "ana", "pavana"},
		{"nE", "aka", "nAyaka"},
		{"pO", "aka", "pAvaka"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Combine(tt.left, tt.right),
			"Combine(%q, %q)", tt.left, tt.right)
	}
}

func TestCombineConsonants(t *testing.T) {
	tests := []struct {
		left, right, want string
	}{
		// jaśtva voicing before a voiced sound
		{"vAk", "ISa", "vAgISa"},
		{"tat", "asti", "tadasti"},
		{"ap", "ja", "abja"},
		// ścutva before a palatal, chaining into voicing
		{"tat", "ca", "tacca"},
		{"tat", "jala", "tajjala"},
		// no category: verbatim concatenation is the default
		{"rAma", "gacCati", "rAmagacCati"},
		{"tat", "karma", "tatkarma"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Combine(tt.left, tt.right),
			"Combine(%q, %q)", tt.left, tt.right)
	}
}

func TestCombineInertOutsideAlphabet(t *testing.T) {
	// Unknown characters never trigger a rule; they concatenate verbatim.
	assert.Equal(t, "ra#ti", Combine("ra#", "ti"))
	assert.Equal(t, "deva-indra", Combine("deva-", "indra"))
}

func TestSplitEmpty(t *testing.T) {
	assert.Equal(t, []Pair{{"", ""}}, Split(""))
}

func TestSplitContains(t *testing.T) {
	tests := []struct {
		text        string
		left, right string
	}{
		{"ityAdi", "iti", "Adi"},
		{"devendra", "deva", "indra"},
		{"devAlaya", "deva", "Alaya"},
		{"kavIndra", "kavi", "indra"},
		{"hitopadeSa", "hita", "upadeSa"},
		{"maharzi", "mahA", "fzi"},
		{"svAgata", "su", "Agata"},
		{"nayana", "ne", "ana"},
		{"nAyaka", "nE", "aka"},
		{"vAgISa", "vAk", "ISa"},
		{"tajjala", "tat", "jala"},
		// trivial boundary split
		{"rAmagacCati", "rAma", "gacCati"},
	}
	for _, tt := range tests {
		pairs := Split(tt.text)
		assert.Contains(t, pairs, Pair{tt.left, tt.right}, "Split(%q)", tt.text)
	}
}

func TestSplitTrivialEveryBoundary(t *testing.T) {
	text := "Bavati"
	pairs := Split(text)
	for i := 1; i < len(text); i++ {
		assert.Contains(t, pairs, Pair{text[:i], text[i:]})
	}
}

func TestSplitDeterministic(t *testing.T) {
	a := Split("devendra")
	b := Split("devendra")
	assert.Equal(t, a, b)
}

// TestSplitCompleteness checks the inverse property: wherever Combine applies
// a rule category, the source pair must be recoverable from the joined text.
func TestSplitCompleteness(t *testing.T) {
	lefts := []string{"deva", "mahA", "iti", "su", "kavi", "pitf", "ne", "po", "nE", "vAk", "tat", "ap"}
	rights := []string{"indra", "Adi", "upadeSa", "eka", "ozaDi", "fzi", "ana", "jala", "ca", "asti"}
	for _, l := range lefts {
		for _, r := range rights {
			joined := Combine(l, r)
			if joined == l+r {
				continue // no category applied
			}
			assert.Contains(t, Split(joined), Pair{l, r},
				"Combine(%q, %q) = %q", l, r, joined)
		}
	}
}
