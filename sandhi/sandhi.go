// Package sandhi implements euphonic combination of SLP1 phoneme strings and
// its one-to-many inverse.
//
// Combine applies the classical vowel-junction categories in order
// (savarṇa-dīrgha, guṇa, vṛddhi, yaṇ, ayādi), then the consonant-boundary
// rules (ścutva, jaśtva), and falls back to verbatim concatenation: the
// default is explicit, not an error. Split enumerates every decomposition of
// a joined string that any of those categories, or no sandhi at all, could
// have produced; ranking candidates against a lexicon is the caller's job.
package sandhi

import (
	"strings"

	"github.com/cours-de-sanskrit/vedyut/sounds"
)

// JoinVowels returns the junction of two adjacent vowels per the ordered
// vowel-sandhi categories, and whether any category applied. The prakriya
// rule set uses the same table, so generation and splitting can never
// disagree about what a junction looks like.
func JoinVowels(left, right byte) (string, bool) {
	if !sounds.IsVowel(left) || !sounds.IsVowel(right) {
		return "", false
	}

	// 6.1.101 akaḥ savarṇe dīrghaḥ
	if sounds.IsSavarna(left, right) {
		return string(sounds.Dirgha(left)), true
	}

	if left == 'a' || left == 'A' {
		switch right {
		// 6.1.87 ād guṇaḥ
		case 'i', 'I':
			return "e", true
		case 'u', 'U':
			return "o", true
		case 'f', 'F':
			return "ar", true
		case 'x', 'X':
			return "al", true
		// 6.1.88 vṛddhir eci
		case 'e', 'E':
			return "E", true
		case 'o', 'O':
			return "O", true
		}
		return "", false
	}

	// 6.1.77 iko yaṇ aci, dissimilar vowel after ik
	if sounds.IsIk(left) {
		return string(sounds.Semivowel(left)) + string(right), true
	}

	// 6.1.78 eco 'yavāyāvaḥ
	if ay := sounds.Ayadi(left); ay != "" {
		return ay + string(right), true
	}

	return "", false
}

// joinConsonant resolves a consonant boundary: ścutva assimilation of a
// dental before a palatal, then jaśtva voicing of an unvoiced stop before a
// voiced sound. It returns the replacement for the final sound of the left
// word, and whether anything changed.
func joinConsonant(left, right byte) (byte, bool) {
	c := left
	// 8.4.40 stoḥ ścunā ścuḥ
	if strings.IndexByte("cCjJYS", right) >= 0 {
		switch c {
		case 't':
			c = 'c'
		case 'T':
			c = 'C'
		case 'd':
			c = 'j'
		case 'D':
			c = 'J'
		case 'n':
			c = 'Y'
		case 's':
			c = 'S'
		}
	}
	// 8.2.39 jhalāṃ jaśo 'nte: voice an unvoiced stop before a voiced sound
	if sounds.IsUnvoicedStop(c) && sounds.IsVoiced(right) {
		c = sounds.Jash(c)
	}
	return c, c != left
}

// Combine joins two phoneme strings with sandhi applied at the boundary.
// It is total: empty operands obey the identity law, and when no rule
// category matches the operands are concatenated verbatim. Sounds outside
// the SLP1 alphabet never trigger a rule.
func Combine(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}

	last := left[len(left)-1]
	first := right[0]

	if joined, ok := JoinVowels(last, first); ok {
		return left[:len(left)-1] + joined + right[1:]
	}

	if sounds.IsConsonant(last) {
		if repl, ok := joinConsonant(last, first); ok {
			return left[:len(left)-1] + string(repl) + right
		}
	}

	return left + right
}
