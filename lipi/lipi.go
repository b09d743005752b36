// Package lipi transliterates Sanskrit text between romanizations and
// Devanagari. SLP1 is the pivot: every conversion decodes the source scheme
// to SLP1 and re-encodes, so adding a scheme means adding one table pair.
// Characters outside a scheme's alphabet pass through unchanged.
package lipi

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Scheme identifies a transliteration scheme.
type Scheme int

const (
	SLP1 Scheme = iota
	IAST
	HarvardKyoto
	Devanagari
)

var schemeNames = [...]string{"slp1", "iast", "hk", "devanagari"}

func (s Scheme) String() string {
	if s < SLP1 || s > Devanagari {
		return "invalid"
	}
	return schemeNames[s]
}

// ParseScheme resolves a scheme name. Accepted spellings: slp1, iast,
// hk or harvard-kyoto, devanagari or deva.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(s) {
	case "slp1":
		return SLP1, nil
	case "iast":
		return IAST, nil
	case "hk", "harvard-kyoto":
		return HarvardKyoto, nil
	case "devanagari", "deva":
		return Devanagari, nil
	}
	return 0, errors.Newf("unknown scheme %q", s)
}

// slpVowels and slpConsonants partition the SLP1 alphabet for the Devanagari
// encoder, which must know which sounds take mātrā form.
const (
	slpVowels     = "aAiIuUfFxXeEoO"
	slpConsonants = "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh"
)

// slpToIAST maps each SLP1 sound to its IAST spelling.
var slpToIAST = map[byte]string{
	'a': "a", 'A': "ā", 'i': "i", 'I': "ī", 'u': "u", 'U': "ū",
	'f': "ṛ", 'F': "ṝ", 'x': "ḷ", 'X': "ḹ",
	'e': "e", 'E': "ai", 'o': "o", 'O': "au",
	'M': "ṃ", 'H': "ḥ",
	'k': "k", 'K': "kh", 'g': "g", 'G': "gh", 'N': "ṅ",
	'c': "c", 'C': "ch", 'j': "j", 'J': "jh", 'Y': "ñ",
	'w': "ṭ", 'W': "ṭh", 'q': "ḍ", 'Q': "ḍh", 'R': "ṇ",
	't': "t", 'T': "th", 'd': "d", 'D': "dh", 'n': "n",
	'p': "p", 'P': "ph", 'b': "b", 'B': "bh", 'm': "m",
	'y': "y", 'r': "r", 'l': "l", 'v': "v",
	'S': "ś", 'z': "ṣ", 's': "s", 'h': "h",
}

// slpToHK maps each SLP1 sound to its Harvard-Kyoto spelling.
var slpToHK = map[byte]string{
	'a': "a", 'A': "A", 'i': "i", 'I': "I", 'u': "u", 'U': "U",
	'f': "R", 'F': "RR", 'x': "lR", 'X': "lRR",
	'e': "e", 'E': "ai", 'o': "o", 'O': "au",
	'M': "M", 'H': "H",
	'k': "k", 'K': "kh", 'g': "g", 'G': "gh", 'N': "G",
	'c': "c", 'C': "ch", 'j': "j", 'J': "jh", 'Y': "J",
	'w': "T", 'W': "Th", 'q': "D", 'Q': "Dh", 'R': "N",
	't': "t", 'T': "th", 'd': "d", 'D': "dh", 'n': "n",
	'p': "p", 'P': "ph", 'b': "b", 'B': "bh", 'm': "m",
	'y': "y", 'r': "r", 'l': "l", 'v': "v",
	'S': "z", 'z': "S", 's': "s", 'h': "h",
}

// Devanagari tables: independent vowels, the mātrā (dependent) forms, and
// the consonant letters with their inherent a.
var slpToDevaVowel = map[byte]rune{
	'a': 'अ', 'A': 'आ', 'i': 'इ', 'I': 'ई', 'u': 'उ', 'U': 'ऊ',
	'f': 'ऋ', 'F': 'ॠ', 'x': 'ऌ', 'X': 'ॡ',
	'e': 'ए', 'E': 'ऐ', 'o': 'ओ', 'O': 'औ',
}

var slpToDevaMatra = map[byte]rune{
	'A': 'ा', 'i': 'ि', 'I': 'ी', 'u': 'ु', 'U': 'ू',
	'f': 'ृ', 'F': 'ॄ', 'x': 'ॢ', 'X': 'ॣ',
	'e': 'े', 'E': 'ै', 'o': 'ो', 'O': 'ौ',
}

var slpToDevaConsonant = map[byte]rune{
	'k': 'क', 'K': 'ख', 'g': 'ग', 'G': 'घ', 'N': 'ङ',
	'c': 'च', 'C': 'छ', 'j': 'ज', 'J': 'झ', 'Y': 'ञ',
	'w': 'ट', 'W': 'ठ', 'q': 'ड', 'Q': 'ढ', 'R': 'ण',
	't': 'त', 'T': 'थ', 'd': 'द', 'D': 'ध', 'n': 'न',
	'p': 'प', 'P': 'फ', 'b': 'ब', 'B': 'भ', 'm': 'म',
	'y': 'य', 'r': 'र', 'l': 'ल', 'v': 'व',
	'S': 'श', 'z': 'ष', 's': 'स', 'h': 'ह',
}

var slpToDevaSign = map[byte]rune{'M': 'ं', 'H': 'ः'}

const virama = '्'

// Reverse tables, built once by inversion so the two directions cannot drift.
var (
	iastToSLP = invert(slpToIAST)
	hkToSLP   = invert(slpToHK)

	devaVowelToSLP     = invertRunes(slpToDevaVowel)
	devaMatraToSLP     = invertRunes(slpToDevaMatra)
	devaConsonantToSLP = invertRunes(slpToDevaConsonant)
	devaSignToSLP      = invertRunes(slpToDevaSign)
)

func invert(m map[byte]string) map[string]byte {
	out := make(map[string]byte, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func invertRunes(m map[byte]rune) map[rune]byte {
	out := make(map[rune]byte, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Convert transliterates text between two schemes. It is total: characters
// the source scheme does not define are copied through verbatim.
func Convert(text string, from, to Scheme) string {
	if from == to {
		return text
	}
	pivot := text
	switch from {
	case IAST:
		pivot = romanToSLP(text, iastToSLP)
	case HarvardKyoto:
		pivot = romanToSLP(text, hkToSLP)
	case Devanagari:
		pivot = devaToSLP(text)
	}
	switch to {
	case IAST:
		return slpToRoman(pivot, slpToIAST)
	case HarvardKyoto:
		return slpToRoman(pivot, slpToHK)
	case Devanagari:
		return slpToDeva(pivot)
	}
	return pivot
}

// maxRomanToken bounds greedy matching; the longest spellings are the
// three-byte HK "lRR" and the UTF-8 forms of IAST vowels with macrons.
const maxRomanToken = 4

// romanToSLP decodes a romanization by greedy longest-token matching.
func romanToSLP(text string, table map[string]byte) string {
	var b strings.Builder
	for i := 0; i < len(text); {
		matched := false
		limit := maxRomanToken
		if rest := len(text) - i; rest < limit {
			limit = rest
		}
		for n := limit; n > 0; n-- {
			if c, ok := table[text[i:i+n]]; ok {
				b.WriteByte(c)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}

func slpToRoman(text string, table map[byte]string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if out, ok := table[text[i]]; ok {
			b.WriteString(out)
		} else {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// slpToDeva encodes SLP1 as Devanagari: a consonant carries an inherent a,
// so a following vowel becomes a mātrā (nothing for a itself) and a
// consonant not followed by a vowel takes a virāma.
func slpToDeva(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if cons, ok := slpToDevaConsonant[c]; ok {
			b.WriteRune(cons)
			if i+1 < len(text) && strings.IndexByte(slpVowels, text[i+1]) >= 0 {
				v := text[i+1]
				i++
				if v != 'a' {
					b.WriteRune(slpToDevaMatra[v])
				}
				continue
			}
			b.WriteRune(virama)
			continue
		}
		if v, ok := slpToDevaVowel[c]; ok {
			b.WriteRune(v)
			continue
		}
		if s, ok := slpToDevaSign[c]; ok {
			b.WriteRune(s)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// devaToSLP decodes Devanagari: a consonant letter emits its inherent a
// unless a mātrā or virāma follows.
func devaToSLP(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if c, ok := devaConsonantToSLP[r]; ok {
			b.WriteByte(c)
			if i+1 < len(runes) {
				next := runes[i+1]
				if next == virama {
					i++
					continue
				}
				if m, ok := devaMatraToSLP[next]; ok {
					b.WriteByte(m)
					i++
					continue
				}
			}
			b.WriteByte('a')
			continue
		}
		if v, ok := devaVowelToSLP[r]; ok {
			b.WriteByte(v)
			continue
		}
		if s, ok := devaSignToSLP[r]; ok {
			b.WriteByte(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
