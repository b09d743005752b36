// Package sounds defines the SLP1 phoneme alphabet used throughout vedyut:
// one ASCII byte per Sanskrit sound, with classification predicates and the
// vowel-grade tables (dīrgha, guṇa, vṛddhi, semivowel) that the sandhi and
// prakriya packages share.
//
// Bytes outside the alphabet are inert: predicates return false and
// transformations return their input unchanged. Enforcing the alphabet is the
// transliteration layer's job, not this package's.
package sounds

import "strings"

// Vowels holds all SLP1 vowels, short and long, simple and complex.
const Vowels = "aAiIuUfFxXeEoO"

// ShortVowels are the hrasva (one-mātrā) vowels.
const ShortVowels = "aiufx"

// LongVowels are the dīrgha and compound vowels.
const LongVowels = "AIUFeEoO"

// Consonants holds every SLP1 consonant, stops through sibilants and h.
const Consonants = "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh"

// Stops are the 25 sparśa consonants, in varga order.
const Stops = "kKgGNcCjJYwWqQRtTdDnpPbBm"

// Semivowels are the antaḥstha sounds.
const Semivowels = "yrlv"

// Sibilants are the ūṣman sounds (excluding h).
const Sibilants = "Szs"

// IsVowel reports whether c is an SLP1 vowel.
func IsVowel(c byte) bool {
	return strings.IndexByte(Vowels, c) >= 0
}

// IsShortVowel reports whether c is a hrasva vowel.
func IsShortVowel(c byte) bool {
	return strings.IndexByte(ShortVowels, c) >= 0
}

// IsLongVowel reports whether c is a dīrgha or compound vowel.
func IsLongVowel(c byte) bool {
	return strings.IndexByte(LongVowels, c) >= 0
}

// IsConsonant reports whether c is an SLP1 consonant.
func IsConsonant(c byte) bool {
	return strings.IndexByte(Consonants, c) >= 0
}

// IsIk reports whether c belongs to the ik pratyāhāra (i, u, ṛ, ḷ and their
// long grades), the vowels replaced by semivowels before dissimilar vowels
// and strengthened by guṇa.
func IsIk(c byte) bool {
	return strings.IndexByte("iIuUfFxX", c) >= 0
}

// IsEc reports whether c belongs to the ec pratyāhāra (e, ai, o, au).
func IsEc(c byte) bool {
	return strings.IndexByte("eEoO", c) >= 0
}

// savarna maps every simple vowel to its quality class representative.
var savarna = map[byte]byte{
	'a': 'a', 'A': 'a',
	'i': 'i', 'I': 'i',
	'u': 'u', 'U': 'u',
	'f': 'f', 'F': 'f',
	'x': 'x', 'X': 'x',
}

// IsSavarna reports whether vowels a and b share a quality class
// (length ignored). Compound vowels are savarṇa with nothing.
func IsSavarna(a, b byte) bool {
	ca, ok := savarna[a]
	if !ok {
		return false
	}
	cb, ok := savarna[b]
	return ok && ca == cb
}

// Dirgha returns the long grade of a simple vowel, or c unchanged.
func Dirgha(c byte) byte {
	switch c {
	case 'a', 'A':
		return 'A'
	case 'i', 'I':
		return 'I'
	case 'u', 'U':
		return 'U'
	case 'f', 'F':
		return 'F'
	case 'x', 'X':
		return 'X'
	}
	return c
}

// Guna returns the guṇa grade of a vowel as a string, since the guṇa of
// ṛ and ḷ is two sounds (ar, al). a is its own guṇa.
func Guna(c byte) string {
	switch c {
	case 'a', 'A':
		return "a"
	case 'i', 'I':
		return "e"
	case 'u', 'U':
		return "o"
	case 'f', 'F':
		return "ar"
	case 'x', 'X':
		return "al"
	}
	return string(c)
}

// Vrddhi returns the vṛddhi grade of a vowel as a string.
func Vrddhi(c byte) string {
	switch c {
	case 'a', 'A':
		return "A"
	case 'i', 'I', 'e', 'E':
		return "E"
	case 'u', 'U', 'o', 'O':
		return "O"
	case 'f', 'F':
		return "Ar"
	case 'x', 'X':
		return "Al"
	}
	return string(c)
}

// Semivowel returns the yaṇ substitute for an ik vowel, or 0 when c has none.
func Semivowel(c byte) byte {
	switch c {
	case 'i', 'I':
		return 'y'
	case 'u', 'U':
		return 'v'
	case 'f', 'F':
		return 'r'
	case 'x', 'X':
		return 'l'
	}
	return 0
}

// Ayadi returns the ay/av/āy/āv substitute for an ec vowel, or "" when c is
// not ec.
func Ayadi(c byte) string {
	switch c {
	case 'e':
		return "ay"
	case 'o':
		return "av"
	case 'E':
		return "Ay"
	case 'O':
		return "Av"
	}
	return ""
}

// voicedOf pairs each unvoiced stop with the unaspirated voiced stop of its
// varga (the jaś substitute).
var voicedOf = map[byte]byte{
	'k': 'g', 'K': 'g', 'g': 'g', 'G': 'g',
	'c': 'j', 'C': 'j', 'j': 'j', 'J': 'j',
	'w': 'q', 'W': 'q', 'q': 'q', 'Q': 'q',
	't': 'd', 'T': 'd', 'd': 'd', 'D': 'd',
	'p': 'b', 'P': 'b', 'b': 'b', 'B': 'b',
}

// unvoicedOf maps each stop to the plain unvoiced stop of its varga
// (the car substitute).
var unvoicedOf = map[byte]byte{
	'k': 'k', 'K': 'k', 'g': 'k', 'G': 'k',
	'c': 'c', 'C': 'c', 'j': 'c', 'J': 'c',
	'w': 'w', 'W': 'w', 'q': 'w', 'Q': 'w',
	't': 't', 'T': 't', 'd': 't', 'D': 't',
	'p': 'p', 'P': 'p', 'b': 'p', 'B': 'p',
}

// Jash returns the voiced unaspirated counterpart of a stop, or c unchanged.
func Jash(c byte) byte {
	if v, ok := voicedOf[c]; ok {
		return v
	}
	return c
}

// Car returns the unvoiced unaspirated counterpart of a stop, or c unchanged.
func Car(c byte) byte {
	if v, ok := unvoicedOf[c]; ok {
		return v
	}
	return c
}

// IsVoiced reports whether c is a voiced sound (vowel, voiced stop, nasal,
// semivowel, or h).
func IsVoiced(c byte) bool {
	if IsVowel(c) {
		return true
	}
	return strings.IndexByte("gGNjJYqQRdDnbBmyrlvh", c) >= 0
}

// IsUnvoicedStop reports whether c is an unvoiced stop (the khar stops).
func IsUnvoicedStop(c byte) bool {
	return strings.IndexByte("kKcCwWtTpP", c) >= 0
}

// IsJhal reports whether c belongs to the jhal pratyāhāra: every consonant
// except the nasals and semivowels.
func IsJhal(c byte) bool {
	return IsConsonant(c) && strings.IndexByte("NYRnmyrlv", c) < 0
}

// IsIN reports whether c belongs to the iṇ set that triggers retroflexion of
// a following dental s (vowels other than a/ā, plus k-varga and r):
// the ṣatva trigger of 8.3.57 iṇkoḥ.
func IsIN(c byte) bool {
	return strings.IndexByte("iIuUfFxXeEoOkKgGNr", c) >= 0
}

// natvaTrigger holds the sounds after which a following n retroflexes
// (r, ṣ, ṛ, ṝ, per 8.4.1-2).
const natvaTrigger = "rzfF"

// IsNatvaTrigger reports whether c starts a ṇatva context.
func IsNatvaTrigger(c byte) bool {
	return strings.IndexByte(natvaTrigger, c) >= 0
}

// natvaTransparent holds the sounds that may intervene between a ṇatva
// trigger and the n without blocking it: vowels, k-varga, p-varga, y, v, h
// and anusvāra (8.4.2 aṭkupvāṅnum).
const natvaTransparent = Vowels + "kKgGNpPbBmyvhM"

// IsNatvaTransparent reports whether c lets a ṇatva context pass through it.
func IsNatvaTransparent(c byte) bool {
	return strings.IndexByte(natvaTransparent, c) >= 0
}
