package prakriya

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cours-de-sanskrit/vedyut/sounds"
)

// supTable holds the sup endings in upadeśa form, case-major. The vocative
// reuses the first row.
var supTable = [7][3]string{
	{"su~", "O", "jas"},
	{"am", "Ow", "Sas"},
	{"wA", "ByAm", "Bis"},
	{"Ne", "ByAm", "Byas"},
	{"Nasi~", "ByAm", "Byas"},
	{"Nas", "os", "Am"},
	{"Ni", "os", "sup"},
}

var vibhaktiTags = [...]Tag{TagV1, TagV2, TagV3, TagV4, TagV5, TagV6, TagV7, TagV1}

var vacanaTags = [...]Tag{TagEkavacana, TagDvivacana, TagBahuvacana}

// yanjInitials are the yañ sounds; a-stems lengthen before a sup starting
// with one (7.3.102).
const yanjInitials = "yvrlYmNRnJB"

// supPair locates the stem and ending of a nominal derivation.
func supPair(p *Prakriya) (*Term, *Term) {
	_, stem := p.FindFirst(TagPratipadika)
	_, sup := p.FindFirst(TagSup)
	return stem, sup
}

// isAStem reports whether the stem still ends in short a.
func isAStem(stem *Term) bool {
	return stem != nil && stem.Antya() == 'a'
}

// isGhi reports whether the stem is ghi (1.4.7): final short i or u.
func isGhi(stem *Term) bool {
	if stem == nil {
		return false
	}
	return stem.Antya() == 'i' || stem.Antya() == 'u'
}

func subantaRules() []Rule {
	rules := []Rule{
		{
			ID: "7.1.9", Name: "ato bhisa ais", Rank: 100,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isAStem(stem) || sup == nil || sup.Text != "Bis" {
					return false
				}
				sup.SetText("Es")
				return true
			},
		},
		{
			ID: "7.1.12", Name: "ṭāṅasiṅasām inātsyāḥ", Rank: 100,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isAStem(stem) || sup == nil {
					return false
				}
				switch sup.Text {
				case "wA":
					sup.SetText("ina")
				case "Nasi~":
					sup.SetText("At")
				case "Nas":
					sup.SetText("sya")
				default:
					return false
				}
				return true
			},
		},
		{
			ID: "7.1.13", Name: "ṅer yaḥ", Rank: 100,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isAStem(stem) || sup == nil || sup.Text != "Ne" {
					return false
				}
				sup.SetText("ya")
				return true
			},
		},
		{
			ID: "7.3.119", Name: "ac ca gheḥ", Rank: 100,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isGhi(stem) || sup == nil || sup.Text != "Ni" {
					return false
				}
				stem.SetText(stem.Text[:len(stem.Text)-1])
				sup.SetText("O")
				return true
			},
		},
		{
			ID: "7.3.120", Name: "āṅo nāstriyām", Rank: 100,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isGhi(stem) || sup == nil || sup.Text != "wA" {
					return false
				}
				sup.SetText("nA")
				return true
			},
		},
		{
			ID: "7.1.54", Name: "hrasvanadyāpo nuṭ", Rank: 150,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if stem == nil || sup == nil || sup.Text != "Am" {
					return false
				}
				if !sounds.IsShortVowel(stem.Antya()) {
					return false
				}
				sup.SetText("nAm")
				return true
			},
		},
		{
			ID: "7.3.108", Name: "hrasvasya guṇaḥ", Rank: 300,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isGhi(stem) || stem.HasTag(TagGuna) {
					return false
				}
				if sup == nil || !sup.HasTag(TagSambuddhi) {
					return false
				}
				gunate(stem)
				return true
			},
		},
		{
			ID: "7.3.109", Name: "jasi ca", Rank: 300,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isGhi(stem) || stem.HasTag(TagGuna) {
					return false
				}
				if sup == nil || !sup.HasTag(TagV1) || !sup.HasTag(TagBahuvacana) {
					return false
				}
				gunate(stem)
				return true
			},
		},
		{
			ID: "7.3.111", Name: "gher ṅiti", Rank: 300,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isGhi(stem) || stem.HasTag(TagGuna) {
					return false
				}
				if sup == nil || !sup.HasTag(TagNit) {
					return false
				}
				gunate(stem)
				return true
			},
		},
		{
			ID: "7.3.103", Name: "bahuvacane jhaly et", Rank: 340,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isAStem(stem) || sup == nil {
					return false
				}
				if !sup.HasTag(TagBahuvacana) || !sounds.IsJhal(sup.Adi()) {
					return false
				}
				stem.SetText(stem.Text[:len(stem.Text)-1] + "e")
				return true
			},
		},
		{
			ID: "7.3.104", Name: "osi ca", Rank: 340,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isAStem(stem) || sup == nil || sup.Text != "os" {
					return false
				}
				stem.SetText(stem.Text[:len(stem.Text)-1] + "e")
				return true
			},
		},
		{
			ID: "7.3.102", Name: "supi ca", Rank: 350,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if !isAStem(stem) || sup == nil || sup.HasTag(TagAdesha) {
					return false
				}
				if strings.IndexByte(yanjInitials, sup.Adi()) < 0 {
					return false
				}
				stem.SetText(stem.Text[:len(stem.Text)-1] + "A")
				return true
			},
		},
		{
			ID: "6.4.3", Name: "nāmi", Rank: 350,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if stem == nil || sup == nil || sup.Text != "nAm" {
					return false
				}
				last := stem.Antya()
				if !sounds.IsShortVowel(last) {
					return false
				}
				stem.SetText(stem.Text[:len(stem.Text)-1] + string(sounds.Dirgha(last)))
				return true
			},
		},
		{
			ID: "6.1.107", Name: "ami pūrvaḥ", Rank: 400,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if stem == nil || sup == nil || sup.Text != "am" {
					return false
				}
				if !sounds.IsVowel(stem.Antya()) {
					return false
				}
				// The surviving m is an ekādeśa residue, not the taught am;
				// without the mark 7.3.102 would read it as a yañ initial.
				sup.SetText("m")
				sup.AddTag(TagAdesha)
				return true
			},
		},
		{
			ID: "6.1.102", Name: "prathamayoḥ pūrvasavarṇaḥ", Rank: 405,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if stem == nil || sup == nil {
					return false
				}
				if !sup.HasTag(TagV1) && !sup.HasTag(TagV2) {
					return false
				}
				last, first := stem.Antya(), sup.Adi()
				if !isAk(last) || !sounds.IsVowel(first) {
					return false
				}
				// 6.1.104 nādici: after a, a following ic takes vṛddhi instead.
				if (last == 'a' || last == 'A') && first != 'a' && first != 'A' {
					return false
				}
				stem.SetText(stem.Text[:len(stem.Text)-1] + string(sounds.Dirgha(last)))
				sup.SetText(sup.Text[1:])
				return true
			},
		},
		{
			ID: "6.1.110", Name: "ṅasiṅasoś ca", Rank: 410,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if stem == nil || sup == nil {
					return false
				}
				if !sup.HasTag(TagNit) || sup.Adi() != 'a' {
					return false
				}
				last := stem.Antya()
				if (last != 'e' && last != 'o') || !stem.HasTag(TagGuna) {
					return false
				}
				sup.SetText(sup.Text[1:])
				return true
			},
		},
		{
			ID: "6.1.69", Name: "eṅhrasvāt sambuddheḥ", Rank: 415,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if stem == nil || sup == nil {
					return false
				}
				if !sup.HasTag(TagSambuddhi) || sup.Text != "s" {
					return false
				}
				switch stem.Antya() {
				case 'a', 'e', 'o':
					sup.SetText("")
					return true
				}
				return false
			},
		},
		{
			ID: "6.1.103", Name: "tasmāc chaso naḥ puṃsi", Rank: 440,
			Apply: func(p *Prakriya) bool {
				stem, sup := supPair(p)
				if stem == nil || sup == nil || sup.Text != "s" {
					return false
				}
				if !sup.HasTag(TagV2) || !sup.HasTag(TagBahuvacana) {
					return false
				}
				if !stem.HasTag(TagPum) {
					return false
				}
				sup.SetText("n")
				return true
			},
		},
	}
	rules = append(rules, itRules()...)
	rules = append(rules, junctionRules()...)
	return rules
}

// gunate replaces the stem-final vowel with its guṇa and records the change.
func gunate(t *Term) {
	t.Text = t.Text[:len(t.Text)-1] + sounds.Guna(t.Antya())
	t.AddTag(TagGuna)
}

func isAk(c byte) bool {
	return strings.IndexByte("aAiIuUfFxX", c) >= 0
}

var subantaEngine = NewEngine(subantaRules())

// DeriveSubanta inflects a nominal stem for one case and number and returns
// the finished derivation. Supported stems are masculine vowel stems in
// short a, i, or u; anything else reports UnsupportedError. A case or number
// outside the paradigm reports ErrNoSuchInflection.
func DeriveSubanta(stem string, v Vibhakti, n Vacana) (*Prakriya, error) {
	if v < Prathama || v > Sambodhana {
		return nil, errors.Wrapf(ErrNoSuchInflection, "vibhakti %d", int(v))
	}
	if n < Ekavacana || n > Bahuvacana {
		return nil, errors.Wrapf(ErrNoSuchInflection, "vacana %d", int(n))
	}
	if stem == "" {
		return nil, unsupported("stem", stem)
	}
	switch stem[len(stem)-1] {
	case 'a', 'i', 'u':
	default:
		return nil, unsupported("stem", stem)
	}

	row := v
	if v == Sambodhana {
		row = Prathama
	}
	sup := Make(supTable[row][n], TagSup, TagPratyaya, vibhaktiTags[v], vacanaTags[n])
	if v == Sambodhana && n == Ekavacana {
		sup.AddTag(TagSambuddhi)
	}

	p := New(Make(stem, TagPratipadika, TagPum), sup)
	subantaEngine.Run(p)
	tripadiEngine.Run(p)
	return p, nil
}
