package prakriya

import (
	"strings"

	"github.com/cours-de-sanskrit/vedyut/sounds"
)

// It-saṃjñā: affixes are taught with marker sounds (it) that encode grammar
// but never surface. The rules below find the markers on Pratyaya terms,
// record the tags they stand for, and elide them (1.3.9 tasya lopaḥ is folded
// into each rule). Only upadeśa text may be read as markers: vibhakti endings
// keep their final t, th, d, dh, n, s, and m (1.3.4 na vibhaktau tusmāḥ), and
// the surface rewrites of the tripādī (word-final r, retroflex ṇ) happen in a
// separate engine after this one has saturated, so these rules never see them.

// anunasikaMarker flags the preceding vowel as nasalized in upadeśa text.
const anunasikaMarker = '~'

// cutuInitials are the affix-initial it sounds of 1.3.7 (the c and ṭ vargas).
const cutuInitials = "cCjJYwWqQR"

// lashakuInitials are the affix-initial it sounds of 1.3.8 (l, ś, k varga).
const lashakuInitials = "lSkKgGN"

// protectedFinals are the sounds 1.3.4 exempts from halantyam in a vibhakti.
const protectedFinals = "tTdDnsm"

func itRules() []Rule {
	return []Rule{
		{
			ID: "1.3.2", Name: "upadeśe 'j anunāsika it", Rank: 200,
			Apply: func(p *Prakriya) bool {
				for i := range p.terms {
					t := &p.terms[i]
					if !t.HasTag(TagPratyaya) {
						continue
					}
					j := strings.IndexByte(t.Text, anunasikaMarker)
					if j < 1 {
						continue
					}
					t.Text = t.Text[:j-1] + t.Text[j+1:]
					return true
				}
				return false
			},
		},
		{
			ID: "1.3.3", Name: "halantyam", Rank: 200,
			Apply: func(p *Prakriya) bool {
				for i := range p.terms {
					t := &p.terms[i]
					if !t.HasTag(TagPratyaya) || !sounds.IsConsonant(t.Antya()) {
						continue
					}
					last := t.Antya()
					if (t.HasTag(TagSup) || t.HasTag(TagTin)) &&
						strings.IndexByte(protectedFinals, last) >= 0 {
						continue
					}
					if last == 'p' {
						t.AddTag(TagPit)
					}
					t.Text = t.Text[:len(t.Text)-1]
					return true
				}
				return false
			},
		},
		{
			ID: "1.3.7", Name: "cuṭū", Rank: 200,
			Apply: func(p *Prakriya) bool {
				for i := range p.terms {
					t := &p.terms[i]
					if !t.HasTag(TagPratyaya) {
						continue
					}
					if strings.IndexByte(cutuInitials, t.Adi()) < 0 {
						continue
					}
					t.Text = t.Text[1:]
					return true
				}
				return false
			},
		},
		{
			ID: "1.3.8", Name: "laśakv ataddhite", Rank: 200,
			Apply: func(p *Prakriya) bool {
				for i := range p.terms {
					t := &p.terms[i]
					if t.HasTag(TagTaddhita) || !t.HasTag(TagPratyaya) {
						continue
					}
					first := t.Adi()
					if strings.IndexByte(lashakuInitials, first) < 0 {
						continue
					}
					switch first {
					case 'N':
						t.AddTag(TagNit)
					case 'S':
						t.AddTag(TagSit)
					}
					t.Text = t.Text[1:]
					return true
				}
				return false
			},
		},
	}
}
