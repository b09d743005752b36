package prakriya

import (
	"strings"

	"github.com/cours-de-sanskrit/vedyut/sandhi"
	"github.com/cours-de-sanskrit/vedyut/sounds"
)

// Vowel junction within a derivation. Each rule below covers one category of
// ac-sandhi and rewrites the first boundary it matches: the left term absorbs
// the junction output from sandhi.JoinVowels and the right term loses its
// initial vowel. Pipeline-specific exceptions (pūrvasavarṇa, pararūpa and
// friends) run at lower ranks, so by the time these fire the boundary really
// is a general one.

// joinAt applies the shared vowel table at the boundary between terms i and j.
// The right term loses its taught initial, so it is marked adeśa: rules keyed
// on an affix's upadeśa shape must not read its text after this.
func (p *Prakriya) joinAt(i, j int) {
	left, right := &p.terms[i], &p.terms[j]
	joined, _ := sandhi.JoinVowels(left.Antya(), right.Adi())
	left.Text = left.Text[:len(left.Text)-1] + joined
	right.Text = right.Text[1:]
	right.AddTag(TagAdesha)
}

// eachBoundary calls f for each adjacent pair of non-elided terms until f
// returns true.
func (p *Prakriya) eachBoundary(f func(i, j int) bool) bool {
	for i := range p.terms {
		if p.terms[i].Text == "" {
			continue
		}
		j := p.nextNonempty(i)
		if j < 0 {
			return false
		}
		if f(i, j) {
			return true
		}
	}
	return false
}

func junctionRules() []Rule {
	return []Rule{
		{
			ID: "6.1.101", Name: "akaḥ savarṇe dīrghaḥ", Rank: 430,
			Apply: func(p *Prakriya) bool {
				return p.eachBoundary(func(i, j int) bool {
					if !sounds.IsSavarna(p.terms[i].Antya(), p.terms[j].Adi()) {
						return false
					}
					p.joinAt(i, j)
					return true
				})
			},
		},
		{
			ID: "6.1.87", Name: "ād guṇaḥ", Rank: 430,
			Apply: func(p *Prakriya) bool {
				return p.eachBoundary(func(i, j int) bool {
					l, r := p.terms[i].Antya(), p.terms[j].Adi()
					if (l != 'a' && l != 'A') || !sounds.IsIk(r) {
						return false
					}
					p.joinAt(i, j)
					return true
				})
			},
		},
		{
			ID: "6.1.88", Name: "vṛddhir eci", Rank: 430,
			Apply: func(p *Prakriya) bool {
				return p.eachBoundary(func(i, j int) bool {
					l, r := p.terms[i].Antya(), p.terms[j].Adi()
					if (l != 'a' && l != 'A') || !sounds.IsEc(r) {
						return false
					}
					p.joinAt(i, j)
					return true
				})
			},
		},
		{
			ID: "6.1.77", Name: "iko yaṇ aci", Rank: 430,
			Apply: func(p *Prakriya) bool {
				return p.eachBoundary(func(i, j int) bool {
					l, r := p.terms[i].Antya(), p.terms[j].Adi()
					if !sounds.IsIk(l) || !sounds.IsVowel(r) || sounds.IsSavarna(l, r) {
						return false
					}
					p.joinAt(i, j)
					return true
				})
			},
		},
		{
			ID: "6.1.78", Name: "eco 'yavāyāvaḥ", Rank: 430,
			Apply: func(p *Prakriya) bool {
				return p.eachBoundary(func(i, j int) bool {
					l, r := p.terms[i].Antya(), p.terms[j].Adi()
					if !sounds.IsEc(l) || !sounds.IsVowel(r) {
						return false
					}
					p.joinAt(i, j)
					return true
				})
			},
		},
	}
}

// Tripādī: surface rules applied once the word is otherwise assembled. They
// run in their own engine after the main engine saturates, mirroring the
// asiddha status of the last three pādas: text they write (r for word-final
// s, ṇ for n) is invisible to every earlier rule, so it can never be taken
// for an it marker or a fresh vowel boundary. The ranks order the tripādī
// internally.
func tripadiRules() []Rule {
	return []Rule{
		{
			ID: "8.2.66", Name: "sasajuṣo ruḥ", Rank: 600,
			Apply: func(p *Prakriya) bool {
				j := p.lastNonempty()
				if j < 0 || p.terms[j].Antya() != 's' {
					return false
				}
				t := &p.terms[j]
				t.Text = t.Text[:len(t.Text)-1] + "r"
				return true
			},
		},
		{
			ID: "8.3.15", Name: "kharavasānayor visarjanīyaḥ", Rank: 605,
			Apply: func(p *Prakriya) bool {
				j := p.lastNonempty()
				if j < 0 || p.terms[j].Antya() != 'r' {
					return false
				}
				t := &p.terms[j]
				t.Text = t.Text[:len(t.Text)-1] + "H"
				return true
			},
		},
		{
			ID: "8.3.59", Name: "ādeśapratyayayoḥ", Rank: 620,
			Apply: func(p *Prakriya) bool {
				for i := 1; i < len(p.terms); i++ {
					t := &p.terms[i]
					if !t.HasTag(TagPratyaya) || t.Adi() != 's' {
						continue
					}
					j := p.prevNonempty(i)
					if j < 0 || !sounds.IsIN(p.terms[j].Antya()) {
						continue
					}
					t.Text = "z" + t.Text[1:]
					return true
				}
				return false
			},
		},
		{
			ID: "8.4.2", Name: "aṭkupvāṅnumvyavāye 'pi", Rank: 630,
			Apply: natva,
		},
	}
}

var tripadiEngine = NewEngine(tripadiRules())

// natva retroflexes n to ṇ after a prior r, ṣ, ṛ, or ṝ in the same word when
// only transparent sounds intervene. The n must not be word-final and must be
// followed by a vowel or by n, m, y, v.
func natva(p *Prakriya) bool {
	full := p.Text()
	for pos := 0; pos+1 < len(full); pos++ {
		if full[pos] != 'n' {
			continue
		}
		next := full[pos+1]
		if !sounds.IsVowel(next) && strings.IndexByte("nmyv", next) < 0 {
			continue
		}
		triggered := false
		for k := pos - 1; k >= 0; k-- {
			if sounds.IsNatvaTrigger(full[k]) {
				triggered = true
				break
			}
			if !sounds.IsNatvaTransparent(full[k]) {
				break
			}
		}
		if !triggered {
			continue
		}
		// Rewrite the n inside whichever term owns this offset.
		off := 0
		for i := range p.terms {
			t := &p.terms[i]
			if pos < off+len(t.Text) {
				k := pos - off
				t.Text = t.Text[:k] + "R" + t.Text[k+1:]
				return true
			}
			off += len(t.Text)
		}
	}
	return false
}
