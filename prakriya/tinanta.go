package prakriya

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cours-de-sanskrit/vedyut/sounds"
)

// vikaranas maps each supported gaṇa to the vikaraṇa taught between root and
// ending. Curādi takes ṇic first and then the śap of an ordinary thematic
// verb.
var vikaranas = map[Gana]string{
	Bhvadi: "Sap",
	Divadi: "Syan",
	Tudadi: "Sa",
	Curadi: "Sap",
}

// tinTables holds the parasmaipada endings per lakāra, person-major in the
// traditional order (prathama first). The laṭ row is upadeśa; laṅ and loṭ
// carry the forms after the lakāra's own ending substitutions.
var tinTables = map[Lakara][3][3]string{
	Lat: {
		{"tip", "tas", "Ji"},
		{"sip", "Tas", "Ta"},
		{"mip", "vas", "mas"},
	},
	Lan: {
		{"t", "tAm", "an"},
		{"s", "tam", "ta"},
		{"am", "va", "ma"},
	},
	Lot: {
		{"tu", "tAm", "antu"},
		{"hi", "tam", "ta"},
		{"Ani", "Ava", "Ama"},
	},
}

func tinantaRules(la Lakara) []Rule {
	rules := []Rule{
		{
			ID: "7.1.3", Name: "jho 'ntaḥ", Rank: 100,
			Apply: func(p *Prakriya) bool {
				_, tin := p.FindFirst(TagTin)
				if tin == nil || !strings.Contains(tin.Text, "J") {
					return false
				}
				tin.SetText(strings.Replace(tin.Text, "J", "ant", 1))
				return true
			},
		},
		{
			ID: "7.3.84", Name: "sārvadhātukārdhadhātukayoḥ", Rank: 300,
			Apply: func(p *Prakriya) bool {
				for i := range p.terms {
					t := &p.terms[i]
					if t.HasTag(TagGuna) || !sounds.IsIk(t.Antya()) {
						continue
					}
					if !gunaTrigger(p, i) {
						continue
					}
					t.Text = t.Text[:len(t.Text)-1] + sounds.Guna(t.Antya())
					t.AddTag(TagGuna)
					return true
				}
				return false
			},
		},
		{
			ID: "7.3.86", Name: "pugantalaghūpadhasya ca", Rank: 300,
			Apply: func(p *Prakriya) bool {
				for i := range p.terms {
					t := &p.terms[i]
					if t.HasTag(TagGuna) || len(t.Text) < 2 {
						continue
					}
					if !sounds.IsConsonant(t.Antya()) {
						continue
					}
					penult := t.Text[len(t.Text)-2]
					if !sounds.IsShortVowel(penult) || penult == 'a' {
						continue
					}
					if !gunaTrigger(p, i) {
						continue
					}
					t.Text = t.Text[:len(t.Text)-2] + sounds.Guna(penult) + t.Text[len(t.Text)-1:]
					t.AddTag(TagGuna)
					return true
				}
				return false
			},
		},
		{
			ID: "6.4.105", Name: "ato heḥ", Rank: 310,
			Apply: func(p *Prakriya) bool {
				i, tin := p.FindFirst(TagTin)
				if tin == nil || tin.Text != "hi" {
					return false
				}
				j := p.prevNonempty(i)
				if j < 0 || p.terms[j].Antya() != 'a' {
					return false
				}
				p.Remove(i)
				return true
			},
		},
		{
			ID: "7.3.101", Name: "ato dīrgho yañi", Rank: 350,
			Apply: func(p *Prakriya) bool {
				i, tin := p.FindFirst(TagTin)
				if tin == nil || !tin.HasTag(TagSarvadhatuka) || tin.HasTag(TagAdesha) {
					return false
				}
				if tin.Adi() != 'm' && tin.Adi() != 'v' {
					return false
				}
				j := p.prevNonempty(i)
				if j < 0 || p.terms[j].Antya() != 'a' {
					return false
				}
				prev := &p.terms[j]
				prev.Text = prev.Text[:len(prev.Text)-1] + "A"
				return true
			},
		},
		{
			ID: "6.1.97", Name: "ato guṇe", Rank: 410,
			Apply: func(p *Prakriya) bool {
				i, tin := p.FindFirst(TagTin)
				if tin == nil || tin.Adi() != 'a' {
					return false
				}
				j := p.prevNonempty(i)
				if j < 0 || p.terms[j].Antya() != 'a' {
					return false
				}
				prev := &p.terms[j]
				prev.Text = prev.Text[:len(prev.Text)-1]
				return true
			},
		},
	}
	if la == Lan {
		rules = append(rules, Rule{
			ID: "6.4.71", Name: "luṅlaṅlṛṅkṣv aḍ udāttaḥ", Rank: 150,
			Apply: func(p *Prakriya) bool {
				if first := p.At(0); first == nil || first.HasTag(TagAgama) {
					return false
				}
				p.Insert(0, Make("a", TagAgama))
				return true
			},
		})
	}
	rules = append(rules, itRules()...)
	rules = append(rules, junctionRules()...)
	return rules
}

// gunaTrigger reports whether the term after i conditions guṇa of the aṅga:
// a pit vikaraṇa, or ṇic.
func gunaTrigger(p *Prakriya, i int) bool {
	j := p.nextNonempty(i)
	if j < 0 {
		return false
	}
	next := &p.terms[j]
	if next.HasTag(TagVikarana) && next.HasTag(TagPit) {
		return true
	}
	return next.HasTag(TagNic)
}

var tinEngines = map[Lakara]*Engine{
	Lat: NewEngine(tinantaRules(Lat)),
	Lan: NewEngine(tinantaRules(Lan)),
	Lot: NewEngine(tinantaRules(Lot)),
}

// DeriveTinanta conjugates a root for one person and number of a lakāra and
// returns the finished derivation. Supported are the parasmaipada of the
// thematic gaṇas (1, 4, 6, 10) in laṭ, laṅ, and loṭ; other gaṇas and lakāras
// report UnsupportedError. A person or number outside the paradigm reports
// ErrNoSuchInflection.
func DeriveTinanta(d Dhatu, la Lakara, pu Purusha, va Vacana) (*Prakriya, error) {
	if pu < PrathamaPurusha || pu > UttamaPurusha {
		return nil, errors.Wrapf(ErrNoSuchInflection, "purusha %d", int(pu))
	}
	if va < Ekavacana || va > Bahuvacana {
		return nil, errors.Wrapf(ErrNoSuchInflection, "vacana %d", int(va))
	}
	if d.Text == "" {
		return nil, unsupported("dhatu", d.Text)
	}
	engine, ok := tinEngines[la]
	if !ok {
		return nil, unsupported("lakara", la.String())
	}
	vik, ok := vikaranas[d.Gana]
	if !ok {
		return nil, unsupported("gana", d.Gana.String())
	}

	terms := []Term{Make(d.Text, TagDhatu)}
	if d.Gana == Curadi {
		terms = append(terms, Make("Ric", TagPratyaya, TagNic, TagArdhadhatuka))
	}
	terms = append(terms,
		Make(vik, TagVikarana, TagPratyaya, TagSarvadhatuka),
		Make(tinTables[la][pu][va], TagTin, TagPratyaya, TagSarvadhatuka,
			TagParasmaipada, vacanaTags[va]))

	p := New(terms...)
	engine.Run(p)
	tripadiEngine.Run(p)
	return p, nil
}
