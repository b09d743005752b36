// Package prakriya derives Sanskrit word forms by term rewriting.
//
// A derivation (prakriyā) starts from a short slice of tagged terms, a stem or
// root plus the affixes the caller selected, and is rewritten to a surface
// form by a rank-ordered rule engine. Every rule that fires appends a step to
// the derivation history, so the finished Prakriya is both the answer and the
// evidence: Text returns the word, History returns the numbered rules that
// built it in order with a surface snapshot after each.
//
// DeriveSubanta and DeriveTinanta are the two entry points. All text is SLP1;
// transliteration belongs to package lipi.
package prakriya

import "strings"

// Step records one rule application: the rule that fired and the concatenated
// surface text immediately after it.
type Step struct {
	Rule   string `json:"rule"`
	Result string `json:"result"`
}

// Prakriya is the mutable state of one derivation.
type Prakriya struct {
	terms   []Term
	history []Step
}

// New starts a derivation from the given terms.
func New(terms ...Term) *Prakriya {
	p := &Prakriya{terms: make([]Term, len(terms))}
	copy(p.terms, terms)
	return p
}

// Len returns the number of terms, elided ones included.
func (p *Prakriya) Len() int {
	return len(p.terms)
}

// At returns the term at index i, or nil when i is out of range.
func (p *Prakriya) At(i int) *Term {
	if i < 0 || i >= len(p.terms) {
		return nil
	}
	return &p.terms[i]
}

// Terms returns a copy of the current terms.
func (p *Prakriya) Terms() []Term {
	out := make([]Term, len(p.terms))
	copy(out, p.terms)
	return out
}

// FindFirst returns the index and term of the first term carrying tag,
// or -1 and nil.
func (p *Prakriya) FindFirst(tag Tag) (int, *Term) {
	for i := range p.terms {
		if p.terms[i].HasTag(tag) {
			return i, &p.terms[i]
		}
	}
	return -1, nil
}

// FindLast returns the index and term of the last term carrying tag,
// or -1 and nil.
func (p *Prakriya) FindLast(tag Tag) (int, *Term) {
	for i := len(p.terms) - 1; i >= 0; i-- {
		if p.terms[i].HasTag(tag) {
			return i, &p.terms[i]
		}
	}
	return -1, nil
}

// SetText replaces the text of the term at i. Out-of-range indices are
// ignored.
func (p *Prakriya) SetText(i int, s string) {
	if t := p.At(i); t != nil {
		t.Text = s
	}
}

// Insert places t before index i; i == Len appends.
func (p *Prakriya) Insert(i int, t Term) {
	if i < 0 || i > len(p.terms) {
		return
	}
	p.terms = append(p.terms, Term{})
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = t
}

// Remove deletes the term at i.
func (p *Prakriya) Remove(i int) {
	if i < 0 || i >= len(p.terms) {
		return
	}
	p.terms = append(p.terms[:i], p.terms[i+1:]...)
}

// Text returns the concatenated text of all terms.
func (p *Prakriya) Text() string {
	var b strings.Builder
	for i := range p.terms {
		b.WriteString(p.terms[i].Text)
	}
	return b.String()
}

// Step appends a history entry for rule with the current surface text.
func (p *Prakriya) Step(rule string) {
	p.history = append(p.history, Step{Rule: rule, Result: p.Text()})
}

// History returns a copy of the recorded steps.
func (p *Prakriya) History() []Step {
	out := make([]Step, len(p.history))
	copy(out, p.history)
	return out
}

// prevNonempty returns the index of the closest non-elided term before i,
// or -1.
func (p *Prakriya) prevNonempty(i int) int {
	for j := i - 1; j >= 0; j-- {
		if p.terms[j].Text != "" {
			return j
		}
	}
	return -1
}

// nextNonempty returns the index of the closest non-elided term after i,
// or -1.
func (p *Prakriya) nextNonempty(i int) int {
	for j := i + 1; j < len(p.terms); j++ {
		if p.terms[j].Text != "" {
			return j
		}
	}
	return -1
}

// lastNonempty returns the index of the final non-elided term, or -1.
func (p *Prakriya) lastNonempty() int {
	for j := len(p.terms) - 1; j >= 0; j-- {
		if p.terms[j].Text != "" {
			return j
		}
	}
	return -1
}
