package prakriya

// Term is one tagged token in a derivation: a phoneme string in SLP1 plus the
// saṃjñās it has collected. A term's text may shrink to empty (lopa); the
// term itself stays in place so its tags remain visible to later rules.
type Term struct {
	Text string
	Tags TagSet
}

// Make builds a term from text and initial tags.
func Make(text string, tags ...Tag) Term {
	return Term{Text: text, Tags: Tags(tags...)}
}

// HasTag reports whether the term carries tag.
func (t *Term) HasTag(tag Tag) bool {
	return t.Tags.Has(tag)
}

// AddTag attaches tags to the term.
func (t *Term) AddTag(tags ...Tag) {
	for _, tag := range tags {
		t.Tags = t.Tags.With(tag)
	}
}

// SetText replaces the term's text.
func (t *Term) SetText(s string) {
	t.Text = s
}

// IsEmpty reports whether the term's text has been elided away.
func (t *Term) IsEmpty() bool {
	return t.Text == ""
}

// Adi returns the first sound of the term, or 0 when empty.
func (t *Term) Adi() byte {
	if t.Text == "" {
		return 0
	}
	return t.Text[0]
}

// Antya returns the last sound of the term, or 0 when empty.
func (t *Term) Antya() byte {
	if t.Text == "" {
		return 0
	}
	return t.Text[len(t.Text)-1]
}
