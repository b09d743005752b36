package prakriya

// Tag is a saṃjñā: a grammatical designation attached to a term during a
// derivation. The set is closed; rules test tags, they never invent them.
type Tag uint8

const (
	// Role tags.
	TagDhatu Tag = iota
	TagPratipadika
	TagPratyaya
	TagSup
	TagTin
	TagVikarana
	TagAgama
	TagKrt
	TagTaddhita
	TagSarvadhatuka
	TagArdhadhatuka
	TagAbhyasa
	TagAbhyasta
	TagPada
	TagSambuddhi
	TagParasmaipada
	TagAtmanepada
	TagAvyaya
	TagSarvanama
	TagAnunasika
	TagNic

	// Derived markers recorded when a strengthening rule has applied.
	TagGuna
	TagVrddhi

	// TagAdesha marks a term whose text a substitution or junction rule has
	// rewritten. Rules keyed on the taught (upadeśa) shape of an affix must
	// skip marked terms: the live text no longer is that shape.
	TagAdesha

	// It-marker tags left behind when an it sound is elided.
	TagNit
	TagPit
	TagSit

	// Gender.
	TagPum
	TagStri
	TagNapumsaka

	// Vibhakti (case) of a sup ending.
	TagV1
	TagV2
	TagV3
	TagV4
	TagV5
	TagV6
	TagV7

	// Vacana (number) of a sup or tiṅ ending.
	TagEkavacana
	TagDvivacana
	TagBahuvacana

	tagCount
)

// TagSet is a bitset over Tag. Tags only accumulate: no rule removes one.
type TagSet uint64

// Tags builds a TagSet from its arguments.
func Tags(tags ...Tag) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	return s&(1<<t) != 0
}

// With returns the set with t added.
func (s TagSet) With(t Tag) TagSet {
	return s | 1<<t
}
