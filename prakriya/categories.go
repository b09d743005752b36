package prakriya

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Vibhakti is the nominal case. Sambodhana (the vocative) reuses the
// prathamā endings and differs only in the singular.
type Vibhakti int

const (
	Prathama Vibhakti = iota
	Dvitiya
	Tritiya
	Caturthi
	Panchami
	Shashthi
	Saptami
	Sambodhana
)

var vibhaktiNames = [...]string{
	"prathama", "dvitiya", "tritiya", "caturthi",
	"panchami", "shashthi", "saptami", "sambodhana",
}

func (v Vibhakti) String() string {
	if v < Prathama || v > Sambodhana {
		return "invalid"
	}
	return vibhaktiNames[v]
}

// ParseVibhakti resolves a case name or 1-based position ("1".."8").
func ParseVibhakti(s string) (Vibhakti, error) {
	for i, name := range vibhaktiNames {
		if s == name {
			return Vibhakti(i), nil
		}
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '8' {
		return Vibhakti(s[0] - '1'), nil
	}
	return 0, errors.Wrapf(ErrNoSuchInflection, "vibhakti %q", s)
}

// Vacana is the grammatical number.
type Vacana int

const (
	Ekavacana Vacana = iota
	Dvivacana
	Bahuvacana
)

var vacanaNames = [...]string{"ekavacana", "dvivacana", "bahuvacana"}

func (v Vacana) String() string {
	if v < Ekavacana || v > Bahuvacana {
		return "invalid"
	}
	return vacanaNames[v]
}

// ParseVacana resolves a number name or 1-based position ("1".."3").
func ParseVacana(s string) (Vacana, error) {
	for i, name := range vacanaNames {
		if s == name {
			return Vacana(i), nil
		}
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '3' {
		return Vacana(s[0] - '1'), nil
	}
	return 0, errors.Wrapf(ErrNoSuchInflection, "vacana %q", s)
}

// Purusha is the grammatical person, in the traditional order: prathama is
// the third person, uttama the first.
type Purusha int

const (
	PrathamaPurusha Purusha = iota
	MadhyamaPurusha
	UttamaPurusha
)

var purushaNames = [...]string{"prathama", "madhyama", "uttama"}

func (p Purusha) String() string {
	if p < PrathamaPurusha || p > UttamaPurusha {
		return "invalid"
	}
	return purushaNames[p]
}

// ParsePurusha resolves a person name or 1-based position ("1".."3").
func ParsePurusha(s string) (Purusha, error) {
	for i, name := range purushaNames {
		if s == name {
			return Purusha(i), nil
		}
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '3' {
		return Purusha(s[0] - '1'), nil
	}
	return 0, errors.Wrapf(ErrNoSuchInflection, "purusha %q", s)
}

// Lakara is the tense-mood. All ten exist as values; DeriveTinanta supports
// laṭ, laṅ, and loṭ.
type Lakara int

const (
	Lat Lakara = iota
	Lit
	Lut
	Lrt
	Let
	Lot
	Lan
	VidhiLin
	AshirLin
	Lrn
)

var lakaraNames = [...]string{
	"lat", "lit", "lut", "lrt", "let",
	"lot", "lan", "vidhi-lin", "ashir-lin", "lrn",
}

func (l Lakara) String() string {
	if l < Lat || l > Lrn {
		return "invalid"
	}
	return lakaraNames[l]
}

// ParseLakara resolves a lakāra by name.
func ParseLakara(s string) (Lakara, error) {
	for i, name := range lakaraNames {
		if s == name {
			return Lakara(i), nil
		}
	}
	return 0, errors.Newf("unknown lakara %q", s)
}

// Gana is the verb class, 1 through 10 in the traditional order.
type Gana int

const (
	Bhvadi Gana = iota + 1
	Adadi
	Juhotyadi
	Divadi
	Svadi
	Tudadi
	Rudhadi
	Tanadi
	Kryadi
	Curadi
)

var ganaNames = [...]string{
	"bhvadi", "adadi", "juhotyadi", "divadi", "svadi",
	"tudadi", "rudhadi", "tanadi", "kryadi", "curadi",
}

func (g Gana) String() string {
	if g < Bhvadi || g > Curadi {
		return "invalid"
	}
	return ganaNames[g-1]
}

// ParseGana resolves a class name or 1-based position ("1".."10").
func ParseGana(s string) (Gana, error) {
	for i, name := range ganaNames {
		if s == name {
			return Gana(i + 1), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 10 {
		return Gana(n), nil
	}
	return 0, errors.Newf("unknown gana %q", s)
}

// Dhatu is a verb root in SLP1 together with its class.
type Dhatu struct {
	Text string
	Gana Gana
}
