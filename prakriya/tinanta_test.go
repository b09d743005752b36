package prakriya

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conjugation lists expected forms person-major in the traditional order,
// three numbers per person.
type conjugation [3][3]string

func checkConjugation(t *testing.T, d Dhatu, la Lakara, want conjugation) {
	t.Helper()
	for pu := PrathamaPurusha; pu <= UttamaPurusha; pu++ {
		for va := Ekavacana; va <= Bahuvacana; va++ {
			p, err := DeriveTinanta(d, la, pu, va)
			require.NoError(t, err, "%s %s %s %s", d.Text, la, pu, va)
			assert.Equal(t, want[pu][va], p.Text(), "%s %s %s %s", d.Text, la, pu, va)
		}
	}
}

func TestTinantaBhuLat(t *testing.T) {
	checkConjugation(t, Dhatu{Text: "BU", Gana: Bhvadi}, Lat, conjugation{
		{"Bavati", "BavataH", "Bavanti"},
		{"Bavasi", "BavaTaH", "BavaTa"},
		{"BavAmi", "BavAvaH", "BavAmaH"},
	})
}

func TestTinantaBhuLan(t *testing.T) {
	checkConjugation(t, Dhatu{Text: "BU", Gana: Bhvadi}, Lan, conjugation{
		{"aBavat", "aBavatAm", "aBavan"},
		{"aBavaH", "aBavatam", "aBavata"},
		{"aBavam", "aBavAva", "aBavAma"},
	})
}

func TestTinantaBhuLot(t *testing.T) {
	checkConjugation(t, Dhatu{Text: "BU", Gana: Bhvadi}, Lot, conjugation{
		{"Bavatu", "BavatAm", "Bavantu"},
		{"Bava", "Bavatam", "Bavata"},
		{"BavAni", "BavAva", "BavAma"},
	})
}

func TestTinantaAcrossGanas(t *testing.T) {
	tests := []struct {
		dhatu Dhatu
		want  string
	}{
		{Dhatu{Text: "nI", Gana: Bhvadi}, "nayati"},
		{Dhatu{Text: "buD", Gana: Bhvadi}, "boDati"},
		{Dhatu{Text: "nft", Gana: Divadi}, "nftyati"},
		{Dhatu{Text: "tud", Gana: Tudadi}, "tudati"},
		{Dhatu{Text: "cur", Gana: Curadi}, "corayati"},
	}
	for _, tt := range tests {
		p, err := DeriveTinanta(tt.dhatu, Lat, PrathamaPurusha, Ekavacana)
		require.NoError(t, err, tt.dhatu.Text)
		assert.Equal(t, tt.want, p.Text(), tt.dhatu.Text)
	}
}

// TestTinantaGunaBlocking checks that the pit marker of the vikarana decides
// strengthening: sap conditions guna, the unmarked sa and syan do not.
func TestTinantaGunaBlocking(t *testing.T) {
	p, err := DeriveTinanta(Dhatu{Text: "tud", Gana: Tudadi}, Lat, PrathamaPurusha, Ekavacana)
	require.NoError(t, err)
	assert.Equal(t, "tudati", p.Text())
	assert.NotContains(t, ruleIDs(p), "7.3.86")

	p, err = DeriveTinanta(Dhatu{Text: "buD", Gana: Bhvadi}, Lat, PrathamaPurusha, Ekavacana)
	require.NoError(t, err)
	assert.Equal(t, "boDati", p.Text())
	assert.Contains(t, ruleIDs(p), "7.3.86")
}

func TestTinantaProvenance(t *testing.T) {
	p, err := DeriveTinanta(Dhatu{Text: "BU", Gana: Bhvadi}, Lat, PrathamaPurusha, Ekavacana)
	require.NoError(t, err)
	assert.Equal(t, "Bavati", p.Text())
	rules := ruleIDs(p)
	assert.Contains(t, rules, "7.3.84") // guna of the final vowel of BU
	assert.Contains(t, rules, "6.1.78") // ayadi at the o+a boundary

	p, err = DeriveTinanta(Dhatu{Text: "BU", Gana: Bhvadi}, Lan, PrathamaPurusha, Ekavacana)
	require.NoError(t, err)
	assert.Equal(t, "aBavat", p.Text())
	assert.Contains(t, ruleIDs(p), "6.4.71") // at augment
}

// TestTinantaAmBoundaryResidue checks 1/1 of lan: once the a of am has
// merged into the boundary, the surviving m must not be read as an m-initial
// ending, which would lengthen the thematic a.
func TestTinantaAmBoundaryResidue(t *testing.T) {
	p, err := DeriveTinanta(Dhatu{Text: "BU", Gana: Bhvadi}, Lan, UttamaPurusha, Ekavacana)
	require.NoError(t, err)
	assert.Equal(t, "aBavam", p.Text())
	assert.NotContains(t, ruleIDs(p), "7.3.101")
}

func TestTinantaRejectsUnsupported(t *testing.T) {
	_, err := DeriveTinanta(Dhatu{Text: "ad", Gana: Adadi}, Lat, PrathamaPurusha, Ekavacana)
	var u *UnsupportedError
	require.ErrorAs(t, err, &u)
	assert.Equal(t, "gana", u.Dimension)

	_, err = DeriveTinanta(Dhatu{Text: "BU", Gana: Bhvadi}, Lit, PrathamaPurusha, Ekavacana)
	require.ErrorAs(t, err, &u)
	assert.Equal(t, "lakara", u.Dimension)

	_, err = DeriveTinanta(Dhatu{Text: "", Gana: Bhvadi}, Lat, PrathamaPurusha, Ekavacana)
	require.ErrorAs(t, err, &u)
	assert.Equal(t, "dhatu", u.Dimension)

	_, err = DeriveTinanta(Dhatu{Text: "BU", Gana: Bhvadi}, Lat, Purusha(7), Ekavacana)
	assert.ErrorIs(t, err, ErrNoSuchInflection)
}
