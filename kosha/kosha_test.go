package kosha

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconAddLookup(t *testing.T) {
	l := New()
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains("deva"))
	assert.Nil(t, l.Lookup("deva"))

	l.Add(Entry{Word: "deva", Kind: KindSubanta, Artha: "god"})
	l.Add(Entry{Word: "deva", Kind: KindSubanta, Artha: "king"})
	l.Add(Entry{Word: "iti", Kind: KindAvyaya})
	l.Add(Entry{Kind: KindAvyaya}) // empty word is dropped

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains("deva"))
	assert.Len(t, l.Lookup("deva"), 2)
	assert.Equal(t, "god", l.Lookup("deva")[0].Artha)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.yaml")
	data := `- word: mitra
  kind: subanta
  lemma: mitra
  artha: friend
- word: liK
  kind: dhatu
  gana: 6
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	l, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains("mitra"))

	es := l.Lookup("liK")
	require.Len(t, es, 1)
	assert.Equal(t, KindDhatu, es[0].Kind)
	assert.Equal(t, 6, es[0].Gana)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("word: not-a-list"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}

func TestBuiltin(t *testing.T) {
	l := Builtin()
	for _, w := range []string{"iti", "Adi", "deva", "indra", "rAma", "BU"} {
		assert.True(t, l.Contains(w), w)
	}
	es := l.Lookup("BU")
	require.Len(t, es, 1)
	assert.Equal(t, KindDhatu, es[0].Kind)
	assert.Equal(t, 1, es[0].Gana)
}
