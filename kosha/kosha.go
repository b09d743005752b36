// Package kosha provides the word lexicon: an in-memory index from SLP1
// surface forms to dictionary entries. A Lexicon is built once, from YAML or
// from the built-in seed list, and is then safe for concurrent readers; Add
// is not safe once lookups have started.
package kosha

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Kind classifies an entry.
type Kind string

const (
	KindDhatu   Kind = "dhatu"
	KindSubanta Kind = "subanta"
	KindAvyaya  Kind = "avyaya"
	KindPada    Kind = "pada"
)

// Entry is one dictionary record. Word is the SLP1 lookup key; Lemma the
// underlying stem or root when it differs from the word; Gana the verb class
// for a dhatu; Artha a short gloss.
type Entry struct {
	Word  string `yaml:"word" json:"word"`
	Kind  Kind   `yaml:"kind" json:"kind"`
	Lemma string `yaml:"lemma,omitempty" json:"lemma,omitempty"`
	Gana  int    `yaml:"gana,omitempty" json:"gana,omitempty"`
	Artha string `yaml:"artha,omitempty" json:"artha,omitempty"`
}

// Lexicon is a map-backed word index.
type Lexicon struct {
	entries map[string][]Entry
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{entries: make(map[string][]Entry)}
}

// Add records an entry under its word. Entries with an empty word are
// dropped.
func (l *Lexicon) Add(e Entry) {
	if e.Word == "" {
		return
	}
	l.entries[e.Word] = append(l.entries[e.Word], e)
}

// Contains reports whether word has at least one entry.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.entries[word]
	return ok
}

// Lookup returns the entries for word, nil when absent.
func (l *Lexicon) Lookup(word string) []Entry {
	return l.entries[word]
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// LoadFile reads a YAML lexicon: a top-level list of entries.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading lexicon %s", path)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "parsing lexicon %s", path)
	}
	l := New()
	for _, e := range entries {
		l.Add(e)
	}
	return l, nil
}

// Builtin returns a small seed lexicon, enough for the segmenter, the
// server, and the CLI to work without a data file.
func Builtin() *Lexicon {
	l := New()
	for _, e := range []Entry{
		{Word: "iti", Kind: KindAvyaya, Artha: "thus"},
		{Word: "Adi", Kind: KindSubanta, Lemma: "Adi", Artha: "beginning"},
		{Word: "eva", Kind: KindAvyaya, Artha: "indeed"},
		{Word: "ca", Kind: KindAvyaya, Artha: "and"},
		{Word: "na", Kind: KindAvyaya, Artha: "not"},
		{Word: "api", Kind: KindAvyaya, Artha: "also"},
		{Word: "deva", Kind: KindSubanta, Lemma: "deva", Artha: "god"},
		{Word: "indra", Kind: KindSubanta, Lemma: "indra", Artha: "Indra"},
		{Word: "rAma", Kind: KindSubanta, Lemma: "rAma", Artha: "Rama"},
		{Word: "hari", Kind: KindSubanta, Lemma: "hari", Artha: "Hari"},
		{Word: "guru", Kind: KindSubanta, Lemma: "guru", Artha: "teacher"},
		{Word: "nara", Kind: KindSubanta, Lemma: "nara", Artha: "man"},
		{Word: "jala", Kind: KindSubanta, Lemma: "jala", Artha: "water"},
		{Word: "vana", Kind: KindSubanta, Lemma: "vana", Artha: "forest"},
		{Word: "gaja", Kind: KindSubanta, Lemma: "gaja", Artha: "elephant"},
		{Word: "Alaya", Kind: KindSubanta, Lemma: "Alaya", Artha: "abode"},
		{Word: "upadeSa", Kind: KindSubanta, Lemma: "upadeSa", Artha: "instruction"},
		{Word: "BU", Kind: KindDhatu, Gana: 1, Artha: "to be"},
		{Word: "nI", Kind: KindDhatu, Gana: 1, Artha: "to lead"},
		{Word: "tud", Kind: KindDhatu, Gana: 6, Artha: "to strike"},
		{Word: "cur", Kind: KindDhatu, Gana: 10, Artha: "to steal"},
		{Word: "Bavati", Kind: KindPada, Lemma: "BU", Artha: "becomes"},
		{Word: "gacCati", Kind: KindPada, Lemma: "gam", Artha: "goes"},
		{Word: "asti", Kind: KindPada, Lemma: "as", Artha: "is"},
	} {
		l.Add(e)
	}
	return l
}
