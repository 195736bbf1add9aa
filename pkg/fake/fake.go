// Package fake generates sample contact records.
package fake

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/darksworm/colortable/pkg/model"
	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpusYAML []byte

// ErrEmptyList is returned when a corpus word list has no entries.
var ErrEmptyList = errors.New("corpus list is empty")

// Corpus holds the word lists records are assembled from.
type Corpus struct {
	FirstNames     []string `yaml:"first_names"`
	LastNames      []string `yaml:"last_names"`
	StreetNames    []string `yaml:"street_names"`
	StreetSuffixes []string `yaml:"street_suffixes"`
	Cities         []string `yaml:"cities"`
	States         []string `yaml:"states"`
	Domains        []string `yaml:"domains"`
}

var (
	defaultCorpus     *Corpus
	defaultCorpusOnce sync.Once
	defaultCorpusErr  error
)

// LoadCorpus returns the embedded corpus. It is parsed once.
func LoadCorpus() (*Corpus, error) {
	defaultCorpusOnce.Do(func() {
		defaultCorpus, defaultCorpusErr = ParseCorpus(corpusYAML)
	})
	return defaultCorpus, defaultCorpusErr
}

// ParseCorpus parses a YAML corpus and checks that no list is empty.
func ParseCorpus(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	lists := []struct {
		name  string
		items []string
	}{
		{"first_names", c.FirstNames},
		{"last_names", c.LastNames},
		{"street_names", c.StreetNames},
		{"street_suffixes", c.StreetSuffixes},
		{"cities", c.Cities},
		{"states", c.States},
		{"domains", c.Domains},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			return nil, fmt.Errorf("%s: %w", l.name, ErrEmptyList)
		}
	}
	return &c, nil
}

// Generator builds records from a corpus with its own random source.
type Generator struct {
	corpus *Corpus
	rng    *rand.Rand
}

// NewGenerator creates a Generator. The same non-zero seed always yields the
// same records; seed 0 picks a random seed.
func NewGenerator(c *Corpus, seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		corpus: c,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Record returns one contact: a full name, a two-line street address and an
// email derived from the name.
func (g *Generator) Record() model.Record {
	first := g.pick(g.corpus.FirstNames)
	last := g.pick(g.corpus.LastNames)

	address := fmt.Sprintf("%d %s %s\n%s, %s %05d",
		1+g.rng.IntN(9999),
		g.pick(g.corpus.StreetNames),
		g.pick(g.corpus.StreetSuffixes),
		g.pick(g.corpus.Cities),
		g.pick(g.corpus.States),
		g.rng.IntN(100000),
	)

	email := fmt.Sprintf("%s.%s@%s",
		strings.ToLower(first),
		strings.ToLower(last),
		g.pick(g.corpus.Domains),
	)

	return model.NewRecord(first+" "+last, address, email)
}

// Records returns n records in generation order.
func (g *Generator) Records(n int) []model.Record {
	out := make([]model.Record, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, g.Record())
	}
	return out
}

func (g *Generator) pick(items []string) string {
	return items[g.rng.IntN(len(items))]
}

// Dataset generates n records from the embedded corpus and returns them as a
// dataset sorted by name. n < 1 fails with model.ErrEmptyDataset.
func Dataset(n int, seed uint64) (*model.Dataset, error) {
	c, err := LoadCorpus()
	if err != nil {
		return nil, err
	}
	return model.NewDataset(NewGenerator(c, seed).Records(n))
}
