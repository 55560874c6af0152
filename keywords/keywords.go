// Package keywords provides versioned reserved-keyword lists per SQL dialect.
//
// Lists are YAML documents embedded from data/ and loaded lazily. A list can be
// updated for a new dialect release by editing its file alone:
//
//	dialect: duckdb
//	version: "1.1"
//	keywords: [select, from, ...]
package keywords

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// List is the on-disk layout of a keyword file.
type List struct {
	Dialect  string   `yaml:"dialect"`
	Version  string   `yaml:"version"`
	Keywords []string `yaml:"keywords"`
}

// Set is an immutable, case-insensitive keyword set.
type Set struct {
	words   map[string]struct{}
	dialect string
	version string
}

// Parse decodes a keyword list document.
func Parse(data []byte) (*Set, error) {
	var list List
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode keyword list: %w", err)
	}
	if list.Dialect == "" {
		return nil, fmt.Errorf("keyword list has no dialect")
	}
	return NewSet(list.Dialect, list.Version, list.Keywords...), nil
}

// NewSet builds a set from words; words are folded to lower case.
func NewSet(dialect, version string, words ...string) *Set {
	s := &Set{
		dialect: dialect,
		version: version,
		words:   make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is a keyword, ignoring case.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Dialect returns the dialect the list belongs to.
func (s *Set) Dialect() string { return s.dialect }

// Version returns the dialect release the list was taken from.
func (s *Set) Version() string { return s.version }

// Len returns the number of keywords.
func (s *Set) Len() int { return len(s.words) }

// Words returns the keywords in sorted order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

var (
	mu    sync.Mutex
	cache = make(map[string]*Set)
)

// Load returns the embedded keyword set for dialect.
func Load(dialect string) (*Set, error) {
	mu.Lock()
	defer mu.Unlock()

	if s, ok := cache[dialect]; ok {
		return s, nil
	}

	data, err := files.ReadFile(path.Join("data", dialect+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no keyword list for dialect %q", dialect)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dialect, err)
	}
	if s.dialect != dialect {
		return nil, fmt.Errorf("keyword list %s.yaml declares dialect %q", dialect, s.dialect)
	}
	cache[dialect] = s
	return s, nil
}

// MustLoad is Load for embedded lists that are known to exist. It panics on failure.
func MustLoad(dialect string) *Set {
	s, err := Load(dialect)
	if err != nil {
		panic(err)
	}
	return s
}

// Dialects lists the dialects with an embedded keyword list.
func Dialects() []string {
	entries, err := files.ReadDir("data")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}
