// Package wordlist holds the easy-word reference list used by the
// Dale-Chall score. A Set is immutable once built and may be shared by
// any number of concurrent analyses.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeduden/readability/log"
	"gopkg.in/yaml.v3"
)

// Set is a read-only set of lowercase words.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from words. Entries are lowercased and trimmed;
// blank entries are skipped.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// Contains reports whether word, lowercased, is in the set.
// A nil Set contains nothing.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Parse reads a newline-delimited list. Blank lines and lines starting
// with "#" are ignored.
func Parse(r io.Reader) (*Set, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return New(words...), nil
}

// ParseYAML reads a word list written as a YAML sequence of strings.
func ParseYAML(r io.Reader) (*Set, error) {
	var words []string
	if err := yaml.NewDecoder(r).Decode(&words); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("parsing word list: %w", err)
	}
	return New(words...), nil
}

// Load reads the word list at path from the OS filesystem.
// See LoadFS for format detection.
func Load(path string, logger *log.Logger) (*Set, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(dir), name, logger)
}

// LoadFS reads the word list at name from fsys. Files ending in .yml or
// .yaml are parsed as a YAML sequence; anything else is newline-delimited.
func LoadFS(fsys fs.FS, name string, logger *log.Logger) (*Set, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer func() { _ = f.Close() }()

	var set *Set
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		set, err = ParseYAML(f)
	default:
		set, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logger.Printf("word list: %s (%d words)", name, set.Len())
	return set, nil
}
