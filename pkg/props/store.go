// Package props implements the layered property lookup that drives the
// launcher: process environment, per-directory properties files walked
// upward from the base directory, then the user-scope global file.
package props

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// LocalFileName is the per-directory properties file consulted during lookup.
const LocalFileName = "jeka.properties"

// Store is the read-only content of one flat key=value properties file.
// When the same key appears on several lines, the first one wins.
// Immutable
type Store struct {
	values map[string]string
}

// Load reads the properties file at path. A missing file yields an empty
// store rather than an error; every key lookup on it reports absence.
func Load(path string) (*Store, error) {
	s := &Store{values: make(map[string]string)}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		if _, seen := s.values[key]; seen {
			continue
		}
		// The value keeps its whitespace as written.
		s.values[key] = line[idx+1:]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}

	return s, nil
}

// Get returns the value for key and whether the key is present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns all keys sharing the given prefix, sorted.
func (s *Store) Keys(prefix string) []string {
	var keys []string
	for k := range s.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct keys in the store.
func (s *Store) Len() int {
	return len(s.values)
}
