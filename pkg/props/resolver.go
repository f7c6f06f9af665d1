package props

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Source is one layer of the lookup chain. Lookup reports whether the key
// is present in this layer; an empty value still counts as present.
type Source interface {
	Lookup(key string) (string, bool)
	Name() string
}

// envSource reads properties from the process environment. The literal
// dotted key is checked first, then its uppercased form with every
// non-alphanumeric character replaced by an underscore.
type envSource struct{}

func (envSource) Lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	return os.LookupEnv(EnvName(key))
}

func (envSource) Name() string { return "env" }

// fileSource reads properties from one loaded properties file.
type fileSource struct {
	path  string
	store *Store
}

func (f fileSource) Lookup(key string) (string, bool) {
	return f.store.Get(key)
}

func (f fileSource) Name() string { return f.path }

// EnvName returns the environment-variable form of a property key,
// e.g. "jeka.java.version" becomes "JEKA_JAVA_VERSION".
func EnvName(key string) string {
	b := []byte(key)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}

// Resolver evaluates property lookups against a fixed chain of sources:
// environment, the base directory's properties file, ancestor directories'
// files for as long as each successive parent has one, and finally the
// global file. The first non-empty value wins; an empty value is treated
// as absent and the search continues.
// Immutable
type Resolver struct {
	sources []Source
	global  *Store
}

// NewResolver builds the lookup chain rooted at baseDir. The ancestor
// walk is computed once: it climbs from baseDir's parent and stops at the
// first directory without a properties file.
func NewResolver(baseDir string, globalFile string) (*Resolver, error) {
	sources := []Source{envSource{}}

	local := filepath.Join(baseDir, LocalFileName)
	st, err := Load(local)
	if err != nil {
		return nil, err
	}
	sources = append(sources, fileSource{path: local, store: st})

	dir := baseDir
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		path := filepath.Join(parent, LocalFileName)
		if _, err := os.Stat(path); err != nil {
			break
		}
		st, err := Load(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, fileSource{path: path, store: st})
		dir = parent
	}

	global, err := Load(globalFile)
	if err != nil {
		return nil, err
	}
	sources = append(sources, fileSource{path: globalFile, store: global})

	return &Resolver{sources: sources, global: global}, nil
}

// Get returns the effective value for key, or "" when no source holds a
// non-empty value.
func (r *Resolver) Get(key string) string {
	for _, src := range r.sources {
		v, ok := src.Lookup(key)
		if ok && v != "" {
			slog.Debug("Resolved property", "key", key, "source", src.Name())
			return v
		}
	}
	return ""
}

// GetDefault returns the effective value for key, or def when absent.
func (r *Resolver) GetDefault(key, def string) string {
	if v := r.Get(key); v != "" {
		return v
	}
	return def
}

// Global returns the store backing the global properties file.
func (r *Resolver) Global() *Store {
	return r.global
}
