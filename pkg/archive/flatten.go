package archive

import (
	"fmt"
	"os"
	"path/filepath"
)

// Flatten collapses a single nested top-level directory, the layout most
// tar-packaged runtimes unpack to (e.g. jdk-17.0.2/bin/...). After it
// returns, dir's direct children are the payload's own entries. Archives
// that already unpack flat are left untouched.
func Flatten(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", dir, err)
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		return nil
	}

	// Move the nested directory aside first so its children can be
	// promoted even when one of them shares its name.
	nested := filepath.Join(dir, entries[0].Name())
	aside := dir + ".unnest"
	if err := os.RemoveAll(aside); err != nil {
		return err
	}
	if err := os.Rename(nested, aside); err != nil {
		return fmt.Errorf("failed to move nested directory aside: %w", err)
	}

	inner, err := os.ReadDir(aside)
	if err != nil {
		return err
	}
	for _, e := range inner {
		if err := os.Rename(filepath.Join(aside, e.Name()), filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("failed to promote %s: %w", e.Name(), err)
		}
	}

	return os.RemoveAll(aside)
}
