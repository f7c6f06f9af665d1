package cache

import (
	"fmt"
	"os"
)

// Ensure makes the cache directory at target exist, running populate when
// it is missing. An advisory lock keeps concurrent invocations from
// populating the same entry twice.
//
// populate receives a staging directory next to target; only after it
// returns successfully is the staging directory renamed over target, so a
// failed or interrupted population never becomes visible as a valid entry.
func Ensure(target string, populate func(stage string) error) error {
	// 1. Quick check if already present
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	// 2. Acquire the lock. This waits if another process is populating.
	unlock, err := Lock(target)
	if err != nil {
		return err
	}
	defer unlock()

	// 3. Re-check: the entry may have appeared while we waited.
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	// 4. Populate into staging, then promote atomically.
	stage := target + ".tmp"
	if err := os.RemoveAll(stage); err != nil {
		return fmt.Errorf("failed to clear staging directory: %w", err)
	}
	if err := os.MkdirAll(stage, 0755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	if err := populate(stage); err != nil {
		return err
	}

	return os.Rename(stage, target)
}
