package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const (
	lockRetryDelay = 100 * time.Millisecond
	lockHeldDelay  = 200 * time.Millisecond
)

// Lock guards the given cache path by creating a sibling .lock file that
// records the holder's PID. A lock held by a dead process is considered
// stale and taken over. Returns a release function once acquired.
func Lock(target string) (func() error, error) {
	lockFile := target + ".lock"

	if err := os.MkdirAll(filepath.Dir(lockFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent dir for lock: %w", err)
	}

	waiting := false
	for {
		f, err := os.OpenFile(lockFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			content := fmt.Sprintf("%d %s", os.Getpid(), time.Now().Format(time.RFC3339))
			if _, werr := f.WriteString(content); werr != nil {
				f.Close()
				os.Remove(lockFile)
				return nil, fmt.Errorf("failed to write lock file: %w", werr)
			}
			f.Close()

			return func() error {
				return os.Remove(lockFile)
			}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		// The lock file exists. Read the holder PID and decide whether it
		// is stale.
		content, rerr := os.ReadFile(lockFile)
		if rerr != nil {
			if os.IsNotExist(rerr) {
				// Released between the create attempt and the read.
				continue
			}
			time.Sleep(lockRetryDelay)
			continue
		}

		pid, perr := holderPid(string(content))
		if perr != nil {
			// Corrupt lock file; remove and retry.
			os.Remove(lockFile)
			continue
		}

		if isPidAlive(pid) {
			if !waiting {
				slog.Debug("Waiting for cache lock", "path", lockFile, "pid", pid)
				waiting = true
			}
			time.Sleep(lockHeldDelay)
			continue
		}

		// Holder died without releasing. Removal may race with another
		// waiter doing the same; both outcomes are fine.
		os.Remove(lockFile)
	}
}

func holderPid(content string) (int, error) {
	fields := strings.Fields(content)
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed lock content")
	}
	return strconv.Atoi(fields[0])
}

func isPidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// Signal 0 probes for existence without delivering anything.
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	if errors.Is(err, syscall.ESRCH) || errors.Is(err, os.ErrProcessDone) {
		return false
	}

	// EPERM and friends: the process exists but is not ours.
	return true
}
