package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"testing"
	"time"
)

func TestLockSimple(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "myentry")

	unlock, err := Lock(target)
	if err != nil {
		t.Fatalf("Failed to lock: %v", err)
	}

	if _, err := os.Stat(target + ".lock"); os.IsNotExist(err) {
		t.Errorf("Lock file not created")
	}

	if err := unlock(); err != nil {
		t.Errorf("Failed to unlock: %v", err)
	}

	if _, err := os.Stat(target + ".lock"); !os.IsNotExist(err) {
		t.Errorf("Lock file should be gone")
	}
}

func TestLockStale(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "stale")
	lockFile := target + ".lock"

	// Find a dead PID
	var stalePid int
	for i := 32000; i < 60000; i++ {
		proc, _ := os.FindProcess(i)
		if proc.Signal(syscall.Signal(0)) == syscall.ESRCH {
			stalePid = i
			break
		}
	}
	if stalePid == 0 {
		stalePid = 9999999
	}

	content := fmt.Sprintf("%d %s", stalePid, time.Now().Format(time.RFC3339))
	if err := os.WriteFile(lockFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		unlock, err := Lock(target)
		if err != nil {
			t.Errorf("Failed to acquire lock over stale one: %v", err)
			close(done)
			return
		}
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Timed out waiting for lock acquisition - isPidAlive returned true for %d?", stalePid)
	}
}

func TestLockConcurrent(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "concurrent")

	var wg sync.WaitGroup
	wg.Add(2)

	// Goroutine 1 grabs the lock and holds it for a bit
	go func() {
		defer wg.Done()
		unlock, err := Lock(target)
		if err != nil {
			t.Errorf("G1 failed to lock: %v", err)
			return
		}
		time.Sleep(500 * time.Millisecond)
		unlock()
	}()

	// Goroutine 2 must wait for G1
	go func() {
		defer wg.Done()
		time.Sleep(100 * time.Millisecond)
		start := time.Now()
		unlock, err := Lock(target)
		if err != nil {
			t.Errorf("G2 failed to lock: %v", err)
			return
		}
		if d := time.Since(start); d < 300*time.Millisecond {
			t.Errorf("G2 acquired lock too fast (%v), expected waiting for G1", d)
		}
		unlock()
	}()

	wg.Wait()
}
