// Package testutil provides testing utilities for the sectionbar project.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// ManualScheduler is an anim.Scheduler whose ticks are fired by the test.
type ManualScheduler struct {
	mu       sync.Mutex
	fn       func()
	interval time.Duration
	starts   int
	cancels  int
}

// Every records fn and returns a cancel that detaches it.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
	s.interval = interval
	s.starts++
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.fn = nil
		s.cancels++
	}
}

// Fire runs the scheduled callback n times. Returns false when nothing is scheduled.
func (s *ManualScheduler) Fire(n int) bool {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		fn := s.fn
		s.mu.Unlock()
		if fn == nil {
			return false
		}
		fn()
	}
	return true
}

// Scheduled reports whether a callback is currently registered.
func (s *ManualScheduler) Scheduled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}

// Interval returns the interval of the last Every call.
func (s *ManualScheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Starts returns how many times Every was called.
func (s *ManualScheduler) Starts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}

// Cancels returns how many cancel funcs were invoked.
func (s *ManualScheduler) Cancels() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancels
}

// Counter counts redraw requests.
type Counter struct {
	n atomic.Int64
}

// Inc is suitable as a redraw callback.
func (c *Counter) Inc() { c.n.Add(1) }

// Load returns the current count.
func (c *Counter) Load() int { return int(c.n.Load()) }

// SetupTestDir creates a temp directory, resolves symlinks (for macOS),
// changes to it, and registers cleanup to restore the original working directory.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	return tmpDir
}
