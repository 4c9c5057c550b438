package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFilePrefix = "oyvp_"
	logFileSuffix = ".log"
)

// fileName returns the daily log file name for t, e.g. oyvp_20260102.log.
func fileName(t time.Time) string {
	return logFilePrefix + t.Format("20060102") + logFileSuffix
}

// rotate removes the oldest daily log files in dir so at most maxFiles remain.
// Date-stamped names sort chronologically.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var logFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, logFilePrefix) && strings.HasSuffix(name, logFileSuffix) {
			logFiles = append(logFiles, name)
		}
	}
	if len(logFiles) <= maxFiles {
		return nil
	}
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-maxFiles] {
		os.Remove(filepath.Join(dir, name)) // ignore errors
	}
	return nil
}

// dailyFile is a writer that switches to a new date-stamped file when the
// day changes, pruning old files on every switch.
type dailyFile struct {
	mu       sync.Mutex
	dir      string
	maxFiles int
	now      func() time.Time

	name string
	f    *os.File
}

// openDailyFile opens today's file in dir.
func openDailyFile(dir string, maxFiles int, now func() time.Time) (*dailyFile, error) {
	d := &dailyFile{dir: dir, maxFiles: maxFiles, now: now}
	if err := d.roll(fileName(now())); err != nil {
		return nil, err
	}
	return d, nil
}

// roll closes the current file and opens name. Caller holds mu or owns d.
func (d *dailyFile) roll(name string) error {
	f, err := os.OpenFile(filepath.Join(d.dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if d.f != nil {
		d.f.Close()
	}
	d.f = f
	d.name = name
	// Rotation runs after the new file exists so it is never the one removed.
	if err := rotate(d.dir, d.maxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}
	return nil
}

// Write appends p to the file for the current day.
func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.f == nil {
		return 0, os.ErrClosed
	}
	if name := fileName(d.now()); name != d.name {
		// Keep writing to the old file if the new one cannot be opened.
		if err := d.roll(name); err != nil {
			fmt.Fprintf(os.Stderr, "log roll failed: %v\n", err)
		}
	}
	return d.f.Write(p)
}

// Path returns the file currently written to.
func (d *dailyFile) Path() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return filepath.Join(d.dir, d.name)
}

func (d *dailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}
