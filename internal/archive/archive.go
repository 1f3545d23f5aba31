// Package archive ends a translation session by moving its store file
// aside, so the next run starts with an empty cache.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoSession is returned when there is no store file to archive.
var ErrNoSession = errors.New("no session store to archive")

// ArchiveSession moves the store file at storePath into an "archive"
// directory next to it, named with a timestamp. It returns the new path.
func ArchiveSession(storePath string) (string, error) {
	// Check if the store exists
	info, err := os.Stat(storePath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNoSession, storePath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat session store: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("session store is a directory: %s", storePath)
	}

	archiveDir := filepath.Join(filepath.Dir(storePath), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(storePath)
	base := strings.TrimSuffix(filepath.Base(storePath), ext)

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))
	}

	if err := os.Rename(storePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive session store: %w", err)
	}

	return archivePath, nil
}
