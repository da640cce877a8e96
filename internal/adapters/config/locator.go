package config

import (
	"path/filepath"
	"strings"

	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.ConfigLocator by walking up the directory tree.
type Locator struct {
	fs FileSystem
}

// NewLocator creates a Locator backed by the OS filesystem.
func NewLocator() *Locator {
	return &Locator{fs: NewOSFS()}
}

// WithFileSystem replaces the filesystem the locator probes.
func (l *Locator) WithFileSystem(fsys FileSystem) *Locator {
	l.fs = fsys
	return l
}

// Find returns the nearest configuration file at or above cwd.
// All candidate names are checked in a directory before moving to its parent.
func (l *Locator) Find(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
		return "", domain.Classify(domain.ErrConfigNotFound, err)
	}

	for {
		if path, ok := l.findIn(dir); ok {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	err = zerr.New("no " + domain.DefaultConfigFileName + " configuration file found")
	err = zerr.With(err, "cwd", cwd)
	err = zerr.With(err, "candidates", strings.Join(domain.ConfigFileNames, ", "))
	return "", domain.Classify(domain.ErrConfigNotFound, err)
}

// findIn checks the candidate names in dir in priority order.
// Names are compared against the directory listing so that only the exact
// spellings match, even on case-insensitive filesystems.
// Unreadable directories yield no match.
func (l *Locator) findIn(dir string) (string, bool) {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return "", false
	}

	present := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		present[entry.Name()] = struct{}{}
	}

	for _, name := range domain.ConfigFileNames {
		if _, ok := present[name]; ok {
			return filepath.Join(dir, name), true
		}
	}
	return "", false
}
