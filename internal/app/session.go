package app

import (
	"path/filepath"

	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports"
	"go.trai.ch/zerr"
)

// Session holds the state of one invocation.
// The configuration path is searched for at most once and the configuration
// is loaded at most once; both are reused for the rest of the invocation.
type Session struct {
	locator    ports.ConfigLocator
	loader     ports.ConfigLoader
	workDir    string
	configFile string

	path string
	cfg  *domain.Configuration
}

// NewSession creates a Session that searches upward from workDir.
func NewSession(locator ports.ConfigLocator, loader ports.ConfigLoader, workDir string) *Session {
	return &Session{
		locator: locator,
		loader:  loader,
		workDir: workDir,
	}
}

// WithConfigFile makes the session use path instead of searching.
// A relative path is taken relative to the working directory.
func (s *Session) WithConfigFile(path string) *Session {
	s.configFile = path
	return s
}

// ConfigPath returns the configuration file for this invocation.
func (s *Session) ConfigPath() (string, error) {
	if s.path != "" {
		return s.path, nil
	}

	if s.configFile != "" {
		path := s.configFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.workDir, path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", s.configFile)
			return "", domain.Classify(domain.ErrConfigReadFailed, err)
		}
		s.path = abs
		return s.path, nil
	}

	path, err := s.locator.Find(s.workDir)
	if err != nil {
		return "", err
	}
	s.path = path
	return s.path, nil
}

// BaseDir returns the directory containing the configuration file.
// Tasks run there regardless of where wandler was invoked.
func (s *Session) BaseDir() (string, error) {
	path, err := s.ConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// Config returns the loaded configuration for this invocation.
func (s *Session) Config() (*domain.Configuration, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}

	path, err := s.ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	return s.cfg, nil
}
