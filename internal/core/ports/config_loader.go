package ports

import "go.trai.ch/wandler/internal/core/domain"

// ConfigLoader defines the interface for loading the task configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads, parses and validates the configuration file at path.
	//
	// Failures match exactly one of domain.ErrConfigReadFailed,
	// domain.ErrConfigParseFailed or domain.ErrConfigInvalid.
	// No partial configuration is ever returned.
	Load(path string) (*domain.Configuration, error)
}
