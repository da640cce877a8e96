// Package ports defines the core interfaces for the application.
package ports

// ConfigLocator defines the interface for discovering the configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_locator.go -destination=mocks/mock_config_locator.go -package=mocks
type ConfigLocator interface {
	// Find searches cwd and then each of its ancestors up to the filesystem root.
	// It returns the path of the first candidate file found, or an error
	// matching domain.ErrConfigNotFound.
	Find(cwd string) (string, error)
}
