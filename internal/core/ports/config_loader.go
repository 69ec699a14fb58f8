package ports

import "github.com/javelin-build/javelin/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the resolved
	// project settings. A missing file yields defaults.
	Load(path string) (*domain.Project, error)
}
