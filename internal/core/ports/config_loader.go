package ports

import "go.trai.ch/cdb/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration that applies to cwd.
	// It returns domain.DefaultSettings when no config file exists.
	Load(cwd string) (domain.Settings, error)

	// Discover walks up from cwd and returns the path of the nearest config file.
	// It returns an empty path when none exists.
	Discover(cwd string) (string, error)
}
