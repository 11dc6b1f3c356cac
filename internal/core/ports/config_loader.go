package ports

import "go.trai.ch/strata/internal/core/domain"

// ConfigLoader loads the cache configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory,
	// applying defaults for anything not configured.
	Load(cwd string) (*domain.CacheConfig, error)
}
