// Package config provides the configuration loader for strata.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file strata looks for.
const Filename = "strata.yaml"

// Defaults applied when the file is absent or a field is unset.
const (
	DefaultRootID    = "ROOT_QUERY"
	DefaultStorePath = ".strata/cache.json"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// configFile represents the structure of the strata.yaml file.
type configFile struct {
	Version        string   `yaml:"version"`
	Root           string   `yaml:"root"`
	IdentityFields []string `yaml:"identityFields"`
	Store          string   `yaml:"store"`
}

// Load reads the configuration from the given working directory. A missing
// file yields the defaults.
func (l *FileConfigLoader) Load(cwd string) (*domain.CacheConfig, error) {
	name := l.Filename
	if name == "" {
		name = Filename
	}
	path := filepath.Join(cwd, name)

	var file configFile
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, zerr.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.Wrap(err, "failed to parse config file")
		}
	}

	cfg := &domain.CacheConfig{
		RootID:         domain.NodeID(DefaultRootID),
		IdentityFields: []string{"id"},
		StorePath:      filepath.Join(cwd, DefaultStorePath),
	}
	if file.Root != "" {
		cfg.RootID = domain.NodeID(file.Root)
	}
	if len(file.IdentityFields) > 0 {
		cfg.IdentityFields = file.IdentityFields
	}
	if file.Store != "" {
		cfg.StorePath = filepath.Join(cwd, file.Store)
	}
	return cfg, nil
}
