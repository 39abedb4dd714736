// Package iosources reads sources.yaml that tells where the dumps are.
package iosources

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg *config.Config
}

func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

// Load reads sources.yaml from the config directory. Settings missing
// from the file keep their default values. Populate.Dir of the config
// replaces the directory of the dumps.
func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.cfg.HomeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}

	if s.cfg.Populate.Dir != "" {
		sourcesConfig.Dir = s.cfg.Populate.Dir
	}

	if err = sourcesConfig.Validate(); err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}

	for _, w := range sourcesConfig.Warnings {
		gn.Warn("<em>%s</em>: %s, %s", w.Field, w.Message, w.Suggestion)
	}

	return sourcesConfig, nil
}

func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	res := sources.Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Sources file not found, using defaults", "path", path)
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	if err = yaml.Unmarshal(data, res); err != nil {
		return nil, err
	}
	return res, nil
}
