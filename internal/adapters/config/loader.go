// Package config provides the configuration loader for javelin.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and returns the resolved project
// settings. A missing file yields defaults; a malformed file is reported as
// a warning and also yields defaults, so a broken config never blocks a build.
func (l *Loader) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Javelinfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		l.logger.Warn("failed to parse " + path + ", using default configuration: " + err.Error())
		return defaults(), nil
	}

	return resolve(&file), nil
}

func defaults() *domain.Project {
	return resolve(&Javelinfile{})
}

func resolve(file *Javelinfile) *domain.Project {
	p := &domain.Project{
		SrcDir:       file.SrcDir,
		OutDir:       file.OutDir,
		CacheFile:    file.CacheFile,
		Entrypoint:   file.Entrypoint,
		JVMOpts:      file.JVMOpts,
		AutoImplicit: file.AutoImplicit,
		Invalidation: domain.Invalidation(file.Invalidation),
	}
	if p.SrcDir == "" {
		p.SrcDir = DefaultSrcDir
	}
	if p.OutDir == "" {
		p.OutDir = DefaultOutDir
	}
	if p.CacheFile == "" {
		p.CacheFile = DefaultCacheFile
	}
	if p.Entrypoint == "" {
		p.Entrypoint = DefaultEntrypoint
	}
	if p.Invalidation != domain.InvalidateTransitive {
		p.Invalidation = domain.InvalidateContent
	}
	return p
}
