// Package config provides the configuration loader for cascade.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads cascade.yaml from cwd and merges it over the defaults.
// A missing file yields the defaults unchanged.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	configPath := filepath.Join(cwd, domain.ConfigFileName)

	// #nosec G304 -- configPath is fixed relative to the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", configPath)
	}

	var file Cascadefile
	if err := decodeStrict(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", configPath)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, file.Version, SchemaVersion))
	}

	apply(cfg, &file)

	if cfg.Jobs < 1 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidJobs, "invalid toolchain settings"), "jobs", cfg.Jobs)
	}
	if err := cfg.Defaults.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

// decodeStrict rejects unknown keys so typos do not silently fall back to defaults.
// An empty document is accepted.
func decodeStrict(data []byte, target *Cascadefile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func apply(cfg *domain.Config, file *Cascadefile) {
	setString(&cfg.BuildDir, file.Project.BuildDir)
	setString(&cfg.SourceDir, file.Project.SourceDir)
	setString(&cfg.VersionEnv, file.Project.VersionEnv)
	setString(&cfg.UpgradeEnv, file.Project.UpgradeEnv)
	if len(file.Project.VersionFiles) > 0 {
		cfg.VersionFiles = file.Project.VersionFiles
	}

	setString(&cfg.CMake, file.Toolchain.CMake)
	setString(&cfg.Conan, file.Toolchain.Conan)
	if file.Toolchain.Jobs != nil {
		cfg.Jobs = *file.Toolchain.Jobs
	}
	setString(&cfg.VisualStudio, file.Toolchain.VisualStudio)
	setString(&cfg.CompilerVersion, file.Toolchain.CompilerVersion)

	setString(&cfg.TestBinary, file.Test.Binary)

	setString(&cfg.CoverageTool, file.Coverage.Tool)
	setString(&cfg.CoverageHTMLDir, file.Coverage.HTMLDir)
	setString(&cfg.CoverageHTMLFile, file.Coverage.HTMLFile)
	setString(&cfg.CoverageXMLFile, file.Coverage.CoberturaFile)

	d := file.Defaults
	o := &cfg.Defaults
	setPtr(&o.InstallDependencies, d.Conan)
	setPtr(&o.Force32Bit, d.Force32)
	setPtr(&o.Release, d.Release)
	setPtr(&o.AlternateGenerator, d.Ninja)
	setPtr(&o.InstallAfterBuild, d.Install)
	setPtr(&o.MeasureCoverage, d.Coverage)
	setPtr(&o.StaticCheck, d.Check)
	setPtr(&o.CoberturaFormat, d.CoverageCobertura)
	setPtr(&o.CoverageIgnorePattern, d.CoverageIgnore)
	setPtr(&o.BuildTests, d.BuildTests)
	setPtr(&o.TestTag, d.Tag)
	setPtr(&o.Repeat, d.Repeat)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setPtr[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
