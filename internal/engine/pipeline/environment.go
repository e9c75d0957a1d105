// Package pipeline turns resolved options into the ordered external commands
// of a build-and-test run and executes them.
package pipeline

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
)

// InitEnvironment writes the version and self-upgrade variables into rc
// unless they are already present. The version files are tried in order and
// the first one that resolves wins. When none resolves a warning is logged
// and the variable stays unset.
func InitEnvironment(rc *domain.RuntimeContext, cfg *domain.Config, resolver ports.VersionResolver, logger ports.Logger) {
	if _, ok := rc.Lookup(cfg.VersionEnv); !ok {
		var lastErr error
		for _, file := range cfg.VersionFiles {
			path := file
			if !filepath.IsAbs(path) {
				path = filepath.Join(rc.WorkDir, file)
			}
			v, err := resolver.Resolve([]string{path})
			if err != nil {
				lastErr = err
				continue
			}
			rc.Setenv(cfg.VersionEnv, v.String())
			lastErr = nil
			break
		}
		if lastErr != nil {
			logger.Warn(fmt.Sprintf("%s is not set and could not be resolved: %v", cfg.VersionEnv, lastErr))
		}
	}

	if !rc.Platform.IsWindows() {
		if _, ok := rc.Lookup(cfg.UpgradeEnv); !ok {
			rc.Setenv(cfg.UpgradeEnv, "0")
		}
	}
}
