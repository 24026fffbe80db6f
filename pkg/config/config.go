// Package config loads the per-project lantern configuration.
//
// Configuration is merged in three layers: built-in defaults, the project
// file (lantern.toml or .lantern.toml at the site root), and LANTERN_*
// environment variables. Later layers win.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lanternhq/lantern/pkg/errors"
	"github.com/lanternhq/lantern/pkg/paths"
)

// EnvPrefix is the prefix for configuration environment variables,
// e.g. LANTERN_DEPLOY_WORKSPACE overrides deploy.workspace.
const EnvPrefix = "LANTERN_"

// Target names the remote workspace and project to deploy to. The slugs
// are raw user input; they are validated just before use.
type Target struct {
	Workspace string `koanf:"workspace"`
	Project   string `koanf:"project"`
}

// API holds the hosting service endpoint configuration.
type API struct {
	Origin string `koanf:"origin"`
}

// Project is the typed view of a site's configuration.
type Project struct {
	Title  string `koanf:"title"`
	Build  string `koanf:"build"`
	API    API    `koanf:"api"`
	Deploy Target `koanf:"deploy"`

	// Root is the site root the config was loaded from, not a file key.
	Root string `koanf:"-"`
}

// HasDeployTarget reports whether the config names a deploy destination.
func (p *Project) HasDeployTarget() bool {
	return p.Deploy.Workspace != "" || p.Deploy.Project != ""
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"build":      "dist",
		"api.origin": "https://api.lantern.dev",
	}
}

// Load reads the project configuration for the given site root.
func Load(root string) (*Project, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	for _, path := range paths.ConfigFilePaths(root) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
		break
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var project Project
	if err := k.Unmarshal("", &project); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration values")
	}
	project.Root = root

	return &project, nil
}

// envKey maps LANTERN_DEPLOY_WORKSPACE to deploy.workspace.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
