// Package paths centralizes path handling for lantern. Machine-wide
// locations follow the XDG Base Directory specification; per-project
// locations are relative to the site root.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for lantern
	EnvConfigDir = "LANTERN_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for lantern
	EnvStateDir = "LANTERN_STATE_DIR"
)

// Names inside the lantern directories. These are not user-configurable;
// they must stay stable so existing installs keep finding their files.
const (
	appDirName = "lantern"

	// AuthFileName holds the stored API credential
	AuthFileName = "auth.toml"

	// LogFileName is the name of the log file
	LogFileName = "lantern.log"

	// ProjectDirName is the per-project metadata directory at the site root
	ProjectDirName = ".lantern"

	// DeployRecordName is the local deploy record inside ProjectDirName
	DeployRecordName = "deploy.json"

	// ConfigFileName is the project configuration file at the site root
	ConfigFileName = "lantern.toml"

	// HiddenConfigFileName is the dotted variant of ConfigFileName
	HiddenConfigFileName = ".lantern.toml"
)

// ConfigDir returns the machine-wide lantern config directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// StateDir returns the machine-wide lantern state directory.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, appDirName)
}

// AuthFilePath returns the location of the stored credential.
func AuthFilePath() string {
	return filepath.Join(ConfigDir(), AuthFileName)
}

// LogFilePath returns the location of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// DeployRecordPath returns the local deploy record path for a site root.
func DeployRecordPath(root string) string {
	return filepath.Join(root, ProjectDirName, DeployRecordName)
}

// ConfigFilePaths returns the candidate project config locations for a
// site root, in lookup order.
func ConfigFilePaths(root string) []string {
	return []string{
		filepath.Join(root, ConfigFileName),
		filepath.Join(root, HiddenConfigFileName),
	}
}
