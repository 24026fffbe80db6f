// Package auth locates a previously obtained API credential. Issuing
// credentials (login flows) is out of scope; this only consumes them.
package auth

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lanternhq/lantern/pkg/api"
	"github.com/lanternhq/lantern/pkg/errors"
	"github.com/lanternhq/lantern/pkg/paths"
)

// EnvToken is the environment variable holding the API key.
const EnvToken = "LANTERN_TOKEN"

// authFile mirrors the auth.toml layout in the XDG config dir.
type authFile struct {
	Key string `toml:"key"`
}

// Lookup resolves the credential for a run. Order: LANTERN_TOKEN from the
// environment (a .env file at the site root is loaded first), then the
// stored auth file. Absence fails with AUTH_REQUIRED.
func Lookup(root string) (api.Credential, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	if key := os.Getenv(EnvToken); key != "" {
		return api.Credential{Source: "env", Key: key}, nil
	}

	path := paths.AuthFilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return api.Credential{}, errors.Newf(errors.ErrAuthRequired,
				"no credential found; set %s or create %s", EnvToken, path)
		}
		return api.Credential{}, errors.Wrapf(err, errors.ErrAuthRequired,
			"failed to read %s", path)
	}

	var stored authFile
	if err := toml.Unmarshal(data, &stored); err != nil {
		return api.Credential{}, errors.Wrapf(err, errors.ErrAuthRequired,
			"failed to parse %s", path)
	}
	if stored.Key == "" {
		return api.Credential{}, errors.Newf(errors.ErrAuthRequired,
			"%s has no key; set %s or store a credential", path, EnvToken)
	}

	return api.Credential{Source: "file", Key: stored.Key}, nil
}
