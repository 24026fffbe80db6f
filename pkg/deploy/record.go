package deploy

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lanternhq/lantern/pkg/errors"
	"github.com/lanternhq/lantern/pkg/paths"
)

// Record is the local memory of the last successful deploy from a site
// root. It is written only after the remote deploy record was finalized.
type Record struct {
	ProjectID string `json:"projectId"`
}

// ReadRecord loads the deploy record for a site root. A root that was
// never deployed returns (nil, nil).
func ReadRecord(root string) (*Record, error) {
	data, err := os.ReadFile(paths.DeployRecordPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read deploy record")
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid deploy record")
	}
	return &record, nil
}

// WriteRecord persists the deploy record for a site root, creating the
// .lantern directory when needed.
func WriteRecord(root string, record Record) error {
	path := paths.DeployRecordPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create .lantern directory")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode deploy record")
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write deploy record")
	}
	return nil
}
