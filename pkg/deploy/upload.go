package deploy

import (
	"context"

	"github.com/lanternhq/lantern/pkg/errors"
)

// upload opens a remote deploy record, streams every file into it in
// order, and finalizes it. Any failure is terminal; files already
// uploaded are not rolled back, the remote record is simply abandoned.
func (d *Deployer) upload(ctx context.Context, projectID, message string) (int, error) {
	files, err := d.effects.Files()
	if err != nil {
		return 0, err
	}

	dep, err := d.api.CreateDeploy(ctx, projectID, message)
	if err != nil {
		return 0, err
	}
	d.logger.Info().Str("deploy", dep.ID).Int("files", len(files)).Msg("created deploy")

	for _, f := range files {
		content, err := f.Open()
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrBuildMissing, "failed to open %s", f.Path)
		}
		err = d.api.UploadDeployFile(ctx, dep.ID, f.Path, content)
		content.Close()
		if err != nil {
			return 0, err
		}
	}

	if _, err := d.api.MarkDeployUploaded(ctx, dep.ID); err != nil {
		return 0, err
	}

	return len(files), nil
}
