// Package deploy implements the deploy reconciliation protocol: it takes
// the locally built site, the local record of a previous deployment, and
// the remote project state, drives them into agreement, and uploads the
// build artifacts.
package deploy

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lanternhq/lantern/pkg/api"
	"github.com/lanternhq/lantern/pkg/errors"
	"github.com/lanternhq/lantern/pkg/logging"
	"github.com/lanternhq/lantern/pkg/slug"
)

// Options carries per-run inputs from the command line.
type Options struct {
	// Message is the deploy message; prompted for when empty and
	// interactive, required otherwise.
	Message string
}

// Result describes a finished deploy.
type Result struct {
	ProjectID string
	Workspace string
	Slug      string
	FileCount int
}

// Deployer holds the state of one deploy run.
type Deployer struct {
	effects Effects
	api     API
	logger  zerolog.Logger

	workspace string
	slug      string
}

// Run executes the end-to-end deploy flow. newAPI builds the hosting
// client once a credential is resolved, so credential lookup stays an
// effect. Steps are strictly sequential; every step either returns a
// decided value or fails with exactly one error.
func Run(ctx context.Context, effects Effects, newAPI func(api.Credential) API, opts Options) (*Result, error) {
	d := &Deployer{
		effects: effects,
		logger:  logging.GetLogger("deploy"),
	}

	cfg := effects.Config()
	if !cfg.HasDeployTarget() {
		return nil, errors.New(errors.ErrNoDeployTarget,
			"no deploy target configured; add a [deploy] section with workspace and project to lantern.toml")
	}

	credential, err := effects.Credential()
	if err != nil {
		d.logger.Warn().Msg("authentication required to deploy")
		return nil, err
	}

	if d.workspace, err = slug.Validate("workspace", cfg.Deploy.Workspace); err != nil {
		return nil, err
	}
	if d.slug, err = slug.Validate("project", cfg.Deploy.Project); err != nil {
		return nil, err
	}

	d.api = newAPI(credential)

	projectID, err := d.reconcile(ctx)
	if err != nil {
		return nil, err
	}

	message, err := d.deployMessage(opts)
	if err != nil {
		return nil, err
	}

	fileCount, err := d.upload(ctx, projectID, message)
	if err != nil {
		return nil, err
	}

	// Only a finalized remote deploy updates local memory.
	if err := d.effects.WriteLocalRecord(Record{ProjectID: projectID}); err != nil {
		return nil, err
	}

	d.logger.Info().Str("project", projectID).Int("files", fileCount).Msg("deploy finished")
	return &Result{
		ProjectID: projectID,
		Workspace: d.workspace,
		Slug:      d.slug,
		FileCount: fileCount,
	}, nil
}

func (d *Deployer) deployMessage(opts Options) (string, error) {
	if opts.Message != "" {
		return opts.Message, nil
	}
	if !d.effects.Interactive() {
		return "", errors.New(errors.ErrMissingMessage,
			"a deploy message is required in non-interactive mode; pass --message")
	}
	return d.effects.Ask("Deploy message", "")
}
