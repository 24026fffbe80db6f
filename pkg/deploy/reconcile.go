package deploy

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/lanternhq/lantern/pkg/api"
	"github.com/lanternhq/lantern/pkg/errors"
)

// ErrCancelled marks a run the user declined at a prompt. It is an
// expected outcome, not a failure: exit code 0, nothing printed.
var ErrCancelled = stderrors.New("deploy cancelled")

// Stable cancellation messages for non-interactive aborts.
const (
	msgProjectMissing = "cancelling deploy: project does not exist"
	msgMisconfigured  = "cancelling deploy: misconfigured project"
)

// reconcile drives the local deploy record and the remote project into
// agreement and returns the project id to deploy to. It decides only;
// no uploads happen here.
func (d *Deployer) reconcile(ctx context.Context) (string, error) {
	remote, err := d.api.GetProject(ctx, d.workspace, d.slug)
	if err != nil {
		return "", err
	}

	record, err := d.effects.LocalRecord()
	if err != nil {
		return "", err
	}

	switch {
	case remote == nil:
		return d.createMissingProject(ctx)

	case record == nil || record.ProjectID == remote.ID:
		// Nothing to reconcile.
		return remote.ID, nil

	default:
		return d.supersedeStaleRecord(record, remote.ID)
	}
}

// createMissingProject handles the remote-absent state: confirm, then
// create the project under the acting user's workspace.
func (d *Deployer) createMissingProject(ctx context.Context) (string, error) {
	if !d.effects.Interactive() {
		return "", errors.New(errors.ErrProjectMissing, msgProjectMissing)
	}

	question := fmt.Sprintf("Project @%s/%s does not exist. Create it now?", d.workspace, d.slug)
	yes, err := d.effects.Confirm(question, true)
	if err != nil {
		return "", err
	}
	if !yes {
		return "", ErrCancelled
	}

	title := d.effects.Config().Title
	if title == "" {
		return "", errors.New(errors.ErrMissingTitle,
			"a project title is required to create a project; set title in lantern.toml")
	}

	user, err := d.api.GetCurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if !hasWorkspace(user.Workspaces, d.workspace) {
		logins := workspaceLogins(user.Workspaces)
		return "", errors.Newf(errors.ErrWorkspaceNotFound,
			"workspace %q not found; your workspaces: %s", d.workspace, strings.Join(logins, ", "))
	}

	project, err := d.api.CreateProject(ctx, d.workspace, d.slug, title)
	if err != nil {
		return "", err
	}

	d.logger.Info().Str("project", project.ID).Str("workspace", d.workspace).Str("slug", d.slug).
		Msg("created project")
	return project.ID, nil
}

// supersedeStaleRecord handles a local record pointing at a different
// project id than the remote resolves to. The notice is emitted exactly
// once, before any prompt or abort.
func (d *Deployer) supersedeStaleRecord(record *Record, remoteID string) (string, error) {
	d.effects.Print(fmt.Sprintf(
		"Note: this site was previously deployed to project %s, but @%s/%s now resolves to %s.",
		record.ProjectID, d.workspace, d.slug, remoteID))

	if !d.effects.Interactive() {
		return "", errors.New(errors.ErrMisconfigured, msgMisconfigured)
	}

	yes, err := d.effects.Confirm("Deploy anyway?", false)
	if err != nil {
		return "", err
	}
	if !yes {
		return "", ErrCancelled
	}

	// The remote project supersedes the stale local record.
	return remoteID, nil
}

func hasWorkspace(workspaces []api.Workspace, login string) bool {
	for _, w := range workspaces {
		if w.Login == login {
			return true
		}
	}
	return false
}

func workspaceLogins(workspaces []api.Workspace) []string {
	logins := make([]string, len(workspaces))
	for i, w := range workspaces {
		logins[i] = w.Login
	}
	return logins
}
