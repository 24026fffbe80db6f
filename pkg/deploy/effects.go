package deploy

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/lanternhq/lantern/pkg/api"
	"github.com/lanternhq/lantern/pkg/auth"
	"github.com/lanternhq/lantern/pkg/config"
	"github.com/lanternhq/lantern/pkg/prompt"
	"github.com/lanternhq/lantern/pkg/site"
)

// API is the hosting service surface the deploy flow consumes. *api.Client
// implements it; tests substitute a recorded fake.
type API interface {
	GetProject(ctx context.Context, workspace, slug string) (*api.Project, error)
	GetCurrentUser(ctx context.Context) (*api.User, error)
	CreateProject(ctx context.Context, workspace, slug, title string) (*api.Project, error)
	CreateDeploy(ctx context.Context, projectID, message string) (*api.Deploy, error)
	UploadDeployFile(ctx context.Context, deployID, path string, content io.Reader) error
	MarkDeployUploaded(ctx context.Context, deployID string) (*api.Deploy, error)
}

// Effects is the capability set the orchestrator needs from its
// environment: configuration, credential lookup, local record persistence,
// build output, and the prompt channel. Injecting it keeps the flow
// testable without a network or a terminal.
type Effects interface {
	Config() *config.Project
	Credential() (api.Credential, error)
	LocalRecord() (*Record, error)
	WriteLocalRecord(record Record) error
	Files() ([]site.File, error)
	Interactive() bool
	OutputWidth() int
	Confirm(question string, def bool) (bool, error)
	Ask(question, def string) (string, error)
	Print(line string)
}

// Environment is the real-world Effects implementation.
type Environment struct {
	Project  *config.Project
	Prompter *prompt.Prompter
	Out      io.Writer
}

// NewEnvironment wires an Environment for a loaded project config.
func NewEnvironment(project *config.Project, prompter *prompt.Prompter, out io.Writer) *Environment {
	return &Environment{Project: project, Prompter: prompter, Out: out}
}

func (e *Environment) Config() *config.Project {
	return e.Project
}

func (e *Environment) Credential() (api.Credential, error) {
	return auth.Lookup(e.Project.Root)
}

func (e *Environment) LocalRecord() (*Record, error) {
	return ReadRecord(e.Project.Root)
}

func (e *Environment) WriteLocalRecord(record Record) error {
	return WriteRecord(e.Project.Root, record)
}

func (e *Environment) Files() ([]site.File, error) {
	return site.LoadFiles(filepath.Join(e.Project.Root, e.Project.Build))
}

func (e *Environment) Interactive() bool {
	return e.Prompter.Interactive()
}

func (e *Environment) OutputWidth() int {
	return e.Prompter.Width()
}

func (e *Environment) Confirm(question string, def bool) (bool, error) {
	return e.Prompter.Confirm(question, def)
}

func (e *Environment) Ask(question, def string) (string, error) {
	return e.Prompter.Ask(question, def)
}

func (e *Environment) Print(line string) {
	fmt.Fprintln(e.Out, line)
}
