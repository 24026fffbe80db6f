package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lanternhq/lantern/pkg/api"
	"github.com/lanternhq/lantern/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lantern version")
}

func TestRootWithoutCommandFails(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())

	_, err := execute(t)
	require.Error(t, err)
}

func TestDeployEndToEnd(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv("LANTERN_TOKEN", "test-token")

	var uploads []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/projects/@acme/bi":
			json.NewEncoder(w).Encode(api.Project{ID: "proj-7", WorkspaceLogin: "acme", Slug: "bi"})
		case r.Method == http.MethodPost && r.URL.Path == "/projects/proj-7/deploys":
			json.NewEncoder(w).Encode(api.Deploy{ID: "deploy-1", Status: "created"})
		case r.Method == http.MethodPost && r.URL.Path == "/deploys/deploy-1/files":
			uploads = append(uploads, r.URL.Query().Get("path"))
		case r.Method == http.MethodPost && r.URL.Path == "/deploys/deploy-1/uploaded":
			json.NewEncoder(w).Encode(api.Deploy{ID: "deploy-1", Status: "uploaded"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "lantern.toml"), []byte(`
title = "Business Intelligence"

[api]
origin = "`+server.URL+`"

[deploy]
workspace = "acme"
project = "bi"
`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist", "index.html"), []byte("<html></html>"), 0644))

	out, err := execute(t, "deploy", "--root", root, "-m", "first deploy")
	require.NoError(t, err)

	// Build output plus the fixed runtime support files, in order.
	assert.Equal(t, []string{
		"index.html",
		"_lantern/runtime.js",
		"_lantern/stdlib.js",
	}, uploads)
	assert.Contains(t, out, "https://acme.lantern.dev/bi")

	record, err := os.ReadFile(filepath.Join(root, ".lantern", "deploy.json"))
	require.NoError(t, err)
	assert.Contains(t, string(record), "proj-7")
}

func TestDeployNonInteractiveMissingProject(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv("LANTERN_TOKEN", "test-token")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "lantern.toml"), []byte(`
title = "Anything"

[api]
origin = "`+server.URL+`"

[deploy]
workspace = "acme"
project = "gone"
`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0755))

	_, err := execute(t, "deploy", "--root", root, "-m", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project does not exist")

	_, statErr := os.Stat(filepath.Join(root, ".lantern", "deploy.json"))
	assert.True(t, os.IsNotExist(statErr))
}
