package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(Config{Origin: url}, Credential{Source: "env", Key: "test-key"})
}

func TestGetProjectFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects/@acme/bi", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Lantern-Request"))

		json.NewEncoder(w).Encode(Project{
			ID:             "proj-123",
			WorkspaceLogin: "acme",
			Slug:           "bi",
			Title:          "Business Intelligence",
		})
	}))
	defer server.Close()

	project, err := newTestClient(server.URL).GetProject(context.Background(), "acme", "bi")

	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, "proj-123", project.ID)
	assert.Equal(t, "acme", project.WorkspaceLogin)
}

func TestGetProjectAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	project, err := newTestClient(server.URL).GetProject(context.Background(), "acme", "gone")

	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestGetProjectForbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetProject(context.Background(), "acme", "bi")

	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
}

func TestGetCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		json.NewEncoder(w).Encode(User{
			ID:    "user-1",
			Login: "dana",
			Workspaces: []Workspace{
				{Login: "dana"},
				{Login: "acme"},
			},
		})
	}))
	defer server.Close()

	user, err := newTestClient(server.URL).GetCurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "dana", user.Login)
	assert.Len(t, user.Workspaces, 2)
}

func TestCreateProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acme", body["workspace"])
		assert.Equal(t, "bi", body["slug"])
		assert.Equal(t, "Business Intelligence", body["title"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Project{ID: "proj-new", WorkspaceLogin: "acme", Slug: "bi"})
	}))
	defer server.Close()

	project, err := newTestClient(server.URL).CreateProject(context.Background(), "acme", "bi", "Business Intelligence")

	require.NoError(t, err)
	assert.Equal(t, "proj-new", project.ID)
}

func TestCreateDeploy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/proj-123/deploys", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "first deploy", body["message"])

		json.NewEncoder(w).Encode(Deploy{ID: "deploy-9", Status: "created"})
	}))
	defer server.Close()

	deploy, err := newTestClient(server.URL).CreateDeploy(context.Background(), "proj-123", "first deploy")

	require.NoError(t, err)
	assert.Equal(t, "deploy-9", deploy.ID)
}

func TestUploadDeployFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deploys/deploy-9/files", r.URL.Path)
		assert.Equal(t, "index.html", r.URL.Query().Get("path"))

		content, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(content))
	}))
	defer server.Close()

	err := newTestClient(server.URL).UploadDeployFile(context.Background(),
		"deploy-9", "index.html", strings.NewReader("<html></html>"))

	require.NoError(t, err)
}

func TestUploadDeployFileServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := newTestClient(server.URL).UploadDeployFile(context.Background(),
		"deploy-9", "index.html", strings.NewReader("x"))

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}

func TestMarkDeployUploaded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deploys/deploy-9/uploaded", r.URL.Path)
		json.NewEncoder(w).Encode(Deploy{ID: "deploy-9", Status: "uploaded"})
	}))
	defer server.Close()

	deploy, err := newTestClient(server.URL).MarkDeployUploaded(context.Background(), "deploy-9")

	require.NoError(t, err)
	assert.Equal(t, "uploaded", deploy.Status)
}

func TestStatusCodeOnPlainError(t *testing.T) {
	assert.Equal(t, 0, StatusCode(io.EOF))
	assert.False(t, IsNotFound(io.EOF))
}
