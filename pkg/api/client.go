// Package api provides the client for the Lantern hosting service.
//
// Every call is a single request with no retries; any non-2xx response
// surfaces as an *HTTPError carrying the status code so callers can
// distinguish absence (404) from auth failures (401) and infrastructure
// errors (5xx).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lanternhq/lantern/pkg/logging"
)

// Credential is an API key together with where it was found.
type Credential struct {
	Source string // "env", "file"
	Key    string
}

// Workspace is a tenant on the hosting service.
type Workspace struct {
	Login string `json:"login"`
}

// User is the authenticated account.
type User struct {
	ID         string      `json:"id"`
	Login      string      `json:"login"`
	Workspaces []Workspace `json:"workspaces"`
}

// Project is a remote project. Identity is ID; (WorkspaceLogin, Slug) is a
// human-facing key that may point at a different ID over time.
type Project struct {
	ID             string `json:"id"`
	WorkspaceLogin string `json:"workspace_login"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
}

// Deploy is a remote deploy record, scoped to one upload session.
type Deploy struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Config holds API client configuration.
type Config struct {
	Origin  string // service base URL, e.g. "https://api.lantern.dev"
	Timeout time.Duration
}

// Client talks to the hosting API on behalf of one credential.
type Client struct {
	origin     string
	credential Credential
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a hosting API client.
func NewClient(cfg Config, credential Credential) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		origin:     cfg.Origin,
		credential: credential,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.GetLogger("api"),
	}
}

// GetProject looks up a project by workspace and slug. Absence is an
// expected branch: a 404 returns (nil, nil), not an error.
func (c *Client) GetProject(ctx context.Context, workspace, slug string) (*Project, error) {
	path := fmt.Sprintf("/projects/@%s/%s", url.PathEscape(workspace), url.PathEscape(slug))

	var project Project
	err := c.do(ctx, http.MethodGet, path, nil, &project)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetCurrentUser fetches the authenticated user and their workspaces.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateProject creates a project in the given workspace.
func (c *Client) CreateProject(ctx context.Context, workspace, slug, title string) (*Project, error) {
	body := map[string]string{
		"workspace": workspace,
		"slug":      slug,
		"title":     title,
	}

	var project Project
	if err := c.do(ctx, http.MethodPost, "/projects", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateDeploy opens a deploy record for the project.
func (c *Client) CreateDeploy(ctx context.Context, projectID, message string) (*Deploy, error) {
	path := fmt.Sprintf("/projects/%s/deploys", url.PathEscape(projectID))
	body := map[string]string{"message": message}

	var deploy Deploy
	if err := c.do(ctx, http.MethodPost, path, body, &deploy); err != nil {
		return nil, err
	}
	return &deploy, nil
}

// UploadDeployFile streams one file's content into the deploy record
// under the given client-side path.
func (c *Client) UploadDeployFile(ctx context.Context, deployID, filePath string, content io.Reader) error {
	path := fmt.Sprintf("/deploys/%s/files?path=%s", url.PathEscape(deployID), url.QueryEscape(filePath))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+path, content)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Method: http.MethodPost, Path: path}
	}

	c.logger.Debug().Str("deploy", deployID).Str("file", filePath).Msg("uploaded file")
	return nil
}

// MarkDeployUploaded finalizes the deploy record after all files are in.
func (c *Client) MarkDeployUploaded(ctx context.Context, deployID string) (*Deploy, error) {
	path := fmt.Sprintf("/deploys/%s/uploaded", url.PathEscape(deployID))

	var deploy Deploy
	if err := c.do(ctx, http.MethodPost, path, nil, &deploy); err != nil {
		return nil, err
	}
	return &deploy, nil
}

// do performs one JSON request/response exchange against the API.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.origin+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("request failed")
		return &HTTPError{StatusCode: resp.StatusCode, Method: method, Path: path}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	if c.credential.Key != "" {
		req.Header.Set("Authorization", "Bearer "+c.credential.Key)
	}
	req.Header.Set("X-Lantern-Request", uuid.NewString())
}
