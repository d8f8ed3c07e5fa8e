// Package githubapi is a minimal client for the GitHub REST endpoints
// used by svgpress: the contents read/write pair and the
// authenticated-user probe. It deliberately covers nothing else.
package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public GitHub API endpoint.
	DefaultBaseURL = "https://api.github.com"

	acceptHeader   = "application/vnd.github+json"
	apiVersion     = "2022-11-28"
	defaultTimeout = 30 * time.Second
)

// Client issues authenticated requests against the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        zerolog.Logger
}

// Option is a function that modifies a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithBaseURL overrides the API endpoint (GitHub Enterprise, tests).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client authenticating with the given bearer token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-success response from the GitHub API.
// Body preserves the remote error text verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("github: status %d: %s", e.StatusCode, e.Body)
}

// User is the authenticated-user response subset svgpress needs.
type User struct {
	Login string `json:"login"`
}

// Contents is the metadata subset returned for an existing file.
type Contents struct {
	SHA         string `json:"sha"`
	Path        string `json:"path"`
	HTMLURL     string `json:"html_url"`
	DownloadURL string `json:"download_url"`
}

// PutRequest is the contents write payload. SHA must be set only when
// updating an existing file; its presence alone selects update over
// create at the API level.
type PutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

// PutResponse is the contents write response subset svgpress needs.
type PutResponse struct {
	Content struct {
		Path        string `json:"path"`
		SHA         string `json:"sha"`
		HTMLURL     string `json:"html_url"`
		DownloadURL string `json:"download_url"`
	} `json:"content"`
	Commit struct {
		SHA     string `json:"sha"`
		HTMLURL string `json:"html_url"`
	} `json:"commit"`
}

// User returns the identity behind the configured token.
func (c *Client) User(ctx context.Context) (*User, error) {
	body, err := c.do(ctx, http.MethodGet, "/user", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("github: decode user response: %w", err)
	}
	return &user, nil
}

// GetContents returns the file metadata at path, or nil if the path
// does not exist in the repository.
func (c *Client) GetContents(ctx context.Context, owner, repo, path string) (*Contents, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), escapePath(path))

	body, err := c.do(ctx, http.MethodGet, endpoint, nil, http.StatusOK)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var contents Contents
	if err := json.Unmarshal(body, &contents); err != nil {
		return nil, fmt.Errorf("github: decode contents response: %w", err)
	}
	return &contents, nil
}

// PutContents creates or updates the file at path. GitHub answers 201
// for a create and 200 for an update; both are success.
func (c *Client) PutContents(
	ctx context.Context,
	owner, repo, path string,
	req PutRequest,
) (*PutResponse, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), escapePath(path))

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("github: marshal write payload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPut, endpoint, payload,
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var resp PutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("github: decode write response: %w", err)
	}
	return &resp, nil
}

// do issues one request and returns the response body when the status
// is one of wantStatus. Any other status becomes an *APIError carrying
// the body verbatim.
func (c *Client) do(
	ctx context.Context,
	method, endpoint string,
	payload []byte,
	wantStatus ...int,
) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("endpoint", endpoint).Msg("github request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github: read response body: %w", err)
	}

	for _, want := range wantStatus {
		if resp.StatusCode == want {
			return body, nil
		}
	}
	return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
}

// escapePath escapes each path segment while preserving the slashes
// that separate them.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
