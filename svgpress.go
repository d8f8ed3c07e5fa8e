// Package svgpress uploads SVG diagrams to a GitHub repository through
// the contents API and returns stable raw-content URLs for embedding.
//
// The upload sequence is strictly linear: resolve a credential from an
// ordered provider chain, verify the authenticated identity, probe for
// an existing file at the target path, then create or update the file
// in a single write. There are no retries; every failure is terminal
// for the invocation.
package svgpress

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"

	"github.com/diagramforge/svgpress/internal/githubapi"
	"github.com/diagramforge/svgpress/internal/staging"
	"github.com/diagramforge/svgpress/token"
)

const (
	// DefaultOwner is the repository owner used when a request leaves
	// it empty.
	DefaultOwner = "diagramforge"

	// DefaultRepo is the repository name used when a request leaves it
	// empty.
	DefaultRepo = "diagrams"

	// DefaultMessage is the commit message used when a request leaves
	// it empty.
	DefaultMessage = "Add diagram"

	// DefaultRawBaseURL is the raw-content host used to synthesize a
	// direct URL when the API response omits one.
	DefaultRawBaseURL = "https://raw.githubusercontent.com"

	// DefaultTimeout bounds each API call.
	DefaultTimeout = 30 * time.Second
)

// Uploader publishes SVG content to a GitHub repository.
// Construct one with New and reuse it across uploads; it holds no
// per-invocation state.
type Uploader struct {
	tokens     token.Provider
	httpClient *http.Client
	timeout    time.Duration
	apiBase    string
	rawBase    string

	fs      billy.Filesystem
	workDir string
	enc     staging.Encoder

	log zerolog.Logger

	defaultOwner   string
	defaultRepo    string
	defaultMessage string
}

// New creates an Uploader with the provided options.
//
// Example:
//
//	up := svgpress.New(
//	    svgpress.WithDefaultRepository("acme", "diagrams"),
//	    svgpress.WithTimeout(10*time.Second),
//	)
func New(opts ...Option) *Uploader {
	u := &Uploader{
		tokens:         token.NewDefaultChain(),
		timeout:        DefaultTimeout,
		rawBase:        DefaultRawBaseURL,
		fs:             osfs.New("/"),
		workDir:        filepath.Join(xdg.CacheHome, "svgpress"),
		enc:            staging.Base64Encoder{},
		log:            zerolog.Nop(),
		defaultOwner:   DefaultOwner,
		defaultRepo:    DefaultRepo,
		defaultMessage: DefaultMessage,
	}

	for _, opt := range opts {
		opt(u)
	}

	if u.httpClient == nil {
		u.httpClient = &http.Client{Timeout: u.timeout}
	}

	return u
}

// apiClient builds the REST client bound to a resolved token.
func (u *Uploader) apiClient(tok string) *githubapi.Client {
	return githubapi.New(tok,
		githubapi.WithBaseURL(u.apiBase),
		githubapi.WithHTTPClient(u.httpClient),
		githubapi.WithLogger(u.log),
	)
}
