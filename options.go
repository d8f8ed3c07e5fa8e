package svgpress

import (
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/diagramforge/svgpress/internal/staging"
	"github.com/diagramforge/svgpress/token"
)

// Option is a function that modifies an Uploader during construction.
type Option func(*Uploader)

// WithTokenProvider replaces the credential source. The default is the
// standard chain: GITHUB_TOKEN env var, then the gh CLI helper.
func WithTokenProvider(p token.Provider) Option {
	return func(u *Uploader) {
		if p != nil {
			u.tokens = p
		}
	}
}

// WithHTTPClient sets a custom HTTP client for all API calls.
func WithHTTPClient(h *http.Client) Option {
	return func(u *Uploader) {
		if h != nil {
			u.httpClient = h
		}
	}
}

// WithTimeout sets the HTTP timeout for API calls. Ignored when a
// custom HTTP client is also provided.
func WithTimeout(d time.Duration) Option {
	return func(u *Uploader) {
		u.timeout = d
	}
}

// WithAPIBaseURL overrides the GitHub API endpoint (GitHub Enterprise,
// tests).
func WithAPIBaseURL(base string) Option {
	return func(u *Uploader) {
		u.apiBase = base
	}
}

// WithRawBaseURL overrides the raw-content URL base used when the API
// response omits a download URL.
func WithRawBaseURL(base string) Option {
	return func(u *Uploader) {
		if base != "" {
			u.rawBase = base
		}
	}
}

// WithDefaultRepository sets the owner and repository used when a
// request leaves them empty.
func WithDefaultRepository(owner, repo string) Option {
	return func(u *Uploader) {
		if owner != "" {
			u.defaultOwner = owner
		}
		if repo != "" {
			u.defaultRepo = repo
		}
	}
}

// WithDefaultMessage sets the commit message used when a request
// leaves it empty.
func WithDefaultMessage(message string) Option {
	return func(u *Uploader) {
		if message != "" {
			u.defaultMessage = message
		}
	}
}

// WithFilesystem sets the filesystem used for staging temporary files.
// The default is the OS filesystem; tests pass an in-memory one.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(u *Uploader) {
		if fsys != nil {
			u.fs = fsys
		}
	}
}

// WithWorkDir sets the directory staging files are created under.
func WithWorkDir(dir string) Option {
	return func(u *Uploader) {
		if dir != "" {
			u.workDir = dir
		}
	}
}

// WithEncoder replaces the base64 encoder capability.
func WithEncoder(enc staging.Encoder) Option {
	return func(u *Uploader) {
		if enc != nil {
			u.enc = enc
		}
	}
}

// WithLogger sets the structured logger. The default discards output.
// Token values are never logged at any level.
func WithLogger(log zerolog.Logger) Option {
	return func(u *Uploader) {
		u.log = log
	}
}
