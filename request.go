package svgpress

import (
	"fmt"
	"path"
	"strings"
	"unicode"
)

// maxMessageLength caps commit messages after sanitization.
const maxMessageLength = 200

// Request describes one diagram upload.
type Request struct {
	// Content is the raw SVG markup. Required.
	Content string

	// Owner and Repo identify the target repository. Each falls back
	// to the uploader's configured default when empty.
	Owner string
	Repo  string

	// Path is the slash-separated file location within the repository.
	// Required. A ".png" suffix is rewritten to ".svg" before use:
	// only SVG bytes are ever written, whatever the caller's stated
	// extension.
	Path string

	// Message is the commit message. Falls back to the uploader's
	// configured default when empty.
	Message string
}

// Result is the normalized outcome of a successful upload. The JSON
// field names match the payload handed back to callers.
type Result struct {
	// RawURL is the direct-content URL for the written file.
	RawURL string `json:"url"`

	// HTMLURL is the human-browsable URL for the written file.
	HTMLURL string `json:"html_url"`

	// CommitSHA identifies the commit that performed the write.
	CommitSHA string `json:"commit"`

	// Path, Owner and Repo echo the resolved request.
	Path  string `json:"path"`
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// validate rejects the request before any I/O when a required field is
// absent.
func (r *Request) validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return &Error{Op: "validate", Err: fmt.Errorf("%w: content", ErrMissingParameter)}
	}
	if strings.TrimSpace(r.Path) == "" {
		return &Error{Op: "validate", Err: fmt.Errorf("%w: path", ErrMissingParameter)}
	}
	return nil
}

// normalizePath trims a leading slash and rewrites a .png suffix to
// .svg.
func normalizePath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if strings.EqualFold(path.Ext(p), ".png") {
		p = p[:len(p)-len(".png")] + ".svg"
	}
	return p
}

// sanitizeMessage strips control characters and truncates the commit
// message.
func sanitizeMessage(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	s = strings.TrimSpace(b.String())
	if len(s) > maxMessageLength {
		s = s[:maxMessageLength]
	}
	return s
}
