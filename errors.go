package svgpress

import (
	"errors"
	"fmt"
)

// Sentinel errors for upload failures. These can be used with
// errors.Is() for error checking.
var (
	// ErrMissingParameter indicates a required request field is absent.
	// The request is rejected before any I/O occurs.
	ErrMissingParameter = errors.New("svgpress: missing required parameter")

	// ErrIdentityCheck indicates the authenticated-user probe failed.
	// The whole invocation is aborted even though the write itself
	// might have succeeded.
	ErrIdentityCheck = errors.New("svgpress: identity check failed")

	// ErrUploadFailed indicates the contents write was rejected by the
	// remote. The remote's error text is preserved verbatim in the
	// wrapped error chain.
	ErrUploadFailed = errors.New("svgpress: upload failed")
)

// Error wraps an upload failure with the operation that failed and the
// target repository coordinates.
type Error struct {
	// Op is the operation that failed (e.g., "auth", "identity",
	// "stage", "upload").
	Op string

	// Owner and Repo identify the target repository (if resolved).
	Owner string
	Repo  string

	// Path is the repository path being written (if resolved).
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Owner != "" && e.Repo != "" && e.Path != "" {
		return fmt.Sprintf("svgpress.%s %s/%s/%s: %v", e.Op, e.Owner, e.Repo, e.Path, e.Err)
	}
	return fmt.Sprintf("svgpress.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}
