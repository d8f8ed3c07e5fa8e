package svgpress

import (
	"context"
	"fmt"

	"github.com/diagramforge/svgpress/internal/githubapi"
	"github.com/diagramforge/svgpress/internal/staging"
	"github.com/diagramforge/svgpress/token"
)

// remoteFileState is the result of probing the target path: absent, or
// present with the remote's content fingerprint. It is transient and
// valid only for the write that immediately follows; a concurrent
// change to the same path makes the fingerprint stale and the remote
// rejects the write, which surfaces as an upload failure.
type remoteFileState struct {
	present bool
	sha     string
}

// Upload publishes the requested content and returns the normalized
// result. The sequence is: validate, resolve credential, verify
// identity, probe for an existing file, stage and encode the content,
// write. Each fatal error aborts immediately; there is no retry.
func (u *Uploader) Upload(ctx context.Context, req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	if req.Owner == "" {
		req.Owner = u.defaultOwner
	}
	if req.Repo == "" {
		req.Repo = u.defaultRepo
	}
	if req.Message == "" {
		req.Message = u.defaultMessage
	}
	req.Message = sanitizeMessage(req.Message)

	normalized := normalizePath(req.Path)
	if normalized != req.Path {
		u.log.Debug().Str("from", req.Path).Str("to", normalized).Msg("rewrote upload path")
		req.Path = normalized
	}

	tok, err := u.tokens.Token(ctx)
	if err != nil {
		return nil, &Error{Op: "auth", Err: err}
	}
	if tok == "" {
		return nil, &Error{Op: "auth", Err: token.ErrNoToken}
	}

	client := u.apiClient(tok)

	user, err := client.User(ctx)
	if err != nil {
		return nil, &Error{Op: "identity", Err: fmt.Errorf("%w: %w", ErrIdentityCheck, err)}
	}
	u.log.Debug().Str("login", user.Login).Msg("authenticated")

	state := u.locate(ctx, client, req)

	encoded, err := staging.New(u.fs, u.workDir, u.enc).Encode([]byte(req.Content))
	if err != nil {
		return nil, &Error{Op: "stage", Owner: req.Owner, Repo: req.Repo, Path: req.Path, Err: err}
	}

	put := githubapi.PutRequest{
		Message: req.Message,
		Content: encoded,
	}
	if state.present {
		put.SHA = state.sha
	}

	resp, err := client.PutContents(ctx, req.Owner, req.Repo, req.Path, put)
	if err != nil {
		return nil, &Error{
			Op:    "upload",
			Owner: req.Owner,
			Repo:  req.Repo,
			Path:  req.Path,
			Err:   fmt.Errorf("%w: %w", ErrUploadFailed, err),
		}
	}

	rawURL := resp.Content.DownloadURL
	if rawURL == "" {
		// API contract drift: synthesize the known raw-content URL
		// rather than fail over a convenience field.
		rawURL = fmt.Sprintf("%s/%s/%s/%s/%s",
			u.rawBase, req.Owner, req.Repo, resp.Commit.SHA, req.Path)
	}

	u.log.Info().
		Str("owner", req.Owner).
		Str("repo", req.Repo).
		Str("path", req.Path).
		Str("commit", resp.Commit.SHA).
		Bool("update", state.present).
		Msg("upload complete")

	return &Result{
		RawURL:    rawURL,
		HTMLURL:   resp.Content.HTMLURL,
		CommitSHA: resp.Commit.SHA,
		Path:      req.Path,
		Owner:     req.Owner,
		Repo:      req.Repo,
	}, nil
}

// locate probes for an existing file at the request path. Any failure
// degrades to "absent" by policy: a false absent only costs a redundant
// create attempt, which the remote rejects cleanly, whereas propagating
// probe errors would change create/update selection under transient
// network blips. This is a deliberate trade-off, not a gap.
func (u *Uploader) locate(ctx context.Context, client *githubapi.Client, req Request) remoteFileState {
	contents, err := client.GetContents(ctx, req.Owner, req.Repo, req.Path)
	if err != nil {
		u.log.Debug().Err(err).Str("path", req.Path).Msg("existence probe failed, treating as absent")
		return remoteFileState{}
	}
	if contents == nil {
		return remoteFileState{}
	}
	return remoteFileState{present: true, sha: contents.SHA}
}
