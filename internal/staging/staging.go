// Package staging prepares upload content for transport. Content is
// written to a scoped temporary file under a configurable work
// directory, encoded to base64, and the file is removed before the
// staged form is returned — on every exit path, success or failure.
//
// The filesystem is a go-billy abstraction so tests run entirely
// in memory.
package staging

import (
	"encoding/base64"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// tempPrefix names staged files so stray artifacts are identifiable.
const tempPrefix = "svgpress-"

// Encoder turns raw bytes into their base64 transport form.
// Implementations may shell out or use a library; the upload path only
// depends on this capability.
type Encoder interface {
	Encode(data []byte) (string, error)
}

// Base64Encoder is the standard library implementation of Encoder.
type Base64Encoder struct{}

// Encode implements Encoder using standard base64 encoding.
func (Base64Encoder) Encode(data []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(data), nil
}

// Stager stages content through a temporary file and encodes it.
type Stager struct {
	fs      billy.Filesystem
	workDir string
	enc     Encoder
}

// New creates a Stager writing temporary files under workDir on fsys.
// A nil enc defaults to Base64Encoder.
func New(fsys billy.Filesystem, workDir string, enc Encoder) *Stager {
	if enc == nil {
		enc = Base64Encoder{}
	}
	return &Stager{
		fs:      fsys,
		workDir: workDir,
		enc:     enc,
	}
}

// Encode stages content into a temporary file under the work directory
// and returns its encoded form. The temporary file is removed before
// Encode returns, regardless of outcome.
func (s *Stager) Encode(content []byte) (encoded string, err error) {
	if err := s.fs.MkdirAll(s.workDir, 0o700); err != nil {
		return "", fmt.Errorf("staging: create work dir %q: %w", s.workDir, err)
	}

	f, err := util.TempFile(s.fs, s.workDir, tempPrefix)
	if err != nil {
		return "", fmt.Errorf("staging: create temp file: %w", err)
	}
	name := f.Name()
	defer func() {
		if rmErr := s.fs.Remove(name); rmErr != nil && err == nil {
			err = fmt.Errorf("staging: remove temp file %q: %w", name, rmErr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("staging: write temp file %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("staging: close temp file %q: %w", name, err)
	}

	staged, err := util.ReadFile(s.fs, name)
	if err != nil {
		return "", fmt.Errorf("staging: read temp file %q: %w", name, err)
	}

	encoded, err = s.enc.Encode(staged)
	if err != nil {
		return "", fmt.Errorf("staging: encode content: %w", err)
	}
	return encoded, nil
}
