package svgpress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := &Error{
		Op:    "upload",
		Owner: "acme",
		Repo:  "diagrams",
		Path:  "a/b.svg",
		Err:   errors.New("boom"),
	}
	assert.Equal(t, "svgpress.upload acme/diagrams/a/b.svg: boom", err.Error())
}

func TestError_FormatWithoutCoordinates(t *testing.T) {
	err := &Error{Op: "auth", Err: errors.New("boom")}
	assert.Equal(t, "svgpress.auth: boom", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	err := &Error{Op: "upload", Err: ErrUploadFailed}
	assert.True(t, errors.Is(err, ErrUploadFailed))
}
