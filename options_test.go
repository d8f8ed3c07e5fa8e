package svgpress

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"

	"github.com/diagramforge/svgpress/token"
)

func TestNew_Defaults(t *testing.T) {
	u := New()

	assert.Equal(t, DefaultOwner, u.defaultOwner)
	assert.Equal(t, DefaultRepo, u.defaultRepo)
	assert.Equal(t, DefaultMessage, u.defaultMessage)
	assert.Equal(t, DefaultRawBaseURL, u.rawBase)
	assert.NotNil(t, u.tokens)
	assert.NotNil(t, u.fs)
	assert.NotEmpty(t, u.workDir)
	assert.Equal(t, DefaultTimeout, u.httpClient.Timeout)
}

func TestNew_Options(t *testing.T) {
	fsys := memfs.New()
	httpClient := &http.Client{}
	provider := token.NewStatic("t")

	u := New(
		WithTokenProvider(provider),
		WithHTTPClient(httpClient),
		WithAPIBaseURL("https://ghe.example.com/api/v3"),
		WithRawBaseURL("https://raw.example.com"),
		WithDefaultRepository("acme", "diagrams"),
		WithDefaultMessage("publish diagram"),
		WithFilesystem(fsys),
		WithWorkDir("tmp/stage"),
	)

	assert.Same(t, provider, u.tokens.(*token.Static))
	assert.Same(t, httpClient, u.httpClient)
	assert.Equal(t, "https://ghe.example.com/api/v3", u.apiBase)
	assert.Equal(t, "https://raw.example.com", u.rawBase)
	assert.Equal(t, "acme", u.defaultOwner)
	assert.Equal(t, "diagrams", u.defaultRepo)
	assert.Equal(t, "publish diagram", u.defaultMessage)
	assert.Equal(t, "tmp/stage", u.workDir)
}

func TestNew_TimeoutAppliedToDefaultClient(t *testing.T) {
	u := New(WithTimeout(5 * time.Second))
	assert.Equal(t, 5*time.Second, u.httpClient.Timeout)
}

func TestNew_NilOptionsIgnored(t *testing.T) {
	u := New(
		WithTokenProvider(nil),
		WithHTTPClient(nil),
		WithFilesystem(nil),
		WithWorkDir(""),
		WithRawBaseURL(""),
	)

	assert.NotNil(t, u.tokens)
	assert.NotNil(t, u.httpClient)
	assert.NotNil(t, u.fs)
	assert.NotEmpty(t, u.workDir)
	assert.Equal(t, DefaultRawBaseURL, u.rawBase)
}
