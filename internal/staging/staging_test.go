package staging_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagramforge/svgpress/internal/staging"
)

// failingEncoder always errors, exercising the failure cleanup path.
type failingEncoder struct{}

func (failingEncoder) Encode(_ []byte) (string, error) {
	return "", errors.New("encoder broken")
}

func TestStager_EncodeRoundTrip(t *testing.T) {
	fsys := memfs.New()
	stager := staging.New(fsys, "work", nil)

	encoded, err := stager.Encode([]byte("<svg/>"))
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(decoded))
}

func TestStager_RemovesTempFileOnSuccess(t *testing.T) {
	fsys := memfs.New()
	stager := staging.New(fsys, "work", nil)

	_, err := stager.Encode([]byte("<svg/>"))
	require.NoError(t, err)

	entries, err := fsys.ReadDir("work")
	require.NoError(t, err)
	assert.Empty(t, entries, "no staging artifact may survive")
}

func TestStager_RemovesTempFileOnEncoderFailure(t *testing.T) {
	fsys := memfs.New()
	stager := staging.New(fsys, "work", failingEncoder{})

	_, err := stager.Encode([]byte("<svg/>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder broken")

	entries, err := fsys.ReadDir("work")
	require.NoError(t, err)
	assert.Empty(t, entries, "no staging artifact may survive a failure")
}

func TestStager_CreatesWorkDir(t *testing.T) {
	fsys := memfs.New()
	stager := staging.New(fsys, "deeply/nested/work", nil)

	_, err := stager.Encode([]byte("data"))
	require.NoError(t, err)

	info, err := fsys.Stat("deeply/nested/work")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStager_EmptyContent(t *testing.T) {
	fsys := memfs.New()
	stager := staging.New(fsys, "work", nil)

	encoded, err := stager.Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, encoded)
}

func TestBase64Encoder(t *testing.T) {
	enc := staging.Base64Encoder{}
	got, err := enc.Encode([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", got)
}
