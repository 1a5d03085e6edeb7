package filesystem

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeKey(t *testing.T) {
	key, ct, err := ResumeKey("Jane Doe CV.PDF")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "resumes/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.Equal(t, "application/pdf", ct)

	other, _, err := ResumeKey("cv.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	_, _, err = ResumeKey("payload.exe")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/plain", ContentType("resumes/a.txt"))
	assert.Equal(t, "application/octet-stream", ContentType("resumes/a.bin"))
}

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "resumes/a.txt", "text/plain", strings.NewReader("hello")))

	var buf bytes.Buffer
	require.NoError(t, store.Read(ctx, "resumes/a.txt", &buf))
	assert.Equal(t, "hello", buf.String())

	assert.Error(t, store.Read(ctx, "resumes/missing.txt", &buf))

	require.NoError(t, store.Delete(ctx, "resumes/a.txt"))
	assert.Error(t, store.Read(ctx, "resumes/a.txt", &buf))
	assert.NoError(t, store.Delete(ctx, "resumes/a.txt"))
}

func TestLocalStoreStaysInDir(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(filepath.Join(dir, "uploads"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "../../escape.txt", "text/plain", strings.NewReader("x")))

	_, err := os.Stat(filepath.Join(dir, "uploads", "escape.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}
