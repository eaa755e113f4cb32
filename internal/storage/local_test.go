package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "resumes/cv.pdf", want: "resumes/cv.pdf"},
		{in: "resumes//./cv.pdf", want: "resumes/cv.pdf"},
		{in: `profileImages\a.png`, want: "profileImages/a.png"},
		{in: "../etc/passwd", wantErr: true},
		{in: "resumes/../../x", wantErr: true},
		{in: "/abs/path", wantErr: true},
		{in: "", wantErr: true},
		{in: ".", wantErr: true},
	}
	for _, tt := range tests {
		got, err := CleanPath(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPath, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestLocalStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/uploads/"})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "resumes/cv.pdf", strings.NewReader("%PDF-1.4"), "application/pdf"))
	_, err = os.Stat(filepath.Join(dir, "resumes", "cv.pdf"))
	require.NoError(t, err)

	ok, err := s.Exists(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	size, err := s.GetSize(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	assert.EqualValues(t, 8, size)

	rc, err := s.Get(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	url, err := s.GetURL(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/cv.pdf", url)

	require.NoError(t, s.Delete(ctx, "resumes/cv.pdf"))
	require.NoError(t, s.Delete(ctx, "resumes/cv.pdf"))

	ok, err = s.Exists(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Get(ctx, "resumes/cv.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	err = s.Save(ctx, "../escape.txt", strings.NewReader("x"), "text/plain")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = s.Get(ctx, "resumes/../../escape.txt")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
