package files

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

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func newTestImages(t *testing.T, limit int64) (*Images, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	return NewImages(store, limit), dir
}

func TestImagesSaveOpenRemove(t *testing.T) {
	images, dir := newTestImages(t, 1024)
	ctx := context.Background()

	ref, err := images.Save(ctx, "My Holiday Photo.PNG", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, PublicPrefix))
	assert.True(t, strings.HasSuffix(ref, "-my-holiday-photo.png"), ref)

	key := strings.TrimPrefix(ref, PublicPrefix)
	_, err = os.Stat(filepath.Join(dir, key))
	require.NoError(t, err)

	data, ctype, err := images.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
	assert.Equal(t, "image/png", ctype)

	require.NoError(t, images.Remove(ctx, ref))
	_, _, err = images.Open(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	// removing twice is not an error
	assert.NoError(t, images.Remove(ctx, ref))
}

func TestImagesSaveRejects(t *testing.T) {
	images, _ := newTestImages(t, 16)
	ctx := context.Background()

	_, err := images.Save(ctx, "a.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = images.Save(ctx, "a.txt", strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = images.Save(ctx, "a.png", bytes.NewReader(pngBytes))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestImagesOpenRejectsTraversal(t *testing.T) {
	images, _ := newTestImages(t, 1024)
	for _, key := range []string{"", "..", "../etc/passwd", `a\b`} {
		_, _, err := images.Open(context.Background(), key)
		assert.ErrorIs(t, err, ErrNotFound, key)
	}
}

func TestImagesRemoveIgnoresExternalRefs(t *testing.T) {
	images, _ := newTestImages(t, 1024)
	assert.NoError(t, images.Remove(context.Background(), "https://cdn.example.com/a.png"))
	assert.NoError(t, images.Remove(context.Background(), "data:image/png;base64,AAAA"))
}

func TestImageURL(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		"https://cdn.example.com/a":  "https://cdn.example.com/a",
		"http://example.com/b.png":   "http://example.com/b.png",
		"data:image/png;base64,AAAA": "data:image/png;base64,AAAA",
		"/uploads/x.png":             "/uploads/x.png",
		"x.png":                      "/uploads/x.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, ImageURL(in), in)
	}
}

func TestObjectKeyFallsBackForUnsluggableNames(t *testing.T) {
	key := objectKey("???.png", ".png")
	assert.True(t, strings.HasSuffix(key, "-image.png"), key)
}
