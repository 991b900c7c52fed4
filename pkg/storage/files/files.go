package files

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// PublicPrefix is the URL path profile images are served under.
const PublicPrefix = "/uploads/"

var (
	ErrNotFound         = errors.New("file not found")
	ErrEmptyImage       = errors.New("image is empty")
	ErrImageTooLarge    = errors.New("image is too large")
	ErrUnsupportedImage = errors.New("only png, jpeg, gif and webp images are allowed")
)

// Store keeps uploaded objects under flat keys.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, key string) error
}

var imageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Images validates and stores profile pictures and hands out public
// references of the form /uploads/<key>.
type Images struct {
	store    Store
	maxBytes int64
}

func NewImages(store Store, maxBytes int64) *Images {
	return &Images{store: store, maxBytes: maxBytes}
}

// Save sniffs the content type, names the object after the original file
// name and returns its public reference.
func (i *Images) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := readAtMost(r, i.maxBytes)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	mtype := mimetype.Detect(data)
	ext, ok := imageTypes[normalizeMimeType(mtype.String())]
	if !ok {
		return "", ErrUnsupportedImage
	}
	key := objectKey(filename, ext)
	if err := i.store.Put(ctx, key, data, mtype.String()); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return PublicPrefix + key, nil
}

// Open returns the bytes and content type of a stored image by key.
func (i *Images) Open(ctx context.Context, key string) ([]byte, string, error) {
	if !validKey(key) {
		return nil, "", ErrNotFound
	}
	return i.store.Get(ctx, key)
}

// Remove deletes an image by its public reference. References that do not
// point into the store (external URLs, data URIs) are ignored.
func (i *Images) Remove(ctx context.Context, ref string) error {
	key, ok := strings.CutPrefix(ref, PublicPrefix)
	if !ok || !validKey(key) {
		return nil
	}
	if err := i.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// ImageURL resolves a stored reference to something a client can load:
// absolute URLs and data URIs pass through, /uploads paths stay as is and
// bare names are placed under /uploads.
func ImageURL(ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "data:"):
		return ref
	case strings.HasPrefix(ref, PublicPrefix):
		return ref
	default:
		return PublicPrefix + strings.TrimPrefix(ref, "/")
	}
}

func objectKey(filename, ext string) string {
	base := strings.TrimSuffix(path.Base(strings.ReplaceAll(filename, `\`, "/")), path.Ext(filename))
	name := slug.Make(base)
	if name == "" || name == "." {
		name = "image"
	}
	if len(name) > 40 {
		name = strings.Trim(name[:40], "-")
	}
	return uuid.NewString() + "-" + name + ext
}

func validKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}

func normalizeMimeType(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if separator := strings.Index(normalized, ";"); separator >= 0 {
		normalized = strings.TrimSpace(normalized[:separator])
	}
	return normalized
}

func readAtMost(r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if n > limit {
		return nil, ErrImageTooLarge
	}
	return buf.Bytes(), nil
}
