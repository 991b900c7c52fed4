package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/mood/api/http/presenter"
	"github.com/artem13815/mood/pkg/storage/files"
)

// ImageSource reads stored profile pictures by key.
type ImageSource interface {
	Open(ctx context.Context, key string) ([]byte, string, error)
}

type UploadsHandler struct {
	images ImageSource
}

func NewUploadsHandler(images ImageSource) *UploadsHandler { return &UploadsHandler{images: images} }

// Serve streams a stored profile picture.
// @Summary Profile image
// @Tags    uploads
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param   name path string true "object key"
// @Success 200 {file} binary
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /uploads/{name} [get]
func (h *UploadsHandler) Serve(c *fiber.Ctx) error {
	data, contentType, err := h.images.Open(c.Context(), c.Params("name"))
	if errors.Is(err, files.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, err.Error())
	}
	if err != nil {
		return writeError(c, "serve upload", err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Status(http.StatusOK).Send(data)
}
