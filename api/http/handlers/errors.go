package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/mood/api/http/presenter"
	"github.com/artem13815/mood/pkg/auth"
	"github.com/artem13815/mood/pkg/mood"
	"github.com/artem13815/mood/pkg/storage/files"
)

// writeError maps domain errors to HTTP statuses. Unknown errors are logged
// under op and reported as a generic 500.
func writeError(c *fiber.Ctx, op string, err error) error {
	var authInvalid auth.ErrValidation
	var moodInvalid mood.ErrValidation
	switch {
	case errors.As(err, &authInvalid), errors.As(err, &moodInvalid),
		errors.Is(err, files.ErrEmptyImage), errors.Is(err, files.ErrUnsupportedImage):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, files.ErrImageTooLarge):
		return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, mood.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, auth.ErrUserAlreadyExists), errors.Is(err, mood.ErrEntryExists):
		return presenter.Error(c, http.StatusConflict, err.Error())
	default:
		log.Printf("%s: %v", op, err)
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
