package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/mood/api/http/presenter"
	"github.com/artem13815/mood/pkg/auth"
	"github.com/artem13815/mood/pkg/security/jwt"
	"github.com/artem13815/mood/pkg/storage/files"
)

// ImageStore persists uploaded profile pictures.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}

const profileImageField = "profileImage"

type UserHandler struct {
	useCase auth.AuthUseCase
	images  ImageStore
}

func NewUserHandler(useCase auth.AuthUseCase, images ImageStore) *UserHandler {
	return &UserHandler{useCase: useCase, images: images}
}

type userResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func presentUser(u auth.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.ProfileImage != nil {
		url := files.ImageURL(*u.ProfileImage)
		resp.ProfileImage = &url
	}
	return resp
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Register creates an account and returns a session token.
// @Summary Register user
// @Tags    user
// @Accept  json,mpfd
// @Produce json
// @Param   input        body     registerRequest true  "registration payload"
// @Param   profileImage formData file            false "profile picture"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /user/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request payload")
	}

	image, err := h.saveImage(c)
	if err != nil {
		return writeError(c, "register: save image", err)
	}

	result, err := h.useCase.Register(c.Context(), auth.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		ProfileImage: image,
	})
	if err != nil {
		h.discardImage(c, image)
		return writeError(c, "register", err)
	}

	return presenter.JSON(c, http.StatusCreated, authResponse{
		Message: "user authenticated successfully",
		Token:   result.Token,
		User:    presentUser(result.User),
	})
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login exchanges credentials for a session token.
// @Summary Login
// @Tags    user
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return presenter.Error(c, http.StatusNotFound, "email not found")
		}
		return writeError(c, "login", err)
	}

	return presenter.JSON(c, http.StatusCreated, authResponse{
		Message: "user authenticated successfully",
		Token:   result.Token,
		User:    presentUser(result.User),
	})
}

type updateProfileRequest struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

// Update edits the caller's name, password and profile picture.
// @Summary Update profile
// @Tags    user
// @Accept  json,mpfd
// @Produce json
// @Param   input        body     updateProfileRequest true  "profile payload"
// @Param   profileImage formData file                 false "new profile picture"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/update [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request payload")
	}

	image, err := h.saveImage(c)
	if err != nil {
		return writeError(c, "update profile: save image", err)
	}

	user, err := h.useCase.UpdateProfile(c.Context(), id, auth.UpdateProfileInput{
		Name:         req.Name,
		Password:     req.Password,
		ProfileImage: image,
	})
	if err != nil {
		h.discardImage(c, image)
		return writeError(c, "update profile", err)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "profile updated successfully",
		"user":    presentUser(user),
	})
}

// Me returns the caller's profile.
// @Summary Current user
// @Tags    user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	user, err := h.useCase.Me(c.Context(), id)
	if err != nil {
		return writeError(c, "me", err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"user": presentUser(user)})
}

// Delete removes the caller's account together with all mood entries.
// @Summary Delete account
// @Tags    user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/delete [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	if err := h.useCase.DeleteAccount(c.Context(), id); err != nil {
		return writeError(c, "delete account", err)
	}
	return presenter.Message(c, http.StatusOK, "account deleted successfully")
}

// saveImage stores the optional multipart profile picture. It returns nil
// when the request carries no file.
func (h *UserHandler) saveImage(c *fiber.Ctx) (*string, error) {
	if h.images == nil {
		return nil, nil
	}
	header, err := c.FormFile(profileImageField)
	if err != nil {
		return nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ref, err := h.images.Save(c.Context(), header.Filename, f)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (h *UserHandler) discardImage(c *fiber.Ctx, ref *string) {
	if ref == nil {
		return
	}
	if err := h.images.Remove(c.Context(), *ref); err != nil {
		log.Printf("discard uploaded image %q: %v", *ref, err)
	}
}
