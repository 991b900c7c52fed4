package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid token")
)

// ErrValidation is returned for malformed or missing input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UserRepository abstracts persistence concerns from the domain layer.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// Update persists name, profile image and password hash of an existing user.
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImageRemover drops a stored profile image by its public reference.
type ImageRemover interface {
	Remove(ctx context.Context, ref string) error
}
