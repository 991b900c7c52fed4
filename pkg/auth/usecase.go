package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// PasswordCost is the bcrypt work factor for stored passwords.
	PasswordCost      = 10
	minNameLength     = 3
	minPasswordLength = 6
)

//go:generate minimock -i AuthUseCase -o ./mocks/auth_use_case_mock.go -n AuthUseCaseMock -p mocks

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	UpdateProfile(ctx context.Context, id Identity, in UpdateProfileInput) (User, error)
	Me(ctx context.Context, id Identity) (User, error)
	DeleteAccount(ctx context.Context, id Identity) error
}

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	ProfileImage *string
}

// UpdateProfileInput carries a profile edit. Nil ProfileImage keeps the
// current image; an empty Password keeps the current hash.
type UpdateProfileInput struct {
	Name         string
	ProfileImage *string
	Password     string
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
	images ImageRemover
	now    func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase.
// images may be nil when profile images are not removed on account deletion.
func NewAuthService(repo UserRepository, tokens TokenGenerator, images ImageRemover) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, images: images, now: time.Now}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return AuthResult{}, ErrValidation("all fields are required")
	}
	if err := validateName(name); err != nil {
		return AuthResult{}, err
	}

	// Best-effort check; the unique index decides under races. A taken email
	// is reported before the password rules.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return AuthResult{}, err
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return AuthResult{}, ErrValidation("password must be at least 6 characters long")
	}

	passwordHash, err := hashPassword(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	now := s.now().UTC()
	user := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		ProfileImage: in.ProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	return s.issue(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrValidation("all fields are required")
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	return s.issue(ctx, user)
}

func (s *authService) UpdateProfile(ctx context.Context, id Identity, in UpdateProfileInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return User{}, ErrValidation("name is required")
	}
	if err := validateName(name); err != nil {
		return User{}, err
	}
	if in.Password != "" && utf8.RuneCountInString(in.Password) < minPasswordLength {
		return User{}, ErrValidation("password must be at least 6 characters long")
	}

	user, err := s.repo.GetByID(ctx, id.UserID)
	if err != nil {
		return User{}, err
	}
	previous := user.ProfileImage
	user.Name = name
	if in.ProfileImage != nil {
		user.ProfileImage = in.ProfileImage
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return User{}, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	if in.ProfileImage != nil && previous != nil && *previous != *in.ProfileImage {
		s.removeImage(ctx, *previous)
	}
	return user, nil
}

func (s *authService) Me(ctx context.Context, id Identity) (User, error) {
	return s.repo.GetByID(ctx, id.UserID)
}

func (s *authService) DeleteAccount(ctx context.Context, id Identity) error {
	user, err := s.repo.GetByID(ctx, id.UserID)
	if err != nil {
		return err
	}
	// mood entries go with the user row (ON DELETE CASCADE)
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return err
	}
	if user.ProfileImage != nil {
		s.removeImage(ctx, *user.ProfileImage)
	}
	return nil
}

func (s *authService) removeImage(ctx context.Context, ref string) {
	if s.images == nil {
		return
	}
	if err := s.images.Remove(ctx, ref); err != nil {
		log.Printf("remove profile image %q: %v", ref, err)
	}
}

func (s *authService) issue(ctx context.Context, user User) (AuthResult, error) {
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) < minNameLength {
		return ErrValidation("name must be at least 3 characters long")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
