package auth

import "context"

// TokenGenerator abstracts token creation (e.g., JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// TokenVerifier turns a raw token into the identity it asserts.
// Implementations return ErrInvalidToken for empty, tampered or expired tokens.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}
