package jwt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/mood/pkg/auth"
)

const testSecret = "mood_test_jwt_secret_key_1234567890"

func testUser() auth.User {
	return auth.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m := NewManager(testSecret, "mood-service", 0)
	u := testUser()

	token, err := m.Generate(context.Background(), u)
	require.NoError(t, err)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, "Alice", id.Name)
}

func TestTokenExpiresAfterOneDay(t *testing.T) {
	m := NewManager(testSecret, "mood-service", DefaultTTL)
	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, err := m.Generate(context.Background(), testUser())
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(23 * time.Hour) }
	_, err = m.Verify(token)
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(25 * time.Hour) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejects(t *testing.T) {
	m := NewManager(testSecret, "mood-service", time.Hour)
	token, err := m.Generate(context.Background(), testUser())
	require.NoError(t, err)

	other := NewManager("another_secret_key_of_sufficient_len", "mood-service", time.Hour)
	foreign, err := other.Generate(context.Background(), testUser())
	require.NoError(t, err)

	wrongIssuer := NewManager(testSecret, "someone-else", time.Hour)
	issuerToken, err := wrongIssuer.Generate(context.Background(), testUser())
	require.NoError(t, err)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "mood-service",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts, foreignParts := strings.Split(token, "."), strings.Split(foreign, ".")
	tampered := parts[0] + "." + parts[1] + "." + foreignParts[2]

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"tampered":     tampered,
		"other secret": foreign,
		"other issuer": issuerToken,
		"alg none":     unsigned,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tok)
			assert.True(t, errors.Is(err, auth.ErrInvalidToken), "got %v", err)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	m := NewManager(testSecret, "mood-service", time.Hour)
	u := testUser()
	token, err := m.Generate(context.Background(), u)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(m), func(c *fiber.Ctx) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(id.UserID.String())
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"invalid", "Bearer nope", http.StatusUnauthorized},
		{"bearer", "Bearer " + token, http.StatusOK},
		{"bare token", token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
