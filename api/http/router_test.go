package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/mood/api/http/handlers"
	"github.com/artem13815/mood/pkg/auth"
	authmocks "github.com/artem13815/mood/pkg/auth/mocks"
	"github.com/artem13815/mood/pkg/health"
	"github.com/artem13815/mood/pkg/mood"
	moodmocks "github.com/artem13815/mood/pkg/mood/mocks"
	"github.com/artem13815/mood/pkg/security/jwt"
	"github.com/artem13815/mood/pkg/storage/files"
)

type fakeImages struct {
	saved   []string
	removed []string
	blobs   map[string][]byte
}

func (f *fakeImages) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	f.saved = append(f.saved, filename)
	return files.PublicPrefix + filename, nil
}

func (f *fakeImages) Remove(_ context.Context, ref string) error {
	f.removed = append(f.removed, ref)
	return nil
}

func (f *fakeImages) Open(_ context.Context, key string) ([]byte, string, error) {
	data, ok := f.blobs[key]
	if !ok {
		return nil, "", files.ErrNotFound
	}
	return data, "image/png", nil
}

type failingChecker struct{}

func (failingChecker) Name() string                { return "postgres" }
func (failingChecker) Check(context.Context) error { return errors.New("down") }

const (
	testSecret = "router_test_secret_0123456789abcdef"
	testIssuer = "mood-service"
)

type testEnv struct {
	app      *fiber.App
	auth     *authmocks.AuthUseCaseMock
	mood     *moodmocks.UseCaseMock
	images   *fakeImages
	token    string
	user     auth.User
	identity auth.Identity
}

func newTestEnv(t *testing.T, checks ...health.Checker) *testEnv {
	t.Helper()
	tokens := jwt.NewManager(testSecret, testIssuer, time.Hour)
	user := auth.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	token, err := tokens.Generate(context.Background(), user)
	require.NoError(t, err)

	env := &testEnv{
		app:      fiber.New(),
		auth:     authmocks.NewAuthUseCaseMock(t),
		mood:     moodmocks.NewUseCaseMock(t),
		images:   &fakeImages{blobs: map[string][]byte{"a.png": []byte("png")}},
		token:    token,
		user:     user,
		identity: auth.Identity{UserID: user.ID, Name: user.Name},
	}
	Register(env.app, tokens, Handlers{
		User:    handlers.NewUserHandler(env.auth, env.images),
		Mood:    handlers.NewMoodHandler(env.mood),
		Uploads: handlers.NewUploadsHandler(env.images),
		Health:  handlers.NewHealthHandler(health.NewService(checks...)),
	})
	return env
}

// moodCalls counts every mood use case invocation, expected or not.
func (e *testEnv) moodCalls() uint64 {
	m := e.mood
	return m.CreateBeforeCounter() + m.GetLatestBeforeCounter() + m.GetAllBeforeCounter() +
		m.GetByIDBeforeCounter() + m.GetByDateRangeBeforeCounter() + m.UpdateBeforeCounter() +
		m.DeleteBeforeCounter() + m.GetStatsBeforeCounter()
}

func (e *testEnv) profileCalls() uint64 {
	return e.auth.UpdateProfileBeforeCounter() + e.auth.MeBeforeCounter() + e.auth.DeleteAccountBeforeCounter()
}

func signClaims(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path string, body any, authed bool) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *nethttp.Request) (int, map[string]any) {
	t.Helper()
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

var protectedRoutes = []struct{ method, path string }{
	{nethttp.MethodPost, "/mood/create"},
	{nethttp.MethodGet, "/mood/all"},
	{nethttp.MethodGet, "/mood/latest"},
	{nethttp.MethodGet, "/mood/stats"},
	{nethttp.MethodGet, "/mood/range"},
	{nethttp.MethodGet, "/mood/" + uuid.NewString()},
	{nethttp.MethodPut, "/mood/" + uuid.NewString()},
	{nethttp.MethodDelete, "/mood/" + uuid.NewString()},
	{nethttp.MethodPut, "/user/update"},
	{nethttp.MethodGet, "/user/me"},
	{nethttp.MethodDelete, "/user/delete"},
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)
	for _, rt := range protectedRoutes {
		status, _ := env.do(t, rt.method, rt.path, nil, false)
		assert.Equal(t, nethttp.StatusUnauthorized, status, "%s %s", rt.method, rt.path)
	}
	assert.Zero(t, env.moodCalls(), "no use case may run without identity")
	assert.Zero(t, env.profileCalls())
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()
	subject := env.user.ID.String()
	claimsAt := func(issued, expires time.Time) jwt.Claims {
		return jwt.Claims{
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   subject,
				IssuedAt:  gojwt.NewNumericDate(issued),
				ExpiresAt: gojwt.NewNumericDate(expires),
			},
			UserID: subject,
			Name:   env.user.Name,
		}
	}

	parts := strings.Split(env.token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	other := uuid.NewString()
	forgedPayload := strings.ReplaceAll(string(payload), subject, other)
	require.NotEqual(t, string(payload), forgedPayload)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}

	tokens := map[string]string{
		"expired":           signClaims(t, testSecret, claimsAt(now.Add(-2*time.Hour), now.Add(-time.Hour))),
		"foreign secret":    signClaims(t, "another_secret_0123456789abcdefgh", claimsAt(now, now.Add(time.Hour))),
		"altered payload":   parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(forgedPayload)) + "." + parts[2],
		"altered signature": parts[0] + "." + parts[1] + "." + string(sig),
		"garbage":           "not.a.token",
	}
	for name, token := range tokens {
		for _, rt := range protectedRoutes {
			req := httptest.NewRequest(rt.method, rt.path, strings.NewReader(`{"mood":"Happy","name":"Mallory"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			status, body := env.send(t, req)
			assert.Equal(t, nethttp.StatusUnauthorized, status, "%s: %s %s", name, rt.method, rt.path)
			assert.Equal(t, "invalid or expired token", body["message"], name)
		}
	}
	assert.Zero(t, env.moodCalls(), "no use case may run on a rejected token")
	assert.Zero(t, env.profileCalls())
}

func TestStaticMoodRoutesAreNotCapturedByID(t *testing.T) {
	env := newTestEnv(t)
	env.mood.GetAllMock.ExpectIdParam2(env.identity).Return([]mood.Entry{}, nil)
	env.mood.GetLatestMock.ExpectIdParam2(env.identity).Return(mood.Entry{ID: uuid.New()}, nil)
	env.mood.GetStatsMock.ExpectIdParam2(env.identity).Return(mood.Aggregate(nil), nil)
	env.mood.GetByDateRangeMock.ExpectIdParam2(env.identity).Return([]mood.Entry{}, nil)

	for _, path := range []string{"/mood/all", "/mood/latest", "/mood/stats", "/mood/range"} {
		status, _ := env.do(t, nethttp.MethodGet, path, nil, true)
		assert.Equal(t, nethttp.StatusOK, status, path)
	}
	assert.Zero(t, env.mood.GetByIDBeforeCounter())
}

func TestCreateMood(t *testing.T) {
	env := newTestEnv(t)
	entry := mood.Entry{ID: uuid.New(), Mood: mood.Happy, Feelings: []string{"Calm"}}
	env.mood.CreateMock.
		ExpectIdParam2(env.identity).
		ExpectInParam3(mood.CreateInput{
			Mood:       "Happy",
			Feelings:   []string{"Calm"},
			SleepHours: "7-8 hours",
			EntryDate:  "2026-03-15",
		}).
		Return(entry, nil)

	status, body := env.do(t, nethttp.MethodPost, "/mood/create", map[string]any{
		"mood":       "Happy",
		"feelings":   []string{"Calm"},
		"sleepHours": "7-8 hours",
		"entryDate":  "2026-03-15",
	}, true)
	assert.Equal(t, nethttp.StatusCreated, status)
	assert.Equal(t, "mood entry created successfully", body["message"])
	assert.Equal(t, "Happy", body["data"].(map[string]any)["mood"])
}

func TestMoodErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{mood.ErrValidation("invalid mood"), nethttp.StatusBadRequest},
		{mood.ErrEntryExists, nethttp.StatusConflict},
		{mood.ErrNotFound, nethttp.StatusNotFound},
		{errors.New("connection reset"), nethttp.StatusInternalServerError},
	}
	for _, tc := range cases {
		env := newTestEnv(t)
		env.mood.CreateMock.Return(mood.Entry{}, tc.err)
		status, body := env.do(t, nethttp.MethodPost, "/mood/create", map[string]any{"mood": "Happy"}, true)
		assert.Equal(t, tc.status, status, tc.err.Error())
		if tc.status == nethttp.StatusInternalServerError {
			assert.Equal(t, "internal server error", body["message"])
		} else {
			assert.Equal(t, tc.err.Error(), body["message"])
		}
	}
}

func TestMalformedEntryIDIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	for _, method := range []string{nethttp.MethodGet, nethttp.MethodPut, nethttp.MethodDelete} {
		status, _ := env.do(t, method, "/mood/not-a-uuid", nil, true)
		assert.Equal(t, nethttp.StatusNotFound, status, method)
	}
	assert.Zero(t, env.moodCalls())
}

func TestEntryRoutesPassOwnerAndID(t *testing.T) {
	env := newTestEnv(t)
	entryID := uuid.New()
	env.mood.GetByIDMock.ExpectIdParam2(env.identity).ExpectEntryIDParam3(entryID).Return(mood.Entry{ID: entryID}, nil)
	env.mood.DeleteMock.ExpectIdParam2(env.identity).ExpectEntryIDParam3(entryID).Return(nil)

	status, body := env.do(t, nethttp.MethodGet, "/mood/"+entryID.String(), nil, true)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, entryID.String(), body["data"].(map[string]any)["id"])

	status, _ = env.do(t, nethttp.MethodDelete, "/mood/"+entryID.String(), nil, true)
	assert.Equal(t, nethttp.StatusOK, status)
}

func TestUpdateMoodPassesOnlyPresentFields(t *testing.T) {
	env := newTestEnv(t)
	entryID := uuid.New()
	env.mood.UpdateMock.
		ExpectIdParam2(env.identity).
		ExpectEntryIDParam3(entryID).
		Inspect(func(_ context.Context, _ auth.Identity, _ uuid.UUID, in mood.UpdateInput) {
			if assert.NotNil(t, in.Notes) {
				assert.Equal(t, "better", *in.Notes)
			}
			assert.Nil(t, in.Mood)
			assert.Nil(t, in.Feelings)
			assert.Nil(t, in.SleepHours)
		}).
		Return(mood.Entry{ID: entryID}, nil)

	status, _ := env.do(t, nethttp.MethodPut, "/mood/"+entryID.String(), map[string]any{"notes": "better"}, true)
	assert.Equal(t, nethttp.StatusOK, status)
}

func TestStatsAndLatest(t *testing.T) {
	env := newTestEnv(t)
	env.mood.GetStatsMock.ExpectIdParam2(env.identity).ExpectPeriodParam3("week").Return(mood.Aggregate(nil), nil)
	env.mood.GetLatestMock.Return(mood.Entry{}, mood.ErrNotFound)

	status, body := env.do(t, nethttp.MethodGet, "/mood/stats?period=week", nil, true)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, float64(0), body["data"].(map[string]any)["totalEntries"])

	status, _ = env.do(t, nethttp.MethodGet, "/mood/latest", nil, true)
	assert.Equal(t, nethttp.StatusNotFound, status)
}

func TestRegisterJSON(t *testing.T) {
	env := newTestEnv(t)
	env.auth.RegisterMock.
		ExpectInParam2(auth.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"}).
		Return(auth.AuthResult{User: env.user, Token: "tok"}, nil)

	status, body := env.do(t, nethttp.MethodPost, "/user/register", map[string]any{
		"name": "Alice", "email": "alice@example.com", "password": "secret1",
	}, false)
	assert.Equal(t, nethttp.StatusCreated, status)
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, "Alice", body["user"].(map[string]any)["name"])
	_, hasHash := body["user"].(map[string]any)["passwordHash"]
	assert.False(t, hasHash)
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, filename string) *nethttp.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("profileImage", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestRegisterMultipartWithImage(t *testing.T) {
	env := newTestEnv(t)
	env.auth.RegisterMock.Set(func(_ context.Context, in auth.RegisterInput) (auth.AuthResult, error) {
		u := env.user
		u.ProfileImage = in.ProfileImage
		return auth.AuthResult{User: u, Token: "tok"}, nil
	})
	req := multipartRequest(t, nethttp.MethodPost, "/user/register",
		map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret1"}, "me.png")

	status, body := env.send(t, req)
	assert.Equal(t, nethttp.StatusCreated, status)
	assert.Equal(t, []string{"me.png"}, env.images.saved)
	assert.Equal(t, "/uploads/me.png", body["user"].(map[string]any)["profileImage"])
	assert.Equal(t, uint64(1), env.auth.RegisterAfterCounter())
}

func TestRegisterFailureDiscardsImage(t *testing.T) {
	env := newTestEnv(t)
	env.auth.RegisterMock.Return(auth.AuthResult{}, auth.ErrUserAlreadyExists)
	req := multipartRequest(t, nethttp.MethodPost, "/user/register",
		map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret1"}, "me.png")

	status, body := env.send(t, req)
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "email already in use", body["message"])
	assert.Equal(t, []string{"/uploads/me.png"}, env.images.removed)
}

func TestLoginErrors(t *testing.T) {
	env := newTestEnv(t)
	env.auth.LoginMock.Set(func(_ context.Context, email, password string) (auth.AuthResult, error) {
		switch {
		case email != env.user.Email:
			return auth.AuthResult{}, auth.ErrUserNotFound
		case password != "secret1":
			return auth.AuthResult{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResult{User: env.user, Token: "tok"}, nil
	})

	status, body := env.do(t, nethttp.MethodPost, "/user/login",
		map[string]any{"email": "x@example.com", "password": "secret1"}, false)
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "email not found", body["message"])

	status, _ = env.do(t, nethttp.MethodPost, "/user/login",
		map[string]any{"email": env.user.Email, "password": "wrong12"}, false)
	assert.Equal(t, nethttp.StatusUnauthorized, status)

	status, body = env.do(t, nethttp.MethodPost, "/user/login",
		map[string]any{"email": env.user.Email, "password": "secret1"}, false)
	assert.Equal(t, nethttp.StatusCreated, status)
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, uint64(3), env.auth.LoginAfterCounter())
}

func TestUpdateProfileMultipart(t *testing.T) {
	env := newTestEnv(t)
	env.auth.UpdateProfileMock.
		ExpectIdParam2(env.identity).
		Inspect(func(_ context.Context, _ auth.Identity, in auth.UpdateProfileInput) {
			assert.Equal(t, "Alicia", in.Name)
			assert.Empty(t, in.Password)
			if assert.NotNil(t, in.ProfileImage) {
				assert.Equal(t, "/uploads/new.png", *in.ProfileImage)
			}
		}).
		Return(auth.User{ID: env.user.ID, Name: "Alicia", Email: env.user.Email}, nil)

	req := multipartRequest(t, nethttp.MethodPut, "/user/update", map[string]string{"name": "Alicia"}, "new.png")
	req.Header.Set("Authorization", "Bearer "+env.token)

	status, body := env.send(t, req)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "profile updated successfully", body["message"])
	assert.Equal(t, "Alicia", body["user"].(map[string]any)["name"])
}

func TestMeAndDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	env.auth.MeMock.ExpectIdParam2(env.identity).Return(env.user, nil)
	env.auth.DeleteAccountMock.ExpectIdParam2(env.identity).Return(nil)

	status, body := env.do(t, nethttp.MethodGet, "/user/me", nil, true)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, env.user.ID.String(), body["user"].(map[string]any)["id"])

	status, _ = env.do(t, nethttp.MethodDelete, "/user/delete", nil, true)
	assert.Equal(t, nethttp.StatusOK, status)
}

func TestUploadsAndHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, failingChecker{})

	resp, err := env.app.Test(httptest.NewRequest(nethttp.MethodGet, "/uploads/a.png", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	status, _ := env.do(t, nethttp.MethodGet, "/uploads/missing.png", nil, false)
	assert.Equal(t, nethttp.StatusNotFound, status)

	status, body := env.do(t, nethttp.MethodGet, "/", nil, false)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "Welcome to the Mood Tracking App API", body["message"])

	status, _ = env.do(t, nethttp.MethodGet, "/health", nil, false)
	assert.Equal(t, nethttp.StatusOK, status)

	status, body = env.do(t, nethttp.MethodGet, "/ready", nil, false)
	assert.Equal(t, nethttp.StatusServiceUnavailable, status)
	assert.Equal(t, "postgres: down", body["details"])
}
