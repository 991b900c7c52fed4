package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]User{}} }

func (m *memUsers) Create(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == strings.ToLower(u.Email) {
			return ErrUserAlreadyExists
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) Update(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return ErrUserNotFound
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrUserNotFound
	}
	delete(m.byID, id)
	return nil
}

type stubTokens struct{}

func (stubTokens) Generate(_ context.Context, u User) (string, error) {
	return "token-" + u.ID.String(), nil
}

type recordingImages struct{ removed []string }

func (r *recordingImages) Remove(_ context.Context, ref string) error {
	r.removed = append(r.removed, ref)
	return nil
}

func register(t *testing.T, svc AuthUseCase, email, password string) AuthResult {
	t.Helper()
	res, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: email, Password: password})
	require.NoError(t, err)
	return res
}

func TestRegisterHashesPasswordAndLoginRoundTrips(t *testing.T) {
	repo := newMemUsers()
	svc := NewAuthService(repo, stubTokens{}, nil)

	res := register(t, svc, "Alice@Example.com", "secret1")
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice@example.com", res.User.Email)

	stored, err := repo.GetByID(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)

	login, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newMemUsers(), stubTokens{}, nil)
	cases := []RegisterInput{
		{Name: "", Email: "a@b.c", Password: "secret1"},
		{Name: "Bob", Email: "", Password: "secret1"},
		{Name: "Bob", Email: "a@b.c", Password: ""},
		{Name: "Bo", Email: "a@b.c", Password: "secret1"},
		{Name: "Bob", Email: "a@b.c", Password: "12345"},
	}
	for _, in := range cases {
		_, err := svc.Register(context.Background(), in)
		var verr ErrValidation
		assert.True(t, errors.As(err, &verr), "input %+v: got %v", in, err)
	}
}

func TestRegisterDuplicateEmailIgnoresCase(t *testing.T) {
	svc := NewAuthService(newMemUsers(), stubTokens{}, nil)
	register(t, svc, "dup@example.com", "secret1")

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Other", Email: "DUP@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterTakenEmailWinsOverShortPassword(t *testing.T) {
	svc := NewAuthService(newMemUsers(), stubTokens{}, nil)
	register(t, svc, "taken@example.com", "secret1")

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Other", Email: "taken@example.com", Password: "123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "Other", Email: "free@example.com", Password: "123"})
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestLoginErrors(t *testing.T) {
	svc := NewAuthService(newMemUsers(), stubTokens{}, nil)
	register(t, svc, "carol@example.com", "secret1")

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(context.Background(), "carol@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "", "")
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateProfile(t *testing.T) {
	repo := newMemUsers()
	svc := NewAuthService(repo, stubTokens{}, nil)
	res := register(t, svc, "dave@example.com", "secret1")
	id := Identity{UserID: res.User.ID, Name: res.User.Name}
	before, _ := repo.GetByID(context.Background(), res.User.ID)

	img := "/uploads/avatar.png"
	updated, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: "David", ProfileImage: &img})
	require.NoError(t, err)
	assert.Equal(t, "David", updated.Name)
	require.NotNil(t, updated.ProfileImage)
	assert.Equal(t, img, *updated.ProfileImage)
	assert.Equal(t, before.PasswordHash, updated.PasswordHash, "hash must not change without a new password")

	// no new image keeps the old one
	updated, err = svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: "Davey"})
	require.NoError(t, err)
	require.NotNil(t, updated.ProfileImage)
	assert.Equal(t, img, *updated.ProfileImage)

	updated, err = svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: "Davey", Password: "newsecret"})
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, updated.PasswordHash)
	_, err = svc.Login(context.Background(), "dave@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestUpdateProfileErrors(t *testing.T) {
	svc := NewAuthService(newMemUsers(), stubTokens{}, nil)

	_, err := svc.UpdateProfile(context.Background(), Identity{UserID: uuid.New()}, UpdateProfileInput{Name: "ab"})
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)

	_, err = svc.UpdateProfile(context.Background(), Identity{UserID: uuid.New()}, UpdateProfileInput{Name: "Valid"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteAccountRemovesImage(t *testing.T) {
	repo := newMemUsers()
	images := &recordingImages{}
	svc := NewAuthService(repo, stubTokens{}, images)
	img := "/uploads/me.png"
	res, err := svc.Register(context.Background(), RegisterInput{Name: "Erin", Email: "erin@example.com", Password: "secret1", ProfileImage: &img})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(context.Background(), Identity{UserID: res.User.ID}))
	assert.Equal(t, []string{img}, images.removed)

	_, err = svc.Me(context.Background(), Identity{UserID: res.User.ID})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileReplacesImage(t *testing.T) {
	images := &recordingImages{}
	svc := NewAuthService(newMemUsers(), stubTokens{}, images)
	old := "/uploads/old.png"
	res, err := svc.Register(context.Background(), RegisterInput{Name: "Fred", Email: "fred@example.com", Password: "secret1", ProfileImage: &old})
	require.NoError(t, err)
	id := Identity{UserID: res.User.ID}

	_, err = svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: "Fred"})
	require.NoError(t, err)
	assert.Empty(t, images.removed)

	fresh := "/uploads/new.png"
	_, err = svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Name: "Fred", ProfileImage: &fresh})
	require.NoError(t, err)
	assert.Equal(t, []string{old}, images.removed)
}
