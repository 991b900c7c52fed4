package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/mood/pkg/auth"
	"github.com/artem13815/mood/pkg/mood"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	u := auth.User{ID: uuid.New(), Name: "Alice", Email: "Alice@Example.com", PasswordHash: "hash"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(u.ID, "Alice", "alice@example.com", "hash", u.ProfileImage, u.CreatedAt, u.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), u)
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	id := uuid.New()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	img := "/uploads/a.png"

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("bob@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "profile_image", "created_at", "updated_at"}).
			AddRow(id.String(), "Bob", "bob@example.com", "hash", &img, now, now))

	u, err := repo.GetByEmail(context.Background(), "BOB@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Bob", u.Name)
	require.NotNil(t, u.ProfileImage)
	assert.Equal(t, img, *u.ProfileImage)
}

func TestUserRepositoryNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(id, "Name", pgxmock.AnyArg(), "hash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	err = repo.Update(context.Background(), auth.User{ID: id, Name: "Name", PasswordHash: "hash"})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	err = repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func testEntry() mood.Entry {
	date, _ := mood.ParseDate("2026-03-15")
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	return mood.Entry{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Mood:       mood.Happy,
		Feelings:   []string{"Calm"},
		SleepHours: "7-8 hours",
		EntryDate:  date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestMoodRepositoryCreateSameDay(t *testing.T) {
	mock := newMock(t)
	repo := NewMoodRepository(mock)
	e := testEntry()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mood_entries")).
		WithArgs(e.ID, e.UserID, "Happy", []string{"Calm"}, e.Notes, "7-8 hours", e.EntryDate.Time(), e.CreatedAt, e.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mood_entries")).
		WithArgs(pgxmock.AnyArg(), e.UserID, "Happy", []string{"Calm"}, e.Notes, "7-8 hours", e.EntryDate.Time(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "mood_entries_user_date_unique"})

	require.NoError(t, repo.Create(context.Background(), e))

	dup := e
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(context.Background(), dup), mood.ErrEntryExists)
}

func TestMoodRepositoryListByDateRange(t *testing.T) {
	mock := newMock(t)
	repo := NewMoodRepository(mock)
	e := testEntry()
	start, _ := mood.ParseDate("2026-03-01")
	end, _ := mood.ParseDate("2026-03-31")
	notes := "slept well"

	cols := []string{"id", "user_id", "mood", "feelings", "notes", "sleep_hours", "entry_date", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("entry_date BETWEEN $2 AND $3")).
		WithArgs(e.UserID, start.Time(), end.Time()).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(e.ID.String(), e.UserID.String(), "Happy", []string{"Calm"}, &notes, "7-8 hours", e.EntryDate.Time(), e.CreatedAt, e.UpdatedAt))

	got, err := repo.ListByDateRange(context.Background(), e.UserID, start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e.ID, got[0].ID)
	assert.Equal(t, mood.Happy, got[0].Mood)
	assert.Equal(t, "2026-03-15", got[0].EntryDate.String())
	require.NotNil(t, got[0].Notes)
	assert.Equal(t, notes, *got[0].Notes)
}

func TestMoodRepositoryListEmptyIsNotNil(t *testing.T) {
	mock := newMock(t)
	repo := NewMoodRepository(mock)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY entry_date DESC")).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := repo.ListByOwner(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMoodRepositoryOwnerScopedWrites(t *testing.T) {
	mock := newMock(t)
	repo := NewMoodRepository(mock)
	e := testEntry()
	stranger := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
		WithArgs(e.ID, stranger).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mood_entries")).
		WithArgs(e.ID, stranger, "Happy", []string{"Calm"}, e.Notes, "7-8 hours", e.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mood_entries")).
		WithArgs(e.ID, stranger).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mood_entries")).
		WithArgs(e.ID, e.UserID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	_, err := repo.GetByIDForOwner(context.Background(), stranger, e.ID)
	assert.ErrorIs(t, err, mood.ErrNotFound)

	foreign := e
	foreign.UserID = stranger
	assert.ErrorIs(t, repo.UpdateForOwner(context.Background(), foreign), mood.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteForOwner(context.Background(), stranger, e.ID), mood.ErrNotFound)
	assert.NoError(t, repo.DeleteForOwner(context.Background(), e.UserID, e.ID))
}
