package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/artem13815/mood/pkg/mood"
)

// MoodRepository stores mood entries; every query is scoped by user_id.
type MoodRepository struct {
	db DB
}

func NewMoodRepository(db DB) *MoodRepository {
	return &MoodRepository{db: db}
}

const moodColumns = `id, user_id, mood, feelings, notes, sleep_hours, entry_date, created_at, updated_at`

func (r *MoodRepository) Create(ctx context.Context, e mood.Entry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO mood_entries (id, user_id, mood, feelings, notes, sleep_hours, entry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.ID, e.UserID, string(e.Mood), e.Feelings, e.Notes, string(e.SleepHours), e.EntryDate.Time(), e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return mood.ErrEntryExists
		}
		return fmt.Errorf("insert mood entry: %w", err)
	}
	return nil
}

func (r *MoodRepository) GetForDate(ctx context.Context, userID uuid.UUID, date mood.Date) (mood.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+moodColumns+` FROM mood_entries WHERE user_id = $1 AND entry_date = $2`,
		userID, date.Time())
	return scanEntry(row)
}

func (r *MoodRepository) GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (mood.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+moodColumns+` FROM mood_entries WHERE id = $1 AND user_id = $2`, id, userID)
	return scanEntry(row)
}

func (r *MoodRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]mood.Entry, error) {
	return r.list(ctx, `SELECT `+moodColumns+` FROM mood_entries WHERE user_id = $1 ORDER BY entry_date DESC`, userID)
}

func (r *MoodRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end mood.Date) ([]mood.Entry, error) {
	return r.list(ctx, `SELECT `+moodColumns+` FROM mood_entries
		WHERE user_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date DESC`, userID, start.Time(), end.Time())
}

func (r *MoodRepository) ListSince(ctx context.Context, userID uuid.UUID, from mood.Date) ([]mood.Entry, error) {
	return r.list(ctx, `SELECT `+moodColumns+` FROM mood_entries
		WHERE user_id = $1 AND entry_date >= $2
		ORDER BY entry_date ASC`, userID, from.Time())
}

func (r *MoodRepository) UpdateForOwner(ctx context.Context, e mood.Entry) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE mood_entries SET mood = $3, feelings = $4, notes = $5, sleep_hours = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2
	`, e.ID, e.UserID, string(e.Mood), e.Feelings, e.Notes, string(e.SleepHours), e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update mood entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return mood.ErrNotFound
	}
	return nil
}

func (r *MoodRepository) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM mood_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete mood entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return mood.ErrNotFound
	}
	return nil
}

func (r *MoodRepository) list(ctx context.Context, sql string, args ...any) ([]mood.Entry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query mood entries: %w", err)
	}
	defer rows.Close()

	out := []mood.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood entries: %w", err)
	}
	return out, nil
}

func scanEntry(row pgx.Row) (mood.Entry, error) {
	var (
		e          mood.Entry
		moodLabel  string
		sleepHours string
		entryDate  time.Time
	)
	err := row.Scan(&e.ID, &e.UserID, &moodLabel, &e.Feelings, &e.Notes, &sleepHours, &entryDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mood.Entry{}, mood.ErrNotFound
		}
		return mood.Entry{}, fmt.Errorf("scan mood entry: %w", err)
	}
	e.Mood = mood.Mood(moodLabel)
	e.SleepHours = mood.SleepHours(sleepHours)
	e.EntryDate = mood.NewDate(entryDate)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	if e.Feelings == nil {
		e.Feelings = []string{}
	}
	return e, nil
}
