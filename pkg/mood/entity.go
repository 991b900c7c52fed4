package mood

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Mood is one label of the ordered five point scale.
type Mood string

const (
	VerySad   Mood = "Very Sad"
	Sad       Mood = "Sad"
	Neutral   Mood = "Neutral"
	Happy     Mood = "Happy"
	VeryHappy Mood = "Very Happy"
)

// Moods lists the scale from lowest to highest.
var Moods = []Mood{VerySad, Sad, Neutral, Happy, VeryHappy}

// Score maps a mood to its ordinal value 1..5, 0 for unknown labels.
func (m Mood) Score() int {
	for i, v := range Moods {
		if v == m {
			return i + 1
		}
	}
	return 0
}

func (m Mood) Valid() bool { return m.Score() > 0 }

// SleepHours is a bucketed amount of sleep.
type SleepHours string

// SleepBuckets is the single canonical set used by create and update.
var SleepBuckets = []SleepHours{"9+ hours", "7-8 hours", "5-6 hours", "3-4 hours", "0-2 hours"}

func (s SleepHours) Valid() bool {
	for _, v := range SleepBuckets {
		if v == s {
			return true
		}
	}
	return false
}

// MaxFeelings is the upper bound of feelings per entry.
const MaxFeelings = 3

// Entry is one user's mood record for a calendar date.
type Entry struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Mood       Mood       `json:"mood"`
	Feelings   []string   `json:"feelings"`
	Notes      *string    `json:"notes"`
	SleepHours SleepHours `json:"sleepHours"`
	EntryDate  Date       `json:"entryDate"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

var (
	ErrNotFound    = errors.New("mood entry not found")
	ErrEntryExists = errors.New("you already have a mood entry for this date")
)

// ErrValidation is returned for malformed, missing or out-of-set input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository is the persistence port for mood entries. Every read and write
// is scoped to the owning user.
type Repository interface {
	// Create returns ErrEntryExists when (UserID, EntryDate) is taken.
	Create(ctx context.Context, e Entry) error
	GetForDate(ctx context.Context, userID uuid.UUID, date Date) (Entry, error)
	GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (Entry, error)
	// ListByOwner orders by entry date, newest first.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	// ListByDateRange is inclusive on both ends, newest first.
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end Date) ([]Entry, error)
	// ListSince returns entries dated on or after from, oldest first.
	ListSince(ctx context.Context, userID uuid.UUID, from Date) ([]Entry, error)
	UpdateForOwner(ctx context.Context, e Entry) error
	DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error
}

// StatsCache keeps computed statistics per user. Invalidate bumps the
// user's generation; values stored under an older generation are never
// returned by Get.
type StatsCache interface {
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)
	Get(ctx context.Context, userID uuid.UUID, gen int64, key string) (Stats, bool, error)
	Set(ctx context.Context, userID uuid.UUID, gen int64, key string, s Stats) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
