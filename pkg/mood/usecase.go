package mood

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/mood/pkg/auth"
)

//go:generate minimock -i UseCase -o ./mocks/use_case_mock.go -n UseCaseMock -p mocks

// UseCase covers the owner-scoped mood entry operations.
type UseCase interface {
	Create(ctx context.Context, id auth.Identity, in CreateInput) (Entry, error)
	GetLatest(ctx context.Context, id auth.Identity) (Entry, error)
	GetAll(ctx context.Context, id auth.Identity) ([]Entry, error)
	GetByID(ctx context.Context, id auth.Identity, entryID uuid.UUID) (Entry, error)
	GetByDateRange(ctx context.Context, id auth.Identity, startDate, endDate string) ([]Entry, error)
	Update(ctx context.Context, id auth.Identity, entryID uuid.UUID, in UpdateInput) (Entry, error)
	Delete(ctx context.Context, id auth.Identity, entryID uuid.UUID) error
	GetStats(ctx context.Context, id auth.Identity, period string) (Stats, error)
}

type CreateInput struct {
	Mood       string
	Feelings   []string
	Notes      *string
	SleepHours string
	// EntryDate is YYYY-MM-DD; empty means today (UTC).
	EntryDate string
}

// UpdateInput holds a partial update; nil fields keep their stored value.
type UpdateInput struct {
	Mood       *string
	Feelings   *[]string
	Notes      *string
	SleepHours *string
}

type service struct {
	repo  Repository
	cache StatsCache
	now   func() time.Time
}

// NewService wires the use case. cache may be nil.
func NewService(repo Repository, cache StatsCache) UseCase {
	return &service{repo: repo, cache: cache, now: time.Now}
}

func (s *service) today() Date { return NewDate(s.now()) }

func (s *service) Create(ctx context.Context, id auth.Identity, in CreateInput) (Entry, error) {
	if strings.TrimSpace(in.Mood) == "" || in.Feelings == nil || strings.TrimSpace(in.SleepHours) == "" {
		return Entry{}, ErrValidation("mood, feelings and sleep hours are required")
	}
	mood, err := validateMood(in.Mood)
	if err != nil {
		return Entry{}, err
	}
	feelings, err := validateFeelings(in.Feelings)
	if err != nil {
		return Entry{}, err
	}
	sleep, err := validateSleep(in.SleepHours)
	if err != nil {
		return Entry{}, err
	}
	date := s.today()
	if v := strings.TrimSpace(in.EntryDate); v != "" {
		if date, err = ParseDate(v); err != nil {
			return Entry{}, ErrValidation("entry date must be formatted as YYYY-MM-DD")
		}
	}

	if _, err := s.repo.GetForDate(ctx, id.UserID, date); err == nil {
		return Entry{}, ErrEntryExists
	} else if !errors.Is(err, ErrNotFound) {
		return Entry{}, err
	}

	now := s.now().UTC()
	e := Entry{
		ID:         uuid.New(),
		UserID:     id.UserID,
		Mood:       mood,
		Feelings:   feelings,
		Notes:      normalizeNotes(in.Notes),
		SleepHours: sleep,
		EntryDate:  date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	// a concurrent insert for the same day surfaces here as ErrEntryExists
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	s.invalidate(ctx, id.UserID)
	return e, nil
}

func (s *service) GetLatest(ctx context.Context, id auth.Identity) (Entry, error) {
	return s.repo.GetForDate(ctx, id.UserID, s.today())
}

func (s *service) GetAll(ctx context.Context, id auth.Identity) ([]Entry, error) {
	return nonNil(s.repo.ListByOwner(ctx, id.UserID))
}

func (s *service) GetByID(ctx context.Context, id auth.Identity, entryID uuid.UUID) (Entry, error) {
	return s.repo.GetByIDForOwner(ctx, id.UserID, entryID)
}

func (s *service) GetByDateRange(ctx context.Context, id auth.Identity, startDate, endDate string) ([]Entry, error) {
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		return nil, ErrValidation("start date and end date are required")
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, ErrValidation("start date must be formatted as YYYY-MM-DD")
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, ErrValidation("end date must be formatted as YYYY-MM-DD")
	}
	return nonNil(s.repo.ListByDateRange(ctx, id.UserID, start, end))
}

func (s *service) Update(ctx context.Context, id auth.Identity, entryID uuid.UUID, in UpdateInput) (Entry, error) {
	e, err := s.repo.GetByIDForOwner(ctx, id.UserID, entryID)
	if err != nil {
		return Entry{}, err
	}
	if in.Mood != nil {
		if e.Mood, err = validateMood(*in.Mood); err != nil {
			return Entry{}, err
		}
	}
	if in.Feelings != nil {
		if e.Feelings, err = validateFeelings(*in.Feelings); err != nil {
			return Entry{}, err
		}
	}
	if in.SleepHours != nil {
		if e.SleepHours, err = validateSleep(*in.SleepHours); err != nil {
			return Entry{}, err
		}
	}
	if in.Notes != nil {
		e.Notes = normalizeNotes(in.Notes)
	}
	e.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateForOwner(ctx, e); err != nil {
		return Entry{}, err
	}
	s.invalidate(ctx, id.UserID)
	return e, nil
}

func (s *service) Delete(ctx context.Context, id auth.Identity, entryID uuid.UUID) error {
	if err := s.repo.DeleteForOwner(ctx, id.UserID, entryID); err != nil {
		return err
	}
	s.invalidate(ctx, id.UserID)
	return nil
}

func (s *service) GetStats(ctx context.Context, id auth.Identity, period string) (Stats, error) {
	p := ParsePeriod(period)
	from := p.WindowStart(s.today())
	key := string(p) + ":" + from.String()

	// the generation is read before the entries so a write that lands in
	// between leaves the computed value under a stale generation
	gen, cacheable := int64(0), false
	if s.cache != nil {
		var err error
		if gen, err = s.cache.Generation(ctx, id.UserID); err != nil {
			log.Printf("stats cache generation user=%s: %v", id.UserID, err)
		} else {
			cacheable = true
			cached, ok, err := s.cache.Get(ctx, id.UserID, gen, key)
			if err != nil {
				log.Printf("stats cache get user=%s: %v", id.UserID, err)
			} else if ok {
				return cached, nil
			}
		}
	}

	entries, err := s.repo.ListSince(ctx, id.UserID, from)
	if err != nil {
		return Stats{}, err
	}
	stats := Aggregate(entries)
	stats.Period = p
	stats.From = from

	if cacheable {
		if err := s.cache.Set(ctx, id.UserID, gen, key, stats); err != nil {
			log.Printf("stats cache set user=%s: %v", id.UserID, err)
		}
	}
	return stats, nil
}

func (s *service) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Printf("stats cache invalidate user=%s: %v", userID, err)
	}
}

func validateMood(v string) (Mood, error) {
	m := Mood(strings.TrimSpace(v))
	if !m.Valid() {
		return "", ErrValidation("invalid mood, must be one of: Very Happy, Happy, Neutral, Sad, Very Sad")
	}
	return m, nil
}

func validateFeelings(v []string) ([]string, error) {
	if len(v) == 0 || len(v) > MaxFeelings {
		return nil, ErrValidation("feelings must be an array with 1 to 3 items")
	}
	out := make([]string, 0, len(v))
	for _, f := range v {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, ErrValidation("feelings must not contain empty labels")
		}
		out = append(out, f)
	}
	return out, nil
}

func validateSleep(v string) (SleepHours, error) {
	sh := SleepHours(strings.TrimSpace(v))
	if !sh.Valid() {
		return "", ErrValidation("invalid sleep hours, must be one of: 9+ hours, 7-8 hours, 5-6 hours, 3-4 hours, 0-2 hours")
	}
	return sh, nil
}

// normalizeNotes stores blank notes as NULL.
func normalizeNotes(n *string) *string {
	if n == nil {
		return nil
	}
	v := strings.TrimSpace(*n)
	if v == "" {
		return nil
	}
	return &v
}

func nonNil(entries []Entry, err error) ([]Entry, error) {
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
