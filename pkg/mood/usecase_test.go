package mood

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/mood/pkg/auth"
)

// memRepo mirrors the storage unique index on (user_id, entry_date).
type memRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]Entry
}

func newMemRepo() *memRepo { return &memRepo{entries: map[uuid.UUID]Entry{}} }

func (m *memRepo) Create(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.entries {
		if x.UserID == e.UserID && x.EntryDate.Equal(e.EntryDate) {
			return ErrEntryExists
		}
	}
	m.entries[e.ID] = e
	return nil
}

func (m *memRepo) GetForDate(_ context.Context, userID uuid.UUID, d Date) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.entries {
		if x.UserID == userID && x.EntryDate.Equal(d) {
			return x, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (m *memRepo) GetByIDForOwner(_ context.Context, userID, id uuid.UUID) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	x, ok := m.entries[id]
	if !ok || x.UserID != userID {
		return Entry{}, ErrNotFound
	}
	return x, nil
}

func (m *memRepo) filter(userID uuid.UUID, keep func(Entry) bool, asc bool) []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Entry
	for _, x := range m.entries {
		if x.UserID == userID && keep(x) {
			out = append(out, x)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].EntryDate.Before(out[j].EntryDate)
		}
		return out[j].EntryDate.Before(out[i].EntryDate)
	})
	return out
}

func (m *memRepo) ListByOwner(_ context.Context, userID uuid.UUID) ([]Entry, error) {
	return m.filter(userID, func(Entry) bool { return true }, false), nil
}

func (m *memRepo) ListByDateRange(_ context.Context, userID uuid.UUID, start, end Date) ([]Entry, error) {
	return m.filter(userID, func(e Entry) bool {
		return !e.EntryDate.Before(start) && !end.Before(e.EntryDate)
	}, false), nil
}

func (m *memRepo) ListSince(_ context.Context, userID uuid.UUID, from Date) ([]Entry, error) {
	return m.filter(userID, func(e Entry) bool { return !e.EntryDate.Before(from) }, true), nil
}

func (m *memRepo) UpdateForOwner(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	x, ok := m.entries[e.ID]
	if !ok || x.UserID != e.UserID {
		return ErrNotFound
	}
	m.entries[e.ID] = e
	return nil
}

func (m *memRepo) DeleteForOwner(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	x, ok := m.entries[id]
	if !ok || x.UserID != userID {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

type memCache struct {
	mu          sync.Mutex
	data        map[string]Stats
	generations map[uuid.UUID]int64
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{data: map[string]Stats{}, generations: map[uuid.UUID]int64{}}
}

func cacheField(userID uuid.UUID, gen int64, key string) string {
	return fmt.Sprintf("%s:%d:%s", userID, gen, key)
}

func (c *memCache) Generation(_ context.Context, userID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID], nil
}

func (c *memCache) Get(_ context.Context, userID uuid.UUID, gen int64, key string) (Stats, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.data[cacheField(userID, gen, key)]
	return s, ok, nil
}

func (c *memCache) Set(_ context.Context, userID uuid.UUID, gen int64, key string, s Stats) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheField(userID, gen, key)] = s
	return nil
}

func (c *memCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	c.generations[userID]++
	prefix := userID.String() + ":"
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

// writeDuringList runs a write after entries were read and before the
// caller gets them back, the way a concurrent request would interleave.
type writeDuringList struct {
	*memRepo
	write func()
}

func (r *writeDuringList) ListSince(ctx context.Context, userID uuid.UUID, from Date) ([]Entry, error) {
	entries, err := r.memRepo.ListSince(ctx, userID, from)
	if r.write != nil {
		w := r.write
		r.write = nil
		w()
	}
	return entries, err
}

var fixedNow = time.Date(2026, 3, 15, 22, 30, 0, 0, time.UTC)

func newTestService(repo Repository, cache StatsCache) *service {
	return &service{repo: repo, cache: cache, now: func() time.Time { return fixedNow }}
}

func newIdentity() auth.Identity { return auth.Identity{UserID: uuid.New(), Name: "tester"} }

func validInput(date string) CreateInput {
	return CreateInput{
		Mood:       "Happy",
		Feelings:   []string{"Joyful", "Calm"},
		SleepHours: "7-8 hours",
		EntryDate:  date,
	}
}

func TestCreateDefaultsToTodayUTC(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	e, err := svc.Create(context.Background(), newIdentity(), validInput(""))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", e.EntryDate.String())
	assert.Nil(t, e.Notes)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	cases := map[string]CreateInput{
		"missing mood":      {Feelings: []string{"a"}, SleepHours: "7-8 hours"},
		"missing feelings":  {Mood: "Happy", SleepHours: "7-8 hours"},
		"missing sleep":     {Mood: "Happy", Feelings: []string{"a"}},
		"bad mood":          {Mood: "Ecstatic", Feelings: []string{"a"}, SleepHours: "7-8 hours"},
		"empty feelings":    {Mood: "Happy", Feelings: []string{}, SleepHours: "7-8 hours"},
		"too many feelings": {Mood: "Happy", Feelings: []string{"a", "b", "c", "d"}, SleepHours: "7-8 hours"},
		"blank feeling":     {Mood: "Happy", Feelings: []string{" "}, SleepHours: "7-8 hours"},
		"bad sleep":         {Mood: "Happy", Feelings: []string{"a"}, SleepHours: "4-6 hours"},
		"bad date":          {Mood: "Happy", Feelings: []string{"a"}, SleepHours: "7-8 hours", EntryDate: "15/03/2026"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), id, in)
			var verr ErrValidation
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateSameDayConflicts(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	_, err := svc.Create(context.Background(), id, validInput("2026-03-10"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), id, validInput("2026-03-10"))
	assert.ErrorIs(t, err, ErrEntryExists)

	// another user may use the same day
	_, err = svc.Create(context.Background(), newIdentity(), validInput("2026-03-10"))
	assert.NoError(t, err)
}

func TestCreateConcurrentSameDayOnlyOneWins(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), id, validInput("2026-03-01"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrEntryExists):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)
}

func TestGetLatestIsTodayOnly(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	_, err := svc.Create(context.Background(), id, validInput("2026-03-14"))
	require.NoError(t, err)

	_, err = svc.GetLatest(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	today, err := svc.Create(context.Background(), id, validInput(""))
	require.NoError(t, err)
	got, err := svc.GetLatest(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, today.ID, got.ID)
}

func TestGetAllNewestFirst(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()

	empty, err := svc.GetAll(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, d := range []string{"2026-03-02", "2026-03-05", "2026-03-01"} {
		_, err := svc.Create(context.Background(), id, validInput(d))
		require.NoError(t, err)
	}
	all, err := svc.GetAll(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2026-03-05", all[0].EntryDate.String())
	assert.Equal(t, "2026-03-01", all[2].EntryDate.String())
}

func TestGetByIDIsOwnerScoped(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	owner, other := newIdentity(), newIdentity()
	e, err := svc.Create(context.Background(), owner, validInput(""))
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), owner, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)

	_, err = svc.GetByID(context.Background(), other, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), other, e.ID), ErrNotFound)
	_, err = svc.Update(context.Background(), other, e.ID, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByDateRange(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	for _, d := range []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04"} {
		_, err := svc.Create(context.Background(), id, validInput(d))
		require.NoError(t, err)
	}

	same, err := svc.GetByDateRange(context.Background(), id, "2026-03-02", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, same, 1)
	assert.Equal(t, "2026-03-02", same[0].EntryDate.String())

	span, err := svc.GetByDateRange(context.Background(), id, "2026-03-02", "2026-03-04")
	require.NoError(t, err)
	require.Len(t, span, 3)
	assert.Equal(t, "2026-03-04", span[0].EntryDate.String())

	var verr ErrValidation
	_, err = svc.GetByDateRange(context.Background(), id, "", "2026-03-04")
	assert.ErrorAs(t, err, &verr)
	_, err = svc.GetByDateRange(context.Background(), id, "2026-03-01", "")
	assert.ErrorAs(t, err, &verr)
	_, err = svc.GetByDateRange(context.Background(), id, "yesterday", "2026-03-04")
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateNotesOnlyKeepsOtherFields(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	e, err := svc.Create(context.Background(), id, validInput(""))
	require.NoError(t, err)

	notes := "long walk"
	got, err := svc.Update(context.Background(), id, e.ID, UpdateInput{Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Equal(t, notes, *got.Notes)
	assert.Equal(t, e.Mood, got.Mood)
	assert.Equal(t, e.Feelings, got.Feelings)
	assert.Equal(t, e.SleepHours, got.SleepHours)
	assert.Equal(t, e.EntryDate, got.EntryDate)

	stored, err := svc.GetByID(context.Background(), id, e.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Notes, stored.Notes)
}

func TestUpdateValidatesPresentFields(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	e, err := svc.Create(context.Background(), id, validInput(""))
	require.NoError(t, err)

	bad := "Meh"
	_, err = svc.Update(context.Background(), id, e.ID, UpdateInput{Mood: &bad})
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)

	sleep := "Less than 4 hours"
	_, err = svc.Update(context.Background(), id, e.ID, UpdateInput{SleepHours: &sleep})
	assert.ErrorAs(t, err, &verr)

	none := []string{}
	_, err = svc.Update(context.Background(), id, e.ID, UpdateInput{Feelings: &none})
	assert.ErrorAs(t, err, &verr)

	mood, feelings, sleepOK := "Very Sad", []string{"Tired"}, "0-2 hours"
	got, err := svc.Update(context.Background(), id, e.ID, UpdateInput{Mood: &mood, Feelings: &feelings, SleepHours: &sleepOK})
	require.NoError(t, err)
	assert.Equal(t, VerySad, got.Mood)
	assert.Equal(t, []string{"Tired"}, got.Feelings)
	assert.Equal(t, SleepHours("0-2 hours"), got.SleepHours)
}

func TestDelete(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	e, err := svc.Create(context.Background(), id, validInput(""))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id, e.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), id, e.ID), ErrNotFound)
}

func TestGetStatsWindowAndCache(t *testing.T) {
	repo := newMemRepo()
	cache := newMemCache()
	svc := newTestService(repo, cache)
	id := newIdentity()

	for _, d := range []string{"2026-03-15", "2026-03-09", "2026-03-07", "2026-02-20"} {
		_, err := svc.Create(context.Background(), id, validInput(d))
		require.NoError(t, err)
	}

	week, err := svc.GetStats(context.Background(), id, "week")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeek, week.Period)
	assert.Equal(t, "2026-03-08", week.From.String())
	assert.Equal(t, 2, week.TotalEntries)

	month, err := svc.GetStats(context.Background(), id, "bogus")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, month.Period)
	assert.Equal(t, "2026-02-15", month.From.String())
	assert.Equal(t, 4, month.TotalEntries)

	// served from cache until a write invalidates it
	_, err = svc.Create(context.Background(), id, validInput("2026-03-12"))
	require.NoError(t, err)
	assert.Equal(t, 5, cache.invalidated)
	week, err = svc.GetStats(context.Background(), id, "week")
	require.NoError(t, err)
	assert.Equal(t, 3, week.TotalEntries)
}

func TestGetStatsIgnoresValueComputedBeforeConcurrentWrite(t *testing.T) {
	repo := &writeDuringList{memRepo: newMemRepo()}
	svc := newTestService(repo, newMemCache())
	id := newIdentity()

	repo.write = func() {
		_, err := svc.Create(context.Background(), id, validInput("2026-03-14"))
		require.NoError(t, err)
	}
	stale, err := svc.GetStats(context.Background(), id, "week")
	require.NoError(t, err)
	assert.Equal(t, 0, stale.TotalEntries)

	fresh, err := svc.GetStats(context.Background(), id, "week")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalEntries)
}

func TestGetStatsWithoutCache(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	id := newIdentity()
	_, err := svc.Create(context.Background(), id, validInput("2026-03-14"))
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background(), id, "year")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 4.0, stats.AverageMood)
}
