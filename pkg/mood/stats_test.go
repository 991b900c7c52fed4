package mood

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, 0, s.TotalEntries)
	assert.Equal(t, 0.0, s.AverageMood)
	assert.Empty(t, s.MoodDistribution)
	assert.Empty(t, s.CommonFeelings)
	assert.Empty(t, s.SleepDistribution)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"moodDistribution":{}`)
}

func TestAggregateHappyHappySad(t *testing.T) {
	entries := []Entry{
		{Mood: Happy, Feelings: []string{"Joyful", "Calm"}, SleepHours: "7-8 hours"},
		{Mood: Happy, Feelings: []string{"Joyful"}, SleepHours: "7-8 hours"},
		{Mood: Sad, Feelings: []string{"Tired"}, SleepHours: "3-4 hours"},
	}
	s := Aggregate(entries)
	assert.Equal(t, 3, s.TotalEntries)
	assert.Equal(t, map[Mood]int{Happy: 2, Sad: 1}, s.MoodDistribution)
	assert.Equal(t, map[string]int{"Joyful": 2, "Calm": 1, "Tired": 1}, s.CommonFeelings)
	assert.Equal(t, map[SleepHours]int{"7-8 hours": 2, "3-4 hours": 1}, s.SleepDistribution)
	assert.Equal(t, 3.33, s.AverageMood)
}

func TestMoodScore(t *testing.T) {
	for i, m := range Moods {
		assert.Equal(t, i+1, m.Score())
	}
	assert.Equal(t, 0, Mood("Meh").Score())
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodYear, ParsePeriod("year"))
	assert.Equal(t, PeriodMonth, ParsePeriod(""))
	assert.Equal(t, PeriodMonth, ParsePeriod("decade"))

	today, err := ParseDate("2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-24", PeriodWeek.WindowStart(today).String())
	assert.Equal(t, "2025-03-31", PeriodYear.WindowStart(today).String())
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2026-01-02")
	require.NoError(t, err)
	out, err := json.Marshal(struct {
		D Date `json:"d"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2026-01-02"}`, string(out))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-01-02"`), &back))
	assert.True(t, d.Equal(back))
	assert.Error(t, json.Unmarshal([]byte(`"02.01.2026"`), &back))
}
