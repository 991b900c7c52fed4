package mood

import "math"

// Period selects the trailing statistics window.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod falls back to a month for empty or unknown values.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return p
	default:
		return PeriodMonth
	}
}

// WindowStart is the first calendar day included for a period ending today.
func (p Period) WindowStart(today Date) Date {
	switch p {
	case PeriodWeek:
		return today.AddDate(0, 0, -7)
	case PeriodYear:
		return today.AddDate(-1, 0, 0)
	default:
		return today.AddDate(0, -1, 0)
	}
}

// Stats summarizes a user's entries within a window.
type Stats struct {
	Period            Period             `json:"period"`
	From              Date               `json:"from"`
	TotalEntries      int                `json:"totalEntries"`
	MoodDistribution  map[Mood]int       `json:"moodDistribution"`
	CommonFeelings    map[string]int     `json:"commonFeelings"`
	SleepDistribution map[SleepHours]int `json:"sleepDistribution"`
	AverageMood       float64            `json:"averageMood"`
}

// Aggregate computes distributions and the average ordinal mood in a single
// pass. The average is rounded to two decimals and is 0 for no entries.
func Aggregate(entries []Entry) Stats {
	s := Stats{
		TotalEntries:      len(entries),
		MoodDistribution:  map[Mood]int{},
		CommonFeelings:    map[string]int{},
		SleepDistribution: map[SleepHours]int{},
	}
	sum := 0
	for _, e := range entries {
		s.MoodDistribution[e.Mood]++
		sum += e.Mood.Score()
		for _, f := range e.Feelings {
			s.CommonFeelings[f]++
		}
		s.SleepDistribution[e.SleepHours]++
	}
	if len(entries) > 0 {
		s.AverageMood = math.Round(float64(sum)/float64(len(entries))*100) / 100
	}
	return s
}
