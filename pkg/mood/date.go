package mood

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire and storage format of entry dates.
const DateLayout = "2006-01-02"

// Date is a calendar day in UTC.
type Date struct{ t time.Time }

// NewDate truncates t to its UTC calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time           { return d.t }
func (d Date) IsZero() bool              { return d.t.IsZero() }
func (d Date) Equal(o Date) bool         { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool        { return d.t.Before(o.t) }
func (d Date) AddDate(y, m, dd int) Date { return NewDate(d.t.AddDate(y, m, dd)) }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
