package smartfinance

import (
	"fmt"
	"strings"
	"time"
)

// Date is a day-granularity timestamp. Providers send dates as either plain
// YYYY-MM-DD strings or full timestamps; both decode into the same type, and
// the engine buckets by calendar day or month regardless of the source
// precision.
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, str); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", str)
}

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

// String returns the date as YYYY-MM-DD, or "" for the zero value.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// DayKey returns the calendar-day bucket key (YYYY-MM-DD in UTC).
func (d Date) DayKey() string {
	return d.Time.UTC().Format("2006-01-02")
}

// MonthKey returns the calendar-month bucket key (YYYY-MM in UTC).
func (d Date) MonthKey() string {
	return d.Time.UTC().Format("2006-01")
}

// SameMonth reports whether d falls in the same calendar month as t (UTC).
func (d Date) SameMonth(t time.Time) bool {
	return d.MonthKey() == t.UTC().Format("2006-01")
}
