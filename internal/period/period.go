package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a calendar month key used to bucket transactions.
type Month struct {
	Year  int
	Month time.Month
}

// Of returns the Month containing t.
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns "2024-01".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Compare orders months chronologically.
func (m Month) Compare(o Month) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Month < o.Month:
		return -1
	case m.Month > o.Month:
		return 1
	}
	return 0
}

// Contains reports whether t falls inside m.
func (m Month) Contains(t time.Time) bool {
	return Of(t) == m
}

// Parse parses "2024-01" into a Month.
func Parse(s string) (Month, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Month{}, fmt.Errorf("invalid month format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return Month{}, fmt.Errorf("invalid year in month %q", s)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Month{}, fmt.Errorf("invalid month in %q", s)
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

// Range is an inclusive span of months. A zero bound is open.
type Range struct {
	From Month
	To   Month
}

// ParseRange parses optional "from" and "to" bounds.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if from != "" {
		if r.From, err = Parse(from); err != nil {
			return Range{}, fmt.Errorf("parsing from: %w", err)
		}
	}
	if to != "" {
		if r.To, err = Parse(to); err != nil {
			return Range{}, fmt.Errorf("parsing to: %w", err)
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.Compare(r.To) > 0 {
		return Range{}, fmt.Errorf("from %s is after to %s", r.From, r.To)
	}
	return r, nil
}

// Includes reports whether m lies within the range.
func (r Range) Includes(m Month) bool {
	if !r.From.IsZero() && m.Compare(r.From) < 0 {
		return false
	}
	if !r.To.IsZero() && m.Compare(r.To) > 0 {
		return false
	}
	return true
}
