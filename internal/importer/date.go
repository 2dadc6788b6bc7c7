package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

// ErrInvalidDateFormat is returned for date cells in no supported layout.
var ErrInvalidDateFormat = errors.New("invalid date format")

const (
	isoDate         = "2006-01-02"
	germanDate      = "02.01.2006"
	germanShortDate = "02.01.06"
)

var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseDate reads a date cell. Integers are days since 1970-01-01, ISO dates
// are taken as is, and German dates use a two-digit year when the cell is
// exactly eight characters long.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(model.StripQuotes(s))

	if days, err := strconv.Atoi(s); err == nil {
		return epoch.AddDate(0, 0, days), nil
	}
	if t, err := time.Parse(isoDate, s); err == nil {
		return t, nil
	}

	layout := germanDate
	if len(s) == len(germanShortDate) {
		layout = germanShortDate
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}
