package journal

import "fmt"

// ValidationError describes a row that must not be written.
type ValidationError struct {
	Row         int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Description)
}

// ValidateBucket checks that every row belongs to the bucket's month and that
// rows are strictly ascending, which also rules out duplicates. Row numbers
// count the header as row 1.
func ValidateBucket(b Bucket) []ValidationError {
	var errs []ValidationError

	for i, t := range b.Transactions {
		row := i + 2

		if !b.Month.Contains(t.Date) {
			errs = append(errs, ValidationError{
				Row:         row,
				Description: fmt.Sprintf("date %s not in %s", t.Date.Format(dateFormat), b.Month),
			})
		}

		if i > 0 {
			switch c := b.Transactions[i-1].Compare(t); {
			case c == 0:
				errs = append(errs, ValidationError{Row: row, Description: "duplicate of previous row"})
			case c > 0:
				errs = append(errs, ValidationError{Row: row, Description: "out of order"})
			}
		}
	}

	return errs
}
