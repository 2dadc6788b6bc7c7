package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bankcsv-dev/bankcsv/internal/period"
)

// DefaultPrefix starts every output file name unless configured otherwise.
const DefaultPrefix = "bank-csv-transactions"

// Writer writes monthly buckets for one currency into a directory.
type Writer struct {
	dir      string
	prefix   string
	currency string
}

// NewWriter creates a Writer. An empty prefix means DefaultPrefix; the
// currency is upper-cased for file names.
func NewWriter(dir, prefix, currency string) *Writer {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Writer{dir: dir, prefix: prefix, currency: strings.ToUpper(currency)}
}

// FileName returns "<prefix>-<CUR>-<YYYY>-<MM>.csv".
func (w *Writer) FileName(m period.Month) string {
	return fmt.Sprintf("%s-%s-%s.csv", w.prefix, w.currency, m)
}

// Path returns the full path of the file for m.
func (w *Writer) Path(m period.Month) string {
	return filepath.Join(w.dir, w.FileName(m))
}

// Write validates b and creates or overwrites its monthly file. It returns
// the path written.
func (w *Writer) Write(b Bucket) (string, error) {
	if verrs := ValidateBucket(b); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validating %s: %s", b.Month, strings.Join(msgs, "; "))
	}

	path := w.Path(b.Month)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteTransactions(f, b.Transactions); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
