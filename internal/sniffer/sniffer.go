// Package sniffer inspects raw bank exports before they are parsed as tables.
// It picks the field delimiter from the first line and strips the metadata
// preamble some exports put above the real header.
package sniffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bankcsv-dev/bankcsv/internal/model"
)

var (
	ErrNoSeparatorFound      = errors.New("no separator found in the first line")
	ErrEmptyOrUnreadableFile = errors.New("error reading the first line")
)

// delimiters in order of preference.
var delimiters = []rune{';', ',', '\t'}

// preambleMarkers flag DKB exports whose first lines are account metadata.
// Most recent export revision first.
var preambleMarkers = []string{
	"Girokonto",
	"Kontonummer:",
}

// Dialect is what the first line tells us about a file.
type Dialect struct {
	Delimiter rune
	// Preamble is the source whose preamble marker matched, or SourceUnknown.
	Preamble model.Source
	// Marker is the matched preamble marker, if any.
	Marker string
}

// HasPreamble reports whether the file must go through StripPreamble.
func (d Dialect) HasPreamble() bool {
	return d.Preamble != model.SourceUnknown
}

// Detect reads the first line of path and returns its Dialect.
func Detect(path string) (Dialect, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dialect{}, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Dialect{}, fmt.Errorf("%s: %w: %w", path, ErrEmptyOrUnreadableFile, err)
		}
		return Dialect{}, fmt.Errorf("%s: %w", path, ErrEmptyOrUnreadableFile)
	}

	d, err := DetectLine(sc.Text())
	if err != nil {
		return Dialect{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// DetectLine derives a Dialect from a single header or preamble line.
func DetectLine(line string) (Dialect, error) {
	var d Dialect
	for _, m := range preambleMarkers {
		if strings.Contains(line, m) {
			d.Preamble = model.SourceDKB
			d.Marker = m
			break
		}
	}

	for _, r := range delimiters {
		if strings.ContainsRune(line, r) {
			d.Delimiter = r
			return d, nil
		}
	}
	return Dialect{}, ErrNoSeparatorFound
}
