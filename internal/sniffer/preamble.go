package sniffer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// headerMarkers identify the real header row below a preamble.
// Most recent export revision first.
var headerMarkers = []string{
	"Buchungsdatum",
	"Buchungstag",
}

// legacyEncoding is what older DKB exports are written in.
var legacyEncoding = charmap.ISO8859_10

// StripPreamble copies r to w starting at the first line that contains a
// header marker. Input that is not valid UTF-8 is decoded from the legacy
// single-byte encoding first; invalid bytes are substituted. If no marker
// line is found nothing is written.
func StripPreamble(r io.Reader, w io.Writer) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}

	decoded, err := decode(raw)
	if err != nil {
		return fmt.Errorf("decoding export: %w", err)
	}

	bw := bufio.NewWriter(w)
	found := false
	sc := bufio.NewScanner(bytes.NewReader(decoded))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !found && containsAny(line, headerMarkers) {
			found = true
		}
		if found {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scanning export: %w", err)
	}
	return bw.Flush()
}

func decode(raw []byte) ([]byte, error) {
	if utf8.Valid(raw) {
		out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
		return out, err
	}
	out, _, err := transform.Bytes(legacyEncoding.NewDecoder(), raw)
	return out, err
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
