package sniffer

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripPreamble_LegacyEncoding(t *testing.T) {
	data, err := os.ReadFile("../../testdata/dkb_legacy.csv")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, StripPreamble(bytes.NewReader(data), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], `"Buchungstag";"Wertstellung"`))
	assert.Contains(t, lines[0], "Auftraggeber / Begünstigter")
	assert.NotContains(t, out.String(), "Kontonummer:")
}

func TestStripPreamble_UTF8WithBOM(t *testing.T) {
	in := "\ufeff\"Girokonto\";\"DE12\"\n\"Zeitraum:\";\"01.01.2024 - 31.01.2024\"\n\n" +
		"\"Buchungsdatum\";\"Wertstellung\";\"Status\";\"Zahlungspflichtige*r\";\"Zahlungsempfänger*in\"\n" +
		"\"15.01.24\";\"15.01.24\";\"Gebucht\";\"Max\";\"Bäckerei\"\n"

	var out bytes.Buffer
	require.NoError(t, StripPreamble(strings.NewReader(in), &out))

	want := "\"Buchungsdatum\";\"Wertstellung\";\"Status\";\"Zahlungspflichtige*r\";\"Zahlungsempfänger*in\"\n" +
		"\"15.01.24\";\"15.01.24\";\"Gebucht\";\"Max\";\"Bäckerei\"\n"
	assert.Equal(t, want, out.String())
}

func TestStripPreamble_InvalidBytesAreSubstituted(t *testing.T) {
	// 0xFC is "ü" in the legacy encoding.
	in := []byte("meta\nBuchungstag;Beg\xfcnstigter\n")

	var out bytes.Buffer
	require.NoError(t, StripPreamble(bytes.NewReader(in), &out))
	assert.Equal(t, "Buchungstag;Begünstigter\n", out.String())
}

func TestStripPreamble_NoMarker(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, StripPreamble(strings.NewReader("a;b\nc;d\n"), &out))
	assert.Empty(t, out.String())
}
