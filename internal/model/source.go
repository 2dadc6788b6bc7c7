package model

// Source identifies the institution that produced an export.
type Source int

const (
	SourceUnknown Source = iota
	SourceN26
	SourcePayPal
	SourceDKB
)

// String returns the display name written to the Source column.
func (s Source) String() string {
	switch s {
	case SourceN26:
		return "N26"
	case SourcePayPal:
		return "PayPal"
	case SourceDKB:
		return "DKB"
	default:
		return "unknown"
	}
}

// ParseSource is the inverse of String. Unrecognized names yield SourceUnknown.
func ParseSource(s string) Source {
	switch s {
	case "N26":
		return SourceN26
	case "PayPal":
		return SourcePayPal
	case "DKB":
		return SourceDKB
	default:
		return SourceUnknown
	}
}
