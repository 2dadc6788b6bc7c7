package schema

import "github.com/bankcsv-dev/bankcsv/internal/model"

const currencyConversion = "General Currency Conversion"

// plans is the fingerprint table. Export revisions are appended; existing
// entries stay untouched so older files keep parsing.
var plans = []Plan{
	{
		Label:          "paypal",
		Source:         model.SourcePayPal,
		Fingerprint:    Fingerprint{"Date", "Time", "TimeZone", "Name", "Type"},
		DateColumn:     "Date",
		CurrencyColumn: "Currency",
		AmountColumn:   "Gross",
		TypeColumn:     "Type",
		PayeeColumn:    "Name",
		MemoColumn:     "Transaction ID",
		Filters: []Filter{
			{Column: "Balance Impact", Op: Equal, Value: "Debit"},
			{Column: "Type", Op: NotEqual, Value: currencyConversion},
		},
	},
	{
		Label:          "paypal-legacy",
		Source:         model.SourcePayPal,
		Fingerprint:    Fingerprint{"Date", "Time", "Time Zone", "Description", "Currency"},
		DateColumn:     "Date",
		CurrencyColumn: "Currency",
		AmountColumn:   "Gross",
		TypeColumn:     "Description",
		PayeeColumn:    "Name",
		MemoColumn:     "Transaction ID",
		Filters: []Filter{
			{Column: "Description", Op: NotEqual, Value: currencyConversion},
		},
	},
	{
		Label:               "n26",
		Source:              model.SourceN26,
		Fingerprint:         Fingerprint{"Date", "Payee", "Account number", "Transaction type", "Payment reference"},
		DateColumn:          "Date",
		CurrencyColumn:      "Type Foreign Currency",
		AmountColumn:        "Amount (EUR)",
		ForeignAmountColumn: "Amount (Foreign Currency)",
		TypeColumn:          "Transaction type",
		PayeeColumn:         "Payee",
		MemoColumn:          "Payment reference",
		// Domestic rows leave the foreign currency column empty.
		EmptyCurrencyIsHome: true,
	},
	{
		Label:               "n26-2024",
		Source:              model.SourceN26,
		Fingerprint:         Fingerprint{"Booking Date", "Value Date", "Partner Name", "Partner Iban", "Type"},
		DateColumn:          "Booking Date",
		CurrencyColumn:      "Original Currency",
		AmountColumn:        "Amount (EUR)",
		ForeignAmountColumn: "Original Amount",
		TypeColumn:          "Type",
		PayeeColumn:         "Partner Name",
		MemoColumn:          "Payment Reference",
	},
	{
		Label:        "dkb",
		Source:       model.SourceDKB,
		Fingerprint:  Fingerprint{"Buchungstag", "Wertstellung", "Buchungstext", "Auftraggeber / Begünstigter", "Verwendungszweck"},
		DateColumn:   "Buchungstag",
		AmountColumn: "Betrag (EUR)",
		TypeColumn:   "Buchungstext",
		PayeeColumn:  "Auftraggeber / Begünstigter",
		MemoColumn:   "Verwendungszweck",
	},
	{
		Label:        "dkb-2023",
		Source:       model.SourceDKB,
		Fingerprint:  Fingerprint{"Buchungsdatum", "Wertstellung", "Status", "Zahlungspflichtige*r", "Zahlungsempfänger*in"},
		DateColumn:   "Buchungsdatum",
		AmountColumn: "Betrag (€)",
		TypeColumn:   "Umsatztyp",
		PayeeColumn:  "Zahlungsempfänger*in",
		MemoColumn:   "Verwendungszweck",
	},
}
