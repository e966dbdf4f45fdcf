package ledger

import "strings"

// Kind classifies a record as money coming in or going out.
type Kind int

const (
	Outflow Kind = iota
	Inflow
)

func (k Kind) String() string {
	switch k {
	case Inflow:
		return "inflow"
	case Outflow:
		return "outflow"
	default:
		return "unknown"
	}
}

// inflowCategory is the literal category value that marks an inflow on the
// wire. It is a convention inherited from existing exports and must not
// change, or old artifacts would re-classify on import.
const inflowCategory = "收入"

// Record is one ledger entry. Identity is positional within its account's
// sequence; there is no stable record ID.
type Record struct {
	// Date is a calendar date in ISO 8601 "YYYY-MM-DD" form. The store
	// does not enforce the format; see CheckRecord.
	Date string `json:"date"`
	// Amount is non-negative in valid input, for both kinds of record.
	Amount Amount `json:"amount"`
	// Category is free text. The value "收入", or "income" in any case,
	// marks an inflow; everything else is an outflow.
	Category string `json:"category"`
	// Note is free text and may be empty.
	Note string `json:"note"`
}

// Kind derives the record kind from the category convention. The kind is
// never stored: keeping it derived keeps the wire format compatible with
// legacy exports.
func (r Record) Kind() Kind {
	if r.Category == inflowCategory || strings.EqualFold(r.Category, "income") {
		return Inflow
	}
	return Outflow
}

// Month returns the "YYYY-MM" prefix of the record date, or "" when the
// date is too short to carry one.
func (r Record) Month() string {
	if len(r.Date) < 7 {
		return ""
	}
	return r.Date[:7]
}

// Equal reports whether two records carry the same data.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date && r.Amount.Equal(o.Amount) &&
		r.Category == o.Category && r.Note == o.Note
}
