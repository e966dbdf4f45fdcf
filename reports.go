package ledger

import (
	"slices"
	"strings"
)

// This file contains the read-only aggregations the presentation layer
// consumes: summaries, category breakdowns and monthly trends. They operate
// on record sequences, never on the store, so they work equally on a live
// session and on a decoded snapshot.

// Summary totals a record sequence.
type Summary struct {
	Inflow  Amount
	Outflow Amount
	Balance Amount // Inflow - Outflow
}

// Summarize computes inflow, outflow and balance over records.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		if r.Kind() == Inflow {
			s.Inflow = s.Inflow.Add(r.Amount)
		} else {
			s.Outflow = s.Outflow.Add(r.Amount)
		}
	}
	s.Balance = s.Inflow.Sub(s.Outflow)
	return s
}

// Filter narrows a record sequence for display. Both criteria are optional
// and combine.
type Filter struct {
	// Month keeps records whose date starts with this "YYYY-MM" prefix.
	Month string
	// Keyword keeps records whose note contains it, case-insensitively.
	Keyword string
}

// Apply returns the records matching the filter, preserving order. The
// result is a fresh slice; positions in it are display positions, not
// store positions.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))
	for _, r := range records {
		if f.Month != "" && !strings.HasPrefix(r.Date, f.Month) {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(r.Note), keyword) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CategoryTotal is the outflow total of one category.
type CategoryTotal struct {
	Category string
	Total    Amount
}

// CategoryBreakdown totals outflows per category, largest first (ties
// break on category name so the output is deterministic). Inflows are not
// part of the breakdown.
func CategoryBreakdown(records []Record) []CategoryTotal {
	totals := make(map[string]Amount)
	for _, r := range records {
		if r.Kind() == Inflow {
			continue
		}
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}
	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return out
}

// MonthlyFlow is the inflow/outflow total of one month.
type MonthlyFlow struct {
	Month   string // "YYYY-MM"
	Inflow  Amount
	Outflow Amount
}

// MonthlyTrend groups records by month and totals each side, months in
// ascending order. Records whose date carries no month prefix group under
// the empty month, first.
func MonthlyTrend(records []Record) []MonthlyFlow {
	byMonth := make(map[string]*MonthlyFlow)
	for _, r := range records {
		m := r.Month()
		flow, ok := byMonth[m]
		if !ok {
			flow = &MonthlyFlow{Month: m}
			byMonth[m] = flow
		}
		if r.Kind() == Inflow {
			flow.Inflow = flow.Inflow.Add(r.Amount)
		} else {
			flow.Outflow = flow.Outflow.Add(r.Amount)
		}
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	slices.Sort(months)
	out := make([]MonthlyFlow, 0, len(months))
	for _, m := range months {
		out = append(out, *byMonth[m])
	}
	return out
}
