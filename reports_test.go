package ledger

import "testing"

func sampleRecords() []Record {
	return []Record{
		{Date: "2024-01-05", Amount: A(50), Category: "餐饮", Note: "lunch"},
		{Date: "2024-01-10", Amount: A(2000), Category: "收入", Note: "salary"},
		{Date: "2024-01-12", Amount: A(30.5), Category: "交通", Note: "metro card"},
		{Date: "2024-02-01", Amount: A(120), Category: "餐饮", Note: "dinner 聚餐"},
		{Date: "2024-02-03", Amount: A(500), Category: "Income", Note: "freelance"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())
	if !s.Inflow.Equal(A(2500)) {
		t.Errorf("inflow = %s, want 2500", s.Inflow)
	}
	if !s.Outflow.Equal(A(200.5)) {
		t.Errorf("outflow = %s, want 200.5", s.Outflow)
	}
	if !s.Balance.Equal(A(2299.5)) {
		t.Errorf("balance = %s, want 2299.5", s.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if !s.Inflow.IsZero() || !s.Outflow.IsZero() || !s.Balance.IsZero() {
		t.Errorf("summary of no records = %+v, want all zero", s)
	}
}

func TestInflowConvention(t *testing.T) {
	cases := []struct {
		category string
		want     Kind
	}{
		{"收入", Inflow},
		{"income", Inflow},
		{"Income", Inflow},
		{"INCOME", Inflow},
		{"收 入", Outflow}, // convention is exact for the CJK form
		{"餐饮", Outflow},
		{"", Outflow},
		{"incomes", Outflow},
	}
	for _, c := range cases {
		r := Record{Category: c.category}
		if got := r.Kind(); got != c.want {
			t.Errorf("Kind of category %q = %v, want %v", c.category, got, c.want)
		}
	}
}

func TestFilterByMonth(t *testing.T) {
	got := Filter{Month: "2024-01"}.Apply(sampleRecords())
	if len(got) != 3 {
		t.Fatalf("month filter kept %d records, want 3", len(got))
	}
	for _, r := range got {
		if r.Month() != "2024-01" {
			t.Errorf("record %+v leaked through the month filter", r)
		}
	}
}

func TestFilterByKeyword(t *testing.T) {
	got := Filter{Keyword: "METRO"}.Apply(sampleRecords())
	if len(got) != 1 || got[0].Note != "metro card" {
		t.Fatalf("keyword filter = %+v, want the metro record only", got)
	}
	// Unicode keywords match too.
	got = Filter{Keyword: "聚餐"}.Apply(sampleRecords())
	if len(got) != 1 {
		t.Errorf("CJK keyword filter kept %d records, want 1", len(got))
	}
}

func TestFilterCombines(t *testing.T) {
	got := Filter{Month: "2024-02", Keyword: "dinner"}.Apply(sampleRecords())
	if len(got) != 1 || got[0].Date != "2024-02-01" {
		t.Fatalf("combined filter = %+v, want the February dinner", got)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	got := CategoryBreakdown(sampleRecords())
	want := []CategoryTotal{
		{Category: "餐饮", Total: A(170)},
		{Category: "交通", Total: A(30.5)},
	}
	if len(got) != len(want) {
		t.Fatalf("breakdown has %d categories, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Category != want[i].Category || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMonthlyTrend(t *testing.T) {
	got := MonthlyTrend(sampleRecords())
	if len(got) != 2 {
		t.Fatalf("trend has %d months, want 2", len(got))
	}
	jan, feb := got[0], got[1]
	if jan.Month != "2024-01" || feb.Month != "2024-02" {
		t.Fatalf("months = %q, %q, want ascending 2024-01, 2024-02", jan.Month, feb.Month)
	}
	if !jan.Inflow.Equal(A(2000)) || !jan.Outflow.Equal(A(80.5)) {
		t.Errorf("January = %+v, want inflow 2000 outflow 80.5", jan)
	}
	if !feb.Inflow.Equal(A(500)) || !feb.Outflow.Equal(A(120)) {
		t.Errorf("February = %+v, want inflow 500 outflow 120", feb)
	}
}

func TestCheckRecord(t *testing.T) {
	valid := Record{Date: "2024-01-05", Amount: A(50), Category: "餐饮"}
	if err := CheckRecord(valid); err != nil {
		t.Errorf("CheckRecord(valid) = %v, want nil", err)
	}
	cases := []Record{
		{Date: "05/01/2024", Amount: A(50), Category: "餐饮"},
		{Date: "2024-1-5", Amount: A(50), Category: "餐饮"},
		{Date: "2024-01-05", Amount: A(-1), Category: "餐饮"},
		{Date: "2024-01-05", Amount: A(50), Category: "  "},
	}
	for _, r := range cases {
		if err := CheckRecord(r); err == nil {
			t.Errorf("CheckRecord(%+v) = nil, want error", r)
		}
	}
}
