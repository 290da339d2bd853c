package core

import "testing"

func TestMonthlySeries(t *testing.T) {
	items := []Transaction{
		{Amount: 100, Date: "2024-01-05", Description: "a", Category: "Food"},
		{Amount: 50, Date: "2024-01-20", Description: "b", Category: "Food"},
		{Amount: 30, Date: "2024-02-01", Description: "c", Category: "Bills"},
	}
	series := MonthlySeries(items)
	if len(series) != 2 {
		t.Fatalf("expected 2 months, got %d", len(series))
	}
	if series[0].Month != "2024-01" || series[0].Total != 150 {
		t.Fatalf("first bucket = %+v", series[0])
	}
	if series[1].Month != "2024-02" || series[1].Total != 30 {
		t.Fatalf("second bucket = %+v", series[1])
	}
}

func TestMonthlySeriesEmpty(t *testing.T) {
	if series := MonthlySeries(nil); len(series) != 0 {
		t.Fatalf("expected empty series, got %v", series)
	}
}

func TestCategoryTotalsAndTop(t *testing.T) {
	items := []Transaction{
		{Amount: 30, Date: "2024-01-01", Description: "a", Category: "Food"},
		{Amount: 10, Date: "2024-01-02", Description: "b", Category: "Transport"},
		{Amount: 20, Date: "2024-01-03", Description: "c", Category: "Food"},
	}
	totals := CategoryTotals(items)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	// First-seen order of the source list.
	if totals[0].Name != "Food" || totals[0].Amount != 50 {
		t.Fatalf("totals[0] = %+v", totals[0])
	}
	if totals[1].Name != "Transport" || totals[1].Amount != 10 {
		t.Fatalf("totals[1] = %+v", totals[1])
	}
	if top := TopCategory(items); top != "Food" {
		t.Fatalf("top category = %q", top)
	}
}

func TestCategoryTotalsNormalizesUnknown(t *testing.T) {
	items := []Transaction{
		{Amount: 5, Date: "2024-01-01", Description: "a", Category: "Gadgets"},
		{Amount: 5, Date: "2024-01-02", Description: "b", Category: ""},
	}
	totals := CategoryTotals(items)
	if len(totals) != 1 || totals[0].Name != "Food" || totals[0].Amount != 10 {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestTopCategoryTieBreak(t *testing.T) {
	// Equal sums: the lower index in the canonical list wins regardless of
	// the order the categories appear in the source.
	items := []Transaction{
		{Amount: 10, Date: "2024-01-01", Description: "a", Category: "Bills"},
		{Amount: 10, Date: "2024-01-02", Description: "b", Category: "Transport"},
	}
	if top := TopCategory(items); top != "Transport" {
		t.Fatalf("top category = %q", top)
	}
}

func TestTopCategoryEmpty(t *testing.T) {
	if top := TopCategory(nil); top != "" {
		t.Fatalf("expected empty top category, got %q", top)
	}
}

func TestMostRecent(t *testing.T) {
	items := []Transaction{
		{ID: "3", Amount: 1, Date: "2024-02-01", Description: "newest", Category: "Food"},
		{ID: "2", Amount: 1, Date: "2024-02-01", Description: "same day", Category: "Food"},
		{ID: "1", Amount: 1, Date: "2024-01-05", Description: "old", Category: "Food"},
	}
	recent := MostRecent(items)
	if recent == nil || recent.ID != "3" {
		t.Fatalf("most recent = %+v", recent)
	}
	if MostRecent(nil) != nil {
		t.Fatalf("expected nil for empty list")
	}
}

func TestSummarize(t *testing.T) {
	items := []Transaction{
		{ID: "1", Amount: 100, Date: "2024-01-05", Description: "a", Category: "Food"},
		{ID: "2", Amount: 50, Date: "2024-01-20", Description: "b", Category: "Transport"},
		{ID: "3", Amount: 30, Date: "2024-02-01", Description: "c", Category: "Food"},
	}
	s := Summarize(items)
	if s.Total != 180 {
		t.Fatalf("total = %v", s.Total)
	}
	if s.TopCategory != "Food" {
		t.Fatalf("top = %q", s.TopCategory)
	}
	if s.MostRecent == nil || s.MostRecent.ID != "3" {
		t.Fatalf("most recent = %+v", s.MostRecent)
	}
	if len(s.Monthly) != 2 || len(s.ByCategory) != 2 {
		t.Fatalf("monthly=%d categories=%d", len(s.Monthly), len(s.ByCategory))
	}
}

func TestCategoryColorLookup(t *testing.T) {
	if c := CategoryColor("Transport"); c != "#f59e42" {
		t.Fatalf("transport color = %q", c)
	}
	if c := CategoryColor("nope"); c != "#6366f1" {
		t.Fatalf("fallback color = %q", c)
	}
	if got := NormalizeCategory("Bills"); got != "Bills" {
		t.Fatalf("normalize known = %q", got)
	}
	if got := NormalizeCategory(""); got != "Food" {
		t.Fatalf("normalize empty = %q", got)
	}
}
