package core

import "sort"

// MonthTotal is an amount summed over one calendar year-month.
type MonthTotal struct {
	Month string // YYYY-MM
	Total float64
}

// CategoryAmount is an amount summed over one category.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// Summary bundles the derived views the dashboard renders. All of it is
// recomputed from the full transaction list on every request.
type Summary struct {
	Total       float64
	TopCategory string
	MostRecent  *Transaction
	Monthly     []MonthTotal
	ByCategory  []CategoryAmount
}

// MonthlySeries groups transactions by year-month and sums amounts per group,
// ordered ascending by month key. Months with no transactions are absent.
func MonthlySeries(items []Transaction) []MonthTotal {
	sums := make(map[string]float64, len(items))
	for _, t := range items {
		sums[t.Month()] += t.Amount
	}
	out := make([]MonthTotal, 0, len(sums))
	for m, total := range sums {
		out = append(out, MonthTotal{Month: m, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// CategoryTotals groups by category and sums amounts, in first-seen order of
// categories in the source list. Callers are expected to have normalized
// categories on the read path already.
func CategoryTotals(items []Transaction) []CategoryAmount {
	index := make(map[string]int, len(Categories))
	out := make([]CategoryAmount, 0, len(Categories))
	for _, t := range items {
		cat := NormalizeCategory(t.Category)
		i, seen := index[cat]
		if !seen {
			i = len(out)
			index[cat] = i
			out = append(out, CategoryAmount{Name: cat})
		}
		out[i].Amount += t.Amount
	}
	return out
}

// TopCategory returns the category with the maximum summed amount. Ties are
// broken by the lowest index in the canonical Categories list.
func TopCategory(items []Transaction) string {
	totals := CategoryTotals(items)
	if len(totals) == 0 {
		return ""
	}
	best := totals[0]
	for _, c := range totals[1:] {
		if c.Amount > best.Amount {
			best = c
			continue
		}
		if c.Amount == best.Amount && CategoryIndex(c.Name) < CategoryIndex(best.Name) {
			best = c
		}
	}
	return best.Name
}

// MostRecent returns the transaction with the greatest date. Among equal
// dates the first occurrence in list order wins; lists come from the store
// sorted date-descending then id-descending, so that is the newest record.
func MostRecent(items []Transaction) *Transaction {
	var recent *Transaction
	for i := range items {
		if recent == nil || items[i].Date > recent.Date {
			recent = &items[i]
		}
	}
	return recent
}

// Total sums amounts over all transactions.
func Total(items []Transaction) float64 {
	var sum float64
	for _, t := range items {
		sum += t.Amount
	}
	return sum
}

// Summarize computes every derived view in one pass over the list.
func Summarize(items []Transaction) Summary {
	return Summary{
		Total:       Total(items),
		TopCategory: TopCategory(items),
		MostRecent:  MostRecent(items),
		Monthly:     MonthlySeries(items),
		ByCategory:  CategoryTotals(items),
	}
}
