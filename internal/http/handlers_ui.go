package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

type categoryOption struct {
	Name  string
	Color string
}

type monthBar struct {
	Label  string
	Amount string
	Height int // percent of the tallest bar
}

type categoryBar struct {
	Name   string
	Color  string
	Amount string
	Width  int // percent of the largest category
}

type summaryView struct {
	Total          string
	Count          int
	TopCategory    string
	MostRecentDesc string
	MostRecentDate string
	Monthly        []monthBar
	Categories     []categoryBar
}

type transactionRow struct {
	ID          string
	Date        string
	Description string
	Category    string
	Color       string
	Amount      string
	AmountRaw   float64
}

type listView struct {
	Rows       []transactionRow
	Categories []categoryOption
}

func categoryOptions() []categoryOption {
	opts := make([]categoryOption, len(core.Categories))
	for i, name := range core.Categories {
		opts[i] = categoryOption{Name: name, Color: core.CategoryColor(name)}
	}
	return opts
}

// scalePercent converts value/max to a rounded percent, keeping tiny values
// visible and capping at 100.
func scalePercent(value, max float64) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	p := int(value/max*100 + 0.5)
	if p > 0 && p < 2 {
		p = 2
	}
	if p > 100 {
		p = 100
	}
	return p
}

func buildSummaryView(items []core.Transaction) summaryView {
	sum := core.Summarize(items)

	view := summaryView{
		Total:       formatAmount(sum.Total),
		Count:       len(items),
		TopCategory: sum.TopCategory,
	}
	if sum.MostRecent != nil {
		view.MostRecentDesc = sum.MostRecent.Description
		view.MostRecentDate = sum.MostRecent.Date
	}

	var maxMonth float64
	for _, m := range sum.Monthly {
		if m.Total > maxMonth {
			maxMonth = m.Total
		}
	}
	for _, m := range sum.Monthly {
		view.Monthly = append(view.Monthly, monthBar{
			Label:  m.Month,
			Amount: formatAmount(m.Total),
			Height: scalePercent(m.Total, maxMonth),
		})
	}

	var maxCat float64
	for _, c := range sum.ByCategory {
		if c.Amount > maxCat {
			maxCat = c.Amount
		}
	}
	for _, c := range sum.ByCategory {
		view.Categories = append(view.Categories, categoryBar{
			Name:   c.Name,
			Color:  core.CategoryColor(c.Name),
			Amount: formatAmount(c.Amount),
			Width:  scalePercent(c.Amount, maxCat),
		})
	}

	return view
}

func buildListView(items []core.Transaction) listView {
	view := listView{Categories: categoryOptions()}
	for _, t := range items {
		view.Rows = append(view.Rows, transactionRow{
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Description,
			Category:    t.Category,
			Color:       core.CategoryColor(t.Category),
			Amount:      formatAmount(t.Amount),
			AmountRaw:   t.Amount,
		})
	}
	return view
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	items, err := s.transactions.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions error", "error", err)
		// Render the shell anyway; the partials surface their own errors.
	}

	data := struct {
		Summary    summaryView
		List       listView
		Categories []categoryOption
	}{
		Summary:    buildSummaryView(items),
		List:       buildListView(items),
		Categories: categoryOptions(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleSummaryPartial renders the summary cards and both charts.
func (s *Server) handleSummaryPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	items, err := s.transactions.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary partial error", "error", err)
		_, _ = w.Write([]byte(`<section id="summary" class="summary"><div class="placeholder">Failed to load summary</div></section>`))
		return
	}

	if err := s.templates.ExecuteTemplate(w, "summary.html", buildSummaryView(items)); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "summary.html")
		_, _ = w.Write([]byte(`<section id="summary" class="summary"><div class="placeholder">Failed to render summary</div></section>`))
	}
}

// handleListPartial renders the transaction rows and the edit dialog.
func (s *Server) handleListPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	items, err := s.transactions.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List partial error", "error", err)
		_, _ = w.Write([]byte(`<section id="transactions" class="transactions"><div class="placeholder">Failed to load transactions</div></section>`))
		return
	}

	if err := s.templates.ExecuteTemplate(w, "transactions.html", buildListView(items)); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "transactions.html")
		_, _ = w.Write([]byte(`<section id="transactions" class="transactions"><div class="placeholder">Failed to render transactions</div></section>`))
	}
}
