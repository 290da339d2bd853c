package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

// transactionJSON is the wire shape of a persisted record.
type transactionJSON struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

func toWire(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:          t.ID,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		Category:    t.Category,
	}
}

// transactionPayload is the mutation request body. Amount is a pointer so a
// missing field is distinguishable from a legitimate zero.
type transactionPayload struct {
	ID          string   `json:"id"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

func (p transactionPayload) toCore() (core.Transaction, bool) {
	if p.Amount == nil {
		return core.Transaction{}, false
	}
	return core.Transaction{
		ID:          p.ID,
		Amount:      *p.Amount,
		Date:        p.Date,
		Description: sanitizeInput(p.Description),
		Category:    p.Category,
	}, true
}

// handleTransactionsAPI dispatches the four verbs on the single resource
// path.
func (s *Server) handleTransactionsAPI(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	case http.MethodPut:
		s.handleUpdateTransaction(w, r)
	case http.MethodDelete:
		s.handleDeleteTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	items, err := s.transactions.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions error", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	out := make([]transactionJSON, len(items))
	for i, t := range items {
		out[i] = toWire(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload transactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, ok := payload.toCore()
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "all fields are required")
		return
	}

	created, err := s.transactions.Create(r.Context(), tx)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeJSONError(w, http.StatusBadRequest, "all fields are required")
			return
		}
		slog.ErrorContext(r.Context(), "Create transaction error", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to add transaction")
		return
	}

	writeJSON(w, http.StatusCreated, toWire(created))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload transactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, ok := payload.toCore()
	if !ok || tx.ID == "" {
		writeJSONError(w, http.StatusBadRequest, "all fields are required")
		return
	}

	updated, err := s.transactions.Update(r.Context(), tx)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			writeJSONError(w, http.StatusBadRequest, "all fields are required")
		case errors.Is(err, storage.ErrNotFound):
			writeJSONError(w, http.StatusNotFound, "transaction not found")
		default:
			slog.ErrorContext(r.Context(), "Update transaction error", "error", err, "id", tx.ID)
			writeJSONError(w, http.StatusInternalServerError, "failed to update transaction")
		}
		return
	}

	writeJSON(w, http.StatusOK, toWire(updated))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.transactions.Delete(r.Context(), payload.ID); err != nil {
		slog.ErrorContext(r.Context(), "Delete transaction error", "error", err, "id", payload.ID)
		writeJSONError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
