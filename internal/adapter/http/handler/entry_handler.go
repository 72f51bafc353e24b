package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finvoy/ledgerbook/internal/adapter/http/dto"
	"github.com/finvoy/ledgerbook/internal/domain"
	"github.com/finvoy/ledgerbook/internal/infrastructure/metrics"
	"github.com/finvoy/ledgerbook/internal/usecase"
)

// LedgerService defines the behavior needed by EntryHandler.
type LedgerService interface {
	CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	GetEntryByNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error)
	AddLine(ctx context.Context, entryID string, input usecase.LineInput) (*domain.JournalEntry, error)
	RemoveLine(ctx context.Context, entryID, lineID string) (*domain.JournalEntry, error)
	PostEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryHandler handles journal entry HTTP requests.
type EntryHandler struct {
	ledgerUC LedgerService
	metrics  *metrics.Metrics
}

// NewEntryHandler creates a new EntryHandler. metrics may be nil.
func NewEntryHandler(ledgerUC LedgerService, m *metrics.Metrics) *EntryHandler {
	return &EntryHandler{ledgerUC: ledgerUC, metrics: m}
}

// Create creates a new draft entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date (use YYYY-MM-DD)", err.Error())
		return
	}

	entry, err := h.ledgerUC.CreateEntry(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create entry", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesCreated.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Get retrieves an entry by ID.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	entry, err := h.ledgerUC.GetEntry(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// GetByNumber retrieves an entry by entry number.
func (h *EntryHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		writeError(w, http.StatusBadRequest, "missing entry number", "")
		return
	}

	entry, err := h.ledgerUC.GetEntryByNumber(r.Context(), number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// List lists entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.ledgerUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// AddLine appends a line to a draft entry.
func (h *EntryHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	var req dto.LineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.AddLine(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add line", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// RemoveLine removes a line from a draft entry.
func (h *EntryHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineID")
	if id == "" || lineID == "" {
		writeError(w, http.StatusBadRequest, "missing entry or line ID", "")
		return
	}

	entry, err := h.ledgerUC.RemoveLine(r.Context(), id, lineID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to remove line", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Post posts a draft entry, applying its lines to account balances.
func (h *EntryHandler) Post(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	start := time.Now()
	entry, err := h.ledgerUC.PostEntry(r.Context(), id)
	if err != nil {
		if h.metrics != nil {
			h.metrics.PostingErrors.WithLabelValues(postingErrorType(err)).Inc()
		}

		writeError(w, mapDomainError(err), "failed to post entry", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.EntriesPosted.Inc()
		amount, _ := entry.TotalAmount.Float64()
		h.metrics.PostedAmount.Observe(amount)
		h.metrics.PostDuration.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Delete deletes a draft entry.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.ledgerUC.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesDeleted.Inc()
	}

	w.WriteHeader(http.StatusNoContent)
}
