package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/finvoy/ledgerbook/internal/adapter/http/dto"
	"github.com/finvoy/ledgerbook/internal/domain"
	"github.com/finvoy/ledgerbook/internal/infrastructure/metrics"
	"github.com/finvoy/ledgerbook/internal/usecase"
)

type ledgerServiceStub struct {
	createFn      func(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error)
	getFn         func(ctx context.Context, id string) (*domain.JournalEntry, error)
	getByNumberFn func(ctx context.Context, entryNumber string) (*domain.JournalEntry, error)
	listFn        func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error)
	addLineFn     func(ctx context.Context, entryID string, input usecase.LineInput) (*domain.JournalEntry, error)
	removeLineFn  func(ctx context.Context, entryID, lineID string) (*domain.JournalEntry, error)
	postFn        func(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	deleteFn      func(ctx context.Context, entryID string) error
}

func (s *ledgerServiceStub) CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error) {
	return s.createFn(ctx, input)
}

func (s *ledgerServiceStub) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.getFn(ctx, id)
}

func (s *ledgerServiceStub) GetEntryByNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error) {
	return s.getByNumberFn(ctx, entryNumber)
}

func (s *ledgerServiceStub) ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error) {
	return s.listFn(ctx, input)
}

func (s *ledgerServiceStub) AddLine(ctx context.Context, entryID string, input usecase.LineInput) (*domain.JournalEntry, error) {
	return s.addLineFn(ctx, entryID, input)
}

func (s *ledgerServiceStub) RemoveLine(ctx context.Context, entryID, lineID string) (*domain.JournalEntry, error) {
	return s.removeLineFn(ctx, entryID, lineID)
}

func (s *ledgerServiceStub) PostEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.postFn(ctx, entryID)
}

func (s *ledgerServiceStub) DeleteEntry(ctx context.Context, entryID string) error {
	return s.deleteFn(ctx, entryID)
}

func newLedgerServiceStub() *ledgerServiceStub {
	return &ledgerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error) {
			return nil, nil
		},
		getFn: func(ctx context.Context, id string) (*domain.JournalEntry, error) { return nil, nil },
		getByNumberFn: func(ctx context.Context, entryNumber string) (*domain.JournalEntry, error) {
			return nil, nil
		},
		listFn: func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error) {
			return nil, nil
		},
		addLineFn: func(ctx context.Context, entryID string, input usecase.LineInput) (*domain.JournalEntry, error) {
			return nil, nil
		},
		removeLineFn: func(ctx context.Context, entryID, lineID string) (*domain.JournalEntry, error) {
			return nil, nil
		},
		postFn:   func(ctx context.Context, entryID string) (*domain.JournalEntry, error) { return nil, nil },
		deleteFn: func(ctx context.Context, entryID string) error { return nil },
	}
}

func testEntry(t *testing.T, posted bool) *domain.JournalEntry {
	t.Helper()

	debit, err := domain.NewDebitLine("acc-cash", decimal.RequireFromString("100.00"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	credit, err := domain.NewCreditLine("acc-sales", decimal.RequireFromString("100.00"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)
	total := decimal.Zero
	if posted {
		total = decimal.RequireFromString("100.00")
	}

	return domain.RestoreJournalEntry("entry-1", "JE-001", now, "cash sale", "INV-42", total, posted,
		[]domain.JournalLine{debit, credit}, now, now)
}

func TestEntryHandler_Create_Success(t *testing.T) {
	stub := newLedgerServiceStub()

	var captured usecase.CreateEntryInput
	stub.createFn = func(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error) {
		captured = input
		return testEntry(t, false), nil
	}

	handler := NewEntryHandler(stub, nil)

	body, _ := json.Marshal(dto.CreateEntryRequest{
		EntryNumber: "JE-001",
		EntryDate:   "2024-01-17",
		Description: "cash sale",
		Lines: []dto.LineRequest{
			{AccountID: "acc-cash", Side: "DEBIT", Amount: decimal.RequireFromString("100.00")},
			{AccountID: "acc-sales", Side: "CREDIT", Amount: decimal.RequireFromString("100.00")},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.EntryNumber != "JE-001" || len(captured.Lines) != 2 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	if !captured.EntryDate.Equal(time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected parsed entry date, got %s", captured.EntryDate)
	}
}

func TestEntryHandler_Create_BadDate(t *testing.T) {
	stub := newLedgerServiceStub()
	stub.createFn = func(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error) {
		t.Fatal("CreateEntry should not be called for invalid date")
		return nil, nil
	}

	handler := NewEntryHandler(stub, nil)

	body, _ := json.Marshal(dto.CreateEntryRequest{EntryNumber: "JE-001", EntryDate: "17/01/2024"})
	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Post_Success(t *testing.T) {
	stub := newLedgerServiceStub()
	stub.postFn = func(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
		return testEntry(t, true), nil
	}

	handler := NewEntryHandler(stub, nil)

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/entries/entry-1/post", nil), "id", "entry-1")
	rec := httptest.NewRecorder()

	handler.Post(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Posted {
		t.Fatal("expected posted entry in response")
	}

	if len(resp.Lines) != 2 || resp.Lines[0].Side != "DEBIT" || resp.Lines[1].Side != "CREDIT" {
		t.Fatalf("expected ordered lines in response, got %+v", resp.Lines)
	}
}

func TestEntryHandler_Post_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	m := metrics.New()

	stub := newLedgerServiceStub()
	stub.postFn = func(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
		return testEntry(t, true), nil
	}

	handler := NewEntryHandler(stub, m)

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/entries/entry-1/post", nil), "id", "entry-1")
	rec := httptest.NewRecorder()

	handler.Post(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	var postedSeen, durationObserved bool
	for _, mf := range families {
		switch mf.GetName() {
		case "ledgerbook_entries_posted_total":
			postedSeen = mf.GetMetric()[0].GetCounter().GetValue() == 1
		case "ledgerbook_post_duration_seconds":
			durationObserved = mf.GetMetric()[0].GetHistogram().GetSampleCount() == 1
		}
	}

	if !postedSeen {
		t.Error("expected posted counter incremented once")
	}

	if !durationObserved {
		t.Error("expected one posting duration observation")
	}
}

func TestEntryHandler_Post_Unbalanced(t *testing.T) {
	stub := newLedgerServiceStub()
	stub.postFn = func(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
		return nil, domain.ErrEntryNotBalanced
	}

	handler := NewEntryHandler(stub, nil)

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/entries/entry-1/post", nil), "id", "entry-1")
	rec := httptest.NewRecorder()

	handler.Post(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestEntryHandler_Post_AlreadyPosted(t *testing.T) {
	stub := newLedgerServiceStub()
	stub.postFn = func(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
		return nil, domain.ErrEntryAlreadyPosted
	}

	handler := NewEntryHandler(stub, nil)

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/entries/entry-1/post", nil), "id", "entry-1")
	rec := httptest.NewRecorder()

	handler.Post(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestEntryHandler_Delete_Success(t *testing.T) {
	stub := newLedgerServiceStub()

	var deleted string
	stub.deleteFn = func(ctx context.Context, entryID string) error {
		deleted = entryID
		return nil
	}

	handler := NewEntryHandler(stub, nil)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/entries/entry-1", nil), "id", "entry-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if deleted != "entry-1" {
		t.Fatalf("expected entry-1 to be deleted, got %q", deleted)
	}
}

func TestEntryHandler_AddLine_PostedEntry(t *testing.T) {
	stub := newLedgerServiceStub()
	stub.addLineFn = func(ctx context.Context, entryID string, input usecase.LineInput) (*domain.JournalEntry, error) {
		return nil, domain.ErrEntryAlreadyPosted
	}

	handler := NewEntryHandler(stub, nil)

	body, _ := json.Marshal(dto.LineRequest{AccountID: "acc-cash", Side: "DEBIT", Amount: decimal.New(1, 0)})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/entries/entry-1/lines", bytes.NewReader(body)), "id", "entry-1")
	rec := httptest.NewRecorder()

	handler.AddLine(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
