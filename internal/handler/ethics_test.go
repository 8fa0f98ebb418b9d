package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"congresstrack/internal/ethics"
	"congresstrack/internal/models"
	"congresstrack/internal/repository"
)

type stubRepo struct {
	trades      []models.Trade
	politicians []models.Politician
	err         error
}

func (s *stubRepo) ListQualifyingTrades(ctx context.Context, limit int) ([]models.Trade, error) {
	return s.trades, s.err
}

func (s *stubRepo) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	return s.trades, s.err
}

func (s *stubRepo) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	return int64(len(s.trades)), s.err
}

func (s *stubRepo) UpsertTrades(ctx context.Context, items []models.Trade) error {
	return s.err
}

func (s *stubRepo) ListAllPoliticians(ctx context.Context) ([]models.Politician, error) {
	return s.politicians, s.err
}

func (s *stubRepo) ListPoliticians(ctx context.Context, params repository.ListPoliticiansParams) ([]models.Politician, error) {
	return s.politicians, s.err
}

func (s *stubRepo) CountPoliticians(ctx context.Context, params repository.ListPoliticiansParams) (int64, error) {
	return int64(len(s.politicians)), s.err
}

func (s *stubRepo) GetPoliticianByID(ctx context.Context, id string) (*models.Politician, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.politicians {
		if s.politicians[i].ID == id {
			return &s.politicians[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) UpsertPoliticians(ctx context.Context, items []models.Politician) error {
	return s.err
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestEthicsSummaryEndpoint(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubRepo{trades: []models.Trade{{
		ID:              "t1",
		PoliticianName:  "Jane Doe",
		Ticker:          "MSFT",
		TxType:          models.TxTypeSell,
		TransactionDate: &now,
		FiledDate:       &now,
	}}}
	h := &EthicsHandler{Service: &ethics.Service{Trades: repo, Politicians: repo}}
	r := newTestEngine()
	h.Register(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ethics/summary", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body struct {
		Code int            `json:"code"`
		Data ethics.Summary `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Code != 0 {
		t.Fatalf("code = %d, want 0", body.Code)
	}
	if body.Data.TotalTrades != 1 {
		t.Fatalf("totalTrades = %d, want 1", body.Data.TotalTrades)
	}
}

func TestEthicsSummaryEndpointStoreFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	h := &EthicsHandler{Service: &ethics.Service{Trades: repo, Politicians: repo}}
	r := newTestEngine()
	h.Register(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ethics/summary", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestGetPoliticianNotFound(t *testing.T) {
	h := &PoliticianHandler{Repo: &stubRepo{}}
	r := newTestEngine()
	h.Register(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/politicians/nope", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListPoliticiansLeaderboardOrder(t *testing.T) {
	ytd := 12.0
	h := &PoliticianHandler{Repo: &stubRepo{politicians: []models.Politician{
		{ID: "p1", Name: "Jane Doe", Chamber: "senate", YTDReturnPct: &ytd},
	}}}
	r := newTestEngine()
	h.Register(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/politicians?order_by=ytd_return", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body struct {
		Data []models.Politician `json:"data"`
		Meta map[string]any      `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("items = %d, want 1", len(body.Data))
	}
	if body.Meta["total"] != float64(1) {
		t.Fatalf("meta total = %v, want 1", body.Meta["total"])
	}
}
