package ethics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/datatypes"

	"congresstrack/internal/models"
	"congresstrack/internal/refdata"
	"congresstrack/internal/repository"
)

type stubTradeStore struct {
	trades []models.Trade
	err    error
}

func (s *stubTradeStore) ListQualifyingTrades(ctx context.Context, limit int) ([]models.Trade, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.trades) > limit {
		return s.trades[:limit], nil
	}
	return s.trades, nil
}

func (s *stubTradeStore) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	return s.trades, s.err
}

func (s *stubTradeStore) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	return int64(len(s.trades)), s.err
}

func (s *stubTradeStore) UpsertTrades(ctx context.Context, items []models.Trade) error {
	return s.err
}

type stubPoliticianStore struct {
	politicians []models.Politician
	err         error
}

func (s *stubPoliticianStore) ListAllPoliticians(ctx context.Context) ([]models.Politician, error) {
	return s.politicians, s.err
}

func (s *stubPoliticianStore) ListPoliticians(ctx context.Context, params repository.ListPoliticiansParams) ([]models.Politician, error) {
	return s.politicians, s.err
}

func (s *stubPoliticianStore) CountPoliticians(ctx context.Context, params repository.ListPoliticiansParams) (int64, error) {
	return int64(len(s.politicians)), s.err
}

func (s *stubPoliticianStore) GetPoliticianByID(ctx context.Context, id string) (*models.Politician, error) {
	for i := range s.politicians {
		if s.politicians[i].ID == id {
			return &s.politicians[i], nil
		}
	}
	return nil, s.err
}

func (s *stubPoliticianStore) UpsertPoliticians(ctx context.Context, items []models.Politician) error {
	return s.err
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newTestService(trades []models.Trade, politicians []models.Politician) *Service {
	return &Service{
		Trades:      &stubTradeStore{trades: trades},
		Politicians: &stubPoliticianStore{politicians: politicians},
		Behavior:    &BehaviorAggregator{Benchmark: &stubQuoter{ytd: 0}},
	}
}

func TestBuildSummaryCommitteeConflict(t *testing.T) {
	// Energy committee member buys an energy stock, filed 9 days after the
	// trade, away from any calendar event.
	traded := utcDay(2023, time.June, 1)
	trades := []models.Trade{{
		ID:              "t1",
		PoliticianID:    strPtr("p1"),
		PoliticianName:  "Jane Doe",
		Ticker:          "XOM",
		Sector:          strPtr("Energy"),
		TxType:          models.TxTypeBuy,
		TransactionDate: timePtr(traded),
		FiledDate:       timePtr(traded.AddDate(0, 0, 9)),
	}}
	politicians := []models.Politician{{
		ID:         "p1",
		Name:       "Jane Doe",
		Chamber:    "senate",
		Committees: datatypes.JSON(`["Energy and Natural Resources"]`),
	}}

	svc := newTestService(trades, politicians)
	got, err := svc.BuildSummary(context.Background(), utcDay(2023, time.July, 1))
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}

	if len(got.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1: %+v", len(got.Conflicts), got.Conflicts)
	}
	c := got.Conflicts[0]
	if c.Committee != "Energy and Natural Resources" || c.Severity != SeverityHigh {
		t.Fatalf("conflict = %+v, want Energy committee / high severity", c)
	}
	if c.TradeDate != "1 month ago" {
		t.Fatalf("tradeDate = %q, want relative form", c.TradeDate)
	}
	if len(got.ComplianceRecords) != 0 || got.LateCount != 0 || got.ViolationCount != 0 {
		t.Fatalf("on-time filing produced compliance output: %+v", got)
	}
	if len(got.SuspiciousTrades) != 0 {
		t.Fatalf("unexpected timing flags: %+v", got.SuspiciousTrades)
	}
	// One clean trade minus one conflict penalty.
	if got.Score != 98 || got.RiskLevel != RiskLow {
		t.Fatalf("score/risk = %d/%s, want 98/LOW", got.Score, got.RiskLevel)
	}
}

func TestBuildSummaryEmptyWindow(t *testing.T) {
	svc := newTestService(nil, nil)
	got, err := svc.BuildSummary(context.Background(), utcDay(2024, time.June, 1))
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if got.Score != 100 || got.RiskLevel != RiskLow {
		t.Fatalf("empty window score/risk = %d/%s, want 100/LOW", got.Score, got.RiskLevel)
	}
	if got.Behavior.LuckyTimingScore != 50 {
		t.Fatalf("luckyTimingScore = %d, want baseline 50", got.Behavior.LuckyTimingScore)
	}
	if got.ComplianceRecords == nil || got.Conflicts == nil || got.SuspiciousTrades == nil {
		t.Fatalf("empty report must serialize to empty arrays, not null")
	}
}

func TestBuildSummarySorting(t *testing.T) {
	traded := utcDay(2023, time.June, 1)
	trades := []models.Trade{
		lateTrade("a", traded, 35),
		lateTrade("b", traded, 50),
		lateTrade("c", traded, 40),
	}
	svc := newTestService(trades, nil)
	svc.Analyzer = &Analyzer{}

	got, err := svc.BuildSummary(context.Background(), utcDay(2023, time.December, 1))
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if len(got.ComplianceRecords) != 3 {
		t.Fatalf("records = %d, want 3", len(got.ComplianceRecords))
	}
	for i, want := range []int{50, 40, 35} {
		if got.ComplianceRecords[i].DaysLate != want {
			t.Fatalf("record %d daysLate = %d, want %d", i, got.ComplianceRecords[i].DaysLate, want)
		}
	}
	if got.ViolationCount != 1 || got.LateCount != 2 {
		t.Fatalf("counts = %d violations / %d late, want 1/2", got.ViolationCount, got.LateCount)
	}
}

func TestBuildSummarySuspiciousOrderedByProximity(t *testing.T) {
	event := utcDay(2024, time.March, 20)
	trades := []models.Trade{
		eventTrade("a", event.AddDate(0, 0, 5)),
		eventTrade("b", event.AddDate(0, 0, -2)),
		eventTrade("c", event.AddDate(0, 0, 10)),
	}
	svc := newTestService(trades, nil)
	svc.Analyzer = &Analyzer{Events: []refdata.MarketEvent{{
		ID:      "hearing",
		Name:    "Hearing",
		Date:    event,
		Tickers: []string{"NVDA"},
	}}}

	got, err := svc.BuildSummary(context.Background(), utcDay(2024, time.June, 1))
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if len(got.SuspiciousTrades) != 3 {
		t.Fatalf("suspicious = %d, want 3", len(got.SuspiciousTrades))
	}
	for i, want := range []int{-2, 5, 10} {
		if got.SuspiciousTrades[i].DaysDiff != want {
			t.Fatalf("suspicious %d daysDiff = %d, want %d", i, got.SuspiciousTrades[i].DaysDiff, want)
		}
	}
}

func TestBuildSummaryTruncation(t *testing.T) {
	traded := utcDay(2023, time.June, 1)
	var trades []models.Trade
	for i := 0; i < 120; i++ {
		trades = append(trades, lateTrade(fmt.Sprintf("t%d", i), traded, 40))
	}
	svc := newTestService(trades, nil)
	svc.Analyzer = &Analyzer{}

	got, err := svc.BuildSummary(context.Background(), utcDay(2023, time.December, 1))
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if len(got.ComplianceRecords) != 100 {
		t.Fatalf("records = %d, want truncation at 100", len(got.ComplianceRecords))
	}
	// Counts reflect the full window, not the truncated view.
	if got.LateCount != 120 {
		t.Fatalf("lateCount = %d, want 120", got.LateCount)
	}
}

func TestBuildSummaryIdempotent(t *testing.T) {
	traded := utcDay(2023, time.June, 1)
	trades := []models.Trade{
		{
			ID:              "t1",
			PoliticianID:    strPtr("p1"),
			PoliticianName:  "Jane Doe",
			Ticker:          "XOM",
			Sector:          strPtr("Energy"),
			TxType:          models.TxTypeBuy,
			TransactionDate: timePtr(traded),
			FiledDate:       timePtr(traded.AddDate(0, 0, 40)),
		},
		lateTrade("t2", traded.AddDate(0, 0, -3), 50),
	}
	politicians := []models.Politician{{
		ID:         "p1",
		Name:       "Jane Doe",
		Chamber:    "senate",
		Committees: datatypes.JSON(`["Energy and Natural Resources"]`),
	}}

	svc := newTestService(trades, politicians)
	now := utcDay(2023, time.December, 1)

	first, err := svc.BuildSummary(context.Background(), now)
	if err != nil {
		t.Fatalf("first BuildSummary: %v", err)
	}
	second, err := svc.BuildSummary(context.Background(), now)
	if err != nil {
		t.Fatalf("second BuildSummary: %v", err)
	}
	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("reports differ between identical runs:\n%s\n%s", a, b)
	}
}

func TestBuildSummaryStoreError(t *testing.T) {
	svc := newTestService(nil, nil)
	svc.Trades = &stubTradeStore{err: errors.New("connection refused")}
	if _, err := svc.BuildSummary(context.Background(), utcDay(2024, time.June, 1)); err == nil {
		t.Fatalf("expected store failure to abort the report")
	}
}

func lateTrade(id string, traded time.Time, daysLate int) models.Trade {
	return models.Trade{
		ID:              id,
		PoliticianName:  "John Roe",
		Ticker:          "MSFT",
		TxType:          models.TxTypeSell,
		TransactionDate: timePtr(traded),
		FiledDate:       timePtr(traded.AddDate(0, 0, daysLate)),
	}
}

func eventTrade(id string, traded time.Time) models.Trade {
	return models.Trade{
		ID:              id,
		PoliticianName:  "John Roe",
		Ticker:          "NVDA",
		TxType:          models.TxTypeBuy,
		TransactionDate: timePtr(traded),
		FiledDate:       timePtr(traded.AddDate(0, 0, 5)),
	}
}
