package repository

import (
	"context"

	"congresstrack/internal/models"
)

// TradeStore is the read/write surface over disclosed trades. The ethics
// engine only reads; upserts exist for the ingestion side and the seeder.
type TradeStore interface {
	// ListQualifyingTrades returns up to limit trades that carry both a
	// transaction date and a filed date, newest transaction first.
	ListQualifyingTrades(ctx context.Context, limit int) ([]models.Trade, error)
	ListTrades(ctx context.Context, params ListTradesParams) ([]models.Trade, error)
	CountTrades(ctx context.Context, params ListTradesParams) (int64, error)
	UpsertTrades(ctx context.Context, items []models.Trade) error
}

// PoliticianStore is the read/write surface over the member population.
type PoliticianStore interface {
	ListAllPoliticians(ctx context.Context) ([]models.Politician, error)
	ListPoliticians(ctx context.Context, params ListPoliticiansParams) ([]models.Politician, error)
	CountPoliticians(ctx context.Context, params ListPoliticiansParams) (int64, error)
	GetPoliticianByID(ctx context.Context, id string) (*models.Politician, error)
	UpsertPoliticians(ctx context.Context, items []models.Politician) error
}

// Repository is the unified store handed to handlers and the wiring layer.
type Repository interface {
	TradeStore
	PoliticianStore
}

type ListTradesParams struct {
	Limit        int
	Offset       int
	PoliticianID *string
	Ticker       *string
	Chamber      *string
	OrderBy      string
	Asc          *bool
}

type ListPoliticiansParams struct {
	Limit   int
	Offset  int
	Chamber *string
	Party   *string
	OrderBy string
	Asc     *bool
}
