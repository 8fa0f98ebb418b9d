package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"congresstrack/internal/models"
	"congresstrack/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- trades ------------------------------------------------------------------

func (s *Store) ListQualifyingTrades(ctx context.Context, limit int) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit = normalizeLimit(limit, 2000)
	var items []models.Trade
	err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("transaction_date IS NOT NULL").
		Where("filed_date IS NOT NULL").
		Order("transaction_date desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.applyTradeFilters(ctx, params)
	query = applyOrder(query, params.OrderBy, params.Asc, "transaction_date")
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.Trade
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.applyTradeFilters(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) applyTradeFilters(ctx context.Context, params repository.ListTradesParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Trade{})
	if params.PoliticianID != nil && strings.TrimSpace(*params.PoliticianID) != "" {
		query = query.Where("politician_id = ?", strings.TrimSpace(*params.PoliticianID))
	}
	if params.Ticker != nil && strings.TrimSpace(*params.Ticker) != "" {
		query = query.Where("ticker = ?", strings.ToUpper(strings.TrimSpace(*params.Ticker)))
	}
	if params.Chamber != nil && strings.TrimSpace(*params.Chamber) != "" {
		query = query.Where("chamber = ?", strings.TrimSpace(*params.Chamber))
	}
	return query
}

func (s *Store) UpsertTrades(ctx context.Context, items []models.Trade) error {
	if s == nil || s.db == nil || len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"politician_id",
			"politician_name",
			"chamber",
			"party",
			"ticker",
			"sector",
			"tx_type",
			"amount_range",
			"transaction_date",
			"filed_date",
			"updated_at",
		}),
	}).Create(&items).Error
}

// --- politicians -------------------------------------------------------------

func (s *Store) ListAllPoliticians(ctx context.Context) ([]models.Politician, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Politician
	if err := s.db.WithContext(ctx).
		Model(&models.Politician{}).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListPoliticians(ctx context.Context, params repository.ListPoliticiansParams) ([]models.Politician, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.applyPoliticianFilters(ctx, params)
	query = applyOrder(query, params.OrderBy, params.Asc, "name")
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.Politician
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountPoliticians(ctx context.Context, params repository.ListPoliticiansParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.applyPoliticianFilters(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) applyPoliticianFilters(ctx context.Context, params repository.ListPoliticiansParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Politician{})
	if params.Chamber != nil && strings.TrimSpace(*params.Chamber) != "" {
		query = query.Where("chamber = ?", strings.TrimSpace(*params.Chamber))
	}
	if params.Party != nil && strings.TrimSpace(*params.Party) != "" {
		query = query.Where("party = ?", strings.TrimSpace(*params.Party))
	}
	return query
}

func (s *Store) GetPoliticianByID(ctx context.Context, id string) (*models.Politician, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	var item models.Politician
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertPoliticians(ctx context.Context, items []models.Politician) error {
	if s == nil || s.db == nil || len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"chamber",
			"party",
			"committees",
			"ytd_return_pct",
			"top_holding",
			"stats_updated_at",
			"updated_at",
		}),
	}).Create(&items).Error
}

// --- helpers -----------------------------------------------------------------

var orderColumns = map[string]string{
	"transaction_date": "transaction_date",
	"filed_date":       "filed_date",
	"created_at":       "created_at",
	"ticker":           "ticker",
	"name":             "name",
	"ytd_return":       "ytd_return_pct",
}

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	col, ok := orderColumns[strings.TrimSpace(orderBy)]
	if !ok {
		col = fallback
	}
	dir := "desc"
	if asc != nil && *asc {
		dir = "asc"
	}
	return query.Order(col + " " + dir)
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 2000 {
		return 2000
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
