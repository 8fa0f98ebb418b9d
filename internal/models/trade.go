package models

import (
	"time"
)

// Trade is a disclosed transaction as ingested from the filing feed.
// Sector is attached at ingestion time from the classification lookup;
// the analysis layer never re-derives it.
type Trade struct {
	ID             string  `gorm:"type:varchar(100);primaryKey" json:"id"`
	PoliticianID   *string `gorm:"type:varchar(100);index" json:"politician_id,omitempty"`
	PoliticianName string  `gorm:"type:varchar(200);not null" json:"politician_name"`
	Chamber        string  `gorm:"type:varchar(10);not null" json:"chamber"`
	Party          *string `gorm:"type:varchar(50)" json:"party,omitempty"`

	Ticker      string  `gorm:"type:varchar(20);not null;index" json:"ticker"`
	Sector      *string `gorm:"type:varchar(100)" json:"sector,omitempty"`
	TxType      string  `gorm:"type:varchar(10);not null" json:"tx_type"`
	AmountRange string  `gorm:"type:varchar(50)" json:"amount_range"`

	TransactionDate *time.Time `gorm:"type:timestamptz;index:idx_trades_qualifying" json:"transaction_date,omitempty"`
	FiledDate       *time.Time `gorm:"type:timestamptz;index:idx_trades_qualifying" json:"filed_date,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// Qualifying reports whether the trade carries both dates required for
// compliance and timing analysis.
func (t Trade) Qualifying() bool {
	return t.TransactionDate != nil && t.FiledDate != nil
}

const (
	TxTypeBuy     = "Buy"
	TxTypeSell    = "Sell"
	TxTypeUnknown = "Unknown"
)
