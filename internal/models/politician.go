package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Politician is a member record with the stats snapshot maintained by the
// external stats batch job. Committees is a jsonb array of committee names,
// kept in stored order.
type Politician struct {
	ID         string         `gorm:"type:varchar(100);primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(200);not null" json:"name"`
	Chamber    string         `gorm:"type:varchar(10);not null" json:"chamber"`
	Party      *string        `gorm:"type:varchar(50)" json:"party,omitempty"`
	Committees datatypes.JSON `gorm:"type:jsonb" json:"committees"`

	YTDReturnPct   *float64   `gorm:"" json:"ytd_return_pct,omitempty"`
	TopHolding     *string    `gorm:"type:varchar(20)" json:"top_holding,omitempty"`
	StatsUpdatedAt *time.Time `gorm:"type:timestamptz" json:"stats_updated_at,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Politician) TableName() string {
	return "politicians"
}

// CommitteeList decodes the jsonb committee array. Malformed or empty
// payloads decode to nil, which downstream checks treat as "no committees".
func (p Politician) CommitteeList() []string {
	if len(p.Committees) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(p.Committees, &out); err != nil {
		return nil
	}
	return out
}
