package ethics

import (
	"congresstrack/internal/refdata"
)

// Analyzer holds the read-only reference tables used by the per-trade checks.
// Tables are ordered slices; both checks are first-match-wins over that order.
type Analyzer struct {
	Committees []refdata.CommitteeSectors
	Events     []refdata.MarketEvent
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Committees: refdata.DefaultCommitteeSectors(),
		Events:     refdata.DefaultMarketEvents(),
	}
}

func (a *Analyzer) sectorsFor(committee string) []string {
	for _, row := range a.Committees {
		if row.Committee == committee {
			return row.Sectors
		}
	}
	return nil
}

// ConflictingSectors unions the sector sets of the given committees, in order
// of first appearance. Unknown committees contribute nothing.
func (a *Analyzer) ConflictingSectors(committees []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, committee := range committees {
		for _, sector := range a.sectorsFor(committee) {
			if _, ok := seen[sector]; ok {
				continue
			}
			seen[sector] = struct{}{}
			out = append(out, sector)
		}
	}
	return out
}

// FindConflict returns the first committee in the politician's list whose
// sector set contains the trade sector, or "" if none. A trade is flagged at
// most once even when several committees overlap the sector.
func (a *Analyzer) FindConflict(committees []string, sector string) string {
	if sector == "" {
		return ""
	}
	for _, committee := range committees {
		for _, s := range a.sectorsFor(committee) {
			if s == sector {
				return committee
			}
		}
	}
	return ""
}

// ConflictSeverity is high only for purchases; sales and unknown transaction
// types are medium.
func ConflictSeverity(txType string) string {
	if txType == "Buy" {
		return SeverityHigh
	}
	return SeverityMedium
}
