package ethics

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"congresstrack/internal/models"
	"congresstrack/internal/repository"
)

const (
	defaultMaxTrades  = 2000
	defaultWindowDays = 14

	maxComplianceRecords = 100
	maxConflicts         = 50
	maxSuspiciousTrades  = 50
)

// Service assembles the ethics summary report: one pass over the qualifying
// trade window, then the population-wide behavior stats. Reports are derived
// fresh per call and never persisted.
type Service struct {
	Trades      repository.TradeStore
	Politicians repository.PoliticianStore
	Behavior    *BehaviorAggregator
	Analyzer    *Analyzer
	Logger      *zap.Logger

	MaxTrades  int
	WindowDays int
}

// BuildSummary computes the full report. now is injected so relative-date
// strings (and therefore serialized reports) are reproducible. Store failures
// abort the whole report; per-trade gaps are skipped per sub-check.
func (s *Service) BuildSummary(ctx context.Context, now time.Time) (*Summary, error) {
	maxTrades := s.MaxTrades
	if maxTrades <= 0 {
		maxTrades = defaultMaxTrades
	}
	windowDays := s.WindowDays
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	analyzer := s.Analyzer
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}

	var trades []models.Trade
	var politicians []models.Politician
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trades, err = s.Trades.ListQualifyingTrades(gctx, maxTrades)
		return err
	})
	g.Go(func() error {
		var err error
		politicians, err = s.Politicians.ListAllPoliticians(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Politician, len(politicians))
	for _, p := range politicians {
		byID[p.ID] = p
	}

	summary := &Summary{
		TotalTrades:       len(trades),
		ComplianceRecords: []ComplianceRecord{},
		Conflicts:         []Conflict{},
		SuspiciousTrades:  []SuspiciousTrade{},
	}
	tally := newSectorTally()

	for _, trade := range trades {
		sector := ""
		if trade.Sector != nil {
			sector = *trade.Sector
		}

		if trade.TransactionDate != nil && trade.FiledDate != nil {
			delay := FilingDelay(*trade.TransactionDate, *trade.FiledDate)
			status := ClassifyDelay(delay)
			switch status {
			case StatusViolation:
				summary.ViolationCount++
			case StatusLate:
				summary.LateCount++
			}
			if status != StatusOnTime {
				summary.ComplianceRecords = append(summary.ComplianceRecords, ComplianceRecord{
					TradeID:        trade.ID,
					PoliticianName: trade.PoliticianName,
					Ticker:         trade.Ticker,
					TradeDate:      trade.TransactionDate.Format("2006-01-02"),
					FiledDate:      trade.FiledDate.Format("2006-01-02"),
					DaysLate:       delay,
					Status:         status,
				})
			}
		}

		if sector != "" && trade.PoliticianID != nil {
			if politician, ok := byID[*trade.PoliticianID]; ok {
				committees := politician.CommitteeList()
				if committee := analyzer.FindConflict(committees, sector); committee != "" {
					summary.Conflicts = append(summary.Conflicts, Conflict{
						TradeID:        trade.ID,
						PoliticianName: trade.PoliticianName,
						Committee:      committee,
						Ticker:         trade.Ticker,
						Sector:         sector,
						TradeDate:      relativeDate(now, trade.TransactionDate),
						Severity:       ConflictSeverity(trade.TxType),
					})
				}
			}
		}

		if trade.TransactionDate != nil {
			if match := analyzer.CheckSuspiciousTiming(*trade.TransactionDate, trade.Ticker, sector, windowDays); match != nil {
				summary.SuspiciousTrades = append(summary.SuspiciousTrades, SuspiciousTrade{
					TradeID:        trade.ID,
					PoliticianName: trade.PoliticianName,
					Ticker:         trade.Ticker,
					TxType:         trade.TxType,
					TradeDate:      trade.TransactionDate.Format("2006-01-02"),
					EventName:      match.Event.Name,
					DaysDiff:       match.DaysDiff,
				})
			}
		}

		tally.add(sector)
	}

	summary.Score, summary.RiskLevel = scoreAndRisk(
		summary.TotalTrades,
		summary.ViolationCount,
		summary.LateCount,
		len(summary.Conflicts),
		len(summary.SuspiciousTrades),
	)

	sort.SliceStable(summary.ComplianceRecords, func(i, j int) bool {
		return summary.ComplianceRecords[i].DaysLate > summary.ComplianceRecords[j].DaysLate
	})
	sort.SliceStable(summary.SuspiciousTrades, func(i, j int) bool {
		return absInt(summary.SuspiciousTrades[i].DaysDiff) < absInt(summary.SuspiciousTrades[j].DaysDiff)
	})

	if s.Behavior != nil {
		summary.Behavior = s.Behavior.Stats(ctx, politicians, tally,
			len(summary.SuspiciousTrades), len(summary.Conflicts), summary.TotalTrades)
	}

	summary.ComplianceRecords = truncateCompliance(summary.ComplianceRecords, maxComplianceRecords)
	summary.Conflicts = truncateConflicts(summary.Conflicts, maxConflicts)
	summary.SuspiciousTrades = truncateSuspicious(summary.SuspiciousTrades, maxSuspiciousTrades)

	if s.Logger != nil {
		s.Logger.Info("ethics summary built",
			zap.Int("total_trades", summary.TotalTrades),
			zap.Int("violations", summary.ViolationCount),
			zap.Int("late", summary.LateCount),
			zap.Int("conflicts", len(summary.Conflicts)),
			zap.Int("suspicious", len(summary.SuspiciousTrades)),
			zap.Int("score", summary.Score),
			zap.String("risk", summary.RiskLevel),
		)
	}
	return summary, nil
}

// scoreAndRisk derives the headline score: the clean-trade share of the
// window, minus two points per conflict and per suspicious trade, floored at
// zero. An empty window scores 100.
func scoreAndRisk(total, violations, late, conflicts, suspicious int) (int, string) {
	cleanPct := 100.0
	if total > 0 {
		clean := total - violations - late
		cleanPct = float64(clean) / float64(total) * 100
	}
	score := int(math.Round(cleanPct)) - (conflicts*2 + suspicious*2)
	if score < 0 {
		score = 0
	}
	risk := RiskLow
	switch {
	case score < 70:
		risk = RiskHigh
	case score < 85:
		risk = RiskMedium
	}
	return score, risk
}

func truncateCompliance(items []ComplianceRecord, n int) []ComplianceRecord {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func truncateConflicts(items []Conflict, n int) []Conflict {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func truncateSuspicious(items []SuspiciousTrade, n int) []SuspiciousTrade {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
