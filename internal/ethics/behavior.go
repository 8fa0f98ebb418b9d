package ethics

import (
	"context"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"congresstrack/internal/benchmark"
	"congresstrack/internal/models"
)

// sectorTally counts trades per sector while remembering first-encounter
// order, so dominant-sector ties resolve deterministically.
type sectorTally struct {
	counts map[string]int
	order  []string
}

func newSectorTally() *sectorTally {
	return &sectorTally{counts: map[string]int{}}
}

func (t *sectorTally) add(sector string) {
	if sector == "" || sector == "Unknown" {
		return
	}
	if _, ok := t.counts[sector]; !ok {
		t.order = append(t.order, sector)
	}
	t.counts[sector]++
}

func (t *sectorTally) dominant() (string, int) {
	best, bestCount := "Diversified", 0
	for _, sector := range t.order {
		if t.counts[sector] > bestCount {
			best, bestCount = sector, t.counts[sector]
		}
	}
	return best, bestCount
}

// BehaviorAggregator computes the platform-wide behavior block of the report.
// It reads the full politician population (not just the trade window) and the
// benchmark YTD return via the TTL-cached quoter.
type BehaviorAggregator struct {
	Benchmark benchmark.Quoter
	Logger    *zap.Logger
}

func (b *BehaviorAggregator) Stats(ctx context.Context, politicians []models.Politician, tally *sectorTally, suspiciousCount, conflictCount, totalTrades int) BehaviorStats {
	stats := BehaviorStats{DominantSector: "Diversified"}
	if tally != nil {
		stats.DominantSector, stats.DominantSectorTrades = tally.dominant()
	}

	recorded := 0
	winners := 0
	sum := 0.0
	for _, p := range politicians {
		if p.YTDReturnPct == nil {
			continue
		}
		recorded++
		sum += *p.YTDReturnPct
		if *p.YTDReturnPct > 0 {
			winners++
		}
	}
	if recorded > 0 {
		stats.WinRate = round2(float64(winners) / float64(recorded) * 100)
	}

	benchmarkYTD := 0.0
	if b != nil && b.Benchmark != nil {
		v, err := b.Benchmark.YTDReturn(ctx)
		if err != nil {
			if b.Logger != nil {
				b.Logger.Warn("benchmark ytd unavailable, using zero", zap.Error(err))
			}
		} else {
			benchmarkYTD = v
		}
	}
	if recorded > 0 {
		stats.WinRateDelta = round2(sum/float64(recorded) - benchmarkYTD)
	} else {
		stats.WinRateDelta = round2(-benchmarkYTD)
	}

	stats.LuckyTimingScore = luckyTimingScore(suspiciousCount, conflictCount, totalTrades)
	return stats
}

// luckyTimingScore amplifies the flagged-trade ratios so a modest fraction of
// suspicious or conflicted trades pushes the score well above the 50 baseline.
// The result is clamped to 100.
func luckyTimingScore(suspiciousCount, conflictCount, totalTrades int) int {
	if totalTrades <= 0 {
		return 50
	}
	suspiciousRatio := float64(suspiciousCount) / float64(totalTrades)
	conflictRatio := float64(conflictCount) / float64(totalTrades)
	score := int(math.Round(50 + suspiciousRatio*500 + conflictRatio*300))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
