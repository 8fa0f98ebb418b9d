package ethics

import (
	"math"
	"time"

	"congresstrack/internal/refdata"
)

// TimingMatch is a hit from the event-window correlator. DaysDiff is signed:
// negative means the trade happened before the event.
type TimingMatch struct {
	Event    refdata.MarketEvent
	DaysDiff int
}

// dayDiff is ceil((a - b) / 24h), so a trade on or just after b lands at 0 or 1.
func dayDiff(a, b time.Time) int {
	const dayMs = 86400000.0
	return int(math.Ceil(float64(a.Sub(b).Milliseconds()) / dayMs))
}

// CheckSuspiciousTiming scans the event calendar in table order and returns
// the first event within windowDays of the trade that affects the ticker or
// the sector. Events with neither tickers nor sectors never match. When the
// window overlaps several events only the earliest table entry is reported;
// temporal proximity does not re-rank.
func (a *Analyzer) CheckSuspiciousTiming(tradeDate time.Time, ticker, sector string, windowDays int) *TimingMatch {
	for _, event := range a.Events {
		diff := dayDiff(tradeDate, event.Date)
		if diff > windowDays || diff < -windowDays {
			continue
		}
		if !eventAffects(event, ticker, sector) {
			continue
		}
		return &TimingMatch{Event: event, DaysDiff: diff}
	}
	return nil
}

func eventAffects(event refdata.MarketEvent, ticker, sector string) bool {
	for _, t := range event.Tickers {
		if t == ticker {
			return true
		}
	}
	if sector == "" {
		return false
	}
	for _, s := range event.Sectors {
		if s == sector {
			return true
		}
	}
	return false
}
