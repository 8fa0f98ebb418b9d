package ethics

import "time"

// STOCK Act reporting thresholds, in days.
const (
	lateThresholdDays      = 30
	violationThresholdDays = 45
)

// FilingDelay is the day count between transaction and filing, rounded up.
func FilingDelay(traded, filed time.Time) int {
	return dayDiff(filed, traded)
}

// ClassifyDelay maps a filing delay to a compliance status. A negative delay
// (filed before traded) falls through to on-time; date ordering is not
// validated here.
func ClassifyDelay(days int) string {
	switch {
	case days > violationThresholdDays:
		return StatusViolation
	case days > lateThresholdDays:
		return StatusLate
	default:
		return StatusOnTime
	}
}
