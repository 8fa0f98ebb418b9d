package ethics

// Derived report entities. These are recomputed on every summary request and
// never persisted; json tags are the contract consumed by the UI surfaces.

const (
	StatusOnTime    = "on-time"
	StatusLate      = "late"
	StatusViolation = "violation"

	SeverityHigh   = "high"
	SeverityMedium = "medium"

	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

type ComplianceRecord struct {
	TradeID        string `json:"tradeId"`
	PoliticianName string `json:"politicianName"`
	Ticker         string `json:"ticker"`
	TradeDate      string `json:"tradeDate"`
	FiledDate      string `json:"filedDate"`
	DaysLate       int    `json:"daysLate"`
	Status         string `json:"status"`
}

type Conflict struct {
	TradeID        string `json:"tradeId"`
	PoliticianName string `json:"politicianName"`
	Committee      string `json:"committee"`
	Ticker         string `json:"ticker"`
	Sector         string `json:"sector"`
	TradeDate      string `json:"tradeDate"`
	Severity       string `json:"severity"`
}

type SuspiciousTrade struct {
	TradeID        string `json:"tradeId"`
	PoliticianName string `json:"politicianName"`
	Ticker         string `json:"ticker"`
	TxType         string `json:"txType"`
	TradeDate      string `json:"tradeDate"`
	EventName      string `json:"eventName"`
	DaysDiff       int    `json:"daysDiff"`
}

type BehaviorStats struct {
	WinRate              float64 `json:"winRate"`
	WinRateDelta         float64 `json:"winRateDelta"`
	DominantSector       string  `json:"dominantSector"`
	DominantSectorTrades int     `json:"dominantSectorTrades"`
	LuckyTimingScore     int     `json:"luckyTimingScore"`
}

type Summary struct {
	Score             int                `json:"score"`
	RiskLevel         string             `json:"riskLevel"`
	TotalTrades       int                `json:"totalTrades"`
	ViolationCount    int                `json:"violationCount"`
	LateCount         int                `json:"lateCount"`
	Behavior          BehaviorStats      `json:"behavior"`
	ComplianceRecords []ComplianceRecord `json:"complianceRecords"`
	Conflicts         []Conflict         `json:"conflicts"`
	SuspiciousTrades  []SuspiciousTrade  `json:"suspiciousTrades"`
}
