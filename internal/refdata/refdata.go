package refdata

import "time"

// CommitteeSectors maps a committee to the sectors it oversees. The table is
// an ordered slice rather than a map so that iteration order is stable and
// the first-match behavior of the conflict check stays reproducible.
type CommitteeSectors struct {
	Committee string
	Sectors   []string
}

// MarketEvent is a calendar entry for a market-moving event. An event with
// neither affected sectors nor tickers never matches any trade: no event is
// treated as affecting "everything".
type MarketEvent struct {
	ID          string
	Name        string
	Date        time.Time
	Sectors     []string
	Tickers     []string
	Description string
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DefaultCommitteeSectors is the committee oversight table. Lookup is
// exact-string-match on the committee name; multiple committees may map to
// overlapping sectors.
func DefaultCommitteeSectors() []CommitteeSectors {
	return []CommitteeSectors{
		{Committee: "Energy and Natural Resources", Sectors: []string{"Energy", "Utilities", "Basic Materials"}},
		{Committee: "Armed Services", Sectors: []string{"Industrials", "Aerospace & Defense"}},
		{Committee: "Banking, Housing, and Urban Affairs", Sectors: []string{"Financial Services", "Real Estate"}},
		{Committee: "Financial Services", Sectors: []string{"Financial Services", "Real Estate"}},
		{Committee: "Health, Education, Labor, and Pensions", Sectors: []string{"Healthcare"}},
		{Committee: "Energy and Commerce", Sectors: []string{"Energy", "Healthcare", "Communication Services", "Technology"}},
		{Committee: "Commerce, Science, and Transportation", Sectors: []string{"Technology", "Communication Services", "Industrials"}},
		{Committee: "Science, Space, and Technology", Sectors: []string{"Technology", "Industrials"}},
		{Committee: "Agriculture", Sectors: []string{"Consumer Defensive", "Basic Materials"}},
		{Committee: "Agriculture, Nutrition, and Forestry", Sectors: []string{"Consumer Defensive", "Basic Materials"}},
		{Committee: "Transportation and Infrastructure", Sectors: []string{"Industrials", "Energy"}},
		{Committee: "Judiciary", Sectors: []string{"Technology", "Communication Services"}},
		{Committee: "Intelligence", Sectors: []string{"Technology", "Aerospace & Defense"}},
		{Committee: "Ways and Means", Sectors: []string{"Financial Services", "Healthcare"}},
		{Committee: "Veterans' Affairs", Sectors: []string{"Healthcare"}},
	}
}

// DefaultMarketEvents is the market-event calendar. Order matters: the timing
// correlator reports the first matching event in this slice.
func DefaultMarketEvents() []MarketEvent {
	return []MarketEvent{
		{
			ID:          "chips-act-hearing",
			Name:        "CHIPS Act Hearing",
			Date:        day(2024, time.March, 20),
			Sectors:     []string{"Technology"},
			Tickers:     []string{"NVDA", "AMD", "INTC", "TSM", "MU"},
			Description: "Senate hearing on CHIPS Act implementation and semiconductor subsidies",
		},
		{
			ID:          "fomc-march-2024",
			Name:        "FOMC Rate Decision",
			Date:        day(2024, time.March, 20),
			Sectors:     []string{"Financial Services", "Real Estate"},
			Description: "Federal Reserve rate decision and dot-plot release",
		},
		{
			ID:          "defense-authorization-2024",
			Name:        "Defense Authorization Markup",
			Date:        day(2024, time.May, 22),
			Sectors:     []string{"Industrials", "Aerospace & Defense"},
			Tickers:     []string{"LMT", "RTX", "NOC", "GD", "BA"},
			Description: "Armed Services committee markup of the annual defense authorization bill",
		},
		{
			ID:          "drug-pricing-hearing-2024",
			Name:        "Drug Pricing Hearing",
			Date:        day(2024, time.February, 8),
			Sectors:     []string{"Healthcare"},
			Tickers:     []string{"PFE", "MRK", "LLY", "JNJ", "UNH"},
			Description: "Senate hearing on prescription drug pricing and Medicare negotiation",
		},
		{
			ID:          "ai-regulation-hearing-2024",
			Name:        "AI Regulation Hearing",
			Date:        day(2024, time.June, 4),
			Sectors:     []string{"Technology", "Communication Services"},
			Tickers:     []string{"MSFT", "GOOGL", "META", "NVDA"},
			Description: "Judiciary subcommittee hearing on AI oversight frameworks",
		},
		{
			ID:          "bank-stress-test-2024",
			Name:        "Bank Stress Test Results",
			Date:        day(2024, time.June, 26),
			Sectors:     []string{"Financial Services"},
			Tickers:     []string{"JPM", "BAC", "WFC", "C", "GS"},
			Description: "Federal Reserve annual stress test results release",
		},
		{
			ID:          "energy-permitting-vote-2024",
			Name:        "Energy Permitting Reform Vote",
			Date:        day(2024, time.July, 18),
			Sectors:     []string{"Energy", "Utilities"},
			Tickers:     []string{"XOM", "CVX", "OXY", "NEE"},
			Description: "Floor vote on the energy permitting reform package",
		},
		{
			ID:          "budget-deadline-2024",
			Name:        "Budget Deadline",
			Date:        day(2024, time.September, 30),
			Description: "Government funding deadline; no specific sector mapping recorded",
		},
	}
}
