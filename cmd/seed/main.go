// Command seed fills a dev database with synthetic politicians and trades.
// The RNG is explicitly seeded so a given seed always produces the same
// dataset; conflict detection is sensitive to which committees a politician
// ends up with, and reproducible fixtures keep that debuggable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"congresstrack/internal/config"
	"congresstrack/internal/db"
	"congresstrack/internal/logger"
	"congresstrack/internal/models"
	"congresstrack/internal/refdata"
	gormrepository "congresstrack/internal/repository/gorm"
)

var (
	firstNames = []string{"James", "Maria", "Robert", "Linda", "Michael", "Susan", "David", "Karen", "John", "Nancy", "Thomas", "Patricia"}
	lastNames  = []string{"Walker", "Chen", "Morales", "Thompson", "Patel", "Okafor", "Reyes", "Fitzgerald", "Novak", "Browning", "Sato", "Kowalski"}
	tickers    = []string{"NVDA", "AAPL", "MSFT", "XOM", "LMT", "JPM", "PFE", "NEE", "GOOGL", "RTX", "CVX", "UNH", "BAC", "AMD", "META"}
	parties    = []string{"Democrat", "Republican", "Independent"}
	chambers   = []string{"House", "Senate"}
	amounts    = []string{"$1,001 - $15,000", "$15,001 - $50,000", "$50,001 - $100,000", "$100,001 - $250,000", "$250,001 - $500,000"}
	txTypes    = []string{"Buy", "Buy", "Sell", "Unknown"}
)

func main() {
	_ = godotenv.Load()

	seed := flag.Int64("seed", 0, "RNG seed (required)")
	nPoliticians := flag.Int("politicians", 50, "number of politicians")
	nTrades := flag.Int("trades", 500, "number of trades")
	flag.Parse()

	if *seed == 0 {
		fmt.Fprintln(os.Stderr, "usage: seed -seed <n> [-politicians N] [-trades N]")
		os.Exit(2)
	}

	cfgPath := os.Getenv("CT_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.Load(cfgPath, os.Getenv("CT_ENV_ONLY") == "1")
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)
	if err := db.AutoMigrate(dbConn); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(*seed))
	store := gormrepository.New(dbConn.Gorm)
	ctx := context.Background()

	politicians := genPoliticians(rng, *nPoliticians)
	if err := store.UpsertPoliticians(ctx, politicians); err != nil {
		log.Fatal("seed politicians failed", zap.Error(err))
	}
	trades := genTrades(rng, politicians, *nTrades)
	if err := store.UpsertTrades(ctx, trades); err != nil {
		log.Fatal("seed trades failed", zap.Error(err))
	}

	log.Info("seed complete",
		zap.Int64("seed", *seed),
		zap.Int("politicians", len(politicians)),
		zap.Int("trades", len(trades)),
	)
}

func genPoliticians(rng *rand.Rand, n int) []models.Politician {
	table := refdata.DefaultCommitteeSectors()
	out := make([]models.Politician, 0, n)
	for i := 0; i < n; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		committees := make([]string, 0, 3)
		for _, k := range rng.Perm(len(table))[:1+rng.Intn(3)] {
			committees = append(committees, table[k].Committee)
		}
		raw, _ := json.Marshal(committees)
		party := parties[rng.Intn(len(parties))]
		p := models.Politician{
			ID:         fmt.Sprintf("pol-%04d", i+1),
			Name:       name,
			Chamber:    chambers[rng.Intn(len(chambers))],
			Party:      &party,
			Committees: datatypes.JSON(raw),
		}
		// Most members get a stats snapshot; some stay unrecorded.
		if rng.Float64() < 0.8 {
			ytd := rng.NormFloat64()*12 + 6
			top := tickers[rng.Intn(len(tickers))]
			updated := time.Now().UTC().Add(-time.Duration(rng.Intn(72)) * time.Hour)
			p.YTDReturnPct = &ytd
			p.TopHolding = &top
			p.StatsUpdatedAt = &updated
		}
		out = append(out, p)
	}
	return out
}

func genTrades(rng *rand.Rand, politicians []models.Politician, n int) []models.Trade {
	sectors := sectorUniverse()
	now := time.Now().UTC()
	out := make([]models.Trade, 0, n)
	for i := 0; i < n; i++ {
		p := politicians[rng.Intn(len(politicians))]
		traded := now.AddDate(0, 0, -rng.Intn(365))
		t := models.Trade{
			ID:             fmt.Sprintf("trade-%06d", i+1),
			PoliticianID:   &p.ID,
			PoliticianName: p.Name,
			Chamber:        p.Chamber,
			Party:          p.Party,
			Ticker:         tickers[rng.Intn(len(tickers))],
			TxType:         txTypes[rng.Intn(len(txTypes))],
			AmountRange:    amounts[rng.Intn(len(amounts))],
		}
		// ~10% missing sector, mirroring classification gaps in real feeds.
		if rng.Float64() >= 0.1 {
			sector := sectors[rng.Intn(len(sectors))]
			t.Sector = &sector
		}
		if rng.Float64() >= 0.05 {
			t.TransactionDate = &traded
			// Filing delays skew on-time with a tail past the 45-day line.
			delay := rng.Intn(30)
			if rng.Float64() < 0.15 {
				delay = 31 + rng.Intn(60)
			}
			filed := traded.AddDate(0, 0, delay)
			t.FiledDate = &filed
		}
		out = append(out, t)
	}
	return out
}

func sectorUniverse() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, row := range refdata.DefaultCommitteeSectors() {
		for _, s := range row.Sectors {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
