package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	glossary "github.com/goliatone/go-glossary"
	"github.com/goliatone/go-glossary/internal/database"
	"github.com/goliatone/go-glossary/internal/di"
)

func main() {
	var (
		dsn      = flag.String("db", "", "Database DSN (defaults to GLOSSARY_DB, then an in-memory sqlite database)")
		driver   = flag.String("driver", "sqlite", "Database driver: sqlite or postgres")
		limit    = flag.Int("limit", 10, "Number of terms listed in the report sample")
		contains = flag.String("contains", "ice", "Case-insensitive substring counted across term strings (empty disables)")
		probes   = flag.String("probe", "White ice,Young ice", "Comma separated term strings checked for existence")
	)

	flag.Parse()

	dbDSN := *dsn
	if dbDSN == "" {
		dbDSN = os.Getenv("GLOSSARY_DB")
	}
	if dbDSN == "" {
		dbDSN = "file::memory:?cache=shared"
	}

	cfg := glossary.DefaultConfig()
	cfg.Storage.Driver = *driver
	cfg.Storage.DSN = dbDSN
	cfg.Diagnostics.Probes = splitProbes(*probes)
	cfg.Diagnostics.SampleSize = *limit
	cfg.Diagnostics.Contains = *contains

	db, err := database.Open(cfg.Storage)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := glossary.SetupSchema(ctx, db); err != nil {
		log.Fatalf("setup schema: %v", err)
	}

	module, err := glossary.New(cfg, di.WithBunDB(db))
	if err != nil {
		log.Fatalf("configure glossary module: %v", err)
	}

	report, err := module.Diagnostics().Run(ctx, glossary.ReportOptions{})
	if err != nil {
		log.Fatalf("run diagnostics: %v", err)
	}

	if _, err := report.WriteTo(os.Stdout); err != nil {
		log.Fatalf("write report: %v", err)
	}
}

func splitProbes(raw string) []string {
	parts := strings.Split(raw, ",")
	probes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			probes = append(probes, trimmed)
		}
	}
	return probes
}
