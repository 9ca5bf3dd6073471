// Package pipeline wires fetch, parse, normalize and enrich into a one-shot
// catalog build. The build runs at most once per process; the catalog is
// cached by the caller and filtered in memory afterwards.
package pipeline

import (
	"log"

	"heritage-planner/catalog"
	"heritage-planner/config"
	"heritage-planner/enrich"
	"heritage-planner/fetcher"
	"heritage-planner/models"
	"heritage-planner/normalizer"
	"heritage-planner/parser"
)

// Builder builds the site catalog from configured source pages.
type Builder struct {
	fetcher    fetcher.Fetcher
	parser     *parser.Parser
	normalizer *normalizer.Normalizer
	cfg        *config.Config
}

// NewBuilder creates a Builder over a fetcher and config.
func NewBuilder(f fetcher.Fetcher, cfg *config.Config) *Builder {
	return &Builder{
		fetcher:    f,
		parser:     parser.NewParser(),
		normalizer: normalizer.NewNormalizer(),
		cfg:        cfg,
	}
}

// Build fetches every configured page, parses and normalizes its rows, and
// assembles the catalog. Per-page and per-row failures are absorbed: a failed
// page contributes nothing, a failed row is skipped. The result can be an
// empty catalog, which the caller reports as "no results" rather than an
// error.
func (b *Builder) Build() (*catalog.Catalog, models.BuildStats) {
	var stats models.BuildStats
	var records []models.HeritageRecord

	for _, page := range b.cfg.Source.Pages {
		raw, err := b.fetcher.Fetch(page)
		if err != nil {
			log.Printf("Warning: no data for page %s: %v\n", page, err)
			stats.PagesFailed++
			continue
		}
		stats.PagesFetched++

		rows, err := b.parser.Parse(raw, page)
		if err != nil {
			log.Printf("Warning: failed to parse page %s: %v\n", page, err)
			continue
		}
		stats.RowsParsed += len(rows)

		for _, row := range rows {
			rec, ok := b.normalizer.Normalize(row)
			if !ok {
				stats.RowsSkipped++
				continue
			}
			if b.cfg.Enrichment.Enabled {
				rec = enrich.Enrich(rec, row.Cell(models.ColumnCriteria))
			}
			records = append(records, rec)
		}
	}

	cat, duplicates := catalog.New(records)
	stats.Duplicates = duplicates
	stats.Admitted = cat.Len()

	log.Printf("Catalog built: %d sites admitted (%d rows parsed, %d skipped, %d duplicates, %d/%d pages)\n",
		stats.Admitted, stats.RowsParsed, stats.RowsSkipped, stats.Duplicates,
		stats.PagesFetched, stats.PagesFetched+stats.PagesFailed)

	return cat, stats
}
