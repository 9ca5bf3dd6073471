// Package catalog holds the normalized record set for a process run. The
// catalog is built once and read many times; it is never mutated after build.
package catalog

import (
	"strings"

	"heritage-planner/models"
	"heritage-planner/normalizer"
)

// Catalog is the in-memory ordered collection of heritage records.
type Catalog struct {
	records []models.HeritageRecord
}

// New builds a catalog from records in insertion order, dropping later
// duplicates of the same (normalized name, normalized country set). Returns
// the catalog and the number of duplicates dropped.
func New(records []models.HeritageRecord) (*Catalog, int) {
	seen := make(map[string]bool, len(records))
	kept := make([]models.HeritageRecord, 0, len(records))
	duplicates := 0

	for _, rec := range records {
		key := normalizer.DedupKey(rec)
		if seen[key] {
			duplicates++
			continue
		}
		seen[key] = true
		kept = append(kept, rec)
	}

	return &Catalog{records: kept}, duplicates
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns the full record set in insertion order.
func (c *Catalog) All() []models.HeritageRecord {
	return c.records
}

// FilterByCountry returns records whose country sequence contains the query
// as a case-insensitive substring, in insertion order. An empty result is a
// valid outcome, not an error.
func (c *Catalog) FilterByCountry(query string) []models.HeritageRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []models.HeritageRecord
	for _, rec := range c.records {
		for _, country := range rec.Countries {
			if strings.Contains(strings.ToLower(country), query) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// FilterByKeyword narrows records to those whose name, description or tags
// contain the keyword, case-insensitively, preserving input order.
func FilterByKeyword(records []models.HeritageRecord, keyword string) []models.HeritageRecord {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return records
	}

	var out []models.HeritageRecord
	for _, rec := range records {
		if matchesKeyword(rec, keyword) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesKeyword(rec models.HeritageRecord, keyword string) bool {
	if strings.Contains(strings.ToLower(rec.Name), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Description), keyword) {
		return true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(tag, keyword) {
			return true
		}
	}
	return false
}

// TopN returns the first n records of the input. Order is insertion order
// from the source page, not relevance.
func TopN(records []models.HeritageRecord, n int) []models.HeritageRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	if len(records) < n {
		n = len(records)
	}
	return records[:n]
}
