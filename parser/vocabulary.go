package parser

import (
	"strings"

	"heritage-planner/models"
)

// headerRule maps header-cell text onto a column label. Rules are evaluated in
// order; the first rule whose label matches wins for a given header cell.
type headerRule struct {
	column models.Column
	labels []string
}

// vocabulary is the known header vocabulary, in priority order. Matching is
// case-insensitive: exact label first, then substring.
var vocabulary = []headerRule{
	{models.ColumnID, []string{"id", "ref", "unesco id", "unesco"}},
	{models.ColumnYear, []string{"year", "inscribed", "year of inscription", "date"}},
	{models.ColumnCriteria, []string{"criteria", "type"}},
	{models.ColumnCountry, []string{"country", "location", "state party", "country/area", "area", "state"}},
	{models.ColumnName, []string{"name", "site", "property"}},
	{models.ColumnDescription, []string{"description", "summary", "notes"}},
}

// matchHeader resolves a header cell's text to a column label. The second
// return is false when the text matches nothing in the vocabulary.
func matchHeader(text string) (models.Column, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}

	// Exact match across the whole vocabulary first
	for _, rule := range vocabulary {
		for _, label := range rule.labels {
			if text == label {
				return rule.column, true
			}
		}
	}

	// Then substring match in priority order
	for _, rule := range vocabulary {
		for _, label := range rule.labels {
			if strings.Contains(text, label) {
				return rule.column, true
			}
		}
	}

	return "", false
}

// positionalColumns is the fallback column assignment when no header row is
// recognized: column 0 = name, column 1 = country, and so on.
var positionalColumns = []models.Column{
	models.ColumnName,
	models.ColumnCountry,
	models.ColumnYear,
	models.ColumnCriteria,
	models.ColumnDescription,
}
