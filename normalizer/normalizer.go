// Package normalizer turns raw candidate rows into validated heritage records.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"heritage-planner/models"
)

// minInscriptionYear is the first year any site was inscribed.
const minInscriptionYear = 1978

var (
	citationPattern   = regexp.MustCompile(`\[[^\]]*\]`)
	footnotePattern   = regexp.MustCompile(`[*†‡§¶#]+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	yearPattern       = regexp.MustCompile(`\b(\d{4})\b`)

	// Delimiters that split a transboundary country cell
	countrySplitPattern = regexp.MustCompile(`\s*(?:,|/|;|\band\b|&)\s*`)
)

// Normalizer maps candidate rows into heritage records
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// Normalize maps a candidate row into zero or one HeritageRecord. The second
// return is false when the row fails validation (missing name or country
// after every fallback); that outcome is expected and silent.
func (n *Normalizer) Normalize(row models.CandidateRow) (models.HeritageRecord, bool) {
	name := CleanText(row.Cell(models.ColumnName))
	if len(name) < 3 {
		return models.HeritageRecord{}, false
	}

	countryRaw := CleanText(row.Cell(models.ColumnCountry))
	countries := n.splitCountries(countryRaw)
	if len(countries) == 0 {
		return models.HeritageRecord{}, false
	}

	rec := models.HeritageRecord{
		Name:        name,
		Countries:   countries,
		Category:    InferCategory(row.Cell(models.ColumnCriteria)),
		Description: CleanText(row.Cell(models.ColumnDescription)),
		SourceRef:   row.SourceRef,
	}

	if year, ok := n.extractYear(row.Cell(models.ColumnYear)); ok {
		rec.YearInscribed = year
	}

	return rec, true
}

// DedupKey returns the key used for first-wins deduplication: the normalized
// name joined with the normalized country set.
func DedupKey(rec models.HeritageRecord) string {
	parts := make([]string, 0, len(rec.Countries)+1)
	parts = append(parts, normalizeForMatch(rec.Name))
	for _, c := range rec.Countries {
		parts = append(parts, normalizeForMatch(c))
	}
	return strings.Join(parts, "|")
}

// CleanText strips citation markers and footnote symbols, collapses repeated
// whitespace and trims. Pure text transformation, no markup awareness.
func CleanText(text string) string {
	text = citationPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = footnotePattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// splitCountries splits a country cell on known multi-value delimiters when
// the cell looks transboundary, otherwise treats it as a single value. Each
// part keeps its display form; title casing happens only for matching.
func (n *Normalizer) splitCountries(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := countrySplitPattern.Split(raw, -1)
	if len(parts) > 1 && allPlausibleCountries(parts) {
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	return []string{raw}
}

// allPlausibleCountries reports whether every split part looks like a country
// name rather than a fragment of a longer location string. This row-local
// check stands in for page-level transboundary context.
func allPlausibleCountries(parts []string) bool {
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) < 2 || digitRunPattern.MatchString(p) {
			return false
		}
	}
	return true
}

var digitRunPattern = regexp.MustCompile(`\d`)

// extractYear finds the first 4-digit sequence within the plausible
// inscription range. Anything outside the range is treated as missing.
func (n *Normalizer) extractYear(raw string) (int, bool) {
	for _, m := range yearPattern.FindAllString(raw, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if year >= minInscriptionYear && year <= n.now().Year()+1 {
			return year, true
		}
	}
	return 0, false
}

// InferCategory maps criteria/legend text to a site category. UNESCO cultural
// criteria are i-vi, natural criteria vii-x; a row carrying both is Mixed.
// Legend codes C/N/M and spelled-out words are also recognized.
func InferCategory(raw string) models.Category {
	text := strings.ToLower(CleanText(raw))
	if text == "" {
		return models.CategoryUnknown
	}

	switch {
	case strings.Contains(text, "mixed"):
		return models.CategoryMixed
	case strings.Contains(text, "cultural"):
		return models.CategoryCultural
	case strings.Contains(text, "natural"):
		return models.CategoryNatural
	}

	cultural, natural := scanCriteriaNumerals(text)
	switch {
	case cultural && natural:
		return models.CategoryMixed
	case cultural:
		return models.CategoryCultural
	case natural:
		return models.CategoryNatural
	}

	// Single-letter legend codes
	switch text {
	case "c":
		return models.CategoryCultural
	case "n":
		return models.CategoryNatural
	case "m", "c/n", "n/c":
		return models.CategoryMixed
	}

	return models.CategoryUnknown
}

var romanNumeralPattern = regexp.MustCompile(`\b([ivx]+)\b`)

// culturalNumerals and naturalNumerals are the UNESCO criteria groups.
var (
	culturalNumerals = map[string]bool{"i": true, "ii": true, "iii": true, "iv": true, "v": true, "vi": true}
	naturalNumerals  = map[string]bool{"vii": true, "viii": true, "ix": true, "x": true}
)

func scanCriteriaNumerals(text string) (cultural, natural bool) {
	for _, m := range romanNumeralPattern.FindAllString(text, -1) {
		if culturalNumerals[m] {
			cultural = true
		}
		if naturalNumerals[m] {
			natural = true
		}
	}
	return cultural, natural
}

// normalizeForMatch lowercases, trims and collapses whitespace for
// case-insensitive comparison while leaving display forms untouched.
func normalizeForMatch(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespacePattern.ReplaceAllString(s, " ")
}
