// Package enrich adds derived metadata to normalized heritage records:
// geographic lookups, UNESCO criteria numbers, searchable tags and a data
// quality score.
package enrich

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"heritage-planner/models"
)

// Enrich populates the derived fields of a record in place and returns it.
// Enrichment never fails; unresolvable fields stay empty.
func Enrich(rec models.HeritageRecord, criteriaRaw string) models.HeritageRecord {
	if len(rec.Countries) > 0 {
		if info, ok := LookupCountry(rec.Countries[0]); ok {
			rec.ISOCode = info.ISO
			rec.Continent = info.Continent
			rec.Region = info.Region
		}
	}

	rec.CriteriaNumbers = ParseCriteriaNumbers(criteriaRaw)
	rec.QualityScore = QualityScore(rec)
	rec.Tags = GenerateTags(rec)
	return rec
}

var criteriaNumeralPattern = regexp.MustCompile(`\b([ivx]+)\b`)

var knownNumerals = map[string]bool{
	"i": true, "ii": true, "iii": true, "iv": true, "v": true,
	"vi": true, "vii": true, "viii": true, "ix": true, "x": true,
}

// ParseCriteriaNumbers extracts the roman-numeral criteria codes from a raw
// criteria cell, in order of first appearance, deduplicated.
func ParseCriteriaNumbers(raw string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range criteriaNumeralPattern.FindAllString(strings.ToLower(raw), -1) {
		if knownNumerals[m] && !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// QualityScore computes a 0-1 completeness score from the fields a record
// managed to resolve.
func QualityScore(rec models.HeritageRecord) float64 {
	var score, max float64

	max++ // name
	if len(rec.Name) >= 3 {
		score++
	}
	max++ // country resolved against the metadata table
	if rec.ISOCode != "" {
		score++
	}
	max++ // inscription year
	if rec.YearInscribed != 0 {
		score++
	}
	max++ // category known
	if rec.Category != models.CategoryUnknown {
		score++
	}
	max++ // description present
	if rec.Description != "" {
		score++
	}

	return score / max
}

// keywordTags maps substrings of a site name/description to tags.
var keywordTags = map[string]string{
	"temple":    "temple",
	"castle":    "castle",
	"cathedral": "cathedral",
	"church":    "church",
	"mosque":    "mosque",
	"palace":    "palace",
	"fortress":  "fortress",
	"fort":      "fortress",
	"monastery": "monastery",
	"park":      "park",
	"forest":    "forest",
	"island":    "island",
	"lake":      "lake",
	"mountain":  "mountain",
	"reef":      "reef",
	"valley":    "valley",
	"garden":    "garden",
	"historic":  "historic",
	"ancient":   "ancient",
	"old town":  "old_town",
	"ruins":     "ruins",
}

// GenerateTags derives deterministic searchable tags from a record: category,
// geography slugs, inscription decade and keyword matches. Output is sorted.
func GenerateTags(rec models.HeritageRecord) []string {
	tags := make(map[string]bool)

	tags[strings.ToLower(string(rec.Category))] = true

	if rec.Continent != "" {
		tags[slug(rec.Continent)] = true
	}
	if rec.Region != "" {
		tags[slug(rec.Region)] = true
	}
	for _, c := range rec.Countries {
		tags[slug(c)] = true
	}

	if rec.YearInscribed != 0 {
		decade := (rec.YearInscribed / 10) * 10
		tags[slugDecade(decade)] = true
		switch {
		case rec.YearInscribed < 1990:
			tags["early_inscription"] = true
		case rec.YearInscribed < 2010:
			tags["mid_inscription"] = true
		default:
			tags["recent_inscription"] = true
		}
	}

	searchable := strings.ToLower(rec.Name + " " + rec.Description)
	for needle, tag := range keywordTags {
		if strings.Contains(searchable, needle) {
			tags[tag] = true
		}
	}

	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

func slugDecade(decade int) string {
	return strconv.Itoa(decade) + "s"
}
