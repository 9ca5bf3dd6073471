// Package itinerary turns one heritage record into a day-by-day travel plan.
// Synthesis is deterministic and content-driven: the same record and day count
// always produce the same plan.
package itinerary

import (
	"fmt"
	"strings"

	"heritage-planner/models"
)

// Duration bounds for a plan.
const (
	MinDays = 1
	MaxDays = 30
)

// Theme names.
const (
	ThemeArrival   = "Arrival & Orientation"
	ThemeDeparture = "Departure"
	ThemeCultural  = "Cultural Deep-Dive"
	ThemeNatural   = "Natural Exploration"
	ThemeLocal     = "Local Context & Surroundings"
	ThemeRest      = "Rest & Reflection"
)

// InvalidDurationError reports a day count outside the allowed range. The
// caller re-prompts; the error is never fatal to the process.
type InvalidDurationError struct {
	Days int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid trip duration %d: must be between %d and %d days", e.Days, MinDays, MaxDays)
}

// Synthesize builds an itinerary plan for a record. The record is copied into
// the plan; the plan does not reference catalog memory.
func Synthesize(rec models.HeritageRecord, totalDays int) (models.ItineraryPlan, error) {
	if totalDays < MinDays || totalDays > MaxDays {
		return models.ItineraryPlan{}, &InvalidDurationError{Days: totalDays}
	}

	keywords := mineKeywords(rec.Description)

	plan := models.ItineraryPlan{
		Site:      rec,
		TotalDays: totalDays,
		Days:      make([]models.DayPlan, 0, totalDays),
	}

	for day := 1; day <= totalDays; day++ {
		plan.Days = append(plan.Days, buildDay(rec, keywords, day, totalDays))
	}

	plan.GeneralInfo = buildGeneralInfo(rec, totalDays)
	return plan, nil
}

func buildDay(rec models.HeritageRecord, keywords []string, day, totalDays int) models.DayPlan {
	switch {
	case day == 1 && totalDays == 1:
		// Arrival and departure framing collapse into one day
		return models.DayPlan{
			DayNumber: 1,
			Theme:     ThemeArrival,
			Activities: []string{
				fmt.Sprintf("Arrive in %s and settle in", rec.CountryDisplay()),
				fmt.Sprintf("Focused visit to %s", rec.Name),
				"Light exploration of the immediate surroundings",
				fmt.Sprintf("Closing visit and departure from %s", rec.Name),
			},
		}
	case day == 1:
		return arrivalDay(rec, keywords)
	case day == totalDays:
		return departureDay(rec, day)
	default:
		return middleDay(rec, keywords, day)
	}
}

func arrivalDay(rec models.HeritageRecord, keywords []string) models.DayPlan {
	activities := []string{
		fmt.Sprintf("Arrive in %s and settle into accommodation", rec.CountryDisplay()),
		fmt.Sprintf("First approach to %s for orientation", rec.Name),
		"Light exploration of the immediate surroundings",
	}
	if len(keywords) > 0 {
		activities = append(activities, fmt.Sprintf("Evening reading on the site's %s", keywords[0]))
	}
	return models.DayPlan{DayNumber: 1, Theme: ThemeArrival, Activities: activities}
}

func departureDay(rec models.HeritageRecord, day int) models.DayPlan {
	return models.DayPlan{
		DayNumber: day,
		Theme:     ThemeDeparture,
		Activities: []string{
			fmt.Sprintf("Farewell visit to %s for final photographs", rec.Name),
			"Pick up local crafts and souvenirs",
			"Check out and handle departure logistics",
		},
	}
}

// middleDay assigns a theme from the category rotation and varies phrasing by
// day index so no two days of a long trip read identically.
func middleDay(rec models.HeritageRecord, keywords []string, day int) models.DayPlan {
	themes := middleThemes(rec.Category)
	idx := day - 2 // first middle day is day 2
	theme := themes[idx%len(themes)]
	variant := (idx / len(themes)) % 3

	activities := themeActivities(theme, rec, variant)
	if kw := keywordLine(theme, keywords); kw != "" {
		activities = append(activities, kw)
	}
	activities = append(activities, fmt.Sprintf("Record impressions from day %d in the trip journal", day))

	return models.DayPlan{DayNumber: day, Theme: theme, Activities: activities}
}

// middleThemes returns the rotation for a category. Every rotation has at
// least two entries so consecutive days never share a theme.
func middleThemes(cat models.Category) []string {
	switch cat {
	case models.CategoryNatural:
		return []string{ThemeNatural, ThemeLocal, ThemeRest}
	case models.CategoryMixed:
		return []string{ThemeCultural, ThemeNatural, ThemeLocal, ThemeRest}
	default:
		return []string{ThemeCultural, ThemeLocal, ThemeRest}
	}
}

// themeActivities returns the base activity set for a theme, with phrasing
// chosen by variant index.
func themeActivities(theme string, rec models.HeritageRecord, variant int) []string {
	name := rec.Name
	switch theme {
	case ThemeCultural:
		openings := []string{
			fmt.Sprintf("Guided tour through the historic sections of %s", name),
			fmt.Sprintf("In-depth walk of %s with a local historian", name),
			fmt.Sprintf("Self-paced study visit across %s", name),
		}
		return []string{
			openings[variant%len(openings)],
			"Visit the site museum and interpretation centre",
		}
	case ThemeNatural:
		openings := []string{
			fmt.Sprintf("Morning hike through the landscapes of %s", name),
			fmt.Sprintf("Wildlife observation walk around %s", name),
			fmt.Sprintf("Scenic trail circuit at %s", name),
		}
		return []string{
			openings[variant%len(openings)],
			"Late-afternoon nature photography session",
		}
	case ThemeLocal:
		openings := []string{
			fmt.Sprintf("Explore the towns and villages surrounding %s", name),
			fmt.Sprintf("Day trip to attractions within reach of %s", name),
			fmt.Sprintf("Browse the markets and workshops near %s", name),
		}
		return []string{
			openings[variant%len(openings)],
			"Sample regional cooking at a family-run restaurant",
		}
	default: // ThemeRest
		openings := []string{
			"Unhurried morning with coffee and journaling",
			"Slow revisit of a favourite corner of the site",
			"Free morning for rest or an optional stroll",
		}
		return []string{
			openings[variant%len(openings)],
			fmt.Sprintf("Revisit a corner of %s at your own pace", name),
		}
	}
}

// keywordLine enriches a day with a notable keyword mined from the record's
// description. Empty when no keywords are available; the templated baseline
// stands on its own.
func keywordLine(theme string, keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	kw := keywords[0]
	if theme == ThemeNatural && len(keywords) > 1 {
		kw = keywords[1]
	}
	return fmt.Sprintf("Look out for the %s highlighted in site descriptions", kw)
}

// stopwords excluded from description keyword mining.
var stopwords = map[string]bool{
	"the": true, "and": true, "with": true, "from": true, "that": true,
	"this": true, "site": true, "world": true, "heritage": true, "which": true,
	"its": true, "are": true, "was": true, "were": true, "has": true,
	"have": true, "been": true, "also": true, "into": true, "over": true,
}

// mineKeywords picks up to two notable words from a description for activity
// enrichment. Deterministic: first qualifying words in order.
func mineKeywords(description string) []string {
	var out []string
	for _, word := range strings.Fields(strings.ToLower(description)) {
		word = strings.Trim(word, ".,;:()[]\"'")
		if len(word) < 5 || stopwords[word] {
			continue
		}
		if len(out) > 0 && out[0] == word {
			continue
		}
		out = append(out, word)
		if len(out) == 2 {
			break
		}
	}
	return out
}

func buildGeneralInfo(rec models.HeritageRecord, totalDays int) models.GeneralInfo {
	return models.GeneralInfo{
		EstimatedBudget: fmt.Sprintf("$%d - $%d per person (excluding flights)", 100*totalDays, 300*totalDays),
		BestTimeToVisit: "Check local weather and seasonal conditions",
		Accommodation:   fmt.Sprintf("Hotels or guesthouses near %s", rec.Name),
		Transportation:  "Research local transport options and book ahead",
		Notes: []string{
			fmt.Sprintf("Check visa requirements for %s", rec.CountryDisplay()),
			"Respect local customs and heritage site rules",
			"Book accommodation and tours in advance",
		},
	}
}
