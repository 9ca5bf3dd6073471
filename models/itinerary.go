package models

// DayPlan is one day of a generated itinerary.
type DayPlan struct {
	DayNumber  int      `json:"dayNumber"` // 1-based, sequential, no gaps
	Theme      string   `json:"theme"`
	Activities []string `json:"activities"` // 2-4 entries
}

// GeneralInfo carries trip-level notes attached to an exported plan.
type GeneralInfo struct {
	EstimatedBudget string   `json:"estimatedBudget"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	Accommodation   string   `json:"accommodation"`
	Transportation  string   `json:"transportation"`
	Notes           []string `json:"notes,omitempty"`
}

// ItineraryPlan is the generated day-by-day schedule for one selected site.
// The record is embedded by value; the plan outlives the catalog it came from.
type ItineraryPlan struct {
	Site        HeritageRecord `json:"site"`
	TotalDays   int            `json:"totalDays"`
	Days        []DayPlan      `json:"days"`
	GeneralInfo GeneralInfo    `json:"generalInfo"`
}

// BuildStats counts outcomes of a catalog build.
type BuildStats struct {
	PagesFetched int
	PagesFailed  int
	RowsParsed   int
	RowsSkipped  int
	Duplicates   int
	Admitted     int
}
