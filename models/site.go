package models

// Category classifies a heritage site by the kind of UNESCO criteria it was
// inscribed under.
type Category string

const (
	CategoryCultural Category = "Cultural"
	CategoryNatural  Category = "Natural"
	CategoryMixed    Category = "Mixed"
	CategoryUnknown  Category = "Unknown"
)

// HeritageRecord is the canonical representation of one heritage site entry.
// Records are immutable once admitted to the catalog.
type HeritageRecord struct {
	Name          string   `json:"name"`
	Countries     []string `json:"country"` // at least one; transboundary sites carry several
	Category      Category `json:"category"`
	YearInscribed int      `json:"yearInscribed,omitempty"` // 0 when unknown
	Description   string   `json:"description,omitempty"`
	SourceRef     string   `json:"-"` // page/row reference for debugging, never shown to the user

	// Enrichment fields, populated during catalog build when enrichment is
	// enabled. Empty/zero otherwise.
	ISOCode         string   `json:"isoCode,omitempty"`
	Continent       string   `json:"continent,omitempty"`
	Region          string   `json:"region,omitempty"`
	CriteriaNumbers []string `json:"criteriaNumbers,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	QualityScore    float64  `json:"qualityScore,omitempty"`
}

// CountryDisplay returns the country sequence as a single display string.
func (r HeritageRecord) CountryDisplay() string {
	if len(r.Countries) == 0 {
		return ""
	}
	out := r.Countries[0]
	for _, c := range r.Countries[1:] {
		out += ", " + c
	}
	return out
}
