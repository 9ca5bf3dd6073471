package models

// Column identifies the semantic meaning of a table cell, detected from the
// header row or assumed positionally.
type Column string

const (
	ColumnName        Column = "name"
	ColumnCountry     Column = "country"
	ColumnYear        Column = "year"
	ColumnCriteria    Column = "criteria"
	ColumnDescription Column = "description"
	ColumnID          Column = "id"
)

// Confidence tags how a candidate row's columns were resolved.
type Confidence string

const (
	// ConfidenceHigh means the columns were mapped from recognized header labels.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow means the columns were assumed by position because no
	// header was recognized, or the row came from list markup.
	ConfidenceLow Confidence = "low"
)

// CandidateRow is a raw, unvalidated extraction from source markup. Cells map
// detected column labels to raw cell text; normalization decides whether the
// row becomes a HeritageRecord.
type CandidateRow struct {
	Cells      map[Column]string
	Confidence Confidence
	SourceRef  string
}

// Cell returns the raw text for a column, empty when absent.
func (r CandidateRow) Cell(c Column) string {
	return r.Cells[c]
}
