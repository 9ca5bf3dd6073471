package parser

import (
	"testing"

	"heritage-planner/models"
)

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   models.Column
		wantOK bool
	}{
		{"exact name", "Name", models.ColumnName, true},
		{"site maps to name", "Site", models.ColumnName, true},
		{"country/area", "Country/Area", models.ColumnCountry, true},
		{"location", "Location", models.ColumnCountry, true},
		{"state party", "State Party", models.ColumnCountry, true},
		{"year substring", "Year of inscription", models.ColumnYear, true},
		{"inscribed substring", "Inscribed", models.ColumnYear, true},
		{"criteria", "Criteria", models.ColumnCriteria, true},
		{"unesco id", "UNESCO ID", models.ColumnID, true},
		{"description", "Description", models.ColumnDescription, true},
		{"unknown header", "Image", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchHeader(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("matchHeader(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("matchHeader(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_HeaderLabelMatching(t *testing.T) {
	html := `<table class="wikitable">
		<tr><th>Name</th><th>Location</th><th>Year</th><th>Criteria</th></tr>
		<tr><td>Historic Centre of Rome</td><td>Italy</td><td>1980</td><td>Cultural: (i)(ii)(iii)</td></tr>
		<tr><td>Yakushima</td><td>Japan</td><td>1993</td><td>Natural: (vii)(ix)</td></tr>
	</table>`

	p := NewParser()
	rows, err := p.Parse(html, "/wiki/test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Parse() returned %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Confidence != models.ConfidenceHigh {
		t.Errorf("confidence = %v, want high", first.Confidence)
	}
	if got := first.Cell(models.ColumnName); got != "Historic Centre of Rome" {
		t.Errorf("name cell = %q", got)
	}
	if got := first.Cell(models.ColumnCountry); got != "Italy" {
		t.Errorf("country cell = %q", got)
	}
	if got := first.Cell(models.ColumnYear); got != "1980" {
		t.Errorf("year cell = %q", got)
	}
}

// Columns in reversed order must still map by label, not position.
func TestParse_ReversedColumnOrder(t *testing.T) {
	html := `<table class="wikitable">
		<tr><th>Country/Area</th><th>Name</th></tr>
		<tr><td>Japan</td><td>Himeji-jo</td></tr>
	</table>`

	p := NewParser()
	rows, err := p.Parse(html, "/wiki/test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Parse() returned %d rows, want 1", len(rows))
	}
	if got := rows[0].Cell(models.ColumnName); got != "Himeji-jo" {
		t.Errorf("name cell = %q, want Himeji-jo", got)
	}
	if got := rows[0].Cell(models.ColumnCountry); got != "Japan" {
		t.Errorf("country cell = %q, want Japan", got)
	}
}

func TestParse_PositionalFallback(t *testing.T) {
	html := `<table>
		<tr><td>Angkor</td><td>Cambodia</td><td>1992</td></tr>
		<tr><td>Petra</td><td>Jordan</td><td>1985</td></tr>
	</table>`

	p := NewParser()
	rows, err := p.Parse(html, "/wiki/test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Parse() returned %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Confidence != models.ConfidenceLow {
			t.Errorf("positional row confidence = %v, want low", row.Confidence)
		}
	}
	if got := rows[0].Cell(models.ColumnName); got != "Angkor" {
		t.Errorf("name cell = %q, want Angkor", got)
	}
	if got := rows[1].Cell(models.ColumnCountry); got != "Jordan" {
		t.Errorf("country cell = %q, want Jordan", got)
	}
}

func TestParse_MultipleTablesConcatenatedInOrder(t *testing.T) {
	html := `
	<table class="wikitable">
		<tr><th>Name</th><th>Country</th></tr>
		<tr><td>Site A</td><td>France</td></tr>
	</table>
	<p>1979</p>
	<table class="wikitable">
		<tr><th>Name</th><th>Country</th></tr>
		<tr><td>Site B</td><td>Spain</td></tr>
		<tr><td>Site C</td><td>Greece</td></tr>
	</table>`

	p := NewParser()
	rows, err := p.Parse(html, "/wiki/test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Parse() returned %d rows, want 3", len(rows))
	}
	wantNames := []string{"Site A", "Site B", "Site C"}
	for i, want := range wantNames {
		if got := rows[i].Cell(models.ColumnName); got != want {
			t.Errorf("row %d name = %q, want %q", i, got, want)
		}
	}
}

func TestParse_ListFallback(t *testing.T) {
	html := `<div>
		<ul>
			<li>Machu Picchu (Peru)</li>
			<li>Serengeti National Park, Tanzania</li>
			<li>just some text without structure</li>
		</ul>
	</div>`

	p := NewParser()
	rows, err := p.Parse(html, "/wiki/test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Parse() returned %d rows, want 2", len(rows))
	}
	if got := rows[0].Cell(models.ColumnName); got != "Machu Picchu" {
		t.Errorf("name = %q, want Machu Picchu", got)
	}
	if got := rows[0].Cell(models.ColumnCountry); got != "Peru" {
		t.Errorf("country = %q, want Peru", got)
	}
	if got := rows[1].Cell(models.ColumnCountry); got != "Tanzania" {
		t.Errorf("country = %q, want Tanzania", got)
	}
	if rows[0].Confidence != models.ConfidenceLow {
		t.Errorf("list row confidence = %v, want low", rows[0].Confidence)
	}
}

func TestParse_UnparsableRowsSkipped(t *testing.T) {
	html := `<table class="wikitable">
		<tr><th>Name</th><th>Country</th></tr>
		<tr><td></td></tr>
		<tr><td>Valid Site</td><td>Italy</td></tr>
	</table>`

	p := NewParser()
	rows, err := p.Parse(html, "/wiki/test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Parse() returned %d rows, want 1", len(rows))
	}
	if got := rows[0].Cell(models.ColumnName); got != "Valid Site" {
		t.Errorf("name = %q, want Valid Site", got)
	}
}

func TestParse_NoStructureYieldsNoRows(t *testing.T) {
	p := NewParser()
	rows, err := p.Parse("<p>nothing tabular here</p>", "/wiki/test")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Parse() returned %d rows, want 0", len(rows))
	}
}

func TestSplitListEntry(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantName    string
		wantCountry string
	}{
		{"paren form", "Machu Picchu (Peru)", "Machu Picchu", "Peru"},
		{"comma form", "Serengeti National Park, Tanzania", "Serengeti National Park", "Tanzania"},
		{"comma with year is rejected", "Some Site, 1984", "", ""},
		{"plain text rejected", "no structure here at all", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotCountry := splitListEntry(tt.input)
			if gotName != tt.wantName || gotCountry != tt.wantCountry {
				t.Errorf("splitListEntry(%q) = (%q, %q), want (%q, %q)",
					tt.input, gotName, gotCountry, tt.wantName, tt.wantCountry)
			}
		})
	}
}
