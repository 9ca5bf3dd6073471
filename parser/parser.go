package parser

import (
	"fmt"
	"regexp"
	"strings"

	"heritage-planner/models"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts candidate rows from wiki-style markup
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts candidate rows from a page's raw markup. Tables are scanned
// in document order and their rows concatenated; when no table yields any row,
// list markup is scanned as a fallback. A row that fails every extraction path
// is skipped, never an error.
func (p *Parser) Parse(htmlContent, pageRef string) ([]models.CandidateRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rows []models.CandidateRow

	// Prefer wiki data tables, fall back to any table on the page
	tables := doc.Find("table.wikitable")
	if tables.Length() == 0 {
		tables = doc.Find("table")
	}

	tables.Each(func(ti int, table *goquery.Selection) {
		rows = append(rows, p.parseTable(table, pageRef, ti)...)
	})

	if len(rows) == 0 {
		rows = p.parseLists(doc, pageRef)
	}

	return rows, nil
}

// parseTable extracts candidate rows from a single table.
func (p *Parser) parseTable(table *goquery.Selection, pageRef string, tableIdx int) []models.CandidateRow {
	trs := table.Find("tr")
	if trs.Length() == 0 {
		return nil
	}

	colMap, headerFound := p.mapHeader(trs.First())

	confidence := models.ConfidenceHigh
	dataStart := 1
	if !headerFound {
		// Positional fallback: assume column 0 = name, column 1 = country, ...
		confidence = models.ConfidenceLow
		dataStart = 0
		colMap = make(map[int]models.Column)
		for i, c := range positionalColumns {
			colMap[i] = c
		}
	}

	var rows []models.CandidateRow
	trs.Each(func(ri int, tr *goquery.Selection) {
		if ri < dataStart {
			return
		}
		cells := tr.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		rowCells := make(map[models.Column]string)
		cells.Each(func(ci int, cell *goquery.Selection) {
			col, ok := colMap[ci]
			if !ok {
				return
			}
			text := strings.TrimSpace(cell.Text())
			if text == "" {
				return
			}
			// First non-empty cell wins when spans shift indices
			if _, exists := rowCells[col]; !exists {
				rowCells[col] = text
			}
		})

		if len(rowCells) == 0 {
			return
		}

		rows = append(rows, models.CandidateRow{
			Cells:      rowCells,
			Confidence: confidence,
			SourceRef:  fmt.Sprintf("%s#table%d/row%d", pageRef, tableIdx, ri),
		})
	})

	return rows
}

// mapHeader builds a column-index map from a header row. The second return is
// false when the row contains no recognizable header label.
func (p *Parser) mapHeader(headerRow *goquery.Selection) (map[int]models.Column, bool) {
	colMap := make(map[int]models.Column)
	claimed := make(map[models.Column]bool)

	headerRow.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		col, ok := matchHeader(cell.Text())
		if !ok || claimed[col] {
			return
		}
		colMap[i] = col
		claimed[col] = true
	})

	// A usable header must at least locate the name column
	return colMap, claimed[models.ColumnName]
}

// Patterns for list-style entries: "Name (Country)" and "Name, Country"
var (
	listParenPattern = regexp.MustCompile(`^(.{3,}?)\s*\(([^)]+)\)\s*$`)
	listCommaPattern = regexp.MustCompile(`^(.{3,}?),\s*(.+)$`)
	digitPattern     = regexp.MustCompile(`\d`)
)

// parseLists scans bulleted list markup as a fallback when a page has no
// usable table structure.
func (p *Parser) parseLists(doc *goquery.Document, pageRef string) []models.CandidateRow {
	var rows []models.CandidateRow

	doc.Find("ul li, ol li").Each(func(i int, li *goquery.Selection) {
		// Skip nested lists; the inner items are visited on their own
		if li.ChildrenFiltered("ul, ol").Length() > 0 {
			return
		}

		text := strings.TrimSpace(li.Text())
		if text == "" {
			return
		}

		name, country := splitListEntry(text)
		if name == "" || country == "" {
			return
		}

		rows = append(rows, models.CandidateRow{
			Cells: map[models.Column]string{
				models.ColumnName:    name,
				models.ColumnCountry: country,
			},
			Confidence: models.ConfidenceLow,
			SourceRef:  fmt.Sprintf("%s#list/item%d", pageRef, i),
		})
	})

	return rows
}

// splitListEntry extracts a name/country pair from a list entry of the shape
// "Name (Country)" or "Name, Country". Returns empty strings when the entry
// matches neither.
func splitListEntry(text string) (string, string) {
	if m := listParenPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := listCommaPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		country := strings.TrimSpace(m[2])
		// A trailing clause with digits is a year or coordinate, not a country
		if digitPattern.MatchString(country) {
			return "", ""
		}
		return name, country
	}
	return "", ""
}
