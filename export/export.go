// Package export serializes itinerary plans and catalog dumps to JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kennygrant/sanitize"

	"heritage-planner/models"
)

// ExportError reports a write failure at the file boundary. The in-memory
// plan is untouched; the caller may retry with a different target.
type ExportError struct {
	Filename string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Filename, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Writer writes exports into a target directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer. An empty dir targets the working directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// ItineraryFilename derives the target filename for a plan:
// itinerary_<SiteName>_<Days>days.json, spaces replaced and path-unsafe
// characters stripped.
func ItineraryFilename(plan models.ItineraryPlan) string {
	name := sanitize.BaseName(strings.ReplaceAll(plan.Site.Name, " ", "-"))
	if name == "" {
		name = "site"
	}
	return fmt.Sprintf("itinerary_%s_%ddays.json", name, plan.TotalDays)
}

// WriteItinerary serializes a plan to its derived filename and returns the
// written path. Failures come back as *ExportError.
func (w *Writer) WriteItinerary(plan models.ItineraryPlan) (string, error) {
	filename := ItineraryFilename(plan)
	path := filepath.Join(w.dir, filename)

	data, err := json.MarshalIndent(plan, "", "    ")
	if err != nil {
		return "", &ExportError{Filename: filename, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &ExportError{Filename: filename, Err: err}
	}

	return path, nil
}

// WriteCatalog dumps the full normalized record set to a JSON file.
func (w *Writer) WriteCatalog(records []models.HeritageRecord, filename string) (string, error) {
	if filename == "" {
		filename = "heritage_sites.json"
	}
	path := filepath.Join(w.dir, filename)

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return "", &ExportError{Filename: filename, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &ExportError{Filename: filename, Err: err}
	}

	return path, nil
}
