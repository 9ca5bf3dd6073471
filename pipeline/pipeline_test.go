package pipeline

import (
	"testing"

	"heritage-planner/config"
	"heritage-planner/fetcher"
)

// stubFetcher serves canned markup per page and fails unknown pages.
type stubFetcher struct {
	pages map[string]string
}

func (s *stubFetcher) Fetch(page string) (string, error) {
	if html, ok := s.pages[page]; ok {
		return html, nil
	}
	return "", &fetcher.FetchError{Page: page, Reason: fetcher.ReasonNotFound}
}

const sitesPage = `<table class="wikitable">
	<tr><th>Name</th><th>Location</th><th>Year</th><th>Criteria</th></tr>
	<tr><td>Historic Centre of Rome [1]</td><td>Italy, Vatican City</td><td>1980</td><td>Cultural: (i)(ii)(iii)</td></tr>
	<tr><td>Yakushima</td><td>Japan</td><td>1993</td><td>Natural: (vii)(ix)</td></tr>
	<tr><td>Yakushima</td><td>Japan</td><td>1993</td><td>Natural</td></tr>
	<tr><td></td><td>Nowhere</td><td></td><td></td></tr>
</table>`

func testConfig(pages ...string) *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.Source.Pages = pages
	return cfg
}

func TestBuild_FullPipeline(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{"/wiki/sites": sitesPage}}
	cat, stats := NewBuilder(f, testConfig("/wiki/sites")).Build()

	if cat.Len() != 2 {
		t.Fatalf("catalog has %d records, want 2", cat.Len())
	}
	if stats.PagesFetched != 1 || stats.PagesFailed != 0 {
		t.Errorf("page stats = %+v", stats)
	}
	if stats.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", stats.Duplicates)
	}
	if stats.RowsSkipped != 1 {
		t.Errorf("rows skipped = %d, want 1", stats.RowsSkipped)
	}

	rome := cat.All()[0]
	if rome.Name != "Historic Centre of Rome" {
		t.Errorf("first record = %q", rome.Name)
	}
	if len(rome.Countries) != 2 {
		t.Errorf("rome countries = %v, want 2 entries", rome.Countries)
	}
	// Enrichment is on by default
	if rome.ISOCode != "IT" {
		t.Errorf("rome ISO = %q, want IT", rome.ISOCode)
	}
	if len(rome.CriteriaNumbers) != 3 {
		t.Errorf("rome criteria numbers = %v, want 3", rome.CriteriaNumbers)
	}
	if len(rome.Tags) == 0 {
		t.Error("rome has no tags despite enrichment")
	}
}

// A failed page contributes nothing; the rest of the build continues.
func TestBuild_AbsorbsFetchFailures(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{"/wiki/sites": sitesPage}}
	cat, stats := NewBuilder(f, testConfig("/wiki/missing", "/wiki/sites")).Build()

	if cat.Len() != 2 {
		t.Fatalf("catalog has %d records, want 2", cat.Len())
	}
	if stats.PagesFailed != 1 || stats.PagesFetched != 1 {
		t.Errorf("page stats = %+v", stats)
	}
}

// Total fetch failure degrades to an empty catalog, never an error.
func TestBuild_EmptyCatalogOnTotalFailure(t *testing.T) {
	f := &stubFetcher{pages: nil}
	cat, stats := NewBuilder(f, testConfig("/wiki/one", "/wiki/two")).Build()

	if cat.Len() != 0 {
		t.Errorf("catalog has %d records, want 0", cat.Len())
	}
	if stats.PagesFailed != 2 {
		t.Errorf("pages failed = %d, want 2", stats.PagesFailed)
	}
}

func TestBuild_EnrichmentDisabled(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{"/wiki/sites": sitesPage}}
	cfg := testConfig("/wiki/sites")
	cfg.Enrichment.Enabled = false

	cat, _ := NewBuilder(f, cfg).Build()
	if cat.Len() != 2 {
		t.Fatalf("catalog has %d records, want 2", cat.Len())
	}
	for _, rec := range cat.All() {
		if rec.ISOCode != "" || len(rec.Tags) != 0 {
			t.Errorf("record %q enriched despite disabled enrichment", rec.Name)
		}
	}
}
