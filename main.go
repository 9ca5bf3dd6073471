package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"heritage-planner/catalog"
	"heritage-planner/config"
	"heritage-planner/export"
	"heritage-planner/fetcher"
	"heritage-planner/itinerary"
	"heritage-planner/models"
	"heritage-planner/pipeline"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outputDir := flag.String("output", ".", "Directory for exported itineraries")
	dumpCatalog := flag.Bool("dump-catalog", false, "Also export the full normalized catalog as JSON")
	flag.Parse()

	cfg := loadConfig(*configPath)

	f, closeFetcher, err := newFetcher(cfg)
	if err != nil {
		log.Fatalf("Failed to create fetcher: %v\n", err)
	}
	defer closeFetcher()

	fmt.Println("=== UNESCO World Heritage Sites Travel Planner ===")
	fmt.Println("Loading heritage sites...")

	// Built once, cached for the whole run
	cat, stats := pipeline.NewBuilder(f, cfg).Build()
	if cat.Len() == 0 {
		fmt.Println("No heritage site data could be loaded. Try again later.")
		return
	}
	fmt.Printf("Loaded %d heritage sites (%d rows skipped, %d duplicates dropped).\n\n",
		stats.Admitted, stats.RowsSkipped, stats.Duplicates)

	writer := export.NewWriter(*outputDir)

	if *dumpCatalog {
		if path, err := writer.WriteCatalog(cat.All(), ""); err != nil {
			log.Printf("Warning: catalog export failed: %v\n", err)
		} else {
			fmt.Printf("Catalog exported to %s\n", path)
		}
	}

	runPromptLoop(bufio.NewScanner(os.Stdin), cat, cfg.Results.TopN, writer)
}

// runPromptLoop drives the interactive session: country and keyword filters,
// site selection, day count, synthesis and export. Invalid input re-prompts;
// nothing here is fatal.
func runPromptLoop(in *bufio.Scanner, cat *catalog.Catalog, topN int, writer *export.Writer) {
	for {
		keyword, ok := promptKeyword(in)
		if !ok {
			return
		}
		country, ok := promptCountry(in)
		if !ok {
			return
		}

		matches := catalog.TopN(catalog.FilterByKeyword(cat.FilterByCountry(country), keyword), topN)
		if len(matches) == 0 {
			fmt.Printf("No heritage sites found matching %q in %q.\n\n", keyword, country)
			continue
		}

		displayMatches(matches)

		rec, ok := promptSelection(in, matches)
		if !ok {
			return
		}

		plan, ok := promptAndSynthesize(in, rec)
		if !ok {
			return
		}

		exportPlan(writer, plan)

		fmt.Print("Plan another trip? (y/n): ")
		if !in.Scan() || strings.ToLower(strings.TrimSpace(in.Text())) != "y" {
			return
		}
		fmt.Println()
	}
}

var countryInputPattern = regexp.MustCompile(`^[a-zA-Z\s\-'()]+$`)

func promptCountry(in *bufio.Scanner) (string, bool) {
	for {
		fmt.Print("Enter a country name: ")
		if !in.Scan() {
			return "", false
		}
		country := strings.TrimSpace(in.Text())
		switch {
		case len(country) < 2:
			fmt.Println("Country name must be at least 2 characters long.")
		case len(country) > 100:
			fmt.Println("Country name cannot exceed 100 characters.")
		case !countryInputPattern.MatchString(country):
			fmt.Println("Country name contains invalid characters.")
		default:
			return country, true
		}
	}
}

func promptKeyword(in *bufio.Scanner) (string, bool) {
	for {
		fmt.Print("Enter a keyword to search for (e.g. 'temple', 'castle', 'natural'): ")
		if !in.Scan() {
			return "", false
		}
		keyword := strings.TrimSpace(in.Text())
		switch {
		case len(keyword) < 2:
			fmt.Println("Keyword must be at least 2 characters long.")
		case len(keyword) > 100:
			fmt.Println("Keyword cannot exceed 100 characters.")
		default:
			return keyword, true
		}
	}
}

func displayMatches(matches []models.HeritageRecord) {
	fmt.Printf("\nFound %d matching site(s):\n", len(matches))
	for i, rec := range matches {
		fmt.Printf("%d. %s (%s)", i+1, rec.Name, rec.CountryDisplay())
		if rec.YearInscribed != 0 {
			fmt.Printf(" — inscribed %d", rec.YearInscribed)
		}
		if rec.Category != models.CategoryUnknown {
			fmt.Printf(" [%s]", rec.Category)
		}
		fmt.Println()
	}
	fmt.Println()
}

func promptSelection(in *bufio.Scanner, matches []models.HeritageRecord) (models.HeritageRecord, bool) {
	for {
		fmt.Printf("Select a site (1-%d): ", len(matches))
		if !in.Scan() {
			return models.HeritageRecord{}, false
		}
		idx, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || idx < 1 || idx > len(matches) {
			fmt.Printf("Please enter a number between 1 and %d.\n", len(matches))
			continue
		}
		return matches[idx-1], true
	}
}

func promptAndSynthesize(in *bufio.Scanner, rec models.HeritageRecord) (models.ItineraryPlan, bool) {
	for {
		fmt.Printf("How many days for your trip? (%d-%d): ", itinerary.MinDays, itinerary.MaxDays)
		if !in.Scan() {
			return models.ItineraryPlan{}, false
		}
		days, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println("Trip duration must be a whole number of days.")
			continue
		}
		plan, err := itinerary.Synthesize(rec, days)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return plan, true
	}
}

// exportPlan writes the plan to disk. The plan stays in memory on failure so
// the write can be retried without re-synthesizing.
func exportPlan(writer *export.Writer, plan models.ItineraryPlan) {
	for {
		path, err := writer.WriteItinerary(plan)
		if err == nil {
			fmt.Printf("\nItinerary saved to: %s\n", path)
			displayPlanSummary(plan)
			return
		}
		log.Printf("Warning: %v\n", err)
		fmt.Print("Retry export to a different directory? (enter path or leave empty to skip): ")
		in := bufio.NewScanner(os.Stdin)
		if !in.Scan() {
			return
		}
		dir := strings.TrimSpace(in.Text())
		if dir == "" {
			return
		}
		writer = export.NewWriter(dir)
	}
}

func displayPlanSummary(plan models.ItineraryPlan) {
	fmt.Printf("\n%s — %d day(s)\n", plan.Site.Name, plan.TotalDays)
	for _, day := range plan.Days {
		fmt.Printf("  Day %d: %s\n", day.DayNumber, day.Theme)
	}
	fmt.Println()
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	var cfg *config.Config
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		log.Println("Config file not found. Using default configuration.")
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// newFetcher builds the configured fetcher. The rod fetcher is a fallback for
// mirror sites that render their tables with JavaScript.
func newFetcher(cfg *config.Config) (fetcher.Fetcher, func(), error) {
	delay := time.Duration(cfg.Fetcher.DelaySeconds * float64(time.Second))
	timeout := time.Duration(cfg.Fetcher.TimeoutSeconds) * time.Second

	switch cfg.Fetcher.Kind {
	case "rod":
		rf, err := fetcher.NewRodFetcher(cfg.Source.BaseURL, delay)
		if err != nil {
			return nil, nil, err
		}
		return rf, func() {
			if err := rf.Close(); err != nil {
				log.Printf("Warning: Failed to close browser: %v\n", err)
			}
		}, nil
	default:
		cf := fetcher.NewCollyFetcher(cfg.Source.BaseURL, delay, timeout)
		return cf, func() {}, nil
	}
}
