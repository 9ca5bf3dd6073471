package fetcher

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
	baseURL   string
}

// NewCollyFetcher creates a new CollyFetcher instance. delay is the minimum
// pause between successive requests (politeness throttle).
func NewCollyFetcher(baseURL string, delay time.Duration, timeout time.Duration) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	c.SetRequestTimeout(timeout)

	// Rate limiting between successive requests to the wiki host
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       delay,
	})

	return &CollyFetcher{
		collector: c,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(page string) (string, error) {
	url := page
	if strings.HasPrefix(page, "/") {
		url = cf.baseURL + page
	}

	// Clone per request so callbacks from earlier fetches don't accumulate
	c := cf.collector.Clone()

	var body string
	var status int
	var fetchErr *FetchError

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
		status = r.StatusCode
	})

	c.OnError(func(r *colly.Response, err error) {
		reason := ReasonNetwork
		if r != nil {
			switch r.StatusCode {
			case http.StatusNotFound, http.StatusGone:
				reason = ReasonNotFound
			case http.StatusTooManyRequests:
				reason = ReasonRateLimited
			}
		}
		fetchErr = &FetchError{Page: page, Reason: reason, Err: err}
		log.Printf("Error fetching %s: %v\n", url, err)
	})

	if err := c.Visit(url); err != nil {
		return "", &FetchError{Page: page, Reason: ReasonNetwork, Err: err}
	}
	c.Wait()

	if fetchErr != nil {
		return "", fetchErr
	}
	if body == "" {
		return "", &FetchError{Page: page, Reason: ReasonNotFound}
	}

	log.Printf("Fetched %s (%d, %d bytes)\n", url, status, len(body))
	return body, nil
}
