package fetcher

import "fmt"

// Reason classifies why a fetch failed.
type Reason string

const (
	ReasonNetwork     Reason = "network"
	ReasonNotFound    Reason = "notFound"
	ReasonRateLimited Reason = "rateLimited"
)

// FetchError reports a failure at the network boundary. Callers treat it as
// "no data available for this page" rather than a fatal condition.
type FetchError struct {
	Page   string
	Reason Reason
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s failed (%s): %v", e.Page, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch %s failed (%s)", e.Page, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the raw markup for a page path relative to the source
	// base URL. Failures are reported as *FetchError.
	Fetch(page string) (string, error)
}
