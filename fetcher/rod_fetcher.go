package fetcher

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// RodFetcher implements the Fetcher interface using rod (headless browser).
// Used for mirror sites that only render their tables with JavaScript.
type RodFetcher struct {
	browser *rod.Browser
	baseURL string
	delay   time.Duration
	lastReq time.Time
}

// NewRodFetcher creates a new RodFetcher instance
func NewRodFetcher(baseURL string, delay time.Duration) (*RodFetcher, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false). // Disable leakless to avoid antivirus issues
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("disable-extensions").
		Set("mute-audio")

	// Prefer a system Chrome/Chromium when one is installed
	linuxPaths := []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	}
	for _, path := range linuxPaths {
		if _, err := os.Stat(path); err == nil {
			l = l.Bin(path)
			break
		}
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodFetcher{
		browser: browser,
		baseURL: strings.TrimRight(baseURL, "/"),
		delay:   delay,
	}, nil
}

// Fetch implements the Fetcher interface
func (rf *RodFetcher) Fetch(pagePath string) (string, error) {
	url := pagePath
	if strings.HasPrefix(pagePath, "/") {
		url = rf.baseURL + pagePath
	}

	// Politeness delay between successive navigations
	if !rf.lastReq.IsZero() {
		if wait := rf.delay - time.Since(rf.lastReq); wait > 0 {
			time.Sleep(wait)
		}
	}
	rf.lastReq = time.Now()

	var page *rod.Page
	var pageErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				pageErr = fmt.Errorf("panic while creating page: %v", r)
			}
		}()
		page = rf.browser.MustPage()
	}()
	if pageErr != nil {
		return "", &FetchError{Page: pagePath, Reason: ReasonNetwork, Err: pageErr}
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", &FetchError{Page: pagePath, Reason: ReasonNetwork, Err: err}
	}
	page.WaitLoad()

	// Wait for page to stabilize before grabbing HTML
	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: page did not stabilize within timeout, continuing anyway: %v\n", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", &FetchError{Page: pagePath, Reason: ReasonNetwork, Err: err}
	}

	log.Printf("Fetched %s via headless browser (%d bytes)\n", url, len(html))
	return html, nil
}

// Close shuts down the headless browser.
func (rf *RodFetcher) Close() error {
	if rf.browser != nil {
		return rf.browser.Close()
	}
	return nil
}
