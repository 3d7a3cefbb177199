// Package scraper fetches product pages and extracts typed records from them.
package scraper

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// FetchError reports a failed page fetch. StatusCode is zero when the
// request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}

	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher issues one rate-limited GET per URL with a fixed browser
// identification header. A single pacing gate enforces the politeness
// delay between request starts even when workers fetch concurrently.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	delay        time.Duration
	bufferSizeKb int

	mu sync.Mutex

	// sleep is swappable so tests do not wait out real delays.
	sleep func(time.Duration)
}

// NewFetcher creates a fetcher with the given identification header,
// politeness delay and client timeout.
func NewFetcher(userAgent string, delay time.Duration, timeout time.Duration, bufferSizeKb int) *Fetcher {
	return &Fetcher{
		client:       &http.Client{Timeout: timeout},
		userAgent:    userAgent,
		delay:        delay,
		bufferSizeKb: bufferSizeKb,
		sleep:        time.Sleep,
	}
}

// Fetch waits out the politeness delay, then issues a single GET for
// the URL. There is no retry; any transport error, non-2xx status or
// unreadable body is reported as a *FetchError.
func (f *Fetcher) Fetch(url string) (string, error) {
	markup, _, err := f.FetchWithStatus(url)

	return markup, err
}

// FetchWithStatus is Fetch plus the HTTP status code for attempt records.
func (f *Fetcher) FetchWithStatus(url string) (string, int, error) {
	f.pace()

	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", 0, &FetchError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", resp.StatusCode, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	limit := int64(f.bufferSizeKb) * 1024

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return "", resp.StatusCode, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return string(body), resp.StatusCode, nil
}

// pace blocks for the full politeness delay before each request start.
// Holding the lock while sleeping keeps the guarantee under concurrent
// callers: requests are spaced, never bursted.
func (f *Fetcher) pace() {
	if f.delay <= 0 {
		return
	}

	f.mu.Lock()
	f.sleep(f.delay)
	f.mu.Unlock()
}
