package scraper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetcher_SendsUserAgent(t *testing.T) {
	var gotAgent string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	defer ts.Close()

	f := NewFetcher("TestAgent/1.0", 0, 5*time.Second, 1024)

	markup, err := f.Fetch(ts.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if markup != "<html></html>" {
		t.Errorf("Unexpected markup: %q", markup)
	}

	if gotAgent != "TestAgent/1.0" {
		t.Errorf("Expected User-Agent TestAgent/1.0, got %q", gotAgent)
	}
}

func TestFetcher_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	f := NewFetcher("TestAgent/1.0", 0, 5*time.Second, 1024)

	_, err := f.Fetch(ts.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %v", err)
	}

	if fetchErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 in error, got %d", fetchErr.StatusCode)
	}

	if fetchErr.URL != ts.URL {
		t.Errorf("Expected error to carry URL %q, got %q", ts.URL, fetchErr.URL)
	}
}

func TestFetcher_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	f := NewFetcher("TestAgent/1.0", 0, 5*time.Second, 1024)

	_, err := f.Fetch(ts.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %v", err)
	}

	if fetchErr.Err == nil {
		t.Error("Expected underlying cause in FetchError")
	}
}

func TestFetcher_PacesBeforeEachRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	var slept []time.Duration

	f := NewFetcher("TestAgent/1.0", 2*time.Second, 5*time.Second, 1024)
	f.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 3; i++ {
		if _, err := f.Fetch(ts.URL); err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
	}

	if len(slept) != 3 {
		t.Fatalf("Expected 3 pacing waits, got %d", len(slept))
	}

	for _, d := range slept {
		if d != 2*time.Second {
			t.Errorf("Expected 2s pacing wait, got %v", d)
		}
	}
}

func TestFetcher_ZeroDelaySkipsPacing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	f := NewFetcher("TestAgent/1.0", 0, 5*time.Second, 1024)
	f.sleep = func(d time.Duration) { t.Errorf("Unexpected sleep of %v with zero delay", d) }

	if _, err := f.Fetch(ts.URL); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
}

func TestFetcher_BodyLimit(t *testing.T) {
	big := make([]byte, 8*1024)
	for i := range big {
		big[i] = 'a'
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(big)
	}))
	defer ts.Close()

	f := NewFetcher("TestAgent/1.0", 0, 5*time.Second, 1)

	markup, err := f.Fetch(ts.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(markup) != 1024 {
		t.Errorf("Expected body capped at 1024 bytes, got %d", len(markup))
	}
}
