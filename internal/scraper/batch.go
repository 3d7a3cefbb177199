package scraper

import (
	"sync"
	"time"

	"prodsheet/internal/logger"
	"prodsheet/internal/models"
	"prodsheet/internal/observability"
)

// Attempt records the outcome of processing one URL, for the run
// summary and metrics.
type Attempt struct {
	URL        string
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Runner drives the per-URL fetch+extract operation across a batch.
// One bad URL never loses the rest of the batch: failures degrade to an
// all-sentinel record and the run continues.
type Runner struct {
	fetcher   *Fetcher
	extractor *Extractor
	workers   int
	log       *logger.Logger
}

// NewRunner creates a batch runner. workers below 1 is treated as 1;
// with more than one worker the fetcher's pacing gate still spaces
// requests, so concurrency only overlaps parsing, not fetching.
func NewRunner(fetcher *Fetcher, extractor *Extractor, workers int, log *logger.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}

	return &Runner{
		fetcher:   fetcher,
		extractor: extractor,
		workers:   workers,
		log:       log,
	}
}

// Run processes every URL and returns one record per input URL, in
// input order, regardless of how many individual URLs fail.
func (r *Runner) Run(urls []string) []models.ProductRecord {
	records, _ := r.RunWithStats(urls)

	return records
}

// RunWithStats is Run plus per-URL attempt outcomes, index-aligned with
// the input.
func (r *Runner) RunWithStats(urls []string) ([]models.ProductRecord, []Attempt) {
	records := make([]models.ProductRecord, len(urls))
	attempts := make([]Attempt, len(urls))

	if r.workers == 1 {
		for i, url := range urls {
			records[i], attempts[i] = r.processOne(url)
		}

		return records, attempts
	}

	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				records[i], attempts[i] = r.processOne(urls[i])
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records, attempts
}

// processOne runs fetch then extract for a single URL, containing every
// failure at this boundary.
func (r *Runner) processOne(url string) (models.ProductRecord, Attempt) {
	start := time.Now()

	markup, status, err := r.fetcher.FetchWithStatus(url)
	if err != nil {
		observability.FetchFailures.Inc()
		r.log.Warn("fetch failed", "url", url, "error", err)

		return models.Unavailable(url), Attempt{URL: url, StatusCode: status, Duration: time.Since(start), Err: err}
	}

	observability.PagesFetched.Inc()

	record, err := r.extractor.Extract(markup, url)
	if err != nil {
		observability.ExtractFailures.Inc()
		r.log.Warn("extraction failed", "url", url, "error", err)

		return models.Unavailable(url), Attempt{URL: url, StatusCode: status, Duration: time.Since(start), Err: err}
	}

	r.log.Debug("extracted product", "url", url, "name", record.ProductName, "asin", record.ASIN)

	return record, Attempt{URL: url, StatusCode: status, Duration: time.Since(start)}
}
