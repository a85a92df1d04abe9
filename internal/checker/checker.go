package checker

import (
	"context"
	"log"
	"time"

	"seatcheck/internal/browser"
	"seatcheck/internal/models"
	"seatcheck/internal/ratelimit"
	"seatcheck/internal/scraper"
)

// Outcome messages surfaced in QueryResult. Failure is a data shape here,
// never a transport error: HTTP callers always answer 200 with ok=false.
const (
	msgSuccess         = "success"
	msgProductNotFound = "product not found"
	msgDateNotBookable = "date not bookable"
	msgNoSchedule      = "no schedule for date"
	msgCheckFailed     = "availability check failed"
)

// PageFactory opens a fresh browser page. Injectable so tests can substitute
// a scripted page for a real Chrome session.
type PageFactory func(ctx context.Context, opts browser.Options) (browser.Page, error)

type Config struct {
	CategoryURL string
	ProductName string
	Headless    bool

	// MaxRetries bounds re-launches after a browser startup failure.
	// Business failures (date rejected, empty table) are never retried.
	MaxRetries  int
	RetryDelays []time.Duration

	RateLimiter *ratelimit.Limiter
	NewPage     PageFactory

	Navigate scraper.NavigateConfig
	Picker   scraper.PickConfig
	Refresh  scraper.RefreshConfig
}

// Checker runs one isolated browser session per query. Sessions are not
// pooled or reused: each request pays the full startup and navigation cost
// in exchange for complete failure isolation between requests.
type Checker struct {
	config Config
}

func New(config Config) *Checker {
	if config.NewPage == nil {
		config.NewPage = func(ctx context.Context, opts browser.Options) (browser.Page, error) {
			return browser.NewSession(ctx, opts)
		}
	}
	config.Navigate.CategoryURL = config.CategoryURL
	config.Navigate.ProductName = config.ProductName
	return &Checker{config: config}
}

// QueryDate checks seat availability for one dd/mm/yyyy date. Nothing
// escapes this boundary: every failure mode, including panics from the
// automation layer, becomes an ok=false result.
func (c *Checker) QueryDate(ctx context.Context, dateStr string) models.QueryResult {
	if c.config.RateLimiter != nil {
		if err := c.config.RateLimiter.Acquire(ctx); err != nil {
			log.Printf("rate limiter rejected query for %s: %v", dateStr, err)
			return failure(dateStr, msgCheckFailed)
		}
		defer c.config.RateLimiter.Release()
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delayIdx := attempt - 1
			if delayIdx >= len(c.config.RetryDelays) {
				delayIdx = len(c.config.RetryDelays) - 1
			}
			if delayIdx >= 0 {
				select {
				case <-time.After(c.config.RetryDelays[delayIdx]):
				case <-ctx.Done():
					return failure(dateStr, msgCheckFailed)
				}
			}
		}

		result, err := c.runQuery(ctx, dateStr)
		if err == nil {
			return result
		}
		lastErr = err
		log.Printf("query for %s attempt %d failed: %v", dateStr, attempt+1, err)
	}

	log.Printf("query for %s gave up: %v", dateStr, lastErr)
	return failure(dateStr, msgCheckFailed)
}

// runQuery drives one full session. The returned error is reserved for
// infrastructure failures (browser would not launch); business outcomes are
// encoded in the result.
func (c *Checker) runQuery(ctx context.Context, dateStr string) (result models.QueryResult, err error) {
	page, err := c.config.NewPage(ctx, browser.Options{Headless: c.config.Headless})
	if err != nil {
		return models.QueryResult{}, err
	}
	defer func() {
		page.Close()
		if r := recover(); r != nil {
			log.Printf("query for %s panicked: %v", dateStr, r)
			result, err = failure(dateStr, msgCheckFailed), nil
		}
	}()

	if err := scraper.OpenProduct(ctx, page, c.config.Navigate); err != nil {
		log.Printf("open product for %s: %v", dateStr, err)
		return failure(dateStr, msgProductNotFound), nil
	}

	// Baseline before the date click: selecting a day is what triggers the
	// asynchronous table refresh we need to detect.
	base := scraper.CaptureTableBaseline(ctx, page, c.config.Refresh.Timeout)

	if err := scraper.PickDate(ctx, page, dateStr, c.config.Picker); err != nil {
		log.Printf("pick date %s: %v", dateStr, err)
		return failure(dateStr, msgDateNotBookable), nil
	}

	scraper.WaitForRefresh(ctx, page, base, c.config.Refresh)

	rows, err := scraper.ReadRows(ctx, page, 0)
	if err != nil {
		log.Printf("read rows for %s: %v", dateStr, err)
		return failure(dateStr, msgNoSchedule), nil
	}
	if len(rows) == 0 {
		return failure(dateStr, msgNoSchedule), nil
	}

	available := 0
	for _, row := range rows {
		if row.Available {
			available++
		}
	}

	return models.QueryResult{
		Ok:             true,
		Message:        msgSuccess,
		Date:           dateStr,
		AvailableCount: available,
		Rows:           rows,
	}, nil
}

func failure(dateStr, message string) models.QueryResult {
	return models.QueryResult{
		Ok:      false,
		Message: message,
		Date:    dateStr,
		Rows:    []models.DepartureRow{},
	}
}
