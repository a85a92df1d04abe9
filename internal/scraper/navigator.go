package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"seatcheck/internal/browser"
)

var ErrProductNotFound = errors.New("product not found on category page")

// consentLabels are tried in order when dismissing a cookie/consent overlay.
// Each attempt gets its own short timeout and a miss is not an error.
var consentLabels = []string{"Accept", "Agree", "OK", "I understand"}

type NavigateConfig struct {
	CategoryURL string
	ProductName string

	ProductTimeout time.Duration
	ConsentTimeout time.Duration
	BuyTimeout     time.Duration
	SettleTimeout  time.Duration
}

func (c NavigateConfig) withDefaults() NavigateConfig {
	if c.ProductTimeout == 0 {
		c.ProductTimeout = 25 * time.Second
	}
	if c.ConsentTimeout == 0 {
		c.ConsentTimeout = 1500 * time.Millisecond
	}
	if c.BuyTimeout == 0 {
		c.BuyTimeout = 15 * time.Second
	}
	if c.SettleTimeout == 0 {
		c.SettleTimeout = 8 * time.Second
	}
	return c
}

// OpenProduct loads the category page, dismisses a consent overlay when one
// is present, waits for the target product card to become visible and
// activates its book/buy action. Any timeout or missing element is reported
// as an error; nothing panics past this boundary.
func OpenProduct(ctx context.Context, page browser.Page, cfg NavigateConfig) error {
	cfg = cfg.withDefaults()

	if err := page.Navigate(ctx, cfg.CategoryURL); err != nil {
		return fmt.Errorf("navigate to category page: %w", err)
	}

	dismissConsent(ctx, page, cfg.ConsentTimeout)

	productCtx, cancel := context.WithTimeout(ctx, cfg.ProductTimeout)
	err := page.WaitVisible(productCtx, productSelector(cfg.ProductName))
	cancel()
	if err != nil {
		log.Printf("product %q not visible within %v: %v", cfg.ProductName, cfg.ProductTimeout, err)
		return ErrProductNotFound
	}

	buyCtx, cancel := context.WithTimeout(ctx, cfg.BuyTimeout)
	err = page.Click(buyCtx, buySelector)
	cancel()
	if err != nil {
		return fmt.Errorf("click book/buy action: %w", err)
	}

	waitSettle(ctx, page, cfg.SettleTimeout, time.Second)
	return nil
}

func dismissConsent(ctx context.Context, page browser.Page, timeout time.Duration) {
	for _, label := range consentLabels {
		clickCtx, cancel := context.WithTimeout(ctx, timeout)
		err := page.Click(clickCtx, consentSelector(label))
		cancel()
		if err == nil {
			return
		}
	}
}

const buySelector = `//a[contains(., 'Buy')] | //a[contains(., 'Book')]`

func productSelector(name string) string {
	return fmt.Sprintf(
		`//h2[contains(., %q)] | //article[contains(., %q)] | //div[contains(@class, 'card')][contains(., %q)]`,
		name, name, name,
	)
}

func consentSelector(label string) string {
	return fmt.Sprintf(`//button[contains(., %q)] | //a[contains(., %q)]`, label, label)
}
