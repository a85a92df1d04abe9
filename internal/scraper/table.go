package scraper

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"seatcheck/internal/browser"
	"seatcheck/internal/models"
	"seatcheck/internal/status"
	"seatcheck/pkg/htmltext"
)

// defaultStatusText stands in when every extraction attempt yields nothing;
// the site leaves cells empty for slots that cannot be booked.
const defaultStatusText = "Not Available"

// ReadRows snapshots the availability table's markup and parses one row per
// departure. The caller is expected to have waited for the table to refresh.
func ReadRows(ctx context.Context, page browser.Page, timeout time.Duration) ([]models.DepartureRow, error) {
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	readCtx, cancel := context.WithTimeout(ctx, timeout)
	html, err := page.InnerHTML(readCtx, AvailabilityTableSelector)
	cancel()
	if err != nil {
		return nil, err
	}

	return ParseAvailabilityTable(html)
}

// ParseAvailabilityTable extracts departure rows from the availability
// table's inner HTML. Row order mirrors the source markup. A missing listing
// container is a warning, not an error: the site renders it empty for dates
// without a schedule.
func ParseAvailabilityTable(html string) ([]models.DepartureRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table := doc.Find(tableContainerSelector).First()
	if table.Length() == 0 {
		log.Printf("no %s container in availability table", tableContainerSelector)
		return []models.DepartureRow{}, nil
	}

	rows := []models.DepartureRow{}
	table.Find(rowWrapSelector).Each(func(_ int, wrap *goquery.Selection) {
		title := wrap.Find(rowTitleSelector).First()
		if title.Length() == 0 {
			// Separator or blank row.
			return
		}
		name := htmltext.Normalize(title.Text())

		cells := wrap.Find(dateCellSelector)
		if cells.Length() == 0 {
			return
		}

		// The first date column corresponds to the currently selected date.
		text := extractStatusText(cells.First())
		if text == "" {
			text = defaultStatusText
		}

		code, available, seatsLeft := status.Classify(text)
		rows = append(rows, models.DepartureRow{
			Name:       name,
			StatusText: text,
			Code:       code,
			Available:  available,
			SeatsLeft:  seatsLeft,
		})
	})

	if len(rows) == 0 {
		log.Printf("no %s rows in availability table", rowWrapSelector)
	}
	return rows, nil
}

// extractStatusText prefers the nested fare label, falls back to the cell's
// full text, and finally to its accessibility label.
func extractStatusText(cell *goquery.Selection) string {
	if fare := cell.Find(fareLabelSelector).First(); fare.Length() > 0 {
		if text := htmltext.Normalize(fare.Text()); text != "" {
			return text
		}
	}
	if text := htmltext.Normalize(cell.Text()); text != "" {
		return text
	}
	if aria, ok := cell.Attr("aria-label"); ok {
		return htmltext.Normalize(aria)
	}
	return ""
}
