package scraper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"seatcheck/internal/browser"
	"seatcheck/internal/dateutil"
	"seatcheck/pkg/htmltext"
)

var (
	ErrDateNotInCalendar = errors.New("date not present in calendar")
	ErrDateDisabled      = errors.New("date is greyed out in calendar")
	ErrDateNotConfirmed  = errors.New("picker did not confirm the requested date")
)

const monthTitleLayout = "January 2006"

type PickConfig struct {
	InputTimeout  time.Duration
	WidgetTimeout time.Duration
	ReadTimeout   time.Duration
	StepPause     time.Duration
	MaxMonthSteps int
	SettleTimeout time.Duration
}

func (c PickConfig) withDefaults() PickConfig {
	if c.InputTimeout == 0 {
		c.InputTimeout = 15 * time.Second
	}
	if c.WidgetTimeout == 0 {
		c.WidgetTimeout = 10 * time.Second
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.StepPause == 0 {
		c.StepPause = 200 * time.Millisecond
	}
	if c.MaxMonthSteps == 0 {
		c.MaxMonthSteps = 36
	}
	if c.SettleTimeout == 0 {
		c.SettleTimeout = 8 * time.Second
	}
	return c
}

type dayCell struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

// PickDate opens the date-picker control, pages the displayed month to the
// target month, clicks the exact day cell and verifies the control's
// resulting value against the requested date. The site clamps out-of-range
// dates and greys out unbookable ones instead of erroring, so the round-trip
// verification is the only reliable "no inventory for this date" signal.
func PickDate(ctx context.Context, page browser.Page, dateStr string, cfg PickConfig) error {
	cfg = cfg.withDefaults()

	targetTitle, day, err := dateutil.MonthYear(dateStr)
	if err != nil {
		return fmt.Errorf("parse requested date: %w", err)
	}
	target, _ := dateutil.Parse(dateStr)
	targetDay := strconv.Itoa(day)

	inputCtx, cancel := context.WithTimeout(ctx, cfg.InputTimeout)
	err = page.WaitVisible(inputCtx, DateInputSelector)
	cancel()
	if err != nil {
		return fmt.Errorf("date input not visible: %w", err)
	}

	clickCtx, cancel := context.WithTimeout(ctx, cfg.InputTimeout)
	err = page.Click(clickCtx, DateInputSelector)
	cancel()
	if err != nil {
		return fmt.Errorf("open date input: %w", err)
	}

	widgetCtx, cancel := context.WithTimeout(ctx, cfg.WidgetTimeout)
	err = page.WaitVisible(widgetCtx, PickerWidgetSelector)
	cancel()
	if err != nil {
		return fmt.Errorf("picker widget not visible: %w", err)
	}

	alignMonth(ctx, page, targetTitle, cfg)

	readCtx, cancel := context.WithTimeout(ctx, cfg.ReadTimeout)
	var cells []dayCell
	err = page.Evaluate(readCtx, DayCellsScript, &cells)
	cancel()
	if err != nil {
		return fmt.Errorf("enumerate day cells: %w", err)
	}

	// Exact string match only: a substring match would confuse 1 with
	// 11, 21 and 31.
	matched := -1
	for i, cell := range cells {
		if cell.Text == targetDay {
			matched = i
			break
		}
	}
	if matched == -1 {
		return ErrDateNotInCalendar
	}
	if strings.Contains(strings.ToLower(cells[matched].Class), "disabled") {
		return ErrDateDisabled
	}

	clickCtx, cancel = context.WithTimeout(ctx, cfg.ReadTimeout)
	err = page.Evaluate(clickCtx, fmt.Sprintf(ClickDayScriptTemplate, matched), nil)
	cancel()
	if err != nil {
		return fmt.Errorf("click day cell: %w", err)
	}

	waitSettle(ctx, page, cfg.SettleTimeout, 1500*time.Millisecond)

	readCtx, cancel = context.WithTimeout(ctx, cfg.ReadTimeout)
	value, err := page.Value(readCtx, DateInputSelector)
	cancel()
	if err != nil {
		value = ""
	}

	selected, err := dateutil.Parse(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: control value %q is not a date", ErrDateNotConfirmed, value)
	}
	if !dateutil.SameDay(selected, target) {
		return fmt.Errorf("%w: control settled on %q", ErrDateNotConfirmed, value)
	}

	return nil
}

// alignMonth steps the widget one month at a time toward the target month,
// bounded so a misread header can never loop forever. An unparsable header
// defaults to stepping forward.
func alignMonth(ctx context.Context, page browser.Page, targetTitle string, cfg PickConfig) {
	target, targetErr := time.Parse(monthTitleLayout, targetTitle)

	for i := 0; i < cfg.MaxMonthSteps; i++ {
		readCtx, cancel := context.WithTimeout(ctx, cfg.ReadTimeout)
		title, err := page.Text(readCtx, MonthSwitchSelector)
		cancel()
		if err != nil {
			return
		}

		title = htmltext.Normalize(title)
		if strings.EqualFold(title, targetTitle) {
			return
		}

		step := NextMonthSelector
		if current, err := time.Parse(monthTitleLayout, title); err == nil && targetErr == nil {
			if current.After(target) {
				step = PrevMonthSelector
			}
		}

		clickCtx, cancel := context.WithTimeout(ctx, cfg.ReadTimeout)
		err = page.Click(clickCtx, step)
		cancel()
		if err != nil {
			return
		}

		if !sleep(ctx, cfg.StepPause) {
			return
		}
	}
}
