package scraper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPickConfig() PickConfig {
	return PickConfig{
		InputTimeout:  time.Second,
		WidgetTimeout: time.Second,
		ReadTimeout:   time.Second,
		StepPause:     time.Millisecond,
		MaxMonthSteps: 36,
		SettleTimeout: time.Second,
	}
}

func TestPickDateAlreadyOnTargetMonth(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"December 2025"}
	page.cells = []dayCell{{Text: "13", Class: "day"}, {Text: "14", Class: "day"}, {Text: "15", Class: "day"}}
	page.values[DateInputSelector] = "14/12/2025"

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	require.NoError(t, err)

	assert.Zero(t, page.clickedNext())
	assert.Zero(t, page.clickedPrev())
	assert.Contains(t, page.dayClicked, "(1)", "should click the second enumerated cell")
}

func TestPickDateStepsForward(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"October 2025", "November 2025", "December 2025"}
	page.cells = []dayCell{{Text: "14", Class: "day"}}
	page.values[DateInputSelector] = "14/12/2025"

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, page.clickedNext())
	assert.Zero(t, page.clickedPrev())
}

func TestPickDateStepsBackward(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"February 2026", "January 2026", "December 2025"}
	page.cells = []dayCell{{Text: "14", Class: "day"}}
	page.values[DateInputSelector] = "14/12/2025"

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, page.clickedPrev())
	assert.Zero(t, page.clickedNext())
}

func TestPickDateUnparsableHeaderStepsForward(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"???", "December 2025"}
	page.cells = []dayCell{{Text: "14", Class: "day"}}
	page.values[DateInputSelector] = "14/12/2025"

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, page.clickedNext())
}

func TestPickDateMonthPagingIsBounded(t *testing.T) {
	page := newFakePage()
	// Header never reaches the target month.
	page.titles = []string{"January 2020"}
	page.cells = []dayCell{{Text: "14", Class: "day"}}
	page.values[DateInputSelector] = "14/12/2025"

	cfg := fastPickConfig()
	cfg.MaxMonthSteps = 5

	err := PickDate(context.Background(), page, "14/12/2025", cfg)
	require.NoError(t, err, "an unaligned month alone is not fatal; the day scan decides")
	assert.Equal(t, 5, page.clickedNext())
}

func TestPickDateDayNotInCalendar(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"December 2025"}
	page.cells = []dayCell{{Text: "1", Class: "day"}, {Text: "2", Class: "day"}}

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	assert.ErrorIs(t, err, ErrDateNotInCalendar)
	assert.Empty(t, page.dayClicked)
}

func TestPickDateExactDayMatchOnly(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"December 2025"}
	// "1" must not match cells 11, 21, 31.
	page.cells = []dayCell{{Text: "11", Class: "day"}, {Text: "21", Class: "day"}, {Text: "31", Class: "day"}}

	err := PickDate(context.Background(), page, "01/12/2025", fastPickConfig())
	assert.ErrorIs(t, err, ErrDateNotInCalendar)
}

func TestPickDateDisabledDay(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"December 2025"}
	page.cells = []dayCell{{Text: "14", Class: "day disabled"}}

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	assert.ErrorIs(t, err, ErrDateDisabled)
	assert.Empty(t, page.dayClicked)
}

func TestPickDateNotConfirmed(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"December 2025"}
	page.cells = []dayCell{{Text: "14", Class: "day"}}
	// The site silently clamped the selection to a different date.
	page.values[DateInputSelector] = "01/12/2025"

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	assert.ErrorIs(t, err, ErrDateNotConfirmed)
}

func TestPickDateUnparsableControlValue(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"December 2025"}
	page.cells = []dayCell{{Text: "14", Class: "day"}}
	page.values[DateInputSelector] = "garbage"

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	assert.ErrorIs(t, err, ErrDateNotConfirmed)
}

func TestPickDateRejectsMalformedRequest(t *testing.T) {
	page := newFakePage()
	err := PickDate(context.Background(), page, "2025-12-14", fastPickConfig())
	assert.Error(t, err)
	assert.Empty(t, page.clicks)
}

func TestPickDateInputNotVisible(t *testing.T) {
	page := newFakePage()
	page.waitErrs[DateInputSelector] = errors.New("timeout")

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDateNotInCalendar)
}

func TestPickDateClicksMatchedCellIndex(t *testing.T) {
	page := newFakePage()
	page.titles = []string{"December 2025"}
	page.cells = []dayCell{
		{Text: "12", Class: "day"},
		{Text: "13", Class: "day"},
		{Text: "14", Class: "day"},
	}
	page.values[DateInputSelector] = "14/12/2025"

	err := PickDate(context.Background(), page, "14/12/2025", fastPickConfig())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(ClickDayScriptTemplate, 2), page.dayClicked)
}
