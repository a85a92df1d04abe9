package scraper

import (
	"context"
	"encoding/json"
	"strings"
)

// fakePage is a scripted browser.Page. Selectors succeed unless an error is
// registered; Evaluate dispatches on the script constants; Text serves the
// month-header sequence one entry per call, sticking on the last.
type fakePage struct {
	waitErrs  map[string]error
	clickErrs map[string]error

	titles   []string
	titleIdx int

	cells  []dayCell
	values map[string]string
	inner  map[string]string

	tableLengths []int
	lengthIdx    int

	navigated  []string
	clicks     []string
	dayClicked string
	closed     bool
}

func newFakePage() *fakePage {
	return &fakePage{
		waitErrs:  map[string]error{},
		clickErrs: map[string]error{},
		values:    map[string]string{},
		inner:     map[string]string{},
	}
}

func (f *fakePage) Navigate(ctx context.Context, url string) error {
	f.navigated = append(f.navigated, url)
	return nil
}

func (f *fakePage) WaitVisible(ctx context.Context, sel string) error {
	return f.waitErrs[sel]
}

func (f *fakePage) Click(ctx context.Context, sel string) error {
	if err := f.clickErrs[sel]; err != nil {
		return err
	}
	f.clicks = append(f.clicks, sel)
	return nil
}

func (f *fakePage) Text(ctx context.Context, sel string) (string, error) {
	if len(f.titles) == 0 {
		return "", nil
	}
	title := f.titles[f.titleIdx]
	if f.titleIdx < len(f.titles)-1 {
		f.titleIdx++
	}
	return title, nil
}

func (f *fakePage) Value(ctx context.Context, sel string) (string, error) {
	return f.values[sel], nil
}

func (f *fakePage) InnerHTML(ctx context.Context, sel string) (string, error) {
	return f.inner[sel], nil
}

func (f *fakePage) Evaluate(ctx context.Context, expr string, out any) error {
	switch {
	case expr == DayCellsScript:
		return jsonInto(f.cells, out)
	case expr == TableLengthScript:
		length := -1
		if len(f.tableLengths) > 0 {
			length = f.tableLengths[f.lengthIdx]
			if f.lengthIdx < len(f.tableLengths)-1 {
				f.lengthIdx++
			}
		}
		return jsonInto(length, out)
	case strings.Contains(expr, "readyState"):
		return jsonInto("complete", out)
	case strings.Contains(expr, "cells[i]"):
		f.dayClicked = expr
		return nil
	}
	return nil
}

func (f *fakePage) Close() error {
	f.closed = true
	return nil
}

func jsonInto(v, out any) error {
	if out == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (f *fakePage) clickedNext() int {
	return countClicks(f.clicks, NextMonthSelector)
}

func (f *fakePage) clickedPrev() int {
	return countClicks(f.clicks, PrevMonthSelector)
}

func countClicks(clicks []string, sel string) int {
	n := 0
	for _, c := range clicks {
		if c == sel {
			n++
		}
	}
	return n
}
