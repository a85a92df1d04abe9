package browser

import (
	"context"
	"strings"

	"github.com/chromedp/chromedp"
)

// Page is the operation surface the scraping flow depends on. Selectors are
// CSS by default; selectors starting with "//" are treated as XPath.
type Page interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, sel string) error
	Click(ctx context.Context, sel string) error
	Text(ctx context.Context, sel string) (string, error)
	Value(ctx context.Context, sel string) (string, error)
	InnerHTML(ctx context.Context, sel string) (string, error)
	Evaluate(ctx context.Context, expr string, out any) error
	Close() error
}

type Options struct {
	Headless  bool
	UserAgent string
}

// Session drives a single Chrome tab through chromedp. Each session owns its
// own browser process and must be closed by the caller.
type Session struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

func NewSession(parent context.Context, opts Options) (*Session, error) {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so launch failures surface here rather than
	// on the first navigation.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, err
	}

	return &Session{ctx: tabCtx, cancelTab: cancelTab, cancelAlloc: cancelAlloc}, nil
}

func (s *Session) Close() error {
	s.cancelTab()
	s.cancelAlloc()
	return nil
}

// run executes actions against the session's tab while honouring the
// caller's deadline and cancellation.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
		defer cancelDeadline()
	}

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

func (s *Session) WaitVisible(ctx context.Context, sel string) error {
	return s.run(ctx, chromedp.WaitVisible(sel, byMode(sel)))
}

func (s *Session) Click(ctx context.Context, sel string) error {
	return s.run(ctx, chromedp.Click(sel, byMode(sel)))
}

func (s *Session) Text(ctx context.Context, sel string) (string, error) {
	var out string
	err := s.run(ctx, chromedp.Text(sel, &out, byMode(sel)))
	return out, err
}

func (s *Session) Value(ctx context.Context, sel string) (string, error) {
	var out string
	err := s.run(ctx, chromedp.Value(sel, &out, byMode(sel)))
	return out, err
}

func (s *Session) InnerHTML(ctx context.Context, sel string) (string, error) {
	var out string
	err := s.run(ctx, chromedp.InnerHTML(sel, &out, byMode(sel)))
	return out, err
}

func (s *Session) Evaluate(ctx context.Context, expr string, out any) error {
	return s.run(ctx, chromedp.Evaluate(expr, out))
}

func byMode(sel string) chromedp.QueryOption {
	if strings.HasPrefix(sel, "//") {
		return chromedp.BySearch
	}
	return chromedp.ByQuery
}
