package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// MinContentLength is the shortest extracted text accepted from a plain HTTP
// fetch. Anything shorter means the page is script-rendered and needs the
// browser path.
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is too short to be a real
// posting body.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in headless Chrome and returns the final HTML.
// LinkedIn and Wellfound postings only exist after client-side rendering.
// Requires Chrome or Chromium on the host.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("starting headless browser", zap.String("url", url))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the posting body.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners when present; absence is fine.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	logger.Debug("browser rendering complete", zap.String("url", url), zap.Int("bytes", len(html)))
	return html, nil
}

// PostingText fetches a posting URL and extracts its description text,
// choosing HTTP or browser rendering by platform and falling back to the
// browser when plain HTTP yields too little content.
func PostingText(ctx context.Context, urlStr string, opts *Options, logger *zap.Logger) (string, error) {
	platform := DetectPlatform(urlStr)
	content := PlatformContentSelectors(platform)
	noise := PlatformNoiseSelectors(platform)

	if !NeedsBrowser(platform) {
		result, err := URL(ctx, urlStr, opts)
		if err != nil {
			return "", err
		}
		text, err := ExtractMainText(result.HTML, content, noise...)
		if err != nil {
			return "", err
		}
		if !ShouldUseBrowser(text) {
			return text, nil
		}
		// Short body: the board is script-rendered after all.
	}

	timeout := DefaultTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	html, err := WithBrowser(ctx, urlStr, timeout, logger)
	if err != nil {
		return "", err
	}
	return ExtractMainText(html, content, noise...)
}
