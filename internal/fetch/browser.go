// Package fetch - browser.go provides headless browser rendering for
// postings whose API content is empty and must be read from the public page.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum description length to consider the API
// content usable. Anything shorter means the posting body lives in a
// JavaScript-rendered page and needs the browser path.
const MinContentLength = 200

// ShouldUseBrowser reports whether a description is too thin to classify
// and the rendered application page should be fetched instead.
func ShouldUseBrowser(description string) bool {
	return len(strings.TrimSpace(description)) < MinContentLength
}

// RenderedPage loads a posting URL in a headless browser and returns the
// rendered HTML. Requires Chrome/Chromium on the system.
func RenderedPage(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Starting headless browser for: %s", url)
	}

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
		// Give client-side rendering a moment to fill in the posting body
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners when present; ignore when absent
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}

// DescriptionFromPage renders a posting page and extracts the description
// text using the platform's content selectors.
func DescriptionFromPage(ctx context.Context, url string, verbose bool) (string, error) {
	html, err := RenderedPage(ctx, url, DefaultTimeout, verbose)
	if err != nil {
		return "", err
	}

	platform := DetectPlatform(url)
	text, err := ExtractMainText(html, PlatformContentSelectors(platform))
	if err != nil {
		return "", err
	}
	return text, nil
}
