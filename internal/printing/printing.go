// Package printing turns rendered preview HTML into a paginated PDF using a
// headless browser. Requires Chrome/Chromium to be installed on the system.
package printing

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds the whole browser session for a single print.
const DefaultTimeout = 60 * time.Second

// Options controls the PDF print run.
type Options struct {
	// Timeout for the browser session. Zero means DefaultTimeout.
	Timeout time.Duration
	// Verbose enables progress logging.
	Verbose bool
}

// ToPDF renders the given HTML in a headless browser and prints it to an A4
// PDF. The HTML must be self-contained (inline styles, no external assets).
func ToPDF(ctx context.Context, html []byte, opts Options) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	if opts.Verbose {
		log.Printf("[PRINT] Starting headless browser, %d bytes of HTML", len(html))
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	// The browser needs a URL to navigate to, so the HTML goes through a
	// temporary file.
	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, &PrintError{Message: "failed to create temp directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return nil, &PrintError{Message: "failed to write HTML file", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm, in inches.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: "browser print failed", Cause: err}
	}

	if opts.Verbose {
		log.Printf("[PRINT] Generated PDF: %d bytes", len(pdf))
	}

	return pdf, nil
}
