package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/ae-qualify/internal/types"
)

// DefaultPrintTimeout bounds a single headless-Chrome print run.
const DefaultPrintTimeout = 30 * time.Second

// PrintPDF renders an HTML document to PDF bytes in a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func PrintPDF(ctx context.Context, html string, timeout time.Duration, verbose bool) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}
	if verbose {
		log.Printf("[BROWSER] Printing %d bytes of HTML to PDF", len(html))
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

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}

// ToPDF snapshots a form, renders it, and prints it. Returns the PDF bytes
// and the suggested download file name.
func ToPDF(ctx context.Context, form types.FormType, data types.UnifiedFormData, timeout time.Duration, verbose bool) ([]byte, string, error) {
	snap, err := Take(form, data)
	if err != nil {
		return nil, "", err
	}
	html, err := RenderHTML(snap)
	if err != nil {
		return nil, "", err
	}
	pdf, err := PrintPDF(ctx, html, timeout, verbose)
	if err != nil {
		return nil, "", NewExportError(string(form), "print", err)
	}
	return pdf, snap.FileName(), nil
}
