package render

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"tdsbill/internal/config"
	"tdsbill/internal/domain"
)

// PDFRenderer prints the invoice preview to PDF via headless Chromium.
type PDFRenderer struct {
	renderer *Renderer
	cfg      config.PDFConfig
}

// NewPDFRenderer creates a PDFRenderer on top of the HTML renderer.
func NewPDFRenderer(renderer *Renderer, cfg config.PDFConfig) *PDFRenderer {
	return &PDFRenderer{renderer: renderer, cfg: cfg}
}

// Render builds the preview HTML for the snapshot and prints it to PDF.
// If Chromium is unavailable, it returns an error so the caller can
// report the export failure; the draft itself is unaffected.
func (r *PDFRenderer) Render(ctx context.Context, rec domain.InvoiceRecord, totals domain.Totals) ([]byte, error) {
	html, err := r.renderer.HTML(rec, totals)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.cfg.ChromiumPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.cfg.ChromiumPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	timeout := r.cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()
	runCtx, cancelTimeout := context.WithTimeout(runCtx, timeout)
	defer cancelTimeout()

	var pdfBuf []byte
	dataURL := "data:text/html," + url.PathEscape(string(html))
	err = chromedp.Run(runCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, perr := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if perr == nil {
				pdfBuf = buf
			}
			return perr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp run failed: %w", err)
	}
	return pdfBuf, nil
}
