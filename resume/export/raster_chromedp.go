package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Oversampling factor applied when capturing the page, for print fidelity.
const rasterScale = 2.0

// CSS pixel width of the rendered resume surface (A4 width at 96 dpi).
const rasterWidthPx = 794

// ChromeRasterizer captures the rendered HTML with a headless browser.
type ChromeRasterizer struct {
	// ChromePath overrides the browser binary; empty uses chromedp's lookup.
	ChromePath string
}

// Rasterize writes the HTML to a temp file, loads it headless and captures
// the entire page surface at the fixed oversampling factor.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string) (image.Image, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	tmpDir, err := os.MkdirTemp("", "resume-raster-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var shot []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(rasterWidthPx, 1, chromedp.EmulateScale(rasterScale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var captureErr error
			shot, captureErr = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return captureErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp capture: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return img, nil
}
