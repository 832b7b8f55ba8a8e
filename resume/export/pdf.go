package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"

	"resume-builder-backend/resume/render"
)

// PDFFilename is the fixed download name for the PDF artifact.
const PDFFilename = "resume.pdf"

// A4 print surface in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// Rasterizer turns the rendered HTML surface into a single tall image.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) (image.Image, error)
}

// PDFPipeline drives rasterize-then-paginate. A failure at any stage aborts
// the export; callers never receive a partial artifact.
type PDFPipeline struct {
	Raster Rasterizer
}

// Export renders the layout to HTML, rasterizes it, slices the image into A4
// pages and assembles the PDF, one embedded image per page.
func (p *PDFPipeline) Export(ctx context.Context, doc *render.Document) ([]byte, error) {
	html, err := render.HTML(doc)
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	img, err := p.Raster.Rasterize(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("export pdf: rasterize: %w", err)
	}
	out, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	return out, nil
}

// Span is one page's vertical slice of the source image, in pixels.
type Span struct {
	Top    int
	Height int
}

// Paginate splits a raster of the given height into page-sized spans.
// Successive spans tile [0, height) exactly: no gap, no overlap, and the
// count is ceil(height/pageHeight).
func Paginate(height, pageHeight int) []Span {
	if height <= 0 || pageHeight <= 0 {
		return nil
	}
	spans := make([]Span, 0, (height+pageHeight-1)/pageHeight)
	for top := 0; top < height; top += pageHeight {
		slice := pageHeight
		if top+slice > height {
			slice = height - top
		}
		spans = append(spans, Span{Top: top, Height: slice})
	}
	return spans
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// FromImage paginates a rendered raster onto A4 pages. The image width maps
// to the full page width; the page height in pixels follows from the A4
// aspect ratio.
func FromImage(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty raster %dx%d", width, height)
	}
	slicer, ok := img.(subImager)
	if !ok {
		return nil, fmt.Errorf("raster image type %T does not support slicing", img)
	}

	pagePx := int(math.Ceil(float64(width) * pageHeightMM / pageWidthMM))
	spans := Paginate(height, pagePx)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for i, span := range spans {
		rect := image.Rect(bounds.Min.X, bounds.Min.Y+span.Top, bounds.Min.X+width, bounds.Min.Y+span.Top+span.Height)
		var buf bytes.Buffer
		if err := png.Encode(&buf, slicer.SubImage(rect)); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()
		sliceHeightMM := float64(span.Height) * pageWidthMM / float64(width)
		pdf.ImageOptions(name, 0, 0, pageWidthMM, sliceHeightMM, false, opts, 0, "")
	}
	if pdf.Err() {
		return nil, fmt.Errorf("assemble pdf: %v", pdf.Error())
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return out.Bytes(), nil
}
