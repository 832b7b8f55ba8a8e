package main

// Render the built-in example resume with a template and write the
// artifacts locally:
//   go run ./cmd/renderdemo -template modern -out ./out
// PDF export drives a headless Chrome; skip it with -pdf=false.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/resume/export"
	"resume-builder-backend/resume/model"
	"resume-builder-backend/resume/render"
)

func main() {
	cfg := config.Load()

	templateName := flag.String("template", render.DefaultTemplate, "template variant to render")
	outDir := flag.String("out", "./out", "output directory")
	withPDF := flag.Bool("pdf", true, "also export a PDF via headless Chrome")
	flag.Parse()

	renderer, err := render.Get(*templateName)
	if err != nil {
		exitErr(fmt.Sprintf("unknown template %q (known: %v)", *templateName, render.Names()))
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		exitErr(fmt.Sprintf("create output dir: %v", err))
	}

	doc := model.Example()
	layout := renderer.Render(doc)

	html, err := render.HTML(layout)
	if err != nil {
		exitErr(fmt.Sprintf("render html: %v", err))
	}
	htmlPath := filepath.Join(*outDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		exitErr(fmt.Sprintf("write html: %v", err))
	}
	fmt.Printf("OK: wrote %s\n", htmlPath)

	docx, err := export.ToDocx(doc)
	if err != nil {
		exitErr(fmt.Sprintf("export docx: %v", err))
	}
	docxPath := filepath.Join(*outDir, export.DocxFilename)
	if err := os.WriteFile(docxPath, docx, 0o644); err != nil {
		exitErr(fmt.Sprintf("write docx: %v", err))
	}
	fmt.Printf("OK: wrote %s\n", docxPath)

	if !*withPDF {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pipeline := &export.PDFPipeline{Raster: &export.ChromeRasterizer{ChromePath: cfg.ChromePath}}
	pdf, err := pipeline.Export(ctx, layout)
	if err != nil {
		exitErr(fmt.Sprintf("export pdf: %v", err))
	}
	pdfPath := filepath.Join(*outDir, export.PDFFilename)
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		exitErr(fmt.Sprintf("write pdf: %v", err))
	}
	fmt.Printf("OK: wrote %s\n", pdfPath)
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
