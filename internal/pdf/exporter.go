// Package pdf turns a document into a downloadable multi-page A4 PDF.
//
// Primary path: the template renderer rasterizes the document to one tall
// bitmap; the bitmap is scaled to page width and tiled across pages by
// drawing it at y = −pageHeight·i on page i. When rasterization fails the
// fallback text-layout renderer lays the same record out with fpdf text
// primitives instead. Every export yields at least one page or an error —
// never a silently truncated document.
package pdf

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/render"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
)

// State tracks an export invocation through the pipeline.
type State int

const (
	StateIdle State = iota
	StateRasterizing
	StateScaling
	StatePaginating
	StateFallbackLayout
	StateEmitting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRasterizing:
		return "rasterizing"
	case StateScaling:
		return "scaling"
	case StatePaginating:
		return "paginating"
	case StateFallbackLayout:
		return "fallback_layout"
	case StateEmitting:
		return "emitting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// ExportResult is the emitted document.
type ExportResult struct {
	Filename     string
	Data         []byte
	Pages        int
	UsedFallback bool
}

// Exporter runs the pagination pipeline. Safe for concurrent use; the state
// field reflects the most recent invocation and exists for observability.
type Exporter struct {
	renderer render.Renderer
	now      func() time.Time

	mu    sync.Mutex
	state State
}

func NewExporter(renderer render.Renderer) *Exporter {
	return &Exporter{renderer: renderer, now: time.Now}
}

// WithClock overrides the export timestamp source (deterministic filenames in
// tests).
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

func (e *Exporter) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Exporter) transition(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// Export runs Idle → Rasterizing → Scaling → Paginating → Emitting → Done,
// taking the Rasterizing → FallbackLayout edge when the renderer fails. No
// automatic retries; on error the state returns to Idle and the caller decides.
func (e *Exporter) Export(doc model.Document) (result *ExportResult, err error) {
	defer func() {
		if err != nil {
			e.transition(StateIdle)
		} else {
			e.transition(StateDone)
		}
	}()

	e.transition(StateRasterizing)
	surface, rasterErr := e.renderer.Rasterize(doc)
	if rasterErr != nil {
		log.Warn().Err(rasterErr).Str("number", doc.Number).
			Msg("rasterization failed — using fallback text layout")
		e.transition(StateFallbackLayout)
		return e.exportFallback(doc)
	}

	e.transition(StateScaling)
	imgHeightMM := ScaledHeightMM(surface.WidthPx(), surface.HeightPx())

	e.transition(StatePaginating)
	pages := PageCount(imgHeightMM)

	e.transition(StateEmitting)
	data, err := emitImagePDF(surface, imgHeightMM, pages)
	if err != nil {
		// The primary path produced a surface but the PDF emit failed —
		// the fallback can still save the export.
		log.Warn().Err(err).Str("number", doc.Number).
			Msg("image PDF emit failed — using fallback text layout")
		e.transition(StateFallbackLayout)
		return e.exportFallback(doc)
	}

	return &ExportResult{
		Filename: Filename(doc.Type, doc.Number, e.now()),
		Data:     data,
		Pages:    pages,
	}, nil
}

func (e *Exporter) exportFallback(doc model.Document) (*ExportResult, error) {
	data, pages, err := emitFallbackPDF(doc)
	if err != nil {
		return nil, fmt.Errorf("pdf: fallback layout: %w", err)
	}
	e.transition(StateEmitting)
	return &ExportResult{
		Filename:     Filename(doc.Type, doc.Number, e.now()),
		Data:         data,
		Pages:        pages,
		UsedFallback: true,
	}, nil
}

// emitImagePDF tiles the full-height surface across `pages` A4 pages.
func emitImagePDF(surface *render.Surface, imgHeightMM float64, pages int) ([]byte, error) {
	pngData, err := surface.EncodePNG()
	if err != nil {
		return nil, fmt.Errorf("pdf: encode surface: %w", err)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(true)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("surface", opts, bytes.NewReader(pngData))

	for i := 0; i < pages; i++ {
		doc.AddPage()
		doc.ImageOptions("surface", 0, OffsetMM(i), PageWidthMM, imgHeightMM, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output: %w", err)
	}
	return buf.Bytes(), nil
}
