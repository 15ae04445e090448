// Package render is the template-rendering collaborator: it turns a document
// plus a template id into a raster Surface the export pipeline can paginate.
// It is stateless and purely presentational — all numbers on the page come in
// precomputed on the document.
package render

import (
	"bytes"
	"image"
	"image/png"
)

// LogicalWidth is the fixed layout width in logical pixels; every template
// lays out against this width so output is consistent across documents.
const LogicalWidth = 1200

// Oversample is the supersampling factor applied when rasterizing, to keep
// text crisp once the bitmap is scaled onto a PDF page.
const Oversample = 2

// Surface is a rendered document bitmap with known pixel dimensions.
type Surface struct {
	Img *image.RGBA
}

func (s *Surface) WidthPx() int  { return s.Img.Bounds().Dx() }
func (s *Surface) HeightPx() int { return s.Img.Bounds().Dy() }

// EncodePNG serializes the surface for embedding into a PDF.
func (s *Surface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.Img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
