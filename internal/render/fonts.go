package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("render: parse regular font: %w", fontErr)
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("render: parse bold font: %w", fontErr)
		}
	})
	return fontErr
}

// face builds a rasterized face at the given point size, already scaled by the
// oversampling factor.
func face(src *opentype.Font, points float64) (font.Face, error) {
	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    points * Oversample,
		DPI:     96,
		Hinting: font.HintingFull,
	})
}
