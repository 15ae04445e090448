package pdf

import "math"

// A4 portrait, millimetres. The rendered surface is scaled so its width spans
// the page exactly; height follows the aspect ratio and spills across pages.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// ScaledHeightMM converts the surface's pixel aspect ratio into the output
// height in millimetres at full page width.
func ScaledHeightMM(widthPx, heightPx int) float64 {
	if widthPx <= 0 {
		return 0
	}
	return float64(heightPx) * PageWidthMM / float64(widthPx)
}

// PageCount is ceil(scaledHeight / pageHeight), never less than one page.
func PageCount(scaledHeightMM float64) int {
	n := int(math.Ceil(scaledHeightMM / PageHeightMM))
	if n < 1 {
		return 1
	}
	return n
}

// OffsetMM is the vertical placement of the full-height image on page i:
// the same image drawn shifted up by one page height per page, so the visible
// slices tile the original with no gap or overlap.
func OffsetMM(pageIndex int) float64 {
	return -PageHeightMM * float64(pageIndex)
}
