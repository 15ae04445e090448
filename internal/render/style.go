package render

import "image/color"

// templateStyle is the small set of visual knobs that distinguish templates.
// Layout structure (header / parties / items / totals / notes) is identical;
// accent color and header treatment vary.
type templateStyle struct {
	accent      color.RGBA
	headerBand  bool // filled band behind the title
	ruledRows   bool // hairline under every item row
	centerTitle bool
}

// styleFor maps every TemplateID to its style. The switch is exhaustive over
// the closed enum; an unknown value falls back to the modern style rather than
// rendering nothing.
func styleFor(t string) templateStyle {
	switch t {
	case "modern":
		return templateStyle{accent: color.RGBA{59, 130, 246, 255}, headerBand: true, centerTitle: false}
	case "classic":
		return templateStyle{accent: color.RGBA{31, 41, 55, 255}, headerBand: false, ruledRows: true, centerTitle: true}
	case "minimal":
		return templateStyle{accent: color.RGBA{107, 114, 128, 255}, headerBand: false, centerTitle: false}
	case "professional":
		return templateStyle{accent: color.RGBA{13, 148, 136, 255}, headerBand: true, ruledRows: true, centerTitle: false}
	case "corporate":
		return templateStyle{accent: color.RGBA{30, 64, 175, 255}, headerBand: true, ruledRows: true, centerTitle: true}
	case "elegant":
		return templateStyle{accent: color.RGBA{120, 53, 15, 255}, headerBand: false, ruledRows: false, centerTitle: true}
	case "creative":
		return templateStyle{accent: color.RGBA{190, 24, 93, 255}, headerBand: true, ruledRows: false, centerTitle: false}
	default:
		return templateStyle{accent: color.RGBA{59, 130, 246, 255}, headerBand: true}
	}
}
