package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer rasterizes a document with its chosen template.
type Renderer interface {
	Rasterize(doc model.Document) (*Surface, error)
}

// TemplateRenderer draws the standard header / parties / items / totals /
// notes layout, styled per template.
type TemplateRenderer struct{}

func NewTemplateRenderer() *TemplateRenderer { return &TemplateRenderer{} }

var _ Renderer = (*TemplateRenderer)(nil)

const (
	marginX    = 60  // logical px
	rowHeight  = 30
	lineHeight = 22
	minHeight  = 1600
)

var (
	black = color.RGBA{17, 24, 39, 255}
	gray  = color.RGBA{107, 114, 128, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// Rasterize renders the document into an oversampled bitmap. It fails only
// when supplied content cannot be rasterized (today: an undecodable logo),
// which is the export pipeline's cue to take the fallback path.
func (r *TemplateRenderer) Rasterize(doc model.Document) (*Surface, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	var logo image.Image
	if doc.Profile.Logo != "" {
		decoded, err := decodeLogo(doc.Profile.Logo)
		if err != nil {
			return nil, fmt.Errorf("render: logo: %w", err)
		}
		logo = decoded
	}

	style := styleFor(string(doc.Template))

	titleFace, err := face(boldFont, 28)
	if err != nil {
		return nil, err
	}
	headFace, err := face(boldFont, 13)
	if err != nil {
		return nil, err
	}
	bodyFace, err := face(regularFont, 11)
	if err != nil {
		return nil, err
	}
	smallFace, err := face(regularFont, 9)
	if err != nil {
		return nil, err
	}

	// Notes are wrapped up front so the canvas can be sized from the real
	// line count; explicit newlines make the byte length useless here.
	var notesLines []string
	if doc.Notes != "" {
		notesLines = wrapText(bodyFace, doc.Notes, LogicalWidth-2*marginX)
	}

	c := newCanvas(estimateHeight(doc, len(notesLines)))
	defer func() {
		titleFace.Close()
		headFace.Close()
		bodyFace.Close()
		smallFace.Close()
	}()

	y := 0

	// ── Header ───────────────────────────────────────────────────────────────
	if style.headerBand {
		c.fill(image.Rect(0, 0, LogicalWidth, 110), style.accent)
		if style.centerTitle {
			c.textCenter(LogicalWidth/2, 70, titleFace, white, doc.Title())
		} else {
			c.text(marginX, 70, titleFace, white, doc.Title())
		}
		y = 150
	} else {
		if style.centerTitle {
			c.textCenter(LogicalWidth/2, 80, titleFace, style.accent, doc.Title())
		} else {
			c.text(marginX, 80, titleFace, style.accent, doc.Title())
		}
		c.hline(marginX, LogicalWidth-marginX, 104, style.accent, 2)
		y = 140
	}

	if logo != nil {
		c.drawLogo(logo, LogicalWidth-marginX-96, 20, 96)
	}

	// ── Document info ────────────────────────────────────────────────────────
	c.text(marginX, y, headFace, black, doc.Title()+" #: "+doc.Number)
	c.textRight(LogicalWidth-marginX, y, bodyFace, black,
		doc.DateLabel+": "+doc.Date.Format("01/02/2006"))
	y += lineHeight + 6
	c.textRight(LogicalWidth-marginX, y, bodyFace, black, doc.ExtraLabel+": "+doc.ExtraValue)
	y += lineHeight + 24

	// ── Parties ──────────────────────────────────────────────────────────────
	fromLines := doc.Profile.AddressLines()
	toLines := doc.PartyLines

	c.text(marginX, y, headFace, style.accent, "From:")
	c.text(LogicalWidth/2+20, y, headFace, style.accent, "To:")
	y += lineHeight + 4
	maxLines := len(fromLines)
	if len(toLines) > maxLines {
		maxLines = len(toLines)
	}
	for i := 0; i < maxLines; i++ {
		if i < len(fromLines) {
			c.text(marginX, y+i*lineHeight, bodyFace, black, fromLines[i])
		}
		if i < len(toLines) {
			c.text(LogicalWidth/2+20, y+i*lineHeight, bodyFace, black, toLines[i])
		}
	}
	y += maxLines*lineHeight + 30

	// ── Items table ──────────────────────────────────────────────────────────
	colQty := LogicalWidth - 420
	colPrice := LogicalWidth - 280
	colAmount := LogicalWidth - marginX

	c.text(marginX, y, headFace, black, "Description")
	c.textCenter(colQty, y, headFace, black, "Qty")
	c.textRight(colPrice, y, headFace, black, "Price")
	c.textRight(colAmount, y, headFace, black, "Amount")
	y += 10
	c.hline(marginX, LogicalWidth-marginX, y, style.accent, 2)
	y += rowHeight

	for _, item := range doc.Items {
		c.text(marginX, y, bodyFace, black, truncate(bodyFace, item.Description, colQty-marginX-80))
		c.textCenter(colQty, y, bodyFace, black, item.Quantity.String())
		c.textRight(colPrice, y, bodyFace, black, doc.Money(item.UnitPrice))
		c.textRight(colAmount, y, bodyFace, black, doc.Money(item.Amount))
		if style.ruledRows {
			c.hline(marginX, LogicalWidth-marginX, y+8, color.RGBA{229, 231, 235, 255}, 1)
		}
		y += rowHeight
	}
	y += 10
	c.hline(LogicalWidth-440, LogicalWidth-marginX, y, gray, 1)
	y += rowHeight

	// ── Totals ───────────────────────────────────────────────────────────────
	labelX := LogicalWidth - 440
	c.text(labelX, y, bodyFace, black, "Subtotal:")
	c.textRight(colAmount, y, bodyFace, black, doc.Money(doc.Subtotal))
	y += lineHeight + 6
	if doc.DiscountAmount.IsPositive() {
		c.text(labelX, y, bodyFace, black, fmt.Sprintf("Discount (%s%%):", doc.DiscountRate.String()))
		c.textRight(colAmount, y, bodyFace, black, "-"+doc.Money(doc.DiscountAmount))
		y += lineHeight + 6
	}
	if doc.TaxAmount.IsPositive() {
		c.text(labelX, y, bodyFace, black, fmt.Sprintf("Tax (%s%%):", doc.TaxRate.String()))
		c.textRight(colAmount, y, bodyFace, black, doc.Money(doc.TaxAmount))
		y += lineHeight + 6
	}
	y += 6
	c.hline(labelX, LogicalWidth-marginX, y, style.accent, 2)
	y += rowHeight
	c.text(labelX, y, headFace, style.accent, "Total:")
	c.textRight(colAmount, y, headFace, style.accent, doc.Money(doc.Total))
	y += rowHeight + 20

	// ── Notes ────────────────────────────────────────────────────────────────
	if len(notesLines) > 0 {
		c.text(marginX, y, headFace, black, "Notes:")
		y += lineHeight + 4
		for _, line := range notesLines {
			c.text(marginX, y, bodyFace, black, line)
			y += lineHeight
		}
		y += 20
	}

	c.textCenter(LogicalWidth/2, y+40, smallFace, gray, "Thank you for your business!")

	return &Surface{Img: c.img}, nil
}

// estimateHeight sizes the canvas before drawing; generous rather than exact,
// trailing whitespace scales away in the PDF. notesLines is the wrapped line
// count, not the byte length, so multi-line notes never overrun the canvas.
func estimateHeight(doc model.Document, notesLines int) int {
	fromLines := len(doc.Profile.AddressLines())
	toLines := len(doc.PartyLines)
	maxLines := fromLines
	if toLines > maxLines {
		maxLines = toLines
	}
	h := 150 + 2*(lineHeight+6) + 24 // header + info block
	h += (maxLines+1)*lineHeight + 34
	h += (len(doc.Items)+2)*rowHeight + 40
	h += 4*(lineHeight+6) + 2*rowHeight + 40 // totals block
	if notesLines > 0 {
		h += (notesLines+1)*lineHeight + 40
	}
	h += 120
	if h < minHeight {
		h = minHeight
	}
	return h
}

// decodeLogo accepts a raw base64 payload or a data URI.
func decodeLogo(logo string) (image.Image, error) {
	payload := logo
	if idx := strings.Index(logo, ";base64,"); idx >= 0 {
		payload = logo[idx+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ── canvas ───────────────────────────────────────────────────────────────────
// Small drawing helper working in logical coordinates; everything is scaled by
// Oversample when it touches pixels.

type canvas struct{ img *image.RGBA }

func newCanvas(logicalHeight int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, LogicalWidth*Oversample, logicalHeight*Oversample))
	draw.Draw(img, img.Bounds(), &image.Uniform{white}, image.Point{}, draw.Src)
	return &canvas{img: img}
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	scaled := image.Rect(r.Min.X*Oversample, r.Min.Y*Oversample, r.Max.X*Oversample, r.Max.Y*Oversample)
	draw.Draw(c.img, scaled, &image.Uniform{col}, image.Point{}, draw.Src)
}

func (c *canvas) hline(x0, x1, y int, col color.Color, thickness int) {
	c.fill(image.Rect(x0, y, x1, y+thickness), col)
}

func (c *canvas) drawer(f font.Face, col color.Color) *font.Drawer {
	return &font.Drawer{Dst: c.img, Src: &image.Uniform{col}, Face: f}
}

func (c *canvas) text(x, y int, f font.Face, col color.Color, s string) {
	d := c.drawer(f, col)
	d.Dot = fixed.P(x*Oversample, y*Oversample)
	d.DrawString(s)
}

func (c *canvas) textRight(xRight, y int, f font.Face, col color.Color, s string) {
	d := c.drawer(f, col)
	w := d.MeasureString(s)
	d.Dot = fixed.P(xRight*Oversample, y*Oversample).Sub(fixed.Point26_6{X: w})
	d.DrawString(s)
}

func (c *canvas) textCenter(xCenter, y int, f font.Face, col color.Color, s string) {
	d := c.drawer(f, col)
	w := d.MeasureString(s)
	d.Dot = fixed.P(xCenter*Oversample, y*Oversample).Sub(fixed.Point26_6{X: w / 2})
	d.DrawString(s)
}

func (c *canvas) drawLogo(logo image.Image, x, y, size int) {
	dst := image.Rect(x*Oversample, y*Oversample, (x+size)*Oversample, (y+size)*Oversample)
	xdraw.ApproxBiLinear.Scale(c.img, dst, logo, logo.Bounds(), xdraw.Over, nil)
}

// textWidth returns the logical advance of s under f.
func textWidth(f font.Face, s string) int {
	return font.MeasureString(f, s).Ceil() / Oversample
}

func truncate(f font.Face, s string, maxWidth int) string {
	if textWidth(f, s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		if textWidth(f, string(runes)+"…") <= maxWidth {
			return string(runes) + "…"
		}
	}
	return string(runes)
}

func wrapText(f font.Face, s string, maxWidth int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if textWidth(f, current+" "+word) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current += " " + word
		}
		lines = append(lines, current)
	}
	return lines
}
