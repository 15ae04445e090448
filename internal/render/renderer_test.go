package render

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeBase64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func sampleDocument(items int) model.Document {
	rec := model.Receipt{
		ReceiptNumber: "RCP-20240101-007",
		BusinessProfile: model.BusinessProfile{
			Name:    "Acme Traders",
			Email:   "hello@acme.test",
			Phone:   "555-0100",
			Address: "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62704",
			Country: "USA",
		},
		CustomerName:    "Jordan Diaz",
		CustomerEmail:   "jordan@example.com",
		PaymentMethod:   model.PaymentCard,
		TransactionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:          model.ReceiptCompleted,
		Template:        model.TemplateModern,
		Currency:        "USD",
		Notes:           "Thanks for shopping with us. No returns after 30 days.",
	}
	for i := 0; i < items; i++ {
		rec.Items = append(rec.Items,
			model.NewLineItem("Widget", decimal.NewFromInt(2), decimal.RequireFromString("9.99")))
	}
	rec.Subtotal = decimal.RequireFromString("19.98")
	rec.TaxRate = decimal.NewFromInt(10)
	rec.TaxAmount = decimal.RequireFromString("2.00")
	rec.Total = decimal.RequireFromString("21.98")
	return rec.Document()
}

func TestRasterizeDimensions(t *testing.T) {
	s, err := NewTemplateRenderer().Rasterize(sampleDocument(3))
	require.NoError(t, err)

	assert.Equal(t, LogicalWidth*Oversample, s.WidthPx())
	assert.GreaterOrEqual(t, s.HeightPx(), minHeight*Oversample)
}

func TestRasterizeDrawsInk(t *testing.T) {
	s, err := NewTemplateRenderer().Rasterize(sampleDocument(1))
	require.NoError(t, err)

	inked := 0
	b := s.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 7 {
		for x := b.Min.X; x < b.Max.X; x += 7 {
			if s.Img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 100, "rendered surface should not be blank")
}

func TestRasterizeGrowsWithItems(t *testing.T) {
	r := NewTemplateRenderer()
	small, err := r.Rasterize(sampleDocument(2))
	require.NoError(t, err)
	large, err := r.Rasterize(sampleDocument(120))
	require.NoError(t, err)

	assert.Greater(t, large.HeightPx(), small.HeightPx())
}

func TestRasterizeGrowsWithMultilineNotes(t *testing.T) {
	r := NewTemplateRenderer()
	short := sampleDocument(1)
	long := sampleDocument(1)
	long.Notes = strings.Repeat("x\n", 119) + "final line"

	a, err := r.Rasterize(short)
	require.NoError(t, err)
	b, err := r.Rasterize(long)
	require.NoError(t, err)

	assert.Greater(t, b.HeightPx(), a.HeightPx())
}

func TestRasterizeKeepsLastNotesLine(t *testing.T) {
	// The canvas must be tall enough that the last notes line still lands on
	// it; two documents differing only in that line must not rasterize to the
	// same pixels.
	r := NewTemplateRenderer()
	a := sampleDocument(1)
	b := sampleDocument(1)
	a.Notes = strings.Repeat("x\n", 119) + "alpha"
	b.Notes = strings.Repeat("x\n", 119) + "omega"

	sa, err := r.Rasterize(a)
	require.NoError(t, err)
	sb, err := r.Rasterize(b)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(sa.Img.Pix, sb.Img.Pix),
		"documents with different final notes lines must render differently")
}

func TestRasterizeDeterministic(t *testing.T) {
	r := NewTemplateRenderer()
	doc := sampleDocument(4)

	a, err := r.Rasterize(doc)
	require.NoError(t, err)
	b, err := r.Rasterize(doc)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a.Img.Pix, b.Img.Pix), "identical input must produce identical pixels")
}

func TestEveryTemplateRenders(t *testing.T) {
	r := NewTemplateRenderer()
	for _, tpl := range model.Templates() {
		doc := sampleDocument(2)
		doc.Template = tpl
		_, err := r.Rasterize(doc)
		assert.NoError(t, err, "template %s", tpl)
	}
}

func TestUndecodableLogoFailsRasterization(t *testing.T) {
	doc := sampleDocument(1)
	doc.Profile.Logo = "data:image/png;base64,bm90IGFuIGltYWdl" // "not an image"

	_, err := NewTemplateRenderer().Rasterize(doc)
	require.Error(t, err)
}

func TestValidLogoRenders(t *testing.T) {
	// 1×1 white PNG.
	var buf bytes.Buffer
	img := newCanvas(1).img
	require.NoError(t, png.Encode(&buf, img))

	doc := sampleDocument(1)
	doc.Profile.Logo = encodeBase64(buf.Bytes())

	_, err := NewTemplateRenderer().Rasterize(doc)
	assert.NoError(t, err)
}

func TestSurfaceEncodePNG(t *testing.T) {
	s, err := NewTemplateRenderer().Rasterize(sampleDocument(1))
	require.NoError(t, err)

	data, err := s.EncodePNG()
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, s.WidthPx(), decoded.Bounds().Dx())
}
