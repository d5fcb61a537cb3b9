package pdf_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/Tilak2001/Anandicecream/internal/adapters/out/pdf"
	"github.com/Tilak2001/Anandicecream/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoiceData() notifications.InvoiceData {
	return notifications.InvoiceData{
		OrderID:      "ORD-LX2V8K1A-7Q3ZP",
		CustomerName: "Asha Rao",
		Address:      "12 MG Road, Bengaluru",
		Pincode:      "560001",
		Items: []notifications.InvoiceItem{
			{Product: "Vanilla Tub", Flavor: "Classic", Quantity: 2, Price: "150.00", Subtotal: "300.00"},
			{Product: "Kulfi Stick", Flavor: "Kesar Pista", Quantity: 3, Price: "49.50", Subtotal: "148.50"},
		},
		Total:         "448.50",
		PaymentStatus: "verified",
		OrderDate:     "June 1, 2025 at 12:00 PM",
	}
}

func samplePNGBase64(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := range 4 {
		for y := range 4 {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRenderInvoice_ProducesPDF(t *testing.T) {
	renderer := pdf.NewRenderer()

	out, err := renderer.RenderInvoice(sampleInvoiceData())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestRenderInvoice_NoItems_StillRenders(t *testing.T) {
	renderer := pdf.NewRenderer()
	data := sampleInvoiceData()
	data.Items = nil

	out, err := renderer.RenderInvoice(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestImageToPDF_BareBase64(t *testing.T) {
	renderer := pdf.NewRenderer()

	out, err := renderer.ImageToPDF(samplePNGBase64(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestImageToPDF_DataURL(t *testing.T) {
	renderer := pdf.NewRenderer()

	out, err := renderer.ImageToPDF("data:image/png;base64," + samplePNGBase64(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestImageToPDF_InvalidBase64_ReturnsError(t *testing.T) {
	renderer := pdf.NewRenderer()

	_, err := renderer.ImageToPDF("%%%not-base64%%%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image payload")
}

func TestImageToPDF_NotAnImage_ReturnsError(t *testing.T) {
	renderer := pdf.NewRenderer()

	payload := base64.StdEncoding.EncodeToString([]byte("plain text, not an image"))
	_, err := renderer.ImageToPDF(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image header")
}
