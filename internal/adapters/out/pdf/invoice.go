// Package pdf renders order documents with go-pdf/fpdf: the invoice mailed
// on delivery and the single-page PDF wrapping a payment screenshot.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/Tilak2001/Anandicecream/internal/notifications"

	"github.com/go-pdf/fpdf"
)

// Renderer produces order documents.
// The zero value is ready to use.
type Renderer struct{}

// NewRenderer creates a document renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderInvoice renders the delivery invoice as a PDF.
// Layout: business header, invoice number derived from the order identifier,
// billed-to block, a line item table with quantity times unit price per row,
// a computed total row, and the payment status.
//
// Amounts are prefixed "Rs." because the built-in PDF fonts are cp1252 and
// cannot encode the rupee sign.
func (r *Renderer) RenderInvoice(data notifications.InvoiceData) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	// Business header.
	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(233, 67, 147)
	doc.CellFormat(0, 12, "Anand Ice Cream", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 6, "Fresh scoops, delivered to your door", "", 1, "C", false, 0, "")
	doc.Ln(6)

	// Invoice metadata.
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, fmt.Sprintf("Invoice %s", data.OrderID), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Order date: %s", data.OrderDate), "", 1, "L", false, 0, "")
	doc.Ln(4)

	// Billed-to block.
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 6, "Billed to", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 5, data.CustomerName, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, data.Address, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, fmt.Sprintf("Pincode: %s", data.Pincode), "", 1, "L", false, 0, "")
	doc.Ln(6)

	// Line item table.
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(248, 249, 250)
	doc.CellFormat(70, 8, "Item", "1", 0, "L", true, 0, "")
	doc.CellFormat(40, 8, "Flavor", "1", 0, "L", true, 0, "")
	doc.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	doc.CellFormat(30, 8, "Unit Price", "1", 0, "R", true, 0, "")
	doc.CellFormat(30, 8, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, item := range data.Items {
		doc.CellFormat(70, 8, item.Product, "1", 0, "L", false, 0, "")
		doc.CellFormat(40, 8, item.Flavor, "1", 0, "L", false, 0, "")
		doc.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(30, 8, "Rs. "+item.Price, "1", 0, "R", false, 0, "")
		doc.CellFormat(30, 8, "Rs. "+item.Subtotal, "1", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(160, 8, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(30, 8, "Rs. "+data.Total, "1", 1, "R", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Payment status: %s", data.PaymentStatus), "", 1, "L", false, 0, "")
	doc.Ln(8)

	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(0, 5, "Thank you for choosing Anand Ice Cream!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
