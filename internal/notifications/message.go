// Package notifications turns committed order transitions into outbound
// email. It implements the Notifier port with an asynchronous dispatcher:
// command handlers hand a transition off and continue, while a background
// worker renders the message, assembles attachments, and sends it with a
// bounded timeout. Delivery failures are logged, parked, and retried by a
// scheduled job; they never reach the caller.
package notifications

import "context"

// Message is a fully rendered outbound email.
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Attachment is a file carried with a message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// MailSender delivers a rendered message over the configured transport.
type MailSender interface {
	Send(ctx context.Context, msg Message) error
}

// InvoiceRenderer produces the invoice PDF for a delivered order.
type InvoiceRenderer interface {
	RenderInvoice(data InvoiceData) ([]byte, error)
}

// ImageConverter wraps a base64-encoded image into a single-page PDF.
type ImageConverter interface {
	ImageToPDF(base64Image string) ([]byte, error)
}

// InvoiceData carries everything the invoice renderer needs.
// Kept as plain values so the renderer stays independent of the domain model.
type InvoiceData struct {
	OrderID       string
	CustomerName  string
	Address       string
	Pincode       string
	Items         []InvoiceItem
	Total         string
	PaymentStatus string
	OrderDate     string
}

// InvoiceItem is one invoice line.
type InvoiceItem struct {
	Product  string
	Flavor   string
	Quantity int
	Price    string
	Subtotal string
}
