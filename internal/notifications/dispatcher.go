package notifications

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
)

// maxSendAttempts bounds how often a message is handed to the transport
// before it is dropped for good.
const maxSendAttempts = 3

// Config tunes the dispatcher.
type Config struct {
	// OperatorEmail receives the "order received" announcements.
	OperatorEmail string
	// SendTimeout bounds a single transport call.
	SendTimeout time.Duration
	// QueueSize is the capacity of the in-flight message buffer.
	QueueSize int
}

// pendingMessage is a message plus its delivery bookkeeping.
type pendingMessage struct {
	msg      Message
	attempts int
}

// Dispatcher implements the Notifier port on top of a mail transport.
// Notifier calls render the message synchronously and enqueue it; a single
// background worker performs the actual sends so command handlers never
// wait on SMTP. Failed sends are parked and picked up again by the
// notification retry job.
type Dispatcher struct {
	sender   MailSender
	invoices InvoiceRenderer
	images   ImageConverter
	cfg      Config
	logger   *slog.Logger

	queue chan pendingMessage
	wg    sync.WaitGroup

	mu     sync.Mutex
	parked []pendingMessage
}

// NewDispatcher creates a dispatcher. Call Start before handing it to
// command handlers and Stop on shutdown to drain the queue.
func NewDispatcher(
	sender MailSender,
	invoices InvoiceRenderer,
	images ImageConverter,
	cfg Config,
	logger *slog.Logger,
) *Dispatcher {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	return &Dispatcher{
		sender:   sender,
		invoices: invoices,
		images:   images,
		cfg:      cfg,
		logger:   logger.With("component", "notification_dispatcher"),
		queue:    make(chan pendingMessage, cfg.QueueSize),
		parked:   make([]pendingMessage, 0),
	}
}

// Start launches the background delivery worker.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for pending := range d.queue {
			d.deliver(pending)
		}
	}()
}

// Stop closes the queue and waits for in-flight sends to finish.
// Parked messages are dropped; they only survive within a running process.
func (d *Dispatcher) Stop() {
	close(d.queue)
	d.wg.Wait()
}

// OrderReceived announces a new order to the shop operator.
// When a payment screenshot is present it is attached as a PDF; if the
// conversion fails the raw image is attached instead, and if that fails
// too the mail goes out without an attachment.
func (d *Dispatcher) OrderReceived(ctx context.Context, aggregate *order.Order) {
	msg := Message{
		To:          d.cfg.OperatorEmail,
		Subject:     orderReceivedSubject(aggregate),
		HTMLBody:    orderReceivedBody(aggregate),
		Attachments: d.screenshotAttachment(ctx, aggregate),
	}
	d.enqueue(ctx, msg)
}

// OrderConfirmed tells the customer their order was accepted.
func (d *Dispatcher) OrderConfirmed(ctx context.Context, aggregate *order.Order) {
	d.enqueue(ctx, Message{
		To:       aggregate.Customer().Email(),
		Subject:  orderConfirmedSubject(aggregate),
		HTMLBody: orderConfirmedBody(aggregate),
	})
}

// OrderCancelled tells the customer their order was rejected and the
// payment will be refunded.
func (d *Dispatcher) OrderCancelled(ctx context.Context, aggregate *order.Order) {
	d.enqueue(ctx, Message{
		To:       aggregate.Customer().Email(),
		Subject:  orderCancelledSubject(aggregate),
		HTMLBody: orderCancelledBody(aggregate),
	})
}

// OrderDelivered tells the customer their order arrived, attaching the
// invoice PDF. A rendering failure degrades to mail without attachment.
func (d *Dispatcher) OrderDelivered(ctx context.Context, aggregate *order.Order) {
	msg := Message{
		To:       aggregate.Customer().Email(),
		Subject:  orderDeliveredSubject(aggregate),
		HTMLBody: orderDeliveredBody(aggregate),
	}

	invoice, err := d.invoices.RenderInvoice(invoiceDataFromOrder(aggregate))
	if err != nil {
		d.logger.ErrorContext(ctx, "Invoice rendering failed, sending without attachment",
			"orderId", aggregate.ID().String(), "error", err)
	} else {
		msg.Attachments = append(msg.Attachments, Attachment{
			Filename:    fmt.Sprintf("invoice-%s.pdf", aggregate.ID().String()),
			Content:     invoice,
			ContentType: "application/pdf",
		})
	}

	d.enqueue(ctx, msg)
}

// RetryParked re-enqueues every message whose earlier sends failed.
// Called by the notification retry job.
func (d *Dispatcher) RetryParked(ctx context.Context) int {
	d.mu.Lock()
	parked := d.parked
	d.parked = make([]pendingMessage, 0)
	d.mu.Unlock()

	for _, pending := range parked {
		select {
		case d.queue <- pending:
		default:
			d.logger.ErrorContext(ctx, "Notification queue full during retry, parking again",
				"to", pending.msg.To, "subject", pending.msg.Subject)
			d.park(pending)
		}
	}

	return len(parked)
}

// ParkedCount reports how many messages are waiting for a retry.
func (d *Dispatcher) ParkedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.parked)
}

func (d *Dispatcher) enqueue(ctx context.Context, msg Message) {
	select {
	case d.queue <- pendingMessage{msg: msg}:
	default:
		d.logger.ErrorContext(ctx, "Notification queue full, parking message",
			"to", msg.To, "subject", msg.Subject)
		d.park(pendingMessage{msg: msg})
	}
}

func (d *Dispatcher) deliver(pending pendingMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.SendTimeout)
	defer cancel()

	pending.attempts++
	err := d.sender.Send(ctx, pending.msg)
	if err == nil {
		d.logger.InfoContext(ctx, "Notification sent",
			"to", pending.msg.To, "subject", pending.msg.Subject)
		return
	}

	if pending.attempts >= maxSendAttempts {
		d.logger.ErrorContext(ctx, "Notification dropped after repeated failures",
			"to", pending.msg.To, "subject", pending.msg.Subject,
			"attempts", pending.attempts, "error", err)
		return
	}

	d.logger.ErrorContext(ctx, "Notification send failed, parking for retry",
		"to", pending.msg.To, "subject", pending.msg.Subject,
		"attempt", pending.attempts, "error", err)
	d.park(pending)
}

func (d *Dispatcher) park(pending pendingMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parked = append(d.parked, pending)
}

// screenshotAttachment builds the payment proof attachment chain.
func (d *Dispatcher) screenshotAttachment(ctx context.Context, aggregate *order.Order) []Attachment {
	if !aggregate.HasPaymentScreenshot() {
		return nil
	}

	orderID := aggregate.ID().String()
	pdf, err := d.images.ImageToPDF(aggregate.PaymentScreenshot())
	if err == nil {
		return []Attachment{{
			Filename:    fmt.Sprintf("payment-screenshot-%s.pdf", orderID),
			Content:     pdf,
			ContentType: "application/pdf",
		}}
	}
	d.logger.ErrorContext(ctx, "Screenshot PDF conversion failed, falling back to raw image",
		"orderId", orderID, "error", err)

	raw, err := base64.StdEncoding.DecodeString(aggregate.PaymentScreenshot())
	if err != nil {
		d.logger.ErrorContext(ctx, "Screenshot decoding failed, sending without attachment",
			"orderId", orderID, "error", err)
		return nil
	}

	return []Attachment{{
		Filename:    fmt.Sprintf("payment-screenshot-%s.png", orderID),
		Content:     raw,
		ContentType: "image/png",
	}}
}

func invoiceDataFromOrder(aggregate *order.Order) InvoiceData {
	items := aggregate.Items()
	invoiceItems := make([]InvoiceItem, 0, len(items))
	for _, item := range items {
		invoiceItems = append(invoiceItems, InvoiceItem{
			Product:  item.Product(),
			Flavor:   item.Flavor(),
			Quantity: item.Quantity(),
			Price:    item.Price().StringFixed(2),
			Subtotal: item.Subtotal().StringFixed(2),
		})
	}

	customer := aggregate.Customer()
	return InvoiceData{
		OrderID:       aggregate.ID().String(),
		CustomerName:  customer.FullName(),
		Address:       customer.DeliveryAddress(),
		Pincode:       customer.Pincode(),
		Items:         invoiceItems,
		// The total row is derived from the line items, not taken from the
		// stored client-supplied totalAmount.
		Total: aggregate.ItemsTotal().StringFixed(2),
		PaymentStatus: aggregate.PaymentStatus().String(),
		OrderDate:     formatOrderDate(aggregate),
	}
}
