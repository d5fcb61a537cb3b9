package queries

import (
	"errors"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its tracking identifier.
// Used by customers to follow an order after submission and by the admin
// dashboard for the order detail view.
//
// Example:
//
//	id, _ := kernel.OrderIDFromString("ORD-LX2V8K1A-7Q3ZP")
//	query, _ := NewGetOrderQuery(id)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking id
//	}
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
// Validates that the order identifier is properly constructed.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the tracking identifier to look up.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// OrderItemResponse is one line item of an order read model.
type OrderItemResponse struct {
	Product  string          `json:"product"`
	Flavor   string          `json:"flavor"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderResponse is the order read model served over HTTP.
// Mirrors the stored record except for the payment screenshot, which is
// never exposed through the read side; callers see only whether one exists.
type OrderResponse struct {
	OrderID              string              `json:"orderId"`
	CustomerName         string              `json:"customerName"`
	CustomerEmail        string              `json:"customerEmail"`
	CustomerPhone        string              `json:"customerPhone"`
	AlternatePhone       string              `json:"alternatePhone,omitempty"`
	DeliveryAddress      string              `json:"deliveryAddress"`
	Pincode              string              `json:"pincode"`
	Items                []OrderItemResponse `json:"items"`
	TotalAmount          decimal.Decimal     `json:"totalAmount"`
	HasPaymentScreenshot bool                `json:"hasPaymentScreenshot"`
	PaymentStatus        string              `json:"paymentStatus"`
	Status               string              `json:"status"`
	OrderDate            time.Time           `json:"orderDate"`
	CreatedAt            time.Time           `json:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
}
