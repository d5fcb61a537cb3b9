package http

import (
	"time"

	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CustomerInfoRequest is the customer block of an order submission.
type CustomerInfoRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	AlternatePhone  string `json:"alternatePhone"`
	DeliveryAddress string `json:"deliveryAddress" validate:"required"`
	Pincode         string `json:"pincode" validate:"required"`
}

// OrderItemRequest is one line item of an order submission.
// Price bounds are enforced by the domain model; the tag layer only checks
// presence and a positive quantity.
type OrderItemRequest struct {
	Product  string          `json:"product" validate:"required"`
	Flavor   string          `json:"flavor" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gte=1"`
	Price    decimal.Decimal `json:"price"`
}

// SubmitOrderRequest is the body of POST /api/orders.
// PaymentScreenshot is optional base64 image data, with or without a
// data-URL prefix. A zero OrderDate means "now".
type SubmitOrderRequest struct {
	CustomerInfo      CustomerInfoRequest `json:"customerInfo" validate:"required"`
	Items             []OrderItemRequest  `json:"items" validate:"required,min=1,dive"`
	TotalAmount       decimal.Decimal     `json:"totalAmount"`
	PaymentScreenshot string              `json:"paymentScreenshot"`
	OrderDate         time.Time           `json:"orderDate"`
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateStatusRequest is the body of PATCH /api/orders/:orderId/status.
type UpdateStatusRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for incoming request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct tag validation and maps failures onto the
// application's invalid-value error so the shared status mapping applies.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
