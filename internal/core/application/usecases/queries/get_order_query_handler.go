package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Reads bypass the aggregate and repositories: the row is scanned straight
// into the response shape.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup for one order by tracking identifier.
// Returns errs.ErrObjectNotFound when no order matches.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			customer_name,
			customer_email,
			customer_phone,
			alternate_phone,
			delivery_address,
			pincode,
			items,
			total_amount,
			COALESCE(payment_screenshot, '') <> '',
			payment_status,
			status,
			order_date,
			created_at,
			updated_at
		FROM orders
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// rowScanner lets one scan helper serve both Row and Rows results.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var itemsJSON []byte

	err := row.Scan(
		&resp.OrderID,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.AlternatePhone,
		&resp.DeliveryAddress,
		&resp.Pincode,
		&itemsJSON,
		&resp.TotalAmount,
		&resp.HasPaymentScreenshot,
		&resp.PaymentStatus,
		&resp.Status,
		&resp.OrderDate,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
