// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer block is flattened into columns, line items are stored as a
// JSONB document, and both statuses are persisted as their lowercase string
// form so the read side and ad-hoc SQL stay human-readable.
type OrderDTO struct {
	OrderID           string          `gorm:"column:order_id;primaryKey"`
	CustomerName      string          `gorm:"not null"`
	CustomerEmail     string          `gorm:"not null"`
	CustomerPhone     string          `gorm:"not null"`
	AlternatePhone    string
	DeliveryAddress   string          `gorm:"not null"`
	Pincode           string          `gorm:"not null"`
	Items             []byte          `gorm:"type:jsonb;not null"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentScreenshot string          `gorm:"type:text"`
	PaymentStatus     string          `gorm:"not null"`
	Status            string          `gorm:"not null;index"`
	OrderDate         time.Time       `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the JSONB shape of one line item.
// Field names match the read-side JSON so raw queries can serve the
// document unchanged.
type itemDTO struct {
	Product  string          `json:"product"`
	Flavor   string          `json:"flavor"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemDTO{
			Product:  item.Product(),
			Flavor:   item.Flavor(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	itemsJSON, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	customer := aggregate.Customer()
	return OrderDTO{
		OrderID:           aggregate.ID().String(),
		CustomerName:      customer.FullName(),
		CustomerEmail:     customer.Email(),
		CustomerPhone:     customer.Phone(),
		AlternatePhone:    customer.AlternatePhone(),
		DeliveryAddress:   customer.DeliveryAddress(),
		Pincode:           customer.Pincode(),
		Items:             itemsJSON,
		TotalAmount:       aggregate.TotalAmount(),
		PaymentScreenshot: aggregate.PaymentScreenshot(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		Status:            aggregate.Status().String(),
		OrderDate:         aggregate.OrderDate(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder, which validates
// both stored statuses to catch corrupted records.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.CustomerName,
		dto.CustomerEmail,
		dto.CustomerPhone,
		dto.AlternatePhone,
		dto.DeliveryAddress,
		dto.Pincode,
	)
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := order.NewItem(itemDTO.Product, itemDTO.Flavor, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customer,
		items,
		dto.TotalAmount,
		dto.PaymentScreenshot,
		paymentStatus,
		status,
		dto.OrderDate,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
