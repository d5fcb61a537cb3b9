package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

const suffixLength = 5

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var orderIDPattern = regexp.MustCompile(`^ORD-[0-9A-Z]+-[A-Z0-9]{5}$`)

// OrderID is a value object that represents the public identifier of an order.
//
// Identifiers have the form "ORD-<timestamp>-<suffix>" where the timestamp is
// the creation time in milliseconds encoded in uppercase base36 and the suffix
// is five random uppercase alphanumeric characters. The timestamp component
// keeps identifiers roughly sortable by creation time; the random suffix makes
// same-millisecond collisions negligible.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString. OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g. "ORD-MBXK2J1T-7QX4N"
type OrderID struct {
	value string
}

// NewOrderID generates a new order identifier from the current time and a
// random suffix. This is the primary way to create identifiers for new orders.
func NewOrderID() OrderID {
	return newOrderIDAt(time.Now())
}

// newOrderIDAt builds an identifier for the given timestamp. Split out so
// tests can exercise the encoding deterministically.
func newOrderIDAt(t time.Time) OrderID {
	timestamp := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))

	suffix := make([]byte, suffixLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			// crypto/rand only fails when the platform entropy source is broken
			panic(fmt.Sprintf("order id suffix generation failed: %v", err))
		}
		suffix[i] = suffixAlphabet[n.Int64()]
	}

	return OrderID{value: fmt.Sprintf("ORD-%s-%s", timestamp, suffix)}
}

// OrderIDFromString parses an order identifier from its string representation.
// Returns an error if the string does not match the "ORD-<base36>-<5 chars>"
// format. This function is typically used when reconstructing orders from
// persistence or when parsing identifiers from request paths.
//
// Example:
//
//	id, err := kernel.OrderIDFromString("ORD-MBXK2J1T-7QX4N")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderID")
	}
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%q does not match the ORD-<timestamp>-<suffix> format", s))
	}
	return OrderID{value: s}, nil
}

// String returns the identifier in its canonical "ORD-..." form.
// For a zero value OrderID this returns the empty string.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
