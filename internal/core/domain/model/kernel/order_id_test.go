package kernel_test

import (
	"regexp"
	"testing"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDFormat = regexp.MustCompile(`^ORD-[0-9A-Z]+-[A-Z0-9]{5}$`)

func TestNewOrderID(t *testing.T) {
	t.Run("matches_the_public_format", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, orderIDFormat, id.String())
	})

	t.Run("unique_across_repeated_calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			id := kernel.NewOrderID()
			assert.False(t, seen[id.String()], "duplicate order id generated: %s", id)
			seen[id.String()] = true
		}
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("valid_identifier", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-MBXK2J1T-7QX4N")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "ORD-MBXK2J1T-7QX4N", id.String())
	})

	t.Run("round_trips_generated_identifiers", func(t *testing.T) {
		generated := kernel.NewOrderID()

		parsed, err := kernel.OrderIDFromString(generated.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(generated))
	})

	t.Run("rejects_invalid_identifiers", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
		}{
			{name: "missing_prefix", input: "MBXK2J1T-7QX4N"},
			{name: "lowercase", input: "ord-mbxk2j1t-7qx4n"},
			{name: "short_suffix", input: "ORD-MBXK2J1T-7QX"},
			{name: "long_suffix", input: "ORD-MBXK2J1T-7QX4N2"},
			{name: "missing_suffix", input: "ORD-MBXK2J1T"},
			{name: "garbage", input: "not-an-order-id"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.OrderIDFromString(tc.input)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("rejects_empty_string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.OrderID
		require.ErrorIs(t, id.Validate(), kernel.ErrOrderIDIsNotConstructed)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a := kernel.NewOrderID()
	b := kernel.NewOrderID()

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}
