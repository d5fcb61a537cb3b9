package commands_test

import (
	"testing"

	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/commands"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkDeliveredCommand_ValidInput(t *testing.T) {
	id := kernel.NewOrderID()
	cmd, err := commands.NewMarkDeliveredCommand(id)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, id.IsEqual(cmd.OrderID()))
}

func TestNewMarkDeliveredCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewMarkDeliveredCommand(kernel.OrderID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}

func TestMarkDeliveredCommand_NotConstructed(t *testing.T) {
	cmd := commands.MarkDeliveredCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMarkDeliveredCommandIsNotConstructed)
}
