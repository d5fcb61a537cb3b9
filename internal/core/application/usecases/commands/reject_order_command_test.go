package commands_test

import (
	"testing"

	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/commands"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewOrderID()
	cmd, err := commands.NewRejectOrderCommand(id)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, id.IsEqual(cmd.OrderID()))
}

func TestNewRejectOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRejectOrderCommand(kernel.OrderID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}

func TestRejectOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.RejectOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRejectOrderCommandIsNotConstructed)
}
