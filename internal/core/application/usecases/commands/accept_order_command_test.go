package commands_test

import (
	"testing"

	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/commands"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewOrderID()
	cmd, err := commands.NewAcceptOrderCommand(id)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, id.IsEqual(cmd.OrderID()))
}

func TestNewAcceptOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(kernel.OrderID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}

func TestAcceptOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.AcceptOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
}
