package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "changed my mind", cmd.Reason())
}

func TestNewCancelOrderCommand_EmptyReasonIsAllowed(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
