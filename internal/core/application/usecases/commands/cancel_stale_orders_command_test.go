package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cmd.OlderThan())
}

func TestNewCancelStaleOrdersCommand_InvalidDuration(t *testing.T) {
	for _, olderThan := range []time.Duration{0, -time.Minute} {
		_, err := commands.NewCancelStaleOrdersCommand(olderThan)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOlderThanIsInvalid)
	}
}

func TestCancelStaleOrdersCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.CancelStaleOrdersCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelStaleOrdersCommandIsNotConstructed)
}
