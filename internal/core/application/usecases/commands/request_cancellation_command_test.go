package commands_test

import (
	"testing"

	"foodadmin/internal/core/application/usecases/commands"
	"foodadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestCancellationCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRequestCancellationCommand(id, "ordered by mistake")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "ordered by mistake", cmd.Reason())
}

func TestNewRequestCancellationCommand_EmptyReason(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewRequestCancellationCommand(id, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
}

func TestNewRequestCancellationCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewRequestCancellationCommand(invalidID, "ordered by mistake")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
