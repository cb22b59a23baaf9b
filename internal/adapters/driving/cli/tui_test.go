package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Metadata(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
	assert.Contains(t, tuiCmd.Long, "Sync all linked accounts")
}

func TestTUICmd_ServicesNotConfigured(t *testing.T) {
	withServices(t, Services{Sync: &mockSyncOrchestrator{}})

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "services not configured")
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	withServices(t, Services{})

	_, err := execute(t, "tui", "extra")

	assert.Error(t, err)
}
