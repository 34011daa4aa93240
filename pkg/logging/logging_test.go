package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupAndVerbosity(t *testing.T) {
	require.NoError(t, Setup(false, "gcont", "test"))
	require.NotNil(t, Logger)
	require.False(t, Logger.Core().Enabled(zap.DebugLevel))

	SetVerbose(true)
	require.True(t, Logger.Core().Enabled(zap.DebugLevel))

	SetVerbose(false)
	require.False(t, Logger.Core().Enabled(zap.DebugLevel))
}
