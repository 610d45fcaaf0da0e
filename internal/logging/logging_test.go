package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knapsack/internal/logging"
)

func TestNew(t *testing.T) {
	for _, format := range []string{logging.FormatConsole, logging.FormatJSON, ""} {
		log, err := logging.New("warn", format)
		require.NoError(t, err, format)
		require.False(t, log.Core().Enabled(zapcore.InfoLevel), format)
		require.True(t, log.Core().Enabled(zapcore.ErrorLevel), format)
	}

	_, err := logging.New("loud", logging.FormatJSON)
	require.Error(t, err)

	_, err = logging.New("info", "xml")
	require.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestNewTestLogger(t *testing.T) {
	log := logging.NewTestLogger()
	require.False(t, log.Core().Enabled(zapcore.ErrorLevel))
	log.Info("discarded")
}
