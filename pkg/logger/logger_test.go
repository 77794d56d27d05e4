package logger

import (
	"testing"

	"github.com/lintang-b-s/grasp-maxcut/pkg/logger/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Cleanup(viper.Reset)

	log, err := New()
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	viper.Set("LOG_LEVEL", config.DEBUG_LEVEL)
	log, err = New()
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	viper.Set("LOG_LEVEL", 42)
	_, err = New()
	assert.Error(t, err)
}
