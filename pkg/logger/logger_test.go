package logger_test

import (
	"context"
	"testing"

	"orgdomain/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantErr     bool
		wantLevel   zapcore.Level
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, wantLevel: zap.DebugLevel},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, wantLevel: zap.InfoLevel},
		{name: "level override", environment: logger.ProductionEnvironment, level: "warn", wantLevel: zap.WarnLevel},
		{name: "invalid level", environment: logger.DevelopmentEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantLevel, logger.Get(context.Background()).Level())
		})
	}
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("domainName", "example.com"))
	logger.Info(ctx, "checked")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "checked", entries[0].Message)
	require.Equal(t, "example.com", entries[0].ContextMap()["domainName"])
}
