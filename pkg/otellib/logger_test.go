package otellib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestExtract__Logger_From_Context(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx := ToContext(context.Background(), logger)
	Extract(ctx).Info("campaign transitioned")

	entries := observed.All()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "campaign transitioned", entries[0].Message)

	fields := entries[0].ContextMap()
	_, ok := fields[traceIDField]
	assert.Equal(t, true, ok)
	_, ok = fields[spanIDField]
	assert.Equal(t, true, ok)
	_, ok = fields[traceFlagsField]
	assert.Equal(t, true, ok)
}

func TestExtract__No_Logger_In_Context(t *testing.T) {
	logger := Extract(context.Background())
	assert.NotNil(t, logger)

	// nop logger, logging must not panic
	logger.Info("dropped")
}
