package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/art-space/artspace/internal/config"
	"github.com/art-space/artspace/internal/logger"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}
