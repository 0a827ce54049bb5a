package tls

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDisabledSource(t *testing.T) {
	src, err := NewSource(context.Background(), &TLSConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, src)

	assert.Nil(t, src.ServerConfig())
	client := src.HTTPClient()
	require.NotNil(t, client)
	assert.Nil(t, client.Transport)
	assert.NoError(t, src.Close())
}
