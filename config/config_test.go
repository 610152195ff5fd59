package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, "5000", cfg.Server.HTTPPort)
	assert.Equal(t, "9090", cfg.Handlers.Prometheus.Port)
	assert.Equal(t, "http://localhost:3001", cfg.Upstream.NodeServerURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.Upstream.GeminiModel)
	assert.Equal(t, 10*time.Second, cfg.Upstream.SaveTimeout)
	assert.False(t, cfg.Upstream.SaveWarnings)
	assert.Equal(t, "pdflatex", cfg.Renderer.LatexBin)
	assert.Equal(t, 30*time.Second, cfg.Renderer.LatexTimeout)
	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.Geocoder.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
}
