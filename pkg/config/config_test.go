package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "STATIC_DIR", "STATIC_URL_PATH", "LOG_REQUESTS"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "", cfg.StaticDir)
	assert.Equal(t, "/static", cfg.StaticURLPath)
	assert.True(t, cfg.LogRequests)
	assert.Equal(t, "127.0.0.1:5000", cfg.Address())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")
	t.Setenv("STATIC_DIR", "/srv/www")
	t.Setenv("STATIC_URL_PATH", "/assets")
	t.Setenv("LOG_REQUESTS", "off")

	cfg := FromEnv()
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "/srv/www", cfg.StaticDir)
	assert.Equal(t, "/assets", cfg.StaticURLPath)
	assert.False(t, cfg.LogRequests)
}

// 非法值回退到默认值
func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("LOG_REQUESTS", "maybe")

	cfg := FromEnv()
	assert.Equal(t, 5000, cfg.Port)
	assert.True(t, cfg.LogRequests)
}
