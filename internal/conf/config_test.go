package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: 127.0.0.1
  port: 9090
log:
  level: debug
  format: console
  output: console
search:
  api_host: http://localhost:8181
  timeout: 3s
ai:
  api_key: sk-test
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "http://localhost:8181", config.Search.APIHost)
	assert.Equal(t, 3*time.Second, config.Search.Timeout)
	assert.Equal(t, "sk-test", config.AI.APIKey)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
ai:
  api_key: ""
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "https://api.duckduckgo.com", config.Search.APIHost)
	assert.Equal(t, 10*time.Second, config.Search.Timeout)
	assert.Empty(t, config.AI.APIKey)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
