package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_ValidConfig(t *testing.T) {
	configContent := `
env: test
client:
  base_url: "http://localhost:9000/api"
  timeout: 10s
  credential_file: "/tmp/valuer-test/credential.json"
devstub:
  address: ":9000"
  timeouthttp: 5s
  idle_timeout: 30s
  jwt_secret_key: "test_secret_key"
  token_ttl: 24h
  rate_limit: 5
  rate_burst: 10
`

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		err = os.Remove(tmpFile.Name())
		require.NoError(t, err)
	}()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	t.Setenv("CONFIG_PATH", tmpFile.Name())

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "http://localhost:9000/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/valuer-test/credential.json", cfg.CredentialFile)
	assert.Equal(t, ":9000", cfg.Address)
	assert.Equal(t, "test_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5.0, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateBurst)
}

func TestMustLoad_EnvFallback(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("BASE_URL", "http://localhost:8082/api")

	cfg := MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "http://localhost:8082/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, ":8082", cfg.Address)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.NotEmpty(t, cfg.CredentialFile, "credential file gets a per-user default")
}

func TestConfig_String(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg := MustLoad()

	s := cfg.String()
	assert.Contains(t, s, "Env: local")
	assert.Contains(t, s, cfg.BaseURL)
}
