package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path", func(t *testing.T) {
		c, err := LoadCredentials("")
		require.NoError(t, err)
		assert.Equal(t, Credentials{}, c)
	})

	t.Run("numeric port", func(t *testing.T) {
		p := filepath.Join(dir, "num.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"host":"db","port":3307,"user":"host","password":"pw","database":"restaurant"}`), 0o600))
		c, err := LoadCredentials(p)
		require.NoError(t, err)
		assert.Equal(t, "db", c.Host)
		assert.Equal(t, "host", c.User)
		assert.Equal(t, "pw", c.Password)
		assert.Equal(t, "restaurant", c.Database)
		assert.Equal(t, "3307", c.portOr("3306"))
	})

	t.Run("string port", func(t *testing.T) {
		p := filepath.Join(dir, "str.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"port":"3308"}`), 0o600))
		c, err := LoadCredentials(p)
		require.NoError(t, err)
		assert.Equal(t, "3308", c.portOr("3306"))
	})

	t.Run("missing port", func(t *testing.T) {
		assert.Equal(t, "3306", Credentials{}.portOr("3306"))
	})

	t.Run("malformed", func(t *testing.T) {
		p := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(p, []byte(`{`), 0o600))
		_, err := LoadCredentials(p)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCredentials(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestLoadEnvOverridesCredentials(t *testing.T) {
	p := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"host":"filehost","user":"fileuser","database":"filedb","port":3310}`), 0o600))
	t.Setenv("DB_CREDENTIALS_FILE", p)
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_QUERY_TIMEOUT", "250ms")
	t.Setenv("APP_PORT", "")

	cfg := Load()
	assert.Equal(t, "envhost", cfg.DBHost)
	assert.Equal(t, "fileuser", cfg.DBUser)
	assert.Equal(t, "filedb", cfg.DBName)
	assert.Equal(t, "3310", cfg.DBPort)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.DBQueryTimeout)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("WL_BOOL", "off")
	t.Setenv("WL_INT", "x")
	t.Setenv("WL_DUR", "2m")
	assert.False(t, envBool("WL_BOOL", true))
	assert.True(t, envBool("WL_UNSET_BOOL", true))
	assert.Equal(t, 7, envInt("WL_INT", 7))
	assert.Equal(t, 2*time.Minute, envDur("WL_DUR", time.Second))
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, parseMethods(" get, HEAD ,"))
}

func TestRateLimitNormalize(t *testing.T) {
	c := RateLimitConfig{Capacity: 0, RefillTokens: -1, RefillInterval: 0, TTL: time.Second}.normalize()
	assert.Equal(t, 1, c.Capacity)
	assert.Equal(t, 1, c.RefillTokens)
	assert.Equal(t, time.Second, c.RefillInterval)
	assert.Equal(t, 5*time.Second, c.TTL)
}

func TestLoadEventsConfig(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://u:p@mq:5672/")
	t.Setenv("EVENTS_ENABLED", "true")
	c := LoadEventsConfig()
	assert.True(t, c.Enabled)
	assert.Equal(t, "amqp://u:p@mq:5672/", c.URL)
	assert.Equal(t, "waitlist.events", c.Queue)
}
