package clientconf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanClient(t *testing.T) {
	foo := NewRegisteredClient("com.acme.FooClient", "foo-key")

	t.Run("ValuesFromMixedSpellings", func(t *testing.T) {
		// url under the canonical name, readTimeout under the config key,
		// connect-timeout under the legacy convention.
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			`quarkus.rest-client."com.acme.FooClient".url`: "http://x",
			"quarkus.rest-client.foo-key.readTimeout":      "2s",
			"com.acme.FooClient/mp-rest/connect-timeout":   "250ms",
			"quarkus.rest-client.FooClient.providers":      "a,b",
			"quarkus.rest-client.FooClient.verifyHost":     "true",
		}))
		resolver := testResolver(t, store, foo)

		var cfg ClientConfig
		require.NoError(t, resolver.ScanClient("com.acme.FooClient", &cfg))

		assert.Equal(t, "http://x", cfg.URL)
		assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 250*time.Millisecond, cfg.ConnectTimeout)
		assert.Equal(t, []string{"a", "b"}, cfg.Providers)
		assert.True(t, cfg.VerifyHost)
	})

	t.Run("AbsentPropertiesLeaveZeroValues", func(t *testing.T) {
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			"quarkus.rest-client.FooClient.url": "http://only-url",
		}))
		resolver := testResolver(t, store, foo)

		var cfg ClientConfig
		require.NoError(t, resolver.ScanClient("com.acme.FooClient", &cfg))

		assert.Equal(t, "http://only-url", cfg.URL)
		assert.Zero(t, cfg.ConnectTimeout)
		assert.Empty(t, cfg.TrustStore)
	})

	t.Run("DecodeIntoMap", func(t *testing.T) {
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			"quarkus.rest-client.FooClient.url":   "http://x",
			"quarkus.rest-client.FooClient.scope": "singleton",
		}))
		resolver := testResolver(t, store, foo)

		cfg := make(map[string]any)
		require.NoError(t, resolver.ScanClient("com.acme.FooClient", &cfg))

		assert.Equal(t, "http://x", cfg["url"])
		assert.Equal(t, "singleton", cfg["scope"])
	})

	t.Run("InvalidDurationFails", func(t *testing.T) {
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			"quarkus.rest-client.FooClient.connectTimeout": "not-a-duration",
		}))
		resolver := testResolver(t, store, foo)

		var cfg ClientConfig
		err := resolver.ScanClient("com.acme.FooClient", &cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "com.acme.FooClient")
	})
}
