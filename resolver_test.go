package clientconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(t *testing.T, store LookupStore, clients ...RegisteredClient) *Resolver {
	t.Helper()
	resolver, err := NewBuilder().
		WithClients(clients...).
		WithStore(store).
		Build()
	require.NoError(t, err)
	return resolver
}

// TestResolveFallbacks covers the lookup scenarios of the fallback chain
func TestResolveFallbacks(t *testing.T) {
	foo := NewRegisteredClient("com.acme.FooClient", "")

	t.Run("SimpleNameResolvesForCanonicalRequest", func(t *testing.T) {
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			"quarkus.rest-client.FooClient.url": "http://x",
		}))
		resolver := testResolver(t, store, foo)

		v, ok := resolver.Resolve(`quarkus.rest-client."com.acme.FooClient".url`)
		require.True(t, ok)
		assert.Equal(t, "http://x", v.Value)
		assert.Equal(t, `quarkus.rest-client."com.acme.FooClient".url`, v.Name)

		// The simple-name spelling resolves to the identical value.
		v2, ok := resolver.Resolve("quarkus.rest-client.FooClient.url")
		require.True(t, ok)
		assert.Equal(t, v.Value, v2.Value)
		assert.Equal(t, "quarkus.rest-client.FooClient.url", v2.Name)
	})

	t.Run("LegacyPropertyResolvesUnderCanonicalName", func(t *testing.T) {
		store := NewStore(NewMapSource("mp", OrdinalDefault, map[string]string{
			"com.acme.FooClient/mp-rest/connect-timeout": "500",
		}))
		resolver := testResolver(t, store, foo)

		v, ok := resolver.Resolve(`quarkus.rest-client."com.acme.FooClient".connectTimeout`)
		require.True(t, ok)
		assert.Equal(t, "500", v.Value)
		assert.Equal(t, `quarkus.rest-client."com.acme.FooClient".connectTimeout`, v.Name)
	})

	t.Run("ConfigKeyAndQuotedSimpleNameAreEquivalent", func(t *testing.T) {
		keyed := NewRegisteredClient("com.acme.FooClient", "foo-key")
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			"quarkus.rest-client.foo-key.readTimeout": "2s",
		}))
		resolver := testResolver(t, store, keyed)

		v1, ok := resolver.Resolve("quarkus.rest-client.foo-key.readTimeout")
		require.True(t, ok)
		v2, ok := resolver.Resolve(`quarkus.rest-client."FooClient".readTimeout`)
		require.True(t, ok)
		assert.Equal(t, "2s", v1.Value)
		assert.Equal(t, v1.Value, v2.Value)
	})

	t.Run("UnrecognizedNameIsADirectLookup", func(t *testing.T) {
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			"quarkus.http.port": "8081",
		}))
		resolver := testResolver(t, store, foo)

		assert.Equal(t, "quarkus.http.port", resolver.Rewrite("quarkus.http.port"))

		v, ok := resolver.Resolve("quarkus.http.port")
		require.True(t, ok)
		assert.Equal(t, "8081", v.Value)
		assert.Equal(t, "quarkus.http.port", v.Name)

		_, ok = resolver.Resolve("quarkus.http.host")
		assert.False(t, ok)
	})

	t.Run("MultiHopChainIsFullyWalked", func(t *testing.T) {
		keyed := NewRegisteredClient("com.acme.FooClient", "foo-key")
		// Only the terminal quoted-config-key spelling has a value.
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			`quarkus.rest-client."foo-key".readTimeout`: "3s",
		}))
		resolver := testResolver(t, store, keyed)

		// simple -> "simple" -> key -> "key"
		v, ok := resolver.Resolve("quarkus.rest-client.FooClient.readTimeout")
		require.True(t, ok)
		assert.Equal(t, "3s", v.Value)
		assert.Equal(t, "quarkus.rest-client.FooClient.readTimeout", v.Name)
	})

	t.Run("AbsentIsNotAnError", func(t *testing.T) {
		resolver := testResolver(t, NewStore(), foo)
		v, ok := resolver.Resolve(`quarkus.rest-client."com.acme.FooClient".url`)
		assert.False(t, ok)
		assert.Zero(t, v)
	})
}

// TestResolveArbitration covers the ordinal comparison between a direct
// value and a fallback value for equivalent keys
func TestResolveArbitration(t *testing.T) {
	foo := NewRegisteredClient("com.acme.FooClient", "foo-key")

	t.Run("HigherOrdinalWins", func(t *testing.T) {
		store := NewStore(
			NewMapSource("low", 50, map[string]string{
				`quarkus.rest-client."FooClient".readTimeout`: "low",
			}),
			NewMapSource("high", 100, map[string]string{
				"quarkus.rest-client.foo-key.readTimeout": "high",
			}),
		)
		resolver := testResolver(t, store, foo)

		// Requesting either alias returns the higher-ordinal source's value.
		v, ok := resolver.Resolve(`quarkus.rest-client."FooClient".readTimeout`)
		require.True(t, ok)
		assert.Equal(t, "high", v.Value)
		assert.Equal(t, "high", v.Source)

		v, ok = resolver.Resolve("quarkus.rest-client.foo-key.readTimeout")
		require.True(t, ok)
		assert.Equal(t, "high", v.Value)
	})

	t.Run("DirectWinsOnTie", func(t *testing.T) {
		store := NewStore(
			NewMapSource("direct", 100, map[string]string{
				"quarkus.rest-client.FooClient.url": "direct",
			}),
			NewMapSource("fallback", 100, map[string]string{
				`quarkus.rest-client."FooClient".url`: "fallback",
			}),
		)
		resolver := testResolver(t, store, foo)

		v, ok := resolver.Resolve("quarkus.rest-client.FooClient.url")
		require.True(t, ok)
		assert.Equal(t, "direct", v.Value)
	})

	t.Run("FallbackValueIsRelabeled", func(t *testing.T) {
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			"com.acme.FooClient/mp-rest/url": "http://legacy",
		}))
		resolver := testResolver(t, store, foo)

		requested := `quarkus.rest-client."com.acme.FooClient".url`
		v, ok := resolver.Resolve(requested)
		require.True(t, ok)
		assert.Equal(t, requested, v.Name, "aliased name must not leak to the caller")
		assert.Equal(t, "http://legacy", v.Value)
	})

	t.Run("InternalAliasBeatsLowerOrdinalLegacy", func(t *testing.T) {
		store := NewStore(
			NewMapSource("internal", 300, map[string]string{
				"quarkus.rest-client.FooClient.url": "internal",
			}),
			NewMapSource("legacy", 100, map[string]string{
				"com.acme.FooClient/mp-rest/url": "legacy",
			}),
		)
		resolver := testResolver(t, store, foo)

		v, ok := resolver.Resolve(`quarkus.rest-client."com.acme.FooClient".url`)
		require.True(t, ok)
		assert.Equal(t, "internal", v.Value)

		// The legacy spelling still resolves on its own.
		v, ok = resolver.Resolve("com.acme.FooClient/mp-rest/url")
		require.True(t, ok)
		assert.Equal(t, "legacy", v.Value)
	})
}

func TestCanonicalKeys(t *testing.T) {
	foo := NewRegisteredClient("com.acme.FooClient", "")

	t.Run("AliasedNamesSurfaceCanonically", func(t *testing.T) {
		store := NewStore(NewMapSource("app", OrdinalDefault, map[string]string{
			`quarkus.rest-client."com.acme.FooClient".url`: "a",
			"quarkus.rest-client.FooClient.url":            "b",
			"com.acme.FooClient/mp-rest/connect-timeout":   "c",
			"quarkus.http.port":                            "d",
		}))
		resolver := testResolver(t, store, foo)

		assert.Equal(t, []string{
			"quarkus.http.port",
			`quarkus.rest-client."com.acme.FooClient".connectTimeout`,
			`quarkus.rest-client."com.acme.FooClient".url`,
		}, resolver.CanonicalKeys())
	})

	t.Run("NilWithoutEnumeration", func(t *testing.T) {
		resolver := testResolver(t, lookupOnlyStore{}, foo)
		assert.Nil(t, resolver.CanonicalKeys())
	})

	t.Run("ClientNames", func(t *testing.T) {
		resolver := testResolver(t, NewStore(), foo)
		assert.Equal(t, []string{"com.acme.FooClient"}, resolver.ClientNames())
	})
}

// lookupOnlyStore implements LookupStore without PropertyLister.
type lookupOnlyStore struct{}

func (lookupOnlyStore) Lookup(string) (ConfigValue, bool) {
	return ConfigValue{}, false
}
