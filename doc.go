// Package clientconf resolves layered configuration keys for externally
// registered clients, where one logical setting may be spelled under many
// equivalent names: the fully qualified interface name (quoted or not), the
// simple name, a user-declared config key, or the legacy MicroProfile
// `/mp-rest/` property convention.
//
// Features:
//   - Alias tables built once per builder invocation from the registered
//     client list, immutable afterwards
//   - Ordered rewrite stages with explicit priorities (internal fallback,
//     legacy fallback, relocation)
//   - Ordinal-based arbitration when multiple sources define equivalent keys
//   - Layered property sources: in-memory maps, TOML/JSON/YAML files,
//     environment variables
//   - Builder pattern for easy initialization
//   - Typed per-client decoding via mapstructure
//
// Quick Start:
//
//	store := clientconf.NewStore(
//	    clientconf.NewMapSource("app", clientconf.OrdinalDefault, map[string]string{
//	        `quarkus.rest-client."com.acme.FooClient".url`: "http://localhost:8080",
//	    }),
//	)
//
//	resolver, err := clientconf.NewBuilder().
//	    WithClient("com.acme.FooClient", "").
//	    WithStore(store).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// All spellings resolve to the same value.
//	v, _ := resolver.Resolve("quarkus.rest-client.FooClient.url")
//
// Lookup order for a registered client:
//  1. quarkus.rest-client."[full name]".*
//  2. quarkus.rest-client.[simple name].*
//  3. quarkus.rest-client."[simple name]".*
//  4. quarkus.rest-client.[config key].*
//  5. quarkus.rest-client."[config key]".*
//  6. [full name]/mp-rest/*
//  7. [config key]/mp-rest/*
//
// The full name has priority over the config key. When two sources define
// equivalent keys the one with the higher ordinal wins; on a tie the
// directly requested spelling wins, so defaults registered under an alias
// cannot shadow the canonical name.
//
// Thread Safety:
// A Resolver is immutable once built. Resolution is a pure function of the
// alias tables and the lookup store and may be called concurrently as long
// as the store supports concurrent reads.
package clientconf
