package clientconf

import (
	"sort"

	"github.com/rs/zerolog"
)

// ConfigValue is a resolved configuration value together with the source
// that produced it.
type ConfigValue struct {
	// Name is the lookup name the value is attributed to. Resolution always
	// relabels the winning value with the originally requested name, so the
	// aliased spelling never leaks to the caller.
	Name string

	// Value is the raw string value.
	Value string

	// Source is the name of the property source that produced the value.
	Source string

	// Ordinal is the priority rank of the source. Higher ordinals win
	// arbitration between equivalent keys.
	Ordinal int
}

func (v ConfigValue) withName(name string) ConfigValue {
	v.Name = name
	return v
}

// LookupStore is the lookup-by-name primitive the resolver arbitrates over.
// Implementations must be safe for concurrent reads if the resolver is
// shared between goroutines.
type LookupStore interface {
	// Lookup returns the value for an exact name, if any source defines it.
	Lookup(name string) (ConfigValue, bool)
}

// PropertyLister is optionally implemented by stores that can enumerate
// their property names. It enables CanonicalKeys, which is how map-valued
// configuration discovers its entries.
type PropertyLister interface {
	PropertyNames() []string
}

// Resolver resolves any recognized spelling of a client configuration key
// to one canonical value. It is immutable once built.
type Resolver struct {
	prefix string
	tables *Tables
	stages []stage
	store  LookupStore
	logger zerolog.Logger
}

func newResolver(tables *Tables, store LookupStore, logger zerolog.Logger) *Resolver {
	stages := []stage{
		{name: "internal-fallback", priority: PriorityInternal, rewrite: tables.rewriteInternal, fallback: true},
		{name: "legacy-fallback", priority: PriorityLegacy, rewrite: tables.rewriteLegacy, fallback: true},
		{name: "relocate", priority: PriorityRelocate, rewrite: tables.relocate},
	}
	// Ordering is explicit configuration, not a registration side effect.
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].priority < stages[j].priority
	})
	return &Resolver{
		prefix: tables.prefix,
		tables: tables,
		stages: stages,
		store:  store,
		logger: logger,
	}
}

// Resolve looks up name directly and through every equivalent spelling,
// arbitrating between sources by ordinal. The returned value, if present,
// is always attributed to the requested name. Absent configuration is a
// normal result, not an error.
func (r *Resolver) Resolve(name string) (ConfigValue, bool) {
	v, ok := r.proceed(0, name)
	if !ok {
		return ConfigValue{}, false
	}
	return v.withName(name), true
}

// proceed runs the lookup chain from stage i for the given name. Each
// fallback stage combines the direct result of the remaining chain with a
// restarted lookup of the rewritten name: the restart re-enters the whole
// chain so the rewritten name is itself eligible for further rewriting,
// which is what walks multi-hop chains such as "simple" -> key -> "key".
//
// Recursion is bounded: the alias tables are acyclic by construction, and
// every hop strictly advances toward a terminal spelling.
func (r *Resolver) proceed(i int, name string) (ConfigValue, bool) {
	if i >= len(r.stages) {
		return r.store.Lookup(name)
	}

	st := r.stages[i]
	direct, directOK := r.proceed(i+1, name)
	if !st.fallback {
		return direct, directOK
	}

	mapped := st.rewrite(name)
	if mapped == name {
		return direct, directOK
	}

	fallback, fallbackOK := r.proceed(0, mapped)
	switch {
	case directOK && fallbackOK:
		// The higher-ordinal source wins; on a tie the direct value wins so
		// defaults registered under the alias cannot shadow the main name.
		if fallback.Ordinal > direct.Ordinal {
			return fallback.withName(name), true
		}
		return direct, true
	case directOK:
		return direct, true
	case fallbackOK:
		return fallback.withName(name), true
	}
	return ConfigValue{}, false
}

// Rewrite applies the fallback stages' combined mapping to name without
// touching the store: the first stage, in priority order, that recognizes
// the name decides the rewrite. Unrecognized names are returned unchanged.
func (r *Resolver) Rewrite(name string) string {
	for _, st := range r.stages {
		if !st.fallback {
			continue
		}
		if mapped := st.rewrite(name); mapped != name {
			return mapped
		}
	}
	return name
}

// Relocate rewrites any recognized alias form straight to its canonical
// spelling. Unrecognized names pass through untouched.
func (r *Resolver) Relocate(name string) string {
	return r.tables.relocate(name)
}

// CanonicalKeys enumerates every property name the store exposes, relocated
// to canonical form and deduplicated. It returns nil when the store cannot
// enumerate its names.
func (r *Resolver) CanonicalKeys() []string {
	lister, ok := r.store.(PropertyLister)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var keys []string
	for _, name := range lister.PropertyNames() {
		canonical := r.tables.relocate(name)
		if !seen[canonical] {
			seen[canonical] = true
			keys = append(keys, canonical)
		}
	}
	sort.Strings(keys)
	return keys
}

// ClientNames returns the full names of all registered clients in
// registration order.
func (r *Resolver) ClientNames() []string {
	return r.tables.Keys()
}
