package clientconf

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ValidatorFunc validates a fully built Resolver and returns an error if
// the configuration is unacceptable.
type ValidatorFunc func(r *Resolver) error

// Builder assembles a Resolver from registered clients and property
// sources using a fluent interface. Each Build call rebuilds the alias
// tables from scratch; nothing leaks between invocations.
type Builder struct {
	prefix     string
	clients    []RegisteredClient
	store      LookupStore
	sources    []*MapSource
	envPrefix  string
	useEnv     bool
	logger     zerolog.Logger
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new resolver builder with the default canonical
// prefix and a disabled logger.
func NewBuilder() *Builder {
	return &Builder{
		prefix: DefaultPrefix,
		logger: zerolog.Nop(),
	}
}

// WithPrefix overrides the canonical prefix. A trailing dot is appended if
// missing.
func (b *Builder) WithPrefix(prefix string) *Builder {
	if prefix != "" && prefix[len(prefix)-1] != '.' {
		prefix += "."
	}
	b.prefix = prefix
	return b
}

// WithClients registers the supplied clients in order.
func (b *Builder) WithClients(clients ...RegisteredClient) *Builder {
	b.clients = append(b.clients, clients...)
	return b
}

// WithClient registers a client from its full name and optional config key,
// deriving the simple name from the last segment of the full name.
func (b *Builder) WithClient(fullName, configKey string) *Builder {
	b.clients = append(b.clients, NewRegisteredClient(fullName, configKey))
	return b
}

// WithStore sets an externally owned lookup store. When set, it takes
// precedence over any sources added through WithSources, WithFile or
// WithEnv.
func (b *Builder) WithStore(store LookupStore) *Builder {
	b.store = store
	return b
}

// WithSources adds property sources to the built-in layered store.
func (b *Builder) WithSources(sources ...*MapSource) *Builder {
	b.sources = append(b.sources, sources...)
	return b
}

// WithFile adds a TOML, JSON or YAML property file as a source. A missing
// file is not fatal; Build reports it as ErrConfigNotFound alongside a
// usable resolver.
func (b *Builder) WithFile(path string) *Builder {
	src, err := NewFileSource(path)
	if err != nil {
		if b.err == nil || errors.Is(b.err, ErrConfigNotFound) {
			b.err = err
		}
		return b
	}
	b.sources = append(b.sources, src)
	return b
}

// WithEnv adds an environment variable source for the canonical properties
// of every registered client. The prefix is prepended to the transformed
// variable names.
func (b *Builder) WithEnv(prefix string) *Builder {
	b.useEnv = true
	b.envPrefix = prefix
	return b
}

// WithLogger sets the logger used during table construction.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithValidator adds a validation function that runs at the end of the
// build. Multiple validators execute in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build constructs the Resolver. Alias collisions between distinct clients
// and unreadable property files are fatal; a missing property file is
// reported as ErrConfigNotFound together with a usable resolver.
func (b *Builder) Build() (*Resolver, error) {
	if b.err != nil && !errors.Is(b.err, ErrConfigNotFound) {
		return nil, b.err
	}

	tables, err := buildAliases(b.prefix, b.clients)
	if err != nil {
		b.logger.Error().Err(err).Msg("alias table construction failed")
		return nil, err
	}

	store := b.store
	if store == nil {
		layered := NewStore(b.sources...)
		if b.useEnv {
			layered.Add(NewEnvSource(b.envPrefix, b.canonicalCandidates()))
		}
		store = layered
	}

	r := newResolver(tables, store, b.logger)

	for _, validator := range b.validators {
		if err := validator(r); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	b.logger.Debug().
		Int("clients", len(b.clients)).
		Int("relocations", len(tables.relocations)).
		Msg("built alias tables")

	// ErrConfigNotFound or nil
	return r, b.err
}

// MustBuild is like Build but panics on error. ErrConfigNotFound is not
// fatal; the resolver can proceed with the remaining sources.
func (b *Builder) MustBuild() *Resolver {
	r, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("resolver build failed: %v", err))
	}
	return r
}

// canonicalCandidates lists the canonical property names of every
// registered client, used to probe the environment.
func (b *Builder) canonicalCandidates() []string {
	names := make([]string, 0, len(b.clients)*len(canonicalProperties))
	for _, rc := range b.clients {
		root := b.prefix + quoted(rc.FullName) + "."
		for _, property := range canonicalProperties {
			names = append(names, root+property)
		}
	}
	return names
}

// Quick creates a resolver over a single property file with a single call.
// This is the recommended way to initialize resolution for most
// applications.
func Quick(path string, clients ...RegisteredClient) (*Resolver, error) {
	return NewBuilder().
		WithClients(clients...).
		WithFile(path).
		Build()
}
