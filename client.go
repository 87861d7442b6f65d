package clientconf

import "strings"

// RegisteredClient describes one externally registered client that needs
// configuration. Instances are supplied by a build-time discovery
// collaborator and are read-only once the alias tables have been built.
type RegisteredClient struct {
	// FullName is the globally unique identifier of the client, typically a
	// fully qualified interface name such as "com.acme.FooClient".
	FullName string

	// SimpleName is the short, possibly ambiguous identifier, typically the
	// last segment of FullName.
	SimpleName string

	// ConfigKey is the user-declared override key. Empty means no key was
	// declared.
	ConfigKey string
}

// NewRegisteredClient builds a RegisteredClient from a full name and an
// optional config key, deriving the simple name from the last dot-separated
// segment of the full name.
func NewRegisteredClient(fullName, configKey string) RegisteredClient {
	simple := fullName
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		simple = fullName[i+1:]
	}
	return RegisteredClient{
		FullName:   fullName,
		SimpleName: simple,
		ConfigKey:  configKey,
	}
}

// configKeyEqualsNames reports whether the config key coincides with one of
// the client names, in which case the key-specific alias rules are
// redundant and suppressed.
func (c RegisteredClient) configKeyEqualsNames() bool {
	return c.ConfigKey == c.FullName || c.ConfigKey == c.SimpleName
}

// configKeyComposed reports whether the config key contains structural
// separators and must therefore be quoted as a whole instead of being used
// as a bare segment.
func (c RegisteredClient) configKeyComposed() bool {
	return strings.ContainsAny(c.ConfigKey, "./")
}
