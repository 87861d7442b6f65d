package clientconf

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ClientConfig is the typed view of one client's canonical configuration.
// Field tags use the canonical property spellings; legacy hyphenated
// properties are translated before decoding ever sees them.
type ClientConfig struct {
	URL                string        `toml:"url"`
	URI                string        `toml:"uri"`
	Scope              string        `toml:"scope"`
	Providers          []string      `toml:"providers"`
	ConnectTimeout     time.Duration `toml:"connectTimeout"`
	ReadTimeout        time.Duration `toml:"readTimeout"`
	FollowRedirects    bool          `toml:"followRedirects"`
	ProxyAddress       string        `toml:"proxyAddress"`
	QueryParamStyle    string        `toml:"queryParamStyle"`
	HostnameVerifier   string        `toml:"hostnameVerifier"`
	VerifyHost         bool          `toml:"verifyHost"`
	TrustStore         string        `toml:"trustStore"`
	TrustStorePassword string        `toml:"trustStorePassword"`
	TrustStoreType     string        `toml:"trustStoreType"`
	KeyStore           string        `toml:"keyStore"`
	KeyStorePassword   string        `toml:"keyStorePassword"`
	KeyStoreType       string        `toml:"keyStoreType"`
}

// ScanClient resolves every known property under the named client's
// canonical root and decodes the result into target, which must be a
// non-nil pointer to a struct or map. Resolution walks the full fallback
// chain, so values supplied under any alias spelling land in the struct.
func (r *Resolver) ScanClient(fullName string, target any) error {
	root := r.prefix + quoted(fullName) + "."

	resolved := make(map[string]any)
	for _, property := range canonicalProperties {
		if v, ok := r.Resolve(root + property); ok {
			resolved[property] = v.Value
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(resolved); err != nil {
		return fmt.Errorf("failed to decode configuration for client %q: %w", fullName, err)
	}

	return nil
}
