package clientconf

// DefaultPrefix is the canonical prefix under which every client's quoted
// full-name configuration lives. Any name outside this prefix is only
// subject to plain legacy matching.
const DefaultPrefix = "quarkus.rest-client."

// legacyMarker separates a client name from a property in the legacy
// MicroProfile convention, e.g. "com.acme.FooClient/mp-rest/url".
const legacyMarker = "/mp-rest/"

// propertyNames is the fixed translation table between legacy hyphenated
// property names and their canonical camel-case counterparts. The table is
// part of the wire format: it maps both directions and must not be derived
// from registration data.
var propertyNames = map[string]string{
	"url":       "url",
	"uri":       "uri",
	"scope":     "scope",
	"providers": "providers",

	"connect-timeout":      "connectTimeout",
	"read-timeout":         "readTimeout",
	"follow-redirects":     "followRedirects",
	"proxy-address":        "proxyAddress",
	"query-param-style":    "queryParamStyle",
	"hostname-verifier":    "hostnameVerifier",
	"verify-host":          "verifyHost",
	"trust-store":          "trustStore",
	"trust-store-password": "trustStorePassword",
	"trust-store-type":     "trustStoreType",
	"key-store":            "keyStore",
	"key-store-password":   "keyStorePassword",
	"key-store-type":       "keyStoreType",

	"connectTimeout":     "connect-timeout",
	"readTimeout":        "read-timeout",
	"followRedirects":    "follow-redirects",
	"proxyAddress":       "proxy-address",
	"queryParamStyle":    "query-param-style",
	"hostnameVerifier":   "hostname-verifier",
	"verifyHost":         "verify-host",
	"trustStore":         "trust-store",
	"trustStorePassword": "trust-store-password",
	"trustStoreType":     "trust-store-type",
	"keyStore":           "key-store",
	"keyStorePassword":   "key-store-password",
	"keyStoreType":       "key-store-type",
}

// canonicalProperties lists the canonical spelling of every known client
// property, used when scanning a client's configuration into a struct.
var canonicalProperties = []string{
	"url",
	"uri",
	"scope",
	"providers",
	"connectTimeout",
	"readTimeout",
	"followRedirects",
	"proxyAddress",
	"queryParamStyle",
	"hostnameVerifier",
	"verifyHost",
	"trustStore",
	"trustStorePassword",
	"trustStoreType",
	"keyStore",
	"keyStorePassword",
	"keyStoreType",
}

// quoted wraps a name in double quotes, the canonical spelling for segments
// that contain structural separators.
func quoted(name string) string {
	return `"` + name + `"`
}
