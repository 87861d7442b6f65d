package clientconf

import "strings"

// Stage priorities. Lower values run earlier in the lookup chain, so
// internal aliases are preferred over legacy spellings when both apply.
// The relocation stage runs last and never participates in value lookups.
const (
	PriorityInternal = 590
	PriorityLegacy   = 595
	PriorityRelocate = 600
)

// stage is one named rewrite step in the canonicalization pipeline.
type stage struct {
	name     string
	priority int
	rewrite  func(string) string
	// fallback marks stages whose rewrites trigger a restarted lookup.
	// The relocation stage only rewrites enumerated key names.
	fallback bool
}

// splitAlias splits a canonical-prefixed name into its alias segment and
// the remainder beginning at the '.' separator. The alias is either a
// quoted segment (which may itself contain dots) or a single bare segment.
// ok is false when the name is outside the prefix or the alias is not
// followed by a '.' boundary, so a partial textual match such as "fooBar"
// against alias "foo" can never occur.
func splitAlias(prefix, name string) (alias, rest string, ok bool) {
	if !strings.HasPrefix(name, prefix) {
		return "", "", false
	}
	remainder := name[len(prefix):]

	var end int
	if strings.HasPrefix(remainder, `"`) {
		closing := strings.IndexByte(remainder[1:], '"')
		if closing < 0 {
			return "", "", false
		}
		end = closing + 2
	} else {
		end = strings.IndexByte(remainder, '.')
		if end <= 0 {
			return "", "", false
		}
	}

	if end >= len(remainder) || remainder[end] != '.' {
		return "", "", false
	}
	return remainder[:end], remainder[end:], true
}

// splitLegacy splits a legacy MicroProfile name of the form
// "client/mp-rest/property" into the client name and the property. The
// marker must immediately follow the first slash in the name.
func splitLegacy(name string) (client, property string, ok bool) {
	slash := strings.IndexByte(name, '/')
	if slash < 0 || !strings.HasPrefix(name[slash:], legacyMarker) {
		return "", "", false
	}
	return name[:slash], name[slash+len(legacyMarker):], true
}

// rewriteInternal rewrites one spelling of a canonical-prefixed key to the
// next spelling in the internal fallback chain. The property part of the
// name is carried over unchanged.
func (t *Tables) rewriteInternal(name string) string {
	alias, rest, ok := splitAlias(t.prefix, name)
	if !ok {
		return name
	}
	if target, found := t.internal[alias]; found {
		return t.prefix + target + rest
	}
	return name
}

// rewriteLegacy rewrites canonical-prefixed spellings to their legacy
// MicroProfile form, translating the trailing property name through the
// fixed table, and chains full-name legacy properties onto config-key
// legacy properties.
func (t *Tables) rewriteLegacy(name string) string {
	if alias, rest, ok := splitAlias(t.prefix, name); ok {
		if target, found := t.legacy[alias]; found {
			property := rest[1:]
			if legacy, known := propertyNames[property]; known {
				return target + legacy
			}
			return target + property
		}
		return name
	}

	if client, property, ok := splitLegacy(name); ok {
		if target, found := t.legacy[client+legacyMarker]; found {
			if _, known := propertyNames[property]; known {
				return target + property
			}
		}
	}
	return name
}

// relocate rewrites any recognized alias form, internal or legacy,
// straight to the canonical quoted-full-name spelling. It exists so that
// enumerated key names (map-valued properties) only ever surface
// canonically; unrecognized names pass through untouched.
func (t *Tables) relocate(name string) string {
	if alias, rest, ok := splitAlias(t.prefix, name); ok {
		if target, found := t.relocations[alias]; found {
			return t.prefix + target + rest
		}
		return name
	}

	if client, property, ok := splitLegacy(name); ok {
		if canonical, known := propertyNames[property]; known {
			return t.prefix + quoted(client) + "." + canonical
		}
	}
	return name
}
