package clientconf

import "fmt"

// Tables holds the rewrite tables produced from one registration pass. The
// tables are built synchronously at the start of a builder invocation and
// are immutable afterwards; there is no process-wide registry.
type Tables struct {
	prefix string

	// internal maps one spelling of a client key to the next spelling in
	// the internal fallback chain:
	// "full" -> simple -> "simple" -> key -> "key".
	internal map[string]string

	// legacy maps spellings to their legacy MicroProfile counterparts:
	// "full" -> full/mp-rest/ -> key/mp-rest/.
	legacy map[string]string

	// relocations maps every alias, internal and legacy, straight to the
	// canonical quoted full name.
	relocations map[string]string

	// keys lists the full names of all registered clients in registration
	// order. It stands in for the original's per-build name registry.
	keys []string
}

// Keys returns the full names of all registered clients in registration
// order.
func (t *Tables) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// buildAliases constructs the rewrite tables for the supplied clients. Each
// client's edges are independent of every other client's, but within one
// client the emission order matters because later edges chain onto earlier
// quoted forms.
//
// Two distinct clients claiming the same alias spelling is a configuration
// defect and returns ErrAliasCollision.
func buildAliases(prefix string, clients []RegisteredClient) (*Tables, error) {
	t := &Tables{
		prefix:      prefix,
		internal:    make(map[string]string),
		legacy:      make(map[string]string),
		relocations: make(map[string]string),
		keys:        make([]string, 0, len(clients)),
	}
	// owner tracks which client claimed each alias spelling first.
	owner := make(map[string]string)

	put := func(m map[string]string, client, from, to string) error {
		if prev, claimed := owner[from]; claimed && prev != client {
			return fmt.Errorf("%w: %q claimed by both %q and %q",
				ErrAliasCollision, from, prev, client)
		}
		owner[from] = client
		m[from] = to
		return nil
	}

	for _, rc := range clients {
		t.keys = append(t.keys, rc.FullName)

		quotedFull := quoted(rc.FullName)
		quotedSimple := quoted(rc.SimpleName)

		// "full" -> simple. Skipped when the full name has a single segment:
		// the names coincide and the edge pair would form a cycle with the
		// quoting hop below.
		if rc.SimpleName != rc.FullName {
			if err := put(t.internal, rc.FullName, quotedFull, rc.SimpleName); err != nil {
				return nil, err
			}
			if err := put(t.relocations, rc.FullName, rc.SimpleName, quotedFull); err != nil {
				return nil, err
			}
		}
		// simple -> "simple"
		if err := put(t.internal, rc.FullName, rc.SimpleName, quotedSimple); err != nil {
			return nil, err
		}
		if err := put(t.relocations, rc.FullName, quotedSimple, quotedFull); err != nil {
			return nil, err
		}

		usableKey := rc.ConfigKey != "" && !rc.configKeyEqualsNames()
		if usableKey {
			quotedKey := quoted(rc.ConfigKey)
			// Skip entirely when the quoted key collapses onto a spelling
			// already emitted above.
			if quotedKey != quotedFull && quotedKey != quotedSimple {
				if rc.configKeyComposed() {
					// "simple" -> "key"
					if err := put(t.internal, rc.FullName, quotedSimple, quotedKey); err != nil {
						return nil, err
					}
					if err := put(t.relocations, rc.FullName, quotedKey, quotedFull); err != nil {
						return nil, err
					}
				} else {
					// "simple" -> key -> "key"
					if err := put(t.internal, rc.FullName, quotedSimple, rc.ConfigKey); err != nil {
						return nil, err
					}
					if err := put(t.relocations, rc.FullName, rc.ConfigKey, quotedFull); err != nil {
						return nil, err
					}
					if err := put(t.internal, rc.FullName, rc.ConfigKey, quotedKey); err != nil {
						return nil, err
					}
					if err := put(t.relocations, rc.FullName, quotedKey, quotedFull); err != nil {
						return nil, err
					}
				}
			}
		}

		// "full" -> full/mp-rest/
		legacyFull := rc.FullName + legacyMarker
		if err := put(t.legacy, rc.FullName, quotedFull, legacyFull); err != nil {
			return nil, err
		}
		if err := put(t.relocations, rc.FullName, legacyFull, quotedFull); err != nil {
			return nil, err
		}
		if usableKey {
			// full/mp-rest/ -> key/mp-rest/
			legacyKey := rc.ConfigKey + legacyMarker
			if err := put(t.legacy, rc.FullName, legacyFull, legacyKey); err != nil {
				return nil, err
			}
			if err := put(t.relocations, rc.FullName, legacyKey, quotedFull); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}
