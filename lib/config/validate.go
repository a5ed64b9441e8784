package config

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-i2p/logger"
)

// Property is a single key=value entry.
type Property struct {
	Key   string
	Value string
}

// String renders the entry as it appears in a property file.
func (p Property) String() string {
	return p.Key + "=" + p.Value
}

// Classify partitions values into entries whose key is in known and entries
// whose key is not. Every input entry lands in exactly one of the two
// results. Both results are sorted by key.
func Classify(values RawProperties, known mapset.Set[string]) (supported, unsupported []Property) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p := Property{Key: k, Value: values[k]}
		if known != nil && known.Contains(k) {
			supported = append(supported, p)
		} else {
			unsupported = append(unsupported, p)
		}
	}
	return supported, unsupported
}

// CheckIncomingSystemProperties logs which entries of a config.properties
// mapping are recognized system properties. It never fails.
func CheckIncomingSystemProperties(values RawProperties) {
	checkIncomingProperties("system", values, systemKeySet)
}

// CheckIncomingNodeProperties logs which entries of a node.properties
// mapping are recognized node properties. It never fails.
func CheckIncomingNodeProperties(values RawProperties) {
	checkIncomingProperties("node", values, nodeKeySet)
}

func checkIncomingProperties(kind string, values RawProperties, known mapset.Set[string]) {
	supported, unsupported := Classify(values, known)
	if len(supported) > 0 {
		log.WithFields(logger.Fields{
			"at":    "checkIncomingProperties",
			"phase": "startup",
			"kind":  kind,
			"count": len(supported),
		}).Info("STARTUP: Supported " + kind + " properties:\n" + formatProperties(supported))
	}
	if len(unsupported) > 0 {
		log.WithFields(logger.Fields{
			"at":     "checkIncomingProperties",
			"phase":  "startup",
			"reason": "unsupported_properties",
			"kind":   kind,
			"count":  len(unsupported),
		}).Warn("STARTUP: Unsupported " + kind + " properties:\n" + formatProperties(unsupported))
	}
}

func formatProperties(props []Property) string {
	var b strings.Builder
	for _, p := range props {
		b.WriteString("  ")
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}
