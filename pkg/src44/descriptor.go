package src44

import (
	"encoding/json"
	"strings"
)

// descriptorVersion is the value the vs tag must carry for a blob to be
// recognized as SRC44.
const descriptorVersion = 1

// Descriptor is an SRC44 metadata object recovered from a free-text
// ledger field. The original JSON structure is preserved as-is.
type Descriptor map[string]any

// Name returns the nm field, if present.
func (d Descriptor) Name() string {
	name, _ := d["nm"].(string)
	return name
}

// Description returns the ds field, if present.
func (d Descriptor) Description() string {
	description, _ := d["ds"].(string)
	return description
}

// Extract probes text for an SRC44 descriptor. It returns the descriptor
// and true only when text is a JSON object whose vs tag equals the SRC44
// version. Everything else, malformed JSON included, reports false:
// ledger free-text fields are user-controlled and absence of structured
// metadata is the normal outcome, not an error.
func Extract(text string) (Descriptor, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil, false
	}

	version, ok := fields["vs"].(float64)
	if !ok || version != descriptorVersion {
		return nil, false
	}

	return Descriptor(fields), true
}
