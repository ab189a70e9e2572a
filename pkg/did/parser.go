package did

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	numericIDPattern = regexp.MustCompile(`^[0-9]{18,23}$`)
	addressPattern   = regexp.MustCompile(`(?i)^T?S-[0-9A-Z]{4}-[0-9A-Z]{4}-[0-9A-Z]{4}-[0-9A-Z]{5}$`)
	aliasPattern     = regexp.MustCompile(`^(?:\w{1,100}:)?\w{1,100}$`)
	whitespace       = regexp.MustCompile(`\s`)
)

var networks = map[string]bool{
	NetworkMainnet: true,
	NetworkTestnet: true,
}

var entityTypes = map[EntityType]bool{
	TypeTransaction: true,
	TypeAccount:     true,
	TypeAlias:       true,
	TypeContract:    true,
	TypeToken:       true,
}

// Parse validates a raw Signum DID and decomposes it into an Identifier.
// The network segment is optional and defaults to mainnet. Leading and
// trailing whitespace is trimmed before matching.
func Parse(raw string) (Identifier, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Identifier{}, parseError(raw, "identifier is empty")
	}
	if whitespace.MatchString(trimmed) {
		return Identifier{}, parseError(trimmed, "identifier must not contain whitespace")
	}

	remainder, ok := strings.CutPrefix(trimmed, "did:")
	if !ok {
		return Identifier{}, parseError(trimmed, `identifier must start with "did:"`)
	}

	method, remainder, ok := strings.Cut(remainder, ":")
	if !ok || method == "" {
		return Identifier{}, parseError(trimmed, "missing method segment")
	}
	if method != Method {
		return Identifier{}, parseError(trimmed, "unsupported method %q, expected %q", method, Method)
	}

	segment, remainder, ok := strings.Cut(remainder, ":")
	if !ok || segment == "" {
		return Identifier{}, parseError(trimmed, "missing entity type segment")
	}

	network := NetworkMainnet
	if networks[segment] {
		network = segment
		segment, remainder, ok = strings.Cut(remainder, ":")
		if !ok || segment == "" {
			return Identifier{}, parseError(trimmed, "missing entity type segment")
		}
	}

	entityType := EntityType(segment)
	if !entityTypes[entityType] {
		return Identifier{}, parseError(trimmed, "unknown network or entity type %q", segment)
	}

	if remainder == "" {
		return Identifier{}, parseError(trimmed, "missing identifier segment")
	}
	if reason := validateIdentifier(entityType, remainder); reason != "" {
		return Identifier{}, parseError(trimmed, "%s", reason)
	}

	return Identifier{
		DID:     trimmed,
		Method:  Method,
		Network: network,
		Type:    entityType,
		ID:      remainder,
	}, nil
}

// IsValid reports whether raw parses as a Signum DID.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Build assembles the canonical textual form of a DID. It is the left
// inverse of Parse: the network segment is omitted entirely for mainnet
// and an empty network defaults to mainnet. The identifier itself is not
// grammar-checked here; Parse owns validation.
func Build(entityType EntityType, identifier, network string) (string, error) {
	if !entityTypes[entityType] {
		return "", fmt.Errorf("unknown entity type %q", entityType)
	}
	if identifier == "" {
		return "", fmt.Errorf("identifier is required")
	}
	if network == "" {
		network = NetworkMainnet
	}
	if !networks[network] {
		return "", fmt.Errorf("unknown network %q", network)
	}

	if network == NetworkMainnet {
		return fmt.Sprintf("did:%s:%s:%s", Method, entityType, identifier), nil
	}
	return fmt.Sprintf("did:%s:%s:%s:%s", Method, network, entityType, identifier), nil
}

// IsNumericID reports whether s is a bare numeric entity ID.
func IsNumericID(s string) bool {
	return numericIDPattern.MatchString(s)
}

// IsAddress reports whether s is a Reed-Solomon account address.
func IsAddress(s string) bool {
	return addressPattern.MatchString(s)
}

func validateIdentifier(entityType EntityType, identifier string) string {
	switch entityType {
	case TypeTransaction, TypeContract, TypeToken:
		if !IsNumericID(identifier) {
			return fmt.Sprintf("%s identifier must be an 18-23 digit numeric ID", entityType)
		}
	case TypeAccount:
		if !IsNumericID(identifier) && !IsAddress(identifier) {
			return "acc identifier must be an 18-23 digit numeric ID or an S- address"
		}
	case TypeAlias:
		if !IsNumericID(identifier) && !aliasPattern.MatchString(identifier) {
			return "alias identifier must be an 18-23 digit numeric ID or [tld:]name"
		}
	}
	return ""
}
