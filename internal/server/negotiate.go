package server

import (
	"strings"

	"github.com/signum-network/signum-did-resolver-go/pkg/resolver"
)

// negotiate picks the response representation for an Accept header. The
// default is the DID JSON-LD media type; browser-style headers asking
// for text/html get plain JSON so documents render inline. An Accept
// header matching neither reports false (406 at the transport).
func negotiate(accept string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(accept))
	if trimmed == "" {
		return resolver.ContentTypeDIDJSONLD, true
	}

	switch {
	case strings.Contains(trimmed, "application/did+ld+json"),
		strings.Contains(trimmed, "application/did+json"),
		strings.Contains(trimmed, "application/ld+json"):
		return resolver.ContentTypeDIDJSONLD, true
	case strings.Contains(trimmed, "text/html"),
		strings.Contains(trimmed, "application/json"):
		return "application/json", true
	case strings.Contains(trimmed, "*/*"):
		return resolver.ContentTypeDIDJSONLD, true
	}

	return "", false
}
