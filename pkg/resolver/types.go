package resolver

import (
	"github.com/signum-network/signum-did-resolver-go/pkg/src44"
)

const (
	// ContextDIDCore is the W3C DID core JSON-LD context.
	ContextDIDCore = "https://www.w3.org/ns/did/v1"
	// ContextSecuritySuite is added whenever a document carries a
	// verification method.
	ContextSecuritySuite = "https://w3id.org/security/suites/ed25519-2020/v1"
)

const (
	VerificationMethodType = "Ed25519VerificationKey2020"
	TokenInfoServiceType   = "TokenInformation"
)

// ContentTypeDIDJSONLD is the representation produced for resolved
// documents.
const ContentTypeDIDJSONLD = "application/did+ld+json"

// Resolution error codes, per the DID resolution error vocabulary.
const (
	ErrorInvalidDID                 = "invalidDid"
	ErrorNotFound                   = "notFound"
	ErrorMethodNotSupported         = "methodNotSupported"
	ErrorRepresentationNotSupported = "representationNotSupported"
	ErrorInternal                   = "internalError"
)

type VerificationMethod struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Controller         string `json:"controller"`
	PublicKeyMultibase string `json:"publicKeyMultibase"`
}

type Service struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint any    `json:"serviceEndpoint"`
}

// TokenInfo is the service endpoint payload of a token document.
// TotalSupply stays a decimal string; large supplies do not survive a
// round-trip through binary numeric types.
type TokenInfo struct {
	Name        string `json:"name"`
	Decimals    int    `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
}

// DIDDocument is a W3C DID document for a Signum ledger entity.
type DIDDocument struct {
	Context            []string             `json:"@context"`
	ID                 string               `json:"id"`
	Controller         string               `json:"controller,omitempty"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []string             `json:"authentication,omitempty"`
	Service            []Service            `json:"service,omitempty"`
	AlsoKnownAs        []string             `json:"alsoKnownAs,omitempty"`
	SRC44              src44.Descriptor     `json:"src44,omitempty"`
}

// DocumentMetadata describes provenance and mutability of a document.
// Created, BlockHeight, and Confirmations are absent when the ledger
// cannot supply them; Immutable is a pure function of entity type.
type DocumentMetadata struct {
	Created       string `json:"created,omitempty"`
	BlockHeight   *int64 `json:"blockHeight,omitempty"`
	Confirmations *int64 `json:"confirmations,omitempty"`
	Immutable     bool   `json:"immutable"`
}

type ResolutionMetadata struct {
	ContentType string `json:"contentType,omitempty"`
	Error       string `json:"error,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ResolutionResult is the uniform outcome of a resolution call. Document
// is nil exactly when ResolutionMetadata.Error is set.
type ResolutionResult struct {
	ResolutionMetadata ResolutionMetadata `json:"didResolutionMetadata"`
	Document           *DIDDocument       `json:"didDocument"`
	DocumentMetadata   DocumentMetadata   `json:"didDocumentMetadata"`
}
