// The Signum DID resolver for Go resolves did:signum identifiers into
// W3C DID documents backed by the Signum public ledger. A DID names one
// of five ledger entity types (transactions, accounts, aliases, smart
// contracts, tokens); resolution fetches the entity from a Signum node
// and assembles its document, including SRC44 metadata embedded in the
// entity's free-text fields.
//
// # Packages
//
//   - pkg/did: identifier grammar (parse, validate, build)
//   - pkg/src44: SRC44 descriptor extraction from free-text fields
//   - pkg/resolver: the parse, route, build resolution pipeline
//   - pkg/ledger: the Signum node HTTP client
//
// The cmd/resolverd command serves resolution over HTTP with W3C
// resolution status mapping, content negotiation, and cache directives.
//
// # Installation
//
//	go get github.com/signum-network/signum-did-resolver-go@latest
package signum_did_resolver_go
