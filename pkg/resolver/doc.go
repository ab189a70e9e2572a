// Package resolver resolves did:signum identifiers into W3C DID
// documents. It ties together the identifier grammar (pkg/did), the
// Signum node client (pkg/ledger), and the SRC44 descriptor probe
// (pkg/src44) in a parse, route, build pipeline:
//
//   - the raw DID is parsed and validated;
//   - the matching ledger entity (transaction, account, alias, contract,
//     or token) is fetched through the LedgerClient;
//   - a type-specific builder assembles the document and its metadata.
//
// Resolve never returns a Go error. Every outcome, including grammar
// failures and missing entities, is reported through the uniform
// ResolutionResult shape with the standard DID resolution error codes.
//
// # Resolving a DID
//
//	client, err := ledger.NewClient(ledger.Config{Network: "mainnet"})
//	if err != nil {
//		...
//	}
//	result := resolver.New(client).Resolve(ctx,
//		"did:signum:acc:S-9K9L-4CB5-88Y5-F5G4Z",
//	)
package resolver
