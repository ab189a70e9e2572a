package resolver

import "strings"

// The node reports missing entities only through the wording of its
// errorDescription text; there is no typed not-found signal. Each marker
// below is the node's "unknown X" message for one entity type, and these
// predicates are the single place to update if that wording changes.
const (
	unknownTransactionMarker = "Unknown transaction"
	unknownAccountMarker     = "Unknown account"
	unknownAliasMarker       = "Unknown alias"
	unknownContractMarker    = "Unknown at"
	unknownAssetMarker       = "Unknown asset"
)

func isUnknownTransaction(err error) bool { return hasMarker(err, unknownTransactionMarker) }
func isUnknownAccount(err error) bool     { return hasMarker(err, unknownAccountMarker) }
func isUnknownAlias(err error) bool       { return hasMarker(err, unknownAliasMarker) }
func isUnknownContract(err error) bool    { return hasMarker(err, unknownContractMarker) }
func isUnknownAsset(err error) bool       { return hasMarker(err, unknownAssetMarker) }

func hasMarker(err error, marker string) bool {
	return err != nil && strings.Contains(err.Error(), marker)
}
