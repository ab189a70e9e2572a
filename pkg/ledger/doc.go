// Package ledger provides a Signum node client used by the resolver. It
// reads transactions, accounts, aliases, contracts, and tokens over the
// node's HTTP JSON API (/burst?requestType=...).
//
// The client is read-only: it never submits transactions or mutates
// ledger state. Node-level failures, including the per-entity "Unknown X"
// signals for missing entities, surface as *NodeError values carrying the
// node's errorDescription text.
package ledger
