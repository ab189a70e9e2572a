// Package src44 recovers SRC44 descriptors from free-text ledger fields.
// SRC44 is the Signum standard for self-describing metadata: a small JSON
// object tagged with a vs version field, embedded in transaction
// messages, account and token descriptions, and alias URIs. Extraction is
// a best-effort probe that never fails; text without a well-formed,
// correctly tagged descriptor simply yields nothing.
package src44
