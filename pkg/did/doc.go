// Package did implements the identifier grammar of the did:signum method.
// It parses, validates, and builds DIDs of the form
//
//	did:signum:[<network>:]<type>:<identifier>
//
// where network is mainnet (the default, omitted in canonical form) or
// testnet, and type is one of tx, acc, alias, contract, or token. The
// identifier segment follows a type-specific grammar: numeric entity IDs
// for all types, Reed-Solomon addresses for accounts, and [tld:]name
// forms for aliases.
//
// Parsing is all-or-nothing: no partial result is ever returned.
package did
