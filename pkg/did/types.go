package did

// Method is the DID method name registered for the Signum ledger.
const Method = "signum"

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// EntityType tags the kind of ledger entity a DID refers to. The set is
// closed: the resolver dispatches on it exhaustively.
type EntityType string

const (
	TypeTransaction EntityType = "tx"
	TypeAccount     EntityType = "acc"
	TypeAlias       EntityType = "alias"
	TypeContract    EntityType = "contract"
	TypeToken       EntityType = "token"
)

// Identifier is the decomposed form of a Signum DID. It is a value object
// created once per resolution and never mutated.
type Identifier struct {
	// DID is the full identifier string as requested, whitespace-trimmed.
	DID     string
	Method  string
	Network string
	Type    EntityType
	// ID is the method-specific identifier: a numeric entity ID, an
	// account address, or an alias [tld:]name.
	ID string
}

func (i Identifier) String() string {
	return i.DID
}
