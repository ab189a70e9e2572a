package ledger

import (
	"fmt"
	"time"
)

// GenesisEpoch is the zero point of the Signum chain time scale. Node
// timestamps count seconds from this instant.
var GenesisEpoch = time.Date(2014, time.August, 11, 2, 0, 0, 0, time.UTC)

// ChainTime converts a chain timestamp to wall-clock time.
func ChainTime(seconds int64) time.Time {
	return GenesisEpoch.Add(time.Duration(seconds) * time.Second)
}

// NodeError is a failure reported by the node itself through the
// errorDescription payload of an otherwise successful HTTP response.
type NodeError struct {
	Code        int    `json:"errorCode"`
	Description string `json:"errorDescription"`
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("signum node error %d: %s", e.Code, e.Description)
}

// Transaction is the node's view of a confirmed transaction.
type Transaction struct {
	Transaction     string      `json:"transaction"`
	Sender          string      `json:"sender"`
	SenderRS        string      `json:"senderRS"`
	SenderPublicKey string      `json:"senderPublicKey"`
	BlockTimestamp  int64       `json:"blockTimestamp"`
	Height          int64       `json:"height"`
	Confirmations   int64       `json:"confirmations"`
	Attachment      *Attachment `json:"attachment,omitempty"`
}

// Attachment carries an optional transaction message. MessageIsText
// distinguishes UTF-8 text from hex-encoded binary payloads.
type Attachment struct {
	Message       string `json:"message"`
	MessageIsText bool   `json:"messageIsText"`
}

type Account struct {
	Account     string `json:"account"`
	AccountRS   string `json:"accountRS"`
	PublicKey   string `json:"publicKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Alias struct {
	Alias     string `json:"alias"`
	AliasName string `json:"aliasName"`
	AliasURI  string `json:"aliasURI"`
	Account   string `json:"account"`
	AccountRS string `json:"accountRS"`
	Timestamp int64  `json:"timestamp"`
}

// Contract is the node's view of an automated transaction (AT). The node
// exposes the creation block but no creation timestamp.
type Contract struct {
	AT            string `json:"at"`
	ATRS          string `json:"atRS"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Creator       string `json:"creator"`
	CreatorRS     string `json:"creatorRS"`
	CreationBlock int64  `json:"creationBlock"`
}

// Asset is the node's view of a token. QuantityQNT is kept as a decimal
// string; total supplies can exceed what a float or int64 holds exactly.
// IssuanceTimestamp and IssuanceHeight come from the issuance transaction
// (an asset ID is its issuance transaction ID) and are zero when that
// lookup cannot be served.
type Asset struct {
	Asset       string `json:"asset"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	AccountRS   string `json:"accountRS"`
	Decimals    int    `json:"decimals"`
	QuantityQNT string `json:"quantityQNT"`

	IssuanceTimestamp int64 `json:"-"`
	IssuanceHeight    int64 `json:"-"`
}
