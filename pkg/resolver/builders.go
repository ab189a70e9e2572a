package resolver

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/multiformats/go-multibase"

	"github.com/signum-network/signum-did-resolver-go/pkg/did"
	"github.com/signum-network/signum-did-resolver-go/pkg/ledger"
	"github.com/signum-network/signum-did-resolver-go/pkg/src44"
)

// DefaultAliasTLD is assumed when an alias identifier carries no TLD
// segment.
const DefaultAliasTLD = "signum"

func newBaseDocument(didString string) DIDDocument {
	return DIDDocument{
		Context: []string{ContextDIDCore},
		ID:      didString,
	}
}

func newVerificationMethod(id, controller, publicKeyHex string) (VerificationMethod, error) {
	keyBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return VerificationMethod{}, fmt.Errorf("invalid public key hex: %w", err)
	}

	encoded, err := multibase.Encode(multibase.Base16, keyBytes)
	if err != nil {
		return VerificationMethod{}, fmt.Errorf("encoding public key: %w", err)
	}

	return VerificationMethod{
		ID:                 id,
		Type:               VerificationMethodType,
		Controller:         controller,
		PublicKeyMultibase: encoded,
	}, nil
}

// accountDID builds the DID of an account in address form, on the same
// network as the document being assembled. Every builder applies the
// mainnet-omission rule through did.Build rather than a shared cache, so
// the rule holds per builder.
func accountDID(network, address string) (string, error) {
	return did.Build(did.TypeAccount, address, network)
}

// hasPublicKey reports whether the node supplied a usable key. Accounts
// that never announced a key come back with an all-zero key string.
func hasPublicKey(publicKeyHex string) bool {
	if publicKeyHex == "" {
		return false
	}
	return strings.Trim(publicKeyHex, "0") != ""
}

func formatChainTime(seconds int64) string {
	return ledger.ChainTime(seconds).UTC().Format(time.RFC3339)
}

// splitAliasIdentifier decomposes an alias identifier into its TLD and
// name. A single colon separates tld from name; without one the whole
// identifier is the name under the default TLD.
func splitAliasIdentifier(identifier string) (tld, name string) {
	if before, after, ok := strings.Cut(identifier, ":"); ok {
		return before, after
	}
	return DefaultAliasTLD, identifier
}

func buildTransactionDocument(
	identifier did.Identifier,
	data ledger.Transaction,
	descriptor src44.Descriptor,
) (DIDDocument, DocumentMetadata, error) {
	document := newBaseDocument(identifier.DID)
	document.Context = append(document.Context, ContextSecuritySuite)

	controller, err := accountDID(identifier.Network, data.SenderRS)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("sender DID: %w", err)
	}
	document.Controller = controller

	method, err := newVerificationMethod(identifier.DID+"#creator", controller, data.SenderPublicKey)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("sender key: %w", err)
	}
	document.VerificationMethod = []VerificationMethod{method}
	document.SRC44 = descriptor

	metadata := DocumentMetadata{
		Created:       formatChainTime(data.BlockTimestamp),
		BlockHeight:   &data.Height,
		Confirmations: &data.Confirmations,
		Immutable:     true,
	}
	return document, metadata, nil
}

func buildAccountDocument(
	identifier did.Identifier,
	data ledger.Account,
	descriptor src44.Descriptor,
) (DIDDocument, DocumentMetadata, error) {
	document := newBaseDocument(identifier.DID)

	// The alternate representation is whichever textual form was not
	// requested: numeric ID for an address request, address for a
	// numeric one.
	alternate := data.AccountRS
	if !did.IsNumericID(identifier.ID) {
		alternate = data.Account
	}
	alternateDID, err := did.Build(did.TypeAccount, alternate, identifier.Network)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("alternate account DID: %w", err)
	}
	document.AlsoKnownAs = []string{alternateDID}

	if hasPublicKey(data.PublicKey) {
		document.Context = append(document.Context, ContextSecuritySuite)
		methodID := identifier.DID + "#key-1"
		method, err := newVerificationMethod(methodID, identifier.DID, data.PublicKey)
		if err != nil {
			return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("account key: %w", err)
		}
		document.VerificationMethod = []VerificationMethod{method}
		document.Authentication = []string{methodID}
	}
	document.SRC44 = descriptor

	return document, DocumentMetadata{Immutable: false}, nil
}

func buildAliasDocument(
	identifier did.Identifier,
	data ledger.Alias,
	descriptor src44.Descriptor,
) (DIDDocument, DocumentMetadata, error) {
	document := newBaseDocument(identifier.DID)

	tld, _ := splitAliasIdentifier(identifier.ID)
	alternate := tld + ":" + data.AliasName
	if !did.IsNumericID(identifier.ID) {
		alternate = data.Alias
	}
	alternateDID, err := did.Build(did.TypeAlias, alternate, identifier.Network)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("alternate alias DID: %w", err)
	}
	document.AlsoKnownAs = []string{alternateDID}

	controller, err := accountDID(identifier.Network, data.AccountRS)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("owner DID: %w", err)
	}
	document.Controller = controller

	// The alias URI field carries description-like text, not a network
	// URI; only its SRC44 content is surfaced, never a raw service
	// endpoint.
	document.SRC44 = descriptor

	metadata := DocumentMetadata{
		Created:   formatChainTime(data.Timestamp),
		Immutable: false,
	}
	return document, metadata, nil
}

func buildContractDocument(
	identifier did.Identifier,
	data ledger.Contract,
	descriptor src44.Descriptor,
) (DIDDocument, DocumentMetadata, error) {
	document := newBaseDocument(identifier.DID)

	controller, err := accountDID(identifier.Network, data.CreatorRS)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("creator DID: %w", err)
	}
	document.Controller = controller

	alternateDID, err := did.Build(did.TypeContract, data.ATRS, identifier.Network)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("alternate contract DID: %w", err)
	}
	document.AlsoKnownAs = []string{alternateDID}
	document.SRC44 = descriptor

	// The node exposes no creation timestamp for contracts; created is
	// left absent rather than zeroed.
	metadata := DocumentMetadata{Immutable: false}
	if data.CreationBlock > 0 {
		metadata.BlockHeight = &data.CreationBlock
	}
	return document, metadata, nil
}

func buildTokenDocument(
	identifier did.Identifier,
	data ledger.Asset,
	descriptor src44.Descriptor,
) (DIDDocument, DocumentMetadata, error) {
	document := newBaseDocument(identifier.DID)

	controller, err := accountDID(identifier.Network, data.AccountRS)
	if err != nil {
		return DIDDocument{}, DocumentMetadata{}, fmt.Errorf("issuer DID: %w", err)
	}
	document.Controller = controller

	document.Service = []Service{{
		ID:   identifier.DID + "#token-info",
		Type: TokenInfoServiceType,
		ServiceEndpoint: TokenInfo{
			Name:        data.Name,
			Decimals:    data.Decimals,
			TotalSupply: data.QuantityQNT,
		},
	}}
	document.SRC44 = descriptor

	metadata := DocumentMetadata{Immutable: true}
	if data.IssuanceTimestamp > 0 {
		metadata.Created = formatChainTime(data.IssuanceTimestamp)
	}
	if data.IssuanceHeight > 0 {
		metadata.BlockHeight = &data.IssuanceHeight
	}
	return document, metadata, nil
}
