package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/signum-network/signum-did-resolver-go/pkg/did"
	"github.com/signum-network/signum-did-resolver-go/pkg/ledger"
	"github.com/signum-network/signum-did-resolver-go/pkg/src44"
)

// LedgerClient is the read surface the resolver needs from a Signum
// node. *ledger.Client implements it.
type LedgerClient interface {
	GetTransaction(ctx context.Context, transactionID string) (ledger.Transaction, error)
	GetAccount(ctx context.Context, accountID string) (ledger.Account, error)
	GetAlias(ctx context.Context, aliasName string) (ledger.Alias, error)
	GetContract(ctx context.Context, contractID string) (ledger.Contract, error)
	GetAsset(ctx context.Context, assetID string) (ledger.Asset, error)
}

// Resolver turns Signum DIDs into DID documents. Each call owns its own
// state; concurrent calls need no coordination.
type Resolver struct {
	client LedgerClient
}

func New(client LedgerClient) *Resolver {
	return &Resolver{client: client}
}

// Resolve parses rawDID, fetches the underlying ledger entity, and
// assembles its document. It always returns a ResolutionResult, never an
// error: failures are reported through didResolutionMetadata, and the
// document is nil exactly when an error code is set.
func (r *Resolver) Resolve(ctx context.Context, rawDID string) ResolutionResult {
	identifier, err := did.Parse(rawDID)
	if err != nil {
		var parseErr *did.ParseError
		if errors.As(err, &parseErr) {
			return errorResult(ErrorInvalidDID, parseErr.Reason)
		}
		return errorResult(ErrorInvalidDID, err.Error())
	}

	switch identifier.Type {
	case did.TypeTransaction:
		return r.resolveTransaction(ctx, identifier)
	case did.TypeAccount:
		return r.resolveAccount(ctx, identifier)
	case did.TypeAlias:
		return r.resolveAlias(ctx, identifier)
	case did.TypeContract:
		return r.resolveContract(ctx, identifier)
	case did.TypeToken:
		return r.resolveToken(ctx, identifier)
	default:
		return errorResult(ErrorMethodNotSupported,
			fmt.Sprintf("entity type %q is not supported by this resolver", identifier.Type))
	}
}

func (r *Resolver) resolveTransaction(ctx context.Context, identifier did.Identifier) ResolutionResult {
	data, err := r.client.GetTransaction(ctx, identifier.ID)
	if err != nil {
		return fetchFailure(err, isUnknownTransaction, "transaction", identifier.ID)
	}

	var descriptor src44.Descriptor
	if data.Attachment != nil && data.Attachment.MessageIsText {
		descriptor, _ = src44.Extract(data.Attachment.Message)
	}

	return buildResult(buildTransactionDocument(identifier, data, descriptor))
}

func (r *Resolver) resolveAccount(ctx context.Context, identifier did.Identifier) ResolutionResult {
	data, err := r.client.GetAccount(ctx, identifier.ID)
	if err != nil {
		return fetchFailure(err, isUnknownAccount, "account", identifier.ID)
	}

	descriptor, _ := src44.Extract(data.Description)
	return buildResult(buildAccountDocument(identifier, data, descriptor))
}

func (r *Resolver) resolveAlias(ctx context.Context, identifier did.Identifier) ResolutionResult {
	// The TLD is carried only for DID round-tripping; the node is
	// queried by name alone.
	_, name := splitAliasIdentifier(identifier.ID)
	data, err := r.client.GetAlias(ctx, name)
	if err != nil {
		return fetchFailure(err, isUnknownAlias, "alias", identifier.ID)
	}

	descriptor, _ := src44.Extract(data.AliasURI)
	return buildResult(buildAliasDocument(identifier, data, descriptor))
}

func (r *Resolver) resolveContract(ctx context.Context, identifier did.Identifier) ResolutionResult {
	data, err := r.client.GetContract(ctx, identifier.ID)
	if err != nil {
		return fetchFailure(err, isUnknownContract, "contract", identifier.ID)
	}

	descriptor, _ := src44.Extract(data.Description)
	return buildResult(buildContractDocument(identifier, data, descriptor))
}

func (r *Resolver) resolveToken(ctx context.Context, identifier did.Identifier) ResolutionResult {
	data, err := r.client.GetAsset(ctx, identifier.ID)
	if err != nil {
		return fetchFailure(err, isUnknownAsset, "token", identifier.ID)
	}

	descriptor, _ := src44.Extract(data.Description)
	return buildResult(buildTokenDocument(identifier, data, descriptor))
}

func buildResult(document DIDDocument, metadata DocumentMetadata, err error) ResolutionResult {
	if err != nil {
		return errorResult(ErrorInternal, err.Error())
	}
	return ResolutionResult{
		ResolutionMetadata: ResolutionMetadata{ContentType: ContentTypeDIDJSONLD},
		Document:           &document,
		DocumentMetadata:   metadata,
	}
}

func fetchFailure(err error, isNotFound func(error) bool, entity, identifier string) ResolutionResult {
	if isNotFound(err) {
		return errorResult(ErrorNotFound,
			fmt.Sprintf("%s %s does not exist on the ledger", entity, identifier))
	}
	return errorResult(ErrorInternal, err.Error())
}

func errorResult(code, message string) ResolutionResult {
	return ResolutionResult{
		ResolutionMetadata: ResolutionMetadata{Error: code, Message: message},
	}
}
