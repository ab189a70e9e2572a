package resolver

import (
	"strings"
	"testing"

	"github.com/signum-network/signum-did-resolver-go/pkg/did"
	"github.com/signum-network/signum-did-resolver-go/pkg/ledger"
	"github.com/signum-network/signum-did-resolver-go/pkg/src44"
)

const (
	testAccountID  = "16457748572299062825"
	testAddress    = "S-9K9L-4CB5-88Y5-F5G4Z"
	testPublicKey  = "497d559d18d989b8e2d729eb6f69b70c1ddc3e554f75bef3ed2716a4b2121902"
	zeroPublicKey  = "0000000000000000000000000000000000000000000000000000000000000000"
	testTxID       = "12345678901234567890"
	testContractID = "17273187778468888877"
	testTokenID    = "12402415494995249540"
)

func mustParse(t *testing.T, raw string) did.Identifier {
	t.Helper()
	identifier, err := did.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%s) failed: %v", raw, err)
	}
	return identifier
}

func testTransaction() ledger.Transaction {
	return ledger.Transaction{
		Transaction:     testTxID,
		Sender:          testAccountID,
		SenderRS:        testAddress,
		SenderPublicKey: testPublicKey,
		BlockTimestamp:  251228597,
		Height:          1127588,
		Confirmations:   42,
	}
}

func TestBuildTransactionDocument(t *testing.T) {
	identifier := mustParse(t, "did:signum:tx:"+testTxID)
	document, metadata, err := buildTransactionDocument(identifier, testTransaction(), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if document.ID != identifier.DID {
		t.Fatalf("document id must equal the requested DID, got %s", document.ID)
	}
	if len(document.Context) != 2 || document.Context[0] != ContextDIDCore || document.Context[1] != ContextSecuritySuite {
		t.Fatalf("unexpected contexts: %v", document.Context)
	}
	if document.Controller != "did:signum:acc:"+testAddress {
		t.Fatalf("unexpected controller: %s", document.Controller)
	}

	if len(document.VerificationMethod) != 1 {
		t.Fatalf("expected one verification method, got %d", len(document.VerificationMethod))
	}
	method := document.VerificationMethod[0]
	if method.ID != identifier.DID+"#creator" {
		t.Fatalf("unexpected method id: %s", method.ID)
	}
	if method.Type != VerificationMethodType {
		t.Fatalf("unexpected method type: %s", method.Type)
	}
	if method.Controller != document.Controller {
		t.Fatalf("method controller must be the sender DID, got %s", method.Controller)
	}
	if method.PublicKeyMultibase != "f"+testPublicKey {
		t.Fatalf("expected multibase base16 key, got %s", method.PublicKeyMultibase)
	}

	if !metadata.Immutable {
		t.Fatal("transaction metadata must be immutable")
	}
	if metadata.Created != "2022-07-27T19:43:17Z" {
		t.Fatalf("unexpected created timestamp: %s", metadata.Created)
	}
	if metadata.BlockHeight == nil || *metadata.BlockHeight != 1127588 {
		t.Fatalf("unexpected block height: %v", metadata.BlockHeight)
	}
	if metadata.Confirmations == nil || *metadata.Confirmations != 42 {
		t.Fatalf("unexpected confirmations: %v", metadata.Confirmations)
	}
}

func TestBuildTransactionDocumentTestnetController(t *testing.T) {
	identifier := mustParse(t, "did:signum:testnet:tx:"+testTxID)
	document, _, err := buildTransactionDocument(identifier, testTransaction(), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if document.Controller != "did:signum:testnet:acc:"+testAddress {
		t.Fatalf("controller must carry the testnet segment, got %s", document.Controller)
	}
}

func TestBuildTransactionDocumentRejectsBadKey(t *testing.T) {
	data := testTransaction()
	data.SenderPublicKey = "not hex"
	identifier := mustParse(t, "did:signum:tx:"+testTxID)
	if _, _, err := buildTransactionDocument(identifier, data, nil); err == nil {
		t.Fatal("expected error for malformed public key")
	}
}

func TestBuildAccountDocumentByAddress(t *testing.T) {
	identifier := mustParse(t, "did:signum:acc:"+testAddress)
	data := ledger.Account{
		Account:   testAccountID,
		AccountRS: testAddress,
		PublicKey: testPublicKey,
	}
	document, metadata, err := buildAccountDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if len(document.AlsoKnownAs) != 1 || document.AlsoKnownAs[0] != "did:signum:acc:"+testAccountID {
		t.Fatalf("address request must list the numeric DID, got %v", document.AlsoKnownAs)
	}
	if len(document.VerificationMethod) != 1 {
		t.Fatalf("expected one verification method, got %d", len(document.VerificationMethod))
	}
	if document.VerificationMethod[0].Controller != identifier.DID {
		t.Fatalf("account key controller must be the DID itself, got %s", document.VerificationMethod[0].Controller)
	}
	if len(document.Authentication) != 1 || document.Authentication[0] != identifier.DID+"#key-1" {
		t.Fatalf("authentication must reference the key, got %v", document.Authentication)
	}
	if metadata.Immutable {
		t.Fatal("account metadata must be mutable")
	}
	if metadata.Created != "" || metadata.BlockHeight != nil {
		t.Fatal("account metadata must not carry creation data")
	}
}

func TestBuildAccountDocumentByNumericID(t *testing.T) {
	identifier := mustParse(t, "did:signum:acc:"+testAccountID)
	data := ledger.Account{
		Account:   testAccountID,
		AccountRS: testAddress,
		PublicKey: testPublicKey,
	}
	document, _, err := buildAccountDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(document.AlsoKnownAs) != 1 || document.AlsoKnownAs[0] != "did:signum:acc:"+testAddress {
		t.Fatalf("numeric request must list the address DID, got %v", document.AlsoKnownAs)
	}
}

func TestAccountAlternateFormsMirrorEachOther(t *testing.T) {
	data := ledger.Account{Account: testAccountID, AccountRS: testAddress}

	byAddress, _, err := buildAccountDocument(mustParse(t, "did:signum:acc:"+testAddress), data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	byNumeric, _, err := buildAccountDocument(mustParse(t, "did:signum:acc:"+testAccountID), data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if byAddress.AlsoKnownAs[0] != byNumeric.ID {
		t.Fatalf("expected %s, got %s", byNumeric.ID, byAddress.AlsoKnownAs[0])
	}
	if byNumeric.AlsoKnownAs[0] != byAddress.ID {
		t.Fatalf("expected %s, got %s", byAddress.ID, byNumeric.AlsoKnownAs[0])
	}
}

func TestBuildAccountDocumentWithoutPublicKey(t *testing.T) {
	identifier := mustParse(t, "did:signum:acc:"+testAddress)
	for _, publicKey := range []string{"", zeroPublicKey} {
		data := ledger.Account{Account: testAccountID, AccountRS: testAddress, PublicKey: publicKey}
		document, _, err := buildAccountDocument(identifier, data, nil)
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}
		if document.VerificationMethod != nil {
			t.Fatal("keyless account must not carry a verification method")
		}
		if document.Authentication != nil {
			t.Fatal("keyless account must not carry authentication")
		}
		if len(document.Context) != 1 || document.Context[0] != ContextDIDCore {
			t.Fatalf("keyless account must omit the security context, got %v", document.Context)
		}
	}
}

func TestBuildAliasDocumentByName(t *testing.T) {
	identifier := mustParse(t, "did:signum:alias:crypto:johndoe")
	data := ledger.Alias{
		Alias:     "16107620026796983538",
		AliasName: "johndoe",
		Account:   testAccountID,
		AccountRS: testAddress,
		Timestamp: 251228597,
	}
	document, metadata, err := buildAliasDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if len(document.AlsoKnownAs) != 1 || document.AlsoKnownAs[0] != "did:signum:alias:16107620026796983538" {
		t.Fatalf("name request must list the numeric DID, got %v", document.AlsoKnownAs)
	}
	if document.Controller != "did:signum:acc:"+testAddress {
		t.Fatalf("unexpected controller: %s", document.Controller)
	}
	if metadata.Immutable {
		t.Fatal("alias metadata must be mutable")
	}
	if metadata.Created == "" {
		t.Fatal("alias metadata must carry the chain timestamp")
	}
}

func TestBuildAliasDocumentByNumericID(t *testing.T) {
	identifier := mustParse(t, "did:signum:alias:16107620026796983538")
	data := ledger.Alias{
		Alias:     "16107620026796983538",
		AliasName: "johndoe",
		AccountRS: testAddress,
	}
	document, _, err := buildAliasDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(document.AlsoKnownAs) != 1 || document.AlsoKnownAs[0] != "did:signum:alias:signum:johndoe" {
		t.Fatalf("numeric request must list the default-tld name DID, got %v", document.AlsoKnownAs)
	}
}

func TestBuildAliasDocumentNeverEmitsServiceEndpoint(t *testing.T) {
	identifier := mustParse(t, "did:signum:alias:johndoe")
	descriptor, ok := src44.Extract(`{"vs":1,"nm":"John"}`)
	if !ok {
		t.Fatal("fixture descriptor must extract")
	}
	data := ledger.Alias{Alias: "16107620026796983538", AliasName: "johndoe", AccountRS: testAddress}
	document, _, err := buildAliasDocument(identifier, data, descriptor)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if document.Service != nil {
		t.Fatal("alias URI content must never become a service endpoint")
	}
	if document.SRC44.Name() != "John" {
		t.Fatalf("descriptor must surface as src44, got %v", document.SRC44)
	}
}

func TestBuildContractDocument(t *testing.T) {
	identifier := mustParse(t, "did:signum:contract:"+testContractID)
	data := ledger.Contract{
		AT:            testContractID,
		ATRS:          "S-5MS2-HS6N-B9AZ-G9WQM",
		Creator:       testAccountID,
		CreatorRS:     testAddress,
		CreationBlock: 945221,
	}
	document, metadata, err := buildContractDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if document.Controller != "did:signum:acc:"+testAddress {
		t.Fatalf("unexpected controller: %s", document.Controller)
	}
	if len(document.AlsoKnownAs) != 1 || document.AlsoKnownAs[0] != "did:signum:contract:S-5MS2-HS6N-B9AZ-G9WQM" {
		t.Fatalf("expected address-form alternate, got %v", document.AlsoKnownAs)
	}
	if metadata.Immutable {
		t.Fatal("contract metadata must be mutable")
	}
	if metadata.Created != "" {
		t.Fatal("contract created must stay absent without a chain timestamp")
	}
	if metadata.BlockHeight == nil || *metadata.BlockHeight != 945221 {
		t.Fatalf("unexpected block height: %v", metadata.BlockHeight)
	}
}

func TestBuildContractDocumentOmitsZeroCreationBlock(t *testing.T) {
	identifier := mustParse(t, "did:signum:contract:"+testContractID)
	data := ledger.Contract{AT: testContractID, ATRS: "S-5MS2-HS6N-B9AZ-G9WQM", CreatorRS: testAddress}
	_, metadata, err := buildContractDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if metadata.BlockHeight != nil {
		t.Fatal("zero creation block must stay absent, not zero")
	}
}

func TestBuildTokenDocument(t *testing.T) {
	identifier := mustParse(t, "did:signum:token:"+testTokenID)
	data := ledger.Asset{
		Asset:             testTokenID,
		Name:              "SIGNA",
		Account:           testAccountID,
		AccountRS:         testAddress,
		Decimals:          4,
		QuantityQNT:       "21000000000000000",
		IssuanceTimestamp: 198765432,
		IssuanceHeight:    887766,
	}
	document, metadata, err := buildTokenDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if document.Controller != "did:signum:acc:"+testAddress {
		t.Fatalf("unexpected controller: %s", document.Controller)
	}
	if len(document.Service) != 1 {
		t.Fatalf("expected one service, got %d", len(document.Service))
	}
	service := document.Service[0]
	if service.ID != identifier.DID+"#token-info" {
		t.Fatalf("unexpected service id: %s", service.ID)
	}
	if service.Type != TokenInfoServiceType {
		t.Fatalf("unexpected service type: %s", service.Type)
	}
	info, ok := service.ServiceEndpoint.(TokenInfo)
	if !ok {
		t.Fatalf("unexpected endpoint type: %T", service.ServiceEndpoint)
	}
	if info.TotalSupply != "21000000000000000" {
		t.Fatalf("total supply must stay a decimal string, got %s", info.TotalSupply)
	}
	if info.Decimals != 4 {
		t.Fatalf("unexpected decimals: %d", info.Decimals)
	}

	if !metadata.Immutable {
		t.Fatal("token metadata must be immutable")
	}
	if metadata.Created == "" || metadata.BlockHeight == nil {
		t.Fatal("token metadata must carry issuance data when supplied")
	}
}

func TestBuildTokenDocumentWithoutIssuanceData(t *testing.T) {
	identifier := mustParse(t, "did:signum:token:"+testTokenID)
	data := ledger.Asset{Asset: testTokenID, Name: "SIGNA", AccountRS: testAddress, QuantityQNT: "1"}
	_, metadata, err := buildTokenDocument(identifier, data, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if metadata.Created != "" || metadata.BlockHeight != nil {
		t.Fatal("unknown issuance data must stay absent, not zero")
	}
	if !metadata.Immutable {
		t.Fatal("token metadata must be immutable regardless of content")
	}
}

func TestImmutabilityIsAFunctionOfType(t *testing.T) {
	txIdentifier := mustParse(t, "did:signum:tx:"+testTxID)
	accIdentifier := mustParse(t, "did:signum:acc:"+testAddress)
	aliasIdentifier := mustParse(t, "did:signum:alias:johndoe")
	contractIdentifier := mustParse(t, "did:signum:contract:"+testContractID)
	tokenIdentifier := mustParse(t, "did:signum:token:"+testTokenID)

	_, txMeta, err := buildTransactionDocument(txIdentifier, testTransaction(), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	_, accMeta, err := buildAccountDocument(accIdentifier, ledger.Account{Account: testAccountID, AccountRS: testAddress}, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	_, aliasMeta, err := buildAliasDocument(aliasIdentifier, ledger.Alias{Alias: "16107620026796983538", AliasName: "johndoe", AccountRS: testAddress}, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	_, contractMeta, err := buildContractDocument(contractIdentifier, ledger.Contract{ATRS: "S-5MS2-HS6N-B9AZ-G9WQM", CreatorRS: testAddress}, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	_, tokenMeta, err := buildTokenDocument(tokenIdentifier, ledger.Asset{AccountRS: testAddress}, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !txMeta.Immutable || !tokenMeta.Immutable {
		t.Fatal("tx and token must be immutable")
	}
	if accMeta.Immutable || aliasMeta.Immutable || contractMeta.Immutable {
		t.Fatal("acc, alias, and contract must be mutable")
	}
}

func TestPublicKeyMultibaseIsLowercaseHex(t *testing.T) {
	method, err := newVerificationMethod("did:signum:tx:1#creator", "did:signum:acc:"+testAddress, strings.ToUpper(testPublicKey))
	if err != nil {
		t.Fatalf("newVerificationMethod failed: %v", err)
	}
	if method.PublicKeyMultibase != "f"+testPublicKey {
		t.Fatalf("expected f-prefixed lowercase hex, got %s", method.PublicKeyMultibase)
	}
}

func TestSplitAliasIdentifier(t *testing.T) {
	tld, name := splitAliasIdentifier("crypto:johndoe")
	if tld != "crypto" || name != "johndoe" {
		t.Fatalf("unexpected split: %s, %s", tld, name)
	}
	tld, name = splitAliasIdentifier("johndoe")
	if tld != DefaultAliasTLD || name != "johndoe" {
		t.Fatalf("unexpected default split: %s, %s", tld, name)
	}
}
