package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

const (
	mainnetNodeURL = "https://europe.signum.network"
	testnetNodeURL = "https://europe3.testnet.signum.network"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	Headers    map[string]string
}

// Client reads entities from a Signum node over its HTTP JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
}

// NormalizeNetwork validates a network name. An empty name defaults to
// mainnet, matching the DID grammar default.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkMainnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	network, err := NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		if network == NetworkMainnet {
			baseURL = mainnetNodeURL
		} else {
			baseURL = testnetNodeURL
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid node base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid node base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid node base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
	}, nil
}

// BaseURL returns the node endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetTransaction returns a confirmed transaction by numeric ID.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (Transaction, error) {
	var transaction Transaction
	if strings.TrimSpace(transactionID) == "" {
		return transaction, fmt.Errorf("transaction ID is required")
	}

	params := url.Values{"transaction": {transactionID}}
	if err := c.getJSON(ctx, "getTransaction", params, &transaction); err != nil {
		return transaction, err
	}

	return transaction, nil
}

// GetAccount returns an account by numeric ID or Reed-Solomon address.
func (c *Client) GetAccount(ctx context.Context, accountID string) (Account, error) {
	var account Account
	if strings.TrimSpace(accountID) == "" {
		return account, fmt.Errorf("account ID is required")
	}

	params := url.Values{"account": {accountID}}
	if err := c.getJSON(ctx, "getAccount", params, &account); err != nil {
		return account, err
	}

	return account, nil
}

// GetAlias returns an alias by name. The node resolves names without a
// TLD qualifier.
func (c *Client) GetAlias(ctx context.Context, aliasName string) (Alias, error) {
	var alias Alias
	if strings.TrimSpace(aliasName) == "" {
		return alias, fmt.Errorf("alias name is required")
	}

	params := url.Values{"aliasName": {aliasName}}
	if err := c.getJSON(ctx, "getAlias", params, &alias); err != nil {
		return alias, err
	}

	return alias, nil
}

// GetContract returns an automated transaction (smart contract) by
// numeric ID.
func (c *Client) GetContract(ctx context.Context, contractID string) (Contract, error) {
	var contract Contract
	if strings.TrimSpace(contractID) == "" {
		return contract, fmt.Errorf("contract ID is required")
	}

	params := url.Values{"at": {contractID}}
	if err := c.getJSON(ctx, "getAT", params, &contract); err != nil {
		return contract, err
	}

	return contract, nil
}

// GetAsset returns a token by numeric ID. When the node can also serve
// the issuance transaction (the asset ID doubles as its issuance
// transaction ID), the issuance timestamp and height are filled in;
// otherwise they stay zero and the asset is still returned.
func (c *Client) GetAsset(ctx context.Context, assetID string) (Asset, error) {
	var asset Asset
	if strings.TrimSpace(assetID) == "" {
		return asset, fmt.Errorf("asset ID is required")
	}

	params := url.Values{"asset": {assetID}}
	if err := c.getJSON(ctx, "getAsset", params, &asset); err != nil {
		return asset, err
	}

	issuance, err := c.GetTransaction(ctx, assetID)
	if err == nil {
		asset.IssuanceTimestamp = issuance.BlockTimestamp
		asset.IssuanceHeight = issuance.Height
	}

	return asset, nil
}

func (c *Client) getJSON(ctx context.Context, requestType string, params url.Values, target any) error {
	values := url.Values{"requestType": {requestType}}
	for key, entries := range params {
		for _, entry := range entries {
			values.Add(key, entry)
		}
	}

	requestURL := fmt.Sprintf("%s/burst?%s", c.baseURL, values.Encode())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read node response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf(
			"node request failed with status %d: %s",
			response.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	// The node reports entity-level failures inside a 200 response.
	var nodeError NodeError
	if err := json.Unmarshal(body, &nodeError); err == nil && nodeError.Description != "" {
		return &nodeError
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode node response: %w", err)
	}

	return nil
}
