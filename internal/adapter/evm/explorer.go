package evm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotVerified is returned when an explorer has no verified source for an
// address.
var ErrNotVerified = errors.New("contract not verified")

// ExplorerProvider fetches a verified contract ABI for an address.
type ExplorerProvider interface {
	Name() string
	FetchABI(ctx context.Context, address string) ([]ABIEntry, error)
}

// Etherscan is a provider backed by the Etherscan V2 unified API. It
// requires an API key; NewEtherscan returns nil without one so callers can
// append it conditionally.
type Etherscan struct {
	chainID int64
	apiKey  string
	baseURL string // overridable in tests
	client  *http.Client
}

const etherscanBaseURL = "https://api.etherscan.io/v2/api"

// NewEtherscan creates an Etherscan provider for one chain ID.
func NewEtherscan(chainID int64, apiKey string, client *http.Client) *Etherscan {
	if apiKey == "" {
		return nil
	}
	return &Etherscan{chainID: chainID, apiKey: apiKey, baseURL: etherscanBaseURL, client: client}
}

func (e *Etherscan) Name() string { return "etherscan" }

// FetchABI fetches the verified ABI for address.
func (e *Etherscan) FetchABI(ctx context.Context, address string) ([]ABIEntry, error) {
	url := fmt.Sprintf(
		"%s?chainid=%d&module=contract&action=getabi&address=%s&apikey=%s",
		e.baseURL, e.chainID, address, e.apiKey,
	)
	return fetchEtherscanCompatible(ctx, e.client, url)
}

// BlockScout queries an Etherscan-compatible BlockScout API endpoint. It
// needs no API key.
type BlockScout struct {
	apiURL string
	client *http.Client
}

// NewBlockScout creates a BlockScout provider for one network's API URL.
func NewBlockScout(apiURL string, client *http.Client) *BlockScout {
	if apiURL == "" {
		return nil
	}
	return &BlockScout{apiURL: apiURL, client: client}
}

func (b *BlockScout) Name() string { return "blockscout" }

// FetchABI fetches the verified ABI for address.
func (b *BlockScout) FetchABI(ctx context.Context, address string) ([]ABIEntry, error) {
	url := fmt.Sprintf("%s?module=contract&action=getabi&address=%s", b.apiURL, address)
	return fetchEtherscanCompatible(ctx, b.client, url)
}

// fetchEtherscanCompatible calls a getabi endpoint and decodes the standard
// {status,message,result} envelope.
func fetchEtherscanCompatible(ctx context.Context, client *http.Client, url string) ([]ABIEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching ABI: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Result  string `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing ABI response: %w", err)
	}

	if result.Status != "1" {
		if strings.Contains(strings.ToLower(result.Result), "not verified") {
			return nil, ErrNotVerified
		}
		return nil, fmt.Errorf("explorer error: %s", result.Message)
	}

	return parseABI([]byte(result.Result))
}
