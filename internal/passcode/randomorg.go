package passcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultRandomOrgURL is the random.org JSON-RPC endpoint.
const DefaultRandomOrgURL = "https://api.random.org/json-rpc/4/invoke"

// RandomOrgConfig holds configuration for the random.org passcode source
type RandomOrgConfig struct {
	// APIKey is the random.org API key
	APIKey string

	// BaseURL overrides the API endpoint, for tests
	BaseURL string

	// HTTPClient overrides the HTTP client, for tests
	HTTPClient *http.Client
}

// RandomOrg generates passcodes with the random.org generateStrings
// method. Failures are collaborator errors surfaced to the caller;
// no retries happen here.
type RandomOrg struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewRandomOrg creates a random.org-backed passcode source
func NewRandomOrg(cfg *RandomOrgConfig) (*RandomOrg, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultRandomOrgURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &RandomOrg{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  client,
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result *struct {
		Random struct {
			Data []string `json:"data"`
		} `json:"random"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate requests one random six-letter string from random.org
func (r *RandomOrg) Generate(ctx context.Context) (string, error) {
	body, err := json.Marshal(&rpcRequest{
		JSONRPC: "2.0",
		Method:  "generateStrings",
		Params:  []any{r.apiKey, 1, Length, alphabet},
		ID:      42,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call random.org: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("random.org returned status %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if rpcResp.Error != nil {
		return "", fmt.Errorf("random.org error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if rpcResp.Result == nil || len(rpcResp.Result.Random.Data) == 0 {
		return "", errors.New("random.org returned no data")
	}

	return rpcResp.Result.Random.Data[0], nil
}
