package idealpostcodes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/config"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.ideal-postcodes.co.uk"
	addressesPath  = "/v1/addresses/"
)

// Client calls the Ideal Postcodes address search endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.AddressLookup = (*Client)(nil)

// NewClient builds a client from configuration. A nil httpClient means
// http.DefaultClient, so no timeout beyond the transport's own applies.
func NewClient(cfg config.IdealPostcodesConfig, httpClient *http.Client) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.NewMissingAPIKeyError()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

func (c *Client) Lookup(ctx context.Context, query domain.LookupQuery) (*domain.LookupResult, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query.Query)
	params.Set("limit", strconv.Itoa(query.Limit))
	if query.Tags != "" {
		params.Set("tags", query.Tags)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, addressesPath, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lookupErr := &LookupError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
		body, _ := io.ReadAll(resp.Body)
		var errResp envelope
		if err := json.Unmarshal(body, &errResp); err == nil {
			lookupErr.Code = errResp.Code
			lookupErr.Message = errResp.Message
		}
		return nil, lookupErr
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return body.Result.toDomain(), nil
}
