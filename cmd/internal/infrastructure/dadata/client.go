package dadata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clientsapi/cmd/internal/domain/entity"

	"github.com/labstack/gommon/log"
)

const (
	DefaultBaseURL = "https://suggestions.dadata.ru/suggestions/api/4_1/rs/findById/party"
	DefaultTimeout = 10 * time.Second
)

var (
	ErrNotFound = errors.New("not found")
	ErrNoAPIKey = errors.New("dadata api key is not configured")
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a registry client. An empty baseURL falls back to the
// public DaData endpoint and a non-positive timeout to DefaultTimeout.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FindPartyByINN asks the registry for the company with the given INN.
// Without an API key it fails with ErrNoAPIKey before touching the network.
func (c *Client) FindPartyByINN(ctx context.Context, inn string) (*entity.CompanyRecord, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	payload, err := json.Marshal(&findPartyRequest{Query: inn})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dadata failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parties findPartyResponse
	err = json.Unmarshal(body, &parties)
	if err != nil {
		return nil, fmt.Errorf("dadata returned malformed body: %w", err)
	}

	if len(parties.Suggestions) == 0 || parties.Suggestions[0] == nil {
		return nil, ErrNotFound
	}

	record, ok := ToCompanyRecord(parties.Suggestions[0].Data)
	if !ok {
		return nil, ErrNotFound
	}
	return record, nil
}

// Lookup is FindPartyByINN with every failure collapsed into "no data".
// Registry trouble must never fail a client write.
func (c *Client) Lookup(ctx context.Context, inn string) (*entity.CompanyRecord, bool) {
	record, err := c.FindPartyByINN(ctx, inn)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.Debugf("dadata has no company for inn %s", inn)
		case errors.Is(err, ErrNoAPIKey):
			log.Debugf("skipping dadata lookup for inn %s: %v", inn, err)
		default:
			log.Warnf("dadata lookup for inn %s failed: %v", inn, err)
		}
		return nil, false
	}
	return record, true
}
