// Package passport queries the Gitcoin Passport scorer API.
//
// The provider has shipped two incompatible API generations; deployments may
// be live on either one, so every query tries the v2 endpoint first and falls
// back once to the legacy v1 endpoint. No retries beyond that single
// fallback: a provider outage is surfaced, not masked.
package passport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"faucet/backend/internal/logger"
	"faucet/backend/internal/model"
)

var (
	ErrUnavailable  = errors.New("passport scorer unavailable")
	ErrUnauthorized = errors.New("passport scorer credentials rejected")
	ErrNoScore      = errors.New("no passport found")
)

const (
	defaultV2BaseURL = "https://api.passport.xyz"
	defaultV1BaseURL = "https://api.scorer.gitcoin.co"
)

type Client struct {
	apiKey     string
	scorerID   string
	v2BaseURL  string
	v1BaseURL  string
	httpClient *http.Client
}

// NewClient creates a scorer client. A nil httpClient gets a default with a
// transport-level timeout; the per-request context bounds the whole call.
func NewClient(apiKey string, scorerID string, httpClient *http.Client) *Client {
	client := httpClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		apiKey:     apiKey,
		scorerID:   scorerID,
		v2BaseURL:  defaultV2BaseURL,
		v1BaseURL:  defaultV1BaseURL,
		httpClient: client,
	}
}

// NewClientWithBaseURLs is for tests pointing at a stub server.
func NewClientWithBaseURLs(apiKey string, scorerID string, v2BaseURL string, v1BaseURL string, httpClient *http.Client) *Client {
	client := NewClient(apiKey, scorerID, httpClient)
	client.v2BaseURL = v2BaseURL
	client.v1BaseURL = v1BaseURL
	return client
}

type scoreResponse struct {
	Address            string          `json:"address"`
	Score              string          `json:"score"`
	PassingScore       bool            `json:"passing_score"`
	Threshold          string          `json:"threshold"`
	LastScoreTimestamp string          `json:"last_score_timestamp"`
	StampScores        json.RawMessage `json:"stamp_scores"`
}

// Score fetches the reputation score for an address. It is called at most
// once per claim request so the faucet itself never trips provider limits.
func (c *Client) Score(ctx context.Context, address string) (model.PassportScore, error) {
	if c.apiKey == "" || c.scorerID == "" {
		return model.PassportScore{}, fmt.Errorf("%w: api key or scorer id not configured", ErrUnauthorized)
	}

	// Any v2 failure falls through to v1, including a 404: a deployment
	// whose scorer is live only on the legacy API answers 404 on v2 for
	// every address. Only the legacy response is authoritative.
	primary := fmt.Sprintf("%s/v2/stamps/%s/score/%s", c.v2BaseURL, c.scorerID, address)
	score, err := c.fetch(ctx, primary)
	if err == nil {
		return score, nil
	}
	logger.Warn("passport v2 endpoint failed, falling back to v1", "error", err)

	legacy := fmt.Sprintf("%s/registry/score/%s/%s", c.v1BaseURL, c.scorerID, address)
	score, err = c.fetch(ctx, legacy)
	if err == nil {
		return score, nil
	}
	if errors.Is(err, ErrNoScore) || errors.Is(err, ErrUnauthorized) {
		return model.PassportScore{}, err
	}
	return model.PassportScore{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *Client) fetch(ctx context.Context, url string) (model.PassportScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.PassportScore{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.PassportScore{}, fmt.Errorf("scorer request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.PassportScore{}, ErrNoScore
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return model.PassportScore{}, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.PassportScore{}, fmt.Errorf("scorer status %d: %s", resp.StatusCode, body)
	}

	var parsed scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.PassportScore{}, fmt.Errorf("decode scorer response: %w", err)
	}

	// An absent or unparseable score means the address has no standing yet.
	value, err := strconv.ParseFloat(parsed.Score, 64)
	if err != nil {
		value = 0
	}

	return model.PassportScore{
		Address:            parsed.Address,
		Score:              value,
		PassingScore:       parsed.PassingScore,
		Threshold:          parsed.Threshold,
		LastScoreTimestamp: parsed.LastScoreTimestamp,
		StampScores:        parsed.StampScores,
	}, nil
}
