package dexscreener

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"go-dexprobe/internal/common"
	"go-dexprobe/pkg/models"
)

// Client talks to the DexScreener HTTP API. Requests are plain GETs with no
// custom headers, no timeout override and a single attempt each.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// TokenPairs fetches the pairs trading a token address.
func (c *Client) TokenPairs(address string) (*models.Envelope, error) {
	return c.get(fmt.Sprintf("%s/latest/dex/tokens/%s", c.baseURL, address))
}

// Search fetches the pairs matching a free-text query.
func (c *Client) Search(query string) (*models.Envelope, error) {
	return c.get(fmt.Sprintf("%s/latest/dex/search?q=%s", c.baseURL, url.QueryEscape(query)))
}

func (c *Client) get(reqURL string) (*models.Envelope, error) {
	log.Debug().Str("url", reqURL).Msg("Requesting pairs")

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		log.Error().
			Err(err).
			Str("error_code", common.ErrCodeAPIRequestFailed.String()).
			Str("error_message", common.ErrMsgAPIRequestFailed.String()).
			Str("url", reqURL).
			Msg("Request failed")
		return nil, fmt.Errorf("get %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().
			Str("error_code", common.ErrCodeAPIUnexpectedStatus.String()).
			Str("error_message", common.ErrMsgAPIUnexpectedStatus.String()).
			Str("url", reqURL).
			Int("status", resp.StatusCode).
			Msg("Unexpected status")
		return nil, fmt.Errorf("get %s: unexpected status %d", reqURL, resp.StatusCode)
	}

	var envelope models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Error().
			Err(err).
			Str("error_code", common.ErrCodeAPIDecodeFailed.String()).
			Str("error_message", common.ErrMsgAPIDecodeFailed.String()).
			Str("url", reqURL).
			Msg("Decode failed")
		return nil, fmt.Errorf("decode %s: %w", reqURL, err)
	}

	log.Debug().Str("url", reqURL).Int("pairs", len(envelope.Pairs)).Msg("Received pairs")
	return &envelope, nil
}
