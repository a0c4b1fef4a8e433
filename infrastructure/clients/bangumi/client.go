package bangumi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/infrastructure/logger"

	"github.com/araddon/dateparse"
	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"
)

// ErrNotJSON means the token endpoint answered with something other than a
// JSON object, which bgm.tv does for expired or reused codes.
var ErrNotJSON = repository.ErrProviderNotJSON

const (
	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"

	maxBodyBytes = 1 << 20
	userAgent    = "bgm-auto-tracker"
)

// Config is the OAuth client registration on bgm.tv.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
}

type tokenRequest struct {
	GrantType    string `url:"grant_type"              json:"grant_type"`
	ClientID     string `url:"client_id"               json:"client_id"`
	ClientSecret string `url:"client_secret"           json:"client_secret"`
	Code         string `url:"code,omitempty"          json:"code,omitempty"`
	RefreshToken string `url:"refresh_token,omitempty" json:"refresh_token,omitempty"`
	RedirectURI  string `url:"redirect_uri"            json:"redirect_uri"`
}

// Client talks to the bgm.tv OAuth endpoints. It is safe for concurrent use
// and must be closed once at shutdown.
type Client struct {
	oauth      *oauth2.Config
	httpClient *http.Client
	transport  *http.Transport
}

var _ repository.IBangumiOAuth = (*Client)(nil)

func NewClient(cfg Config) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: &http.Client{Transport: transport},
		transport:  transport,
	}
}

// AuthCodeURL is where users are sent to grant access.
func (c *Client) AuthCodeURL() string {
	return c.oauth.AuthCodeURL("")
}

// ExchangeCode trades an authorization code for a token. The request is form encoded.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*dto.ProviderTokenResponse, error) {
	form, err := query.Values(c.tokenRequest(grantAuthorizationCode, func(r *tokenRequest) { r.Code = code }))
	if err != nil {
		return nil, fmt.Errorf("encode token request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauth.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// RefreshToken trades a refresh token for a new token. The request is JSON encoded.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*dto.ProviderTokenResponse, error) {
	body, err := json.Marshal(c.tokenRequest(grantRefreshToken, func(r *tokenRequest) { r.RefreshToken = refreshToken }))
	if err != nil {
		return nil, fmt.Errorf("encode token request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauth.Endpoint.TokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// Close releases pooled connections.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}

func (c *Client) tokenRequest(grant string, fill func(*tokenRequest)) tokenRequest {
	r := tokenRequest{
		GrantType:    grant,
		ClientID:     c.oauth.ClientID,
		ClientSecret: c.oauth.ClientSecret,
		RedirectURI:  c.oauth.RedirectURL,
	}
	fill(&r)
	return r
}

func (c *Client) do(req *http.Request) (*dto.ProviderTokenResponse, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}

	body := map[string]interface{}{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil || body == nil {
		logger.GetLogger().
			WithField("status", resp.StatusCode).
			WithField("content_type", resp.Header.Get("Content-Type")).
			Warn("bgm.tv token endpoint returned a non-JSON body")
		return nil, fmt.Errorf("%w (status %d)", ErrNotJSON, resp.StatusCode)
	}

	return &dto.ProviderTokenResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		IssuedAt:   issuedAt(resp.Header.Get("Date")),
	}, nil
}

// issuedAt parses the Date header, falling back to the local clock.
func issuedAt(date string) time.Time {
	if date == "" {
		return time.Now().UTC()
	}
	t, err := dateparse.ParseAny(date)
	if err != nil {
		logger.GetLogger().WithField("date", date).WithField("error", err).Warn("Unparseable Date header")
		return time.Now().UTC()
	}
	return t.UTC()
}
