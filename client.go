package vkit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/vkit/pkg/logger"
	"github.com/dmitrymomot/vkit/pkg/methods"
	"github.com/dmitrymomot/vkit/pkg/rules"
)

// maxResponseBytes caps how much of an upstream body is decoded.
const maxResponseBytes = 1 << 20

// Client talks to the VK API on behalf of one owner (a user page or a
// community). Zero value is not usable; use New.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
	baseURL    string
	version    string
	ownerID    string
	userToken  oauth2.TokenSource
	groupToken oauth2.TokenSource
}

// Option configures the client beyond what Config carries.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. Useful for custom
// transports, proxies, or testing. Nil clients are ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the structured logger. The client is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserTokenSource replaces the static user token built from Config.
func WithUserTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		if ts != nil {
			c.userToken = ts
		}
	}
}

// WithGroupTokenSource replaces the static community token built from Config.
func WithGroupTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		if ts != nil {
			c.groupToken = ts
		}
	}
}

// New creates a client for the owner named in cfg. An access token is
// required, either in cfg or via WithUserTokenSource.
func New(cfg Config, opts ...Option) (*Client, error) {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log:     logger.Discard(),
		baseURL: cfg.BaseURL,
		version: cfg.Version,
		ownerID: cfg.OwnerID,
	}
	if c.baseURL == "" {
		c.baseURL = methods.DefaultBaseURL
	}
	if c.version == "" {
		c.version = methods.Version
	}
	if cfg.AccessToken != "" {
		c.userToken = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
	}
	if cfg.GroupToken != "" {
		c.groupToken = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GroupToken})
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidConfig)
	}
	if c.userToken == nil {
		return nil, fmt.Errorf("%w: access token is required", ErrInvalidConfig)
	}

	return c, nil
}

// Call dispatches one cataloged operation with the given parameters. It is
// the raw entry point underneath the per-operation methods and performs no
// parameter validation of its own. An unknown method resolves to a synthetic
// 404 response, an unparseable upstream body to a synthetic 502 response;
// only transport-level failures return an error.
func (c *Client) Call(ctx context.Context, m methods.Method, params rules.Params) (Response, error) {
	log := c.log.With(logger.RequestID(uuid.NewString()), logger.Method(string(m)))

	verb, err := m.Verb()
	if err != nil {
		log.Warn("unknown API method requested")
		return unknownMethodResponse(), nil
	}

	reqURL, err := c.requestURL(m, params)
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, verb, reqURL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed", logger.Error(err), logger.Duration(time.Since(start)))
		return Response{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		log.Error("unparseable upstream body",
			logger.Error(err),
			logger.StatusCode(resp.StatusCode),
			logger.Duration(time.Since(start)))
		return invalidPayloadResponse(), nil
	}

	log.Info("api call completed",
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)))

	return Response{Body: body, StatusCode: resp.StatusCode}, nil
}

// operation adapts one cataloged method to the guarded operation shape.
func (c *Client) operation(m methods.Method) rules.Operation[Response] {
	return func(ctx context.Context, params rules.Params) (Response, error) {
		return c.Call(ctx, m, params)
	}
}

// requestURL assembles the full query-encoded URL for one call. The owner
// id, access token and API version are injected; caller-supplied parameters
// with the same names win.
func (c *Client) requestURL(m methods.Method, params rules.Params) (string, error) {
	token, err := c.token(m)
	if err != nil {
		return "", fmt.Errorf("%w: token source: %w", ErrRequestFailed, err)
	}

	values := url.Values{}
	values.Set("owner_id", c.ownerID)
	values.Set("access_token", token.AccessToken)
	values.Set("v", c.version)
	for name, value := range params {
		values.Set(name, paramString(value))
	}

	return methods.URL(c.baseURL, m, values)
}

// token picks the token source for the operation: community token for the
// messages and groups namespaces when configured, user token otherwise.
func (c *Client) token(m methods.Method) (*oauth2.Token, error) {
	src := c.userToken
	if m.GroupScoped() && c.groupToken != nil {
		src = c.groupToken
	}
	return src.Token()
}

// groupID is the owner id without the community minus sign, as expected by
// the groups namespace.
func (c *Client) groupID() string {
	return strings.TrimPrefix(c.ownerID, "-")
}

func paramString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
