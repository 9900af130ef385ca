package blogsdk

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

// RefreshTokenCookie is the cookie carrying the refresh token.
const RefreshTokenCookie = "refreshToken"

// DefaultUserAgent doubles as the device title the server records.
const DefaultUserAgent = "bloggr-sdk/0.1"

// Client talks to one bloggr server. It remembers the last access token it
// obtained and keeps the refresh cookie in its jar, so a single Client
// behaves like one device.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string

	adminUser, adminPass string

	mu          sync.RWMutex
	accessToken string
	base        *url.URL
}

// Option customises a Client.
type Option func(*Client)

// WithTransport replaces the HTTP transport, e.g. to trust a test TLS server.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.HTTPClient.Transport = rt }
}

// WithUserAgent sets the User-Agent, which becomes the device title.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// WithAdmin sets the basic credentials used for admin endpoints.
func WithAdmin(user, password string) Option {
	return func(c *Client) { c.adminUser, c.adminPass = user, password }
}

// WithTimeout sets the overall request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.New("base url must be absolute")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &Client{
		BaseURL:    base.String(),
		HTTPClient: &http.Client{Jar: jar, Timeout: 10 * time.Second},
		UserAgent:  DefaultUserAgent,
		base:       base,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AccessToken returns the last access token obtained by Login or Refresh.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// SetAccessToken overrides the bearer token. An empty string makes the
// client anonymous.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// RefreshToken returns the refresh token currently held in the jar.
func (c *Client) RefreshToken() string {
	for _, ck := range c.HTTPClient.Jar.Cookies(c.base) {
		if ck.Name == RefreshTokenCookie {
			return ck.Value
		}
	}
	return ""
}

// SetRefreshToken puts token into the jar, replacing any current one.
func (c *Client) SetRefreshToken(token string) {
	c.HTTPClient.Jar.SetCookies(c.base, []*http.Cookie{{
		Name:     RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.base.Scheme == "https",
	}})
}
