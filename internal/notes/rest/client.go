package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pixil98/dogtown/internal/notes"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/postgrest-go"
)

const (
	DefaultTimeout = 10 * time.Second

	restPath = "/rest/v1"
	authPath = "/auth/v1"
)

// Client talks to a hosted PostgREST and GoTrue pair under one base URL.
type Client struct {
	base        string
	apiKey      string
	accessToken string
	http        *http.Client
}

func NewClient(baseURL, apiKey, accessToken string, opts ...ClientOpt) (*Client, error) {
	base := strings.TrimRight(baseURL, "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		base:        base,
		apiKey:      apiKey,
		accessToken: accessToken,
		http:        &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// withTimeout bounds one call by the http client's timeout.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.http.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.http.Timeout)
}

// table returns a query builder for name whose requests run under ctx.
func (c *Client) table(ctx context.Context, name string) *postgrest.QueryBuilder {
	pg := postgrest.NewClient(c.base+restPath, "", nil)
	pg.SetApiKey(c.apiKey)
	pg.SetAuthToken(c.bearer())
	pg.Transport.Parent = c.transport(ctx)
	return pg.From(name)
}

// auth returns a GoTrue client whose requests run under ctx.
func (c *Client) auth(ctx context.Context) gotrue.Client {
	return gotrue.New("", c.apiKey).
		WithCustomGoTrueURL(c.base + authPath).
		WithToken(c.bearer()).
		WithClient(http.Client{Transport: c.transport(ctx)})
}

func (c *Client) transport(ctx context.Context) http.RoundTripper {
	next := c.http.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	return &apiTransport{ctx: ctx, next: next}
}

func (c *Client) bearer() string {
	if c.accessToken != "" {
		return c.accessToken
	}
	return c.apiKey
}

// apiTransport binds requests to a context and turns non-2xx responses into
// *notes.APIError before the client libraries see them.
type apiTransport struct {
	ctx  context.Context
	next http.RoundTripper
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req.WithContext(t.ctx))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

func decodeError(resp *http.Response) error {
	apiErr := &notes.APIError{Status: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body struct {
		notes.APIError
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		apiErr.Details = body.Details
		apiErr.Hint = body.Hint
		// GoTrue uses different field names.
		if apiErr.Message == "" {
			apiErr.Message = body.Msg
		}
		if apiErr.Message == "" {
			apiErr.Message = body.ErrorDescription
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
