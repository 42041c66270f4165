package publish

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeweler-labs/jeweler/internal/branding"
	"github.com/jeweler-labs/jeweler/internal/identity"
)

// DefaultSettleDelay is how long the hosting service gets to provision a new
// repository before the first push.
const DefaultSettleDelay = 2 * time.Second

// APIError is returned when the hosting service answers with a non-2xx status.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("hosting API %s returned status %d", e.Endpoint, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Pusher pushes a local repository to a named remote.
type Pusher interface {
	Push(ctx context.Context, remote string) error
}

// Publisher talks to the hosting service's form-encoded HTTP API.
type Publisher struct {
	baseURL     string
	httpClient  *http.Client
	waiter      Waiter
	settleDelay time.Duration
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(p *Publisher) {
		p.httpClient = c
	}
}

// WithWaiter replaces the settling-delay waiter.
func WithWaiter(w Waiter) Option {
	return func(p *Publisher) {
		p.waiter = w
	}
}

// WithSettleDelay sets the pause between creating and pushing.
func WithSettleDelay(d time.Duration) Option {
	return func(p *Publisher) {
		p.settleDelay = d
	}
}

// New creates a Publisher for the API rooted at baseURL (e.g., "https://github.com").
func New(baseURL string, opts ...Option) *Publisher {
	p := &Publisher{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  http.DefaultClient,
		waiter:      SleepWaiter{},
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateRepository asks the hosting service to create name under the
// identity's account.
func (p *Publisher) CreateRepository(ctx context.Context, id identity.Identity, name, summary string) error {
	form := url.Values{
		"login":                   {id.HostingUser},
		"token":                   {id.HostingToken},
		"repository[description]": {summary},
		"repository[name]":        {name},
	}
	return p.postForm(ctx, p.baseURL+"/repositories", form)
}

// CreateAndPush creates the hosted repository, waits for it to settle, then
// pushes the origin remote.
func (p *Publisher) CreateAndPush(ctx context.Context, id identity.Identity, name, summary string, pusher Pusher) error {
	if err := p.CreateRepository(ctx, id, name, summary); err != nil {
		return err
	}
	// A fixed pause rather than polling the API for readiness.
	if err := p.waiter.Wait(ctx, p.settleDelay); err != nil {
		return fmt.Errorf("waiting for %s to be provisioned: %w", name, err)
	}
	return pusher.Push(ctx, "origin")
}

// EnableGemBuilding flips the repository's gem-building setting on.
func (p *Publisher) EnableGemBuilding(ctx context.Context, id identity.Identity, name string) error {
	form := url.Values{
		"login": {id.HostingUser},
		"token": {id.HostingToken},
		"field": {"repository_rubygem"},
		"value": {"1"},
	}
	endpoint := fmt.Sprintf("%s/%s/%s/update", p.baseURL, url.PathEscape(id.HostingUser), url.PathEscape(name))
	return p.postForm(ctx, endpoint, form)
}

func (p *Publisher) postForm(ctx context.Context, endpoint string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", branding.CLIName())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
