package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com/"

	mediaType        = "application/vnd.github+json"
	apiVersion       = "2022-11-28"
	headerAPIVersion = "X-GitHub-Api-Version"
)

// Client defines the GitHub API reads used by this application.
// Implementations hold no per-call state and are safe for concurrent use.
type Client interface {
	ListRepositories(ctx context.Context, page, perPage int) ([]*RepositoryRecord, error)
	ListUsers(ctx context.Context, page, perPage int) ([]*UserRecord, error)
	GetUser(ctx context.Context, login string) (*UserRecord, error)
	GetRepository(ctx context.Context, owner, name string) (*RepositoryRecord, error)
}

// realClient wraps the go-github client to implement Client.
type realClient struct {
	inner  *gh.Client
	logger *slog.Logger
}

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures NewClient.
type Option func(*clientOptions)

// WithBaseURL points the client at a different API root, e.g. GitHub Enterprise or a test server.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = u }
}

// WithHTTPClient sets the underlying transport client. The bearer token, if
// any, is layered on top of it.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// NewClient creates a GitHub API client. An empty token is allowed; requests
// are then sent unauthenticated and subject to the anonymous rate limit.
func NewClient(token string, opts ...Option) (Client, error) {
	o := clientOptions{baseURL: DefaultBaseURL, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if token != "" {
		ctx := context.Background()
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		o.logger.Warn("GITHUB_TOKEN not set, sending unauthenticated requests")
	}

	base, err := url.Parse(o.baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		if err == nil {
			err = errors.New("missing scheme or host")
		}
		return nil, &FetchError{Kind: InvalidURL, Op: "configure client", Err: err}
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	inner := gh.NewClient(httpClient)
	inner.BaseURL = base
	return &realClient{inner: inner, logger: o.logger}, nil
}

// get issues a GET for path and decodes the JSON body into v, classifying
// every failure into a *FetchError.
func (c *realClient) get(ctx context.Context, op, path string, v any) error {
	req, err := c.inner.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return c.fail(op, InvalidURL, 0, err)
	}
	req.Header.Set("Accept", mediaType)
	req.Header.Set(headerAPIVersion, apiVersion)

	start := time.Now()
	var body bytes.Buffer
	resp, err := c.inner.Do(ctx, req, &body)

	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	c.logger.Debug("github request",
		slog.String("op", op),
		slog.String("url", req.URL.String()),
		slog.Int("status", status),
		slog.Duration("elapsed", time.Since(start)))

	if err != nil {
		switch {
		case status == 0:
			return c.fail(op, RequestFailed, 0, err)
		case status == http.StatusNotFound:
			return c.fail(op, NotFound, status, err)
		default:
			return c.fail(op, InvalidResponse, status, err)
		}
	}
	if body.Len() == 0 {
		return c.fail(op, NoData, status, nil)
	}
	if err := json.Unmarshal(body.Bytes(), v); err != nil {
		return c.fail(op, DecodingError, status, err)
	}
	return nil
}

func (c *realClient) fail(op string, kind Kind, status int, err error) error {
	c.logger.Debug("github request failed",
		slog.String("op", op),
		slog.String("kind", kind.String()),
		slog.Int("status", status),
		slog.Any("error", err))
	return &FetchError{Kind: kind, Op: op, Status: status, Err: err}
}
