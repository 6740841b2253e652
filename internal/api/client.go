// Package api is a typed transport for the budget service. It maps each
// resource to its HTTP verbs and paths and holds no business logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kleyson/appz-budget/internal/logging"
	"github.com/kleyson/appz-budget/internal/models"
)

const (
	apiPrefix      = "/api/v1"
	DefaultTimeout = 30 * time.Second
)

type Client struct {
	baseURL string
	apiKey  string
	version string
	http    *http.Client
	timeout time.Duration
	log     *logging.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }
func WithLogger(l *logging.Logger) Option  { return func(c *Client) { c.log = l } }
func WithVersion(v string) Option          { return func(c *Client) { c.version = v } }
func WithTimeout(d time.Duration) Option   { return func(c *Client) { c.timeout = d } }
func WithToken(t string) Option            { return func(c *Client) { c.token = t } }

func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		version: "dev",
		timeout: DefaultTimeout,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearToken() { c.SetToken("") }

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) HasToken() bool { return c.Token() != "" }

func (c *Client) Auth() AuthAPI               { return AuthAPI{c} }
func (c *Client) Expenses() ExpensesAPI       { return ExpensesAPI{c} }
func (c *Client) Incomes() IncomesAPI         { return IncomesAPI{c} }
func (c *Client) Categories() CategoriesAPI   { return CategoriesAPI{named[models.Category]{c, "/categories"}} }
func (c *Client) Periods() PeriodsAPI         { return PeriodsAPI{named[models.Period]{c, "/periods"}} }
func (c *Client) IncomeTypes() IncomeTypesAPI { return IncomeTypesAPI{named[models.IncomeType]{c, "/income-types"}} }
func (c *Client) Months() MonthsAPI           { return MonthsAPI{c} }
func (c *Client) Summary() SummaryAPI         { return SummaryAPI{c} }

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, q, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + apiPrefix + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &NetworkError{Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-Client-Info", "TUI/"+c.version)
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "method", method, "path", path, "request_id", reqID, "err", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}
	c.log.Debug("request", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", reqID, "duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.log.Warn("server error", "method", method, "path", path, "status", resp.StatusCode, "request_id", reqID)
		return &ServerError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &InvalidResponseError{Err: err}
	}
	return nil
}

func idPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}
