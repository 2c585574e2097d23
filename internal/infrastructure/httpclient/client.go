// Package httpclient is the single choke point for calls to the admin REST API.
// It attaches the bearer credential, encodes JSON or multipart bodies,
// normalizes failures into AppErrors and runs the global 401 handler.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adminconsole/internal/infrastructure/metrics"
	"adminconsole/internal/infrastructure/ratelimit"
	"adminconsole/internal/infrastructure/session"
	apperrors "adminconsole/pkg/errors"
	"adminconsole/pkg/logger"
	"adminconsole/pkg/response"
)

const (
	DefaultTimeout = 10 * time.Second

	msgNetworkError   = "Network error: unable to reach the server"
	msgTimeout        = "Request timed out"
	msgNotSignedIn    = "Not authenticated"
	msgSessionExpired = "Session expired, please sign in again"
)

// Credentials is the session view the client needs: read the token on every
// request and drop it when the server rejects it.
type Credentials interface {
	Token() string
	Clear() error
}

// Config configures a Client.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	HTTPClient  *http.Client
	RateLimiter *ratelimit.RateLimiter
	Metrics     *metrics.Metrics
	// OnUnauthorized runs after a 401 cleared the credential; the console uses
	// it to send the operator back to the sign-in entry point.
	OnUnauthorized func()
}

// Client is the single gateway every slice request goes through.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	credentials    Credentials
	limiter        *ratelimit.RateLimiter
	metrics        *metrics.Metrics
	onUnauthorized func()
}

// New creates a client for cfg.BaseURL that reads its bearer token from credentials.
func New(cfg Config, credentials Credentials) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if credentials == nil {
		return nil, fmt.Errorf("credentials are required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid BaseURL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:     httpClient,
		credentials:    credentials,
		limiter:        cfg.RateLimiter,
		metrics:        cfg.Metrics,
		onUnauthorized: cfg.OnUnauthorized,
	}, nil
}

// Request describes one API call. Body is JSON-encoded unless it is a *Multipart.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	// Public requests may be sent without a credential (sign-in).
	Public bool
}

// Response is a successful (2xx) API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Data returns the body with the {success, data} envelope removed.
func (r *Response) Data() []byte {
	return response.Data(r.Body)
}

// JSON decodes the raw body into v.
func (r *Response) JSON(v interface{}) error {
	return response.Decode(r.Data(), v)
}

// Get sends an authenticated GET with the given query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends body as JSON, or as multipart when body is a *Multipart.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put replaces the resource at path with body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a partial update.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete removes the resource at path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// Do sends r and normalizes every failure into an *errors.AppError.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	resource := resourceOf(r.Path)
	token := c.credentials.Token()

	if token == "" && !r.Public {
		c.metrics.Failure(resource, apperrors.CodeUnauthorized)
		return nil, apperrors.Unauthorized(msgNotSignedIn, nil)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, resource); err != nil {
			c.metrics.Failure(resource, apperrors.CodeTransport)
			return nil, apperrors.Transport(msgTimeout, err)
		}
	}

	req, err := c.newRequest(ctx, r, token)
	if err != nil {
		return nil, err
	}

	logger.Debug("API request: %s %s", r.Method, req.URL.Path)
	done := c.metrics.Begin(r.Method, resource)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		done(0)
		c.metrics.Failure(resource, apperrors.CodeTransport)
		logger.Warn("API request failed: %s %s: %v", r.Method, r.Path, err)
		if isTimeout(err) {
			return nil, apperrors.Transport(msgTimeout, err)
		}
		return nil, apperrors.Transport(msgNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	done(resp.StatusCode)
	if err != nil {
		c.metrics.Failure(resource, apperrors.CodeTransport)
		return nil, apperrors.Transport(msgNetworkError, err)
	}

	logger.Debug("API response: %d %s %s", resp.StatusCode, r.Method, r.Path)

	if resp.StatusCode == http.StatusUnauthorized {
		c.metrics.Failure(resource, apperrors.CodeUnauthorized)
		c.handleUnauthorized(token, r.Public)
		msg := response.ErrorMessage(body)
		if msg == "" {
			msg = msgSessionExpired
		}
		return nil, apperrors.Unauthorized(msg, nil)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := response.ErrorMessage(body)
		if msg == "" {
			msg = fmt.Sprintf("Request failed with status code %d", resp.StatusCode)
		}
		appErr := apperrors.FromStatus(resp.StatusCode, msg)
		c.metrics.Failure(resource, appErr.Code)
		logger.Warn("API error: %d %s %s: %s", resp.StatusCode, r.Method, r.Path, msg)
		return nil, appErr
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, r Request, token string) (*http.Request, error) {
	reqURL := c.baseURL + "/" + strings.TrimPrefix(r.Path, "/")
	if len(r.Query) > 0 {
		reqURL += "?" + r.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch b := r.Body.(type) {
	case nil:
	case *Multipart:
		buf, ct, err := b.encode()
		if err != nil {
			return nil, apperrors.BadRequest("Failed to encode upload", err)
		}
		// The boundary lives in the content type, so the JSON default must not be used.
		body, contentType = buf, ct
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, apperrors.BadRequest("Failed to encode request", err)
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL, body)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid request", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Demo sessions were never issued by the server, so their token is not sent.
	if token != "" && !session.IsDemoToken(token) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// handleUnauthorized always drops the credential. The sign-out hook is skipped
// for public requests, where a 401 means rejected credentials rather than an
// expired session.
func (c *Client) handleUnauthorized(token string, public bool) {
	logger.Warn("Request rejected by server (token %s), clearing credential", logger.MaskToken(token))
	if err := c.credentials.Clear(); err != nil {
		logger.Error("Failed to clear credential: %v", err)
	}
	if c.onUnauthorized != nil && !public {
		c.onUnauthorized()
	}
}

func resourceOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
