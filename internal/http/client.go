// Package http implements the request executor shared by every resource
// client: it builds resource URLs, attaches the bearer token, encodes JSON
// bodies, and maps non-2xx responses to API errors. Each call performs
// exactly one HTTP exchange.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidewater-io/ocean/internal/auth"
	"github.com/tidewater-io/ocean/internal/constants"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

const defaultUserAgent = "ocean-client/1.0"

// Logger interface for HTTP layer logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response with its raw body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout on the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a request executor for the given base URL. The token
// manager may be nil, in which case requests are sent unauthenticated.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: constants.DefaultHTTPTimeout},
		tokenManager: tokenManager,
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a single request. A JSON body is attached if and only if
// req.Body is non-nil. Non-2xx responses are returned alongside a
// *ocean.APIError carrying the decoded error payload.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		apiErr := ocean.ParseAPIError(httpResp.StatusCode, respBody)
		apiErr.RequestID = httpResp.Header.Get("X-Request-Id")

		return resp, apiErr
	}

	return resp, nil
}

// Get performs a GET request. GET requests never carry a body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request. A nil body sends no payload (trigger-style
// POSTs).
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// BuildPath composes the versioned path for a resource. String parts are
// lower-cased and percent-encoded; integer parts pass through unchanged.
// With zero parts the path keeps a trailing slash:
//
//	BuildPath("droplets")                 // "/v2/droplets/"
//	BuildPath("droplets", 123, "actions") // "/v2/droplets/123/actions"
//	BuildPath("domains", "Example.COM")   // "/v2/domains/example.com"
//
// No validation is performed; malformed identifiers surface as a failed
// remote call, not a local error.
func BuildPath(resource string, parts ...interface{}) string {
	var builder strings.Builder

	builder.WriteString(constants.APIVersionPrefix)
	builder.WriteString("/")
	builder.WriteString(resource)

	if len(parts) == 0 {
		builder.WriteString("/")

		return builder.String()
	}

	for _, part := range parts {
		builder.WriteString("/")

		switch value := part.(type) {
		case string:
			builder.WriteString(url.PathEscape(strings.ToLower(value)))
		case int:
			builder.WriteString(strconv.Itoa(value))
		case int64:
			builder.WriteString(strconv.FormatInt(value, 10))
		default:
			builder.WriteString(url.PathEscape(strings.ToLower(fmt.Sprint(value))))
		}
	}

	return builder.String()
}
