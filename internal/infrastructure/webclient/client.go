package webclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/foodstorage/backend/internal/domain"
)

const (
	// DefaultTimeout bounds a whole request, including reading the body
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this service to remote hosts
	DefaultUserAgent = "FoodStorageApi/1.0"

	// maxResponseBytes caps how much of a response body is read
	maxResponseBytes = 10 << 20

	// debugPreviewBytes is how much of a body is logged in debug mode
	debugPreviewBytes = 512
)

// Config holds the fixed settings of a Client
type Config struct {
	Timeout   time.Duration
	UserAgent string
	Debug     bool
}

// Client issues HTTP requests to absolute URLs and returns response bodies as text.
// It owns a pooled transport and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
	debug      bool
	closeOnce  sync.Once
}

// NewClient creates a new web service client. Zero values in cfg fall back to defaults.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: userAgent,
		debug:     cfg.Debug,
	}
}

// Get issues a GET request
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	return c.send(ctx, http.MethodGet, rawURL, nil)
}

// Post issues a POST request with a JSON body. An empty body is allowed.
func (c *Client) Post(ctx context.Context, rawURL, body string) (string, error) {
	return c.send(ctx, http.MethodPost, rawURL, &body)
}

// Put issues a PUT request with a JSON body. An empty body is allowed.
func (c *Client) Put(ctx context.Context, rawURL, body string) (string, error) {
	return c.send(ctx, http.MethodPut, rawURL, &body)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, rawURL string) (string, error) {
	return c.send(ctx, http.MethodDelete, rawURL, nil)
}

// Close releases pooled connections. Calls after the first are no-ops.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
		log.Printf("[WebClient] Connections released")
	})
	return nil
}

// send executes one request. There are no retries.
func (c *Client) send(ctx context.Context, method, rawURL string, body *string) (string, error) {
	if err := validateURL(rawURL); err != nil {
		return "", err
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = strings.NewReader(*body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", domain.ErrInvalidArgument, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	log.Printf("[WebClient] Making %s request to %s", method, rawURL)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = classifyError(ctx, err)
		log.Printf("[WebClient] %s request to %s failed: %v", method, rawURL, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[WebClient] %s request to %s failed - Status: %d", method, rawURL, resp.StatusCode)
		if c.debug {
			errBody, _ := io.ReadAll(io.LimitReader(resp.Body, debugPreviewBytes+1))
			log.Printf("[WebClient] Error body: %s", preview(errBody))
		}
		return "", &domain.RemoteHTTPError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	content, err := readLimitedBody(resp.Body, maxResponseBytes)
	if err != nil {
		if !errors.Is(err, domain.ErrTransport) {
			err = classifyError(ctx, err)
		}
		log.Printf("[WebClient] %s request to %s failed reading body: %v", method, rawURL, err)
		return "", err
	}

	log.Printf("[WebClient] %s request to %s completed successfully (status %d, %s)",
		method, rawURL, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	c.debugLog("[WebClient] Response body: %s", preview(content))

	return strings.ToValidUTF8(string(content), "\uFFFD"), nil
}

// validateURL requires a non-empty absolute URL
func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: url is required", domain.ErrInvalidArgument)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: malformed url: %v", domain.ErrInvalidArgument, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("%w: url must be absolute: %q", domain.ErrInvalidArgument, rawURL)
	}
	return nil
}

// classifyError maps a failed round trip onto the domain error taxonomy
func classifyError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", domain.ErrCancelled, err)
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", domain.ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrTransport, err)
}

// readLimitedBody reads all of r, failing with ErrTransport when it holds more than limit bytes
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", domain.ErrTransport, limit)
	}
	return content, nil
}

func preview(body []byte) string {
	if len(body) > debugPreviewBytes {
		return string(body[:debugPreviewBytes]) + "..."
	}
	return string(body)
}

// debugLog logs only when debug mode is enabled
func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf(format, args...)
	}
}
