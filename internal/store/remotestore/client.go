package remotestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"timo-intelligence-be/internal/content"
	"timo-intelligence-be/internal/model"
)

// ErrNotFound means the remote store holds no document yet. Callers fall
// through to the local store; this is not a failure worth surfacing.
var ErrNotFound = errors.New("remotestore: content not found")

const (
	defaultTimeout = 10 * time.Second
	maxRetries     = 3
	retryDelay     = time.Second
)

// Client is a thin HTTP client for GET/PUT of the whole content
// document against the upstream content API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		retryDelay: retryDelay,
	}
}

// Configured reports whether a remote endpoint is set. When false the
// orchestrator never calls Fetch or Put and persists locally only.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Fetch reads the whole document. A 404 maps to ErrNotFound; other
// non-2xx statuses and transport failures are errors.
func (c *Client) Fetch(ctx context.Context) (*model.ContentDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/content", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remotestore: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("remotestore: fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("remotestore: fetch: %w", err)
	}

	doc := content.DecodeDocument(body)
	if doc == nil {
		return nil, errors.New("remotestore: fetch: invalid content document")
	}
	return doc, nil
}

// Put writes the whole document. Transient failures (5xx, timeout,
// network) are retried with linearly increasing delay up to the retry
// ceiling; 4xx fails immediately since retrying a malformed or
// unauthorized request cannot succeed.
func (c *Client) Put(ctx context.Context, doc *model.ContentDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retryable, err := c.putOnce(ctx, payload)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) putOnce(ctx context.Context, payload []byte) (retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/content", bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and aborted requests count as network errors.
		return true, fmt.Errorf("remotestore: put: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return false, nil
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("remotestore: put: server error %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("remotestore: put: status %d: %s", resp.StatusCode, string(body))
	}
}
