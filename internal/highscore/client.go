package highscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is where the API server listens by default.
const DefaultBaseURL = "http://localhost:5000" + APIPrefix

// Client is a Store backed by a remote high-score API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewClient returns a client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		logger:  log.New(io.Discard),
	}
}

// SetLogger routes the client's debug output to l.
func (c *Client) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

var _ Store = (*Client)(nil)

func (c *Client) AddSingle(ctx context.Context, s SinglePlayerScore) (SinglePlayerScore, error) {
	var out SinglePlayerScore
	err := c.do(ctx, http.MethodPost, ModeSingle.Path(), s, &out)
	return out, err
}

func (c *Client) AddMulti(ctx context.Context, s MultiPlayerScore) (MultiPlayerScore, error) {
	var out MultiPlayerScore
	err := c.do(ctx, http.MethodPost, ModeMulti.Path(), s, &out)
	return out, err
}

func (c *Client) Singles(ctx context.Context, limit int) ([]SinglePlayerScore, error) {
	var out []SinglePlayerScore
	err := c.do(ctx, http.MethodGet, withLimit(ModeSingle.Path(), limit), nil, &out)
	return out, err
}

func (c *Client) Multis(ctx context.Context, limit int) ([]MultiPlayerScore, error) {
	var out []MultiPlayerScore
	err := c.do(ctx, http.MethodGet, withLimit(ModeMulti.Path(), limit), nil, &out)
	return out, err
}

func withLimit(path string, limit int) string {
	if limit <= 0 {
		return path
	}
	return path + "?limit=" + strconv.Itoa(limit)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return fmt.Errorf("highscore: encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &payload)
	if err != nil {
		return fmt.Errorf("highscore: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("highscore: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
			c.logger.Debug("undecodable error body", "method", method, "path", path, "status", resp.StatusCode, "err", err)
		}
		if eb.Error == "" {
			eb.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: eb.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("highscore: decode response: %w", err)
	}
	return nil
}

// APIError is returned by Client for non-2xx responses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("highscore: server returned %d: %s", e.Status, e.Message)
}
