package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client is a struct for communicating with a locaddo server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient is a constructor for creating a new Client. addr may be a full
// URL or a host:port pair such as ":8080".
func NewClient(addr string) *Client {
	return &Client{
		baseURL:    baseURL(addr),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func baseURL(addr string) string {
	addr = strings.TrimRight(strings.TrimSpace(addr), "/")
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

// Response is a raw server reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// Send is a method for sending a request to the server. Non-2xx replies are
// returned together with an error describing them.
func (c *Client) Send(ctx context.Context, method string, path string, data string) (*Response, error) {
	logrus.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"data":   data,
		"server": c.baseURL,
	}).Debug("sending request")

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions:
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}

	var body io.Reader
	if data != "" {
		body = strings.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	if data != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, ErrServerNotRunning
		}
		return nil, pkgerrors.Wrap(err, "failed to send request")
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Errorf("failed to close response body: %v", err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read response body")
	}
	r := &Response{StatusCode: resp.StatusCode, Body: b}

	if resp.StatusCode == http.StatusNotFound {
		return r, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return r, fmt.Errorf("got %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return r, nil
}

// Get is a method for sending a GET request to the server
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Send(ctx, http.MethodGet, path, "")
}

// Post is a method for sending a POST request to the server
func (c *Client) Post(ctx context.Context, path string, data string) (*Response, error) {
	return c.Send(ctx, http.MethodPost, path, data)
}
