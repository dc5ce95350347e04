package woo

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wooflow/internal/logger"
)

const (
	wcAPIPath = "/wp-json/wc/v3"
	wpAPIPath = "/wp-json/wp/v2"
)

// Config holds the credentials and options for a store connection.
type Config struct {
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string

	// WordPress application password, used for the media API. Falls back to
	// the WooCommerce key pair when unset.
	WPUsername string
	WPPassword string

	VerifySSL bool
}

// Client talks to a single WooCommerce store over its REST API.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(cfg Config, logger *logger.Logger) *Client {
	cfg.StoreURL = strings.TrimRight(cfg.StoreURL, "/")

	transport := http.DefaultTransport
	if !cfg.VerifySSL {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		logger: logger,
	}
}

// do performs a JSON request against the WooCommerce API and decodes the
// response into out (skipped when out is nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return c.request(ctx, method, c.config.StoreURL+wcAPIPath+path, query, body, out, false)
}

// doWP is do against the WordPress API, using the WP credentials if present.
func (c *Client) doWP(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return c.request(ctx, method, c.config.StoreURL+wpAPIPath+path, query, body, out, true)
}

func (c *Client) request(ctx context.Context, method, fullURL string, query url.Values, body, out interface{}, wordpress bool) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.setAuth(req, wordpress)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) setAuth(req *http.Request, wordpress bool) {
	if wordpress && c.config.WPUsername != "" && c.config.WPPassword != "" {
		req.SetBasicAuth(c.config.WPUsername, c.config.WPPassword)
		return
	}
	req.SetBasicAuth(c.config.ConsumerKey, c.config.ConsumerSecret)
}

// GetStoreInfo fetches the store index document (name, description, routes).
func (c *Client) GetStoreInfo(ctx context.Context) (map[string]interface{}, error) {
	var info map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "", nil, nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}
