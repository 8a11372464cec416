// Package api is a client for the remote product catalog REST service.
package api

import (
	"bytes"
	"catadmin/internal/catalog"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout  = 30 * time.Second
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 512
)

var ErrNotFound = errors.New("product not found")

// FetchError is returned for transport failures and non-2xx responses.
type FetchError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		msg := fmt.Sprintf("%s: %s %s: status %d", e.Op, e.Method, e.URL, e.StatusCode)
		if e.Body != "" {
			msg += ": " + e.Body
		}
		return msg
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
	newID      func() string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient targets baseURL, the API root under which /products lives.
func NewClient(baseURL string, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        discard,
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) productsURL() string {
	return c.baseURL + "/products"
}

func (c *Client) productURL(id int) string {
	return c.productsURL() + "/" + strconv.Itoa(id)
}

func (c *Client) List(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, "list products", http.MethodGet, c.productsURL(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Get(ctx context.Context, id int) (catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, "get product", http.MethodGet, c.productURL(id), nil, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (c *Client) Create(ctx context.Context, in catalog.ProductInput) (catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, "create product", http.MethodPost, c.productsURL(), in, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (c *Client) Update(ctx context.Context, id int, in catalog.ProductInput) (catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, "update product", http.MethodPut, c.productURL(id), in, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

// ProbeImage reports whether url answers a HEAD request with a 2xx status.
func (c *Client) ProbeImage(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", url).Debug("image probe failed")
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *Client) do(ctx context.Context, op, method, url string, body, out any) error {
	fail := func(status int, respBody string, err error) error {
		return &FetchError{Op: op, Method: method, URL: url, StatusCode: status, Body: respBody, Err: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(0, "", fmt.Errorf("encoding request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fail(0, "", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := c.newID()
	req.Header.Set(RequestIDHeader, requestID)

	log := c.log.WithFields(logrus.Fields{"op": op, "method": method, "url": url, "request_id": requestID})
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return fail(0, "", err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": time.Since(start)})
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn("unexpected status")
		return fail(resp.StatusCode, strings.TrimSpace(string(data)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.WithError(err).Warn("decoding response")
		return fail(0, "", fmt.Errorf("decoding response: %w", err))
	}
	log.Debug("request completed")
	return nil
}
