package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/parsekit/binding"
	"github.com/kbukum/parsekit/errors"
	"github.com/kbukum/parsekit/logger"
)

// Client performs REST calls for one entity class, configured by a
// binding.RequestConfig.
type Client struct {
	httpClient *http.Client
	cfg        binding.RequestConfig
	model      *binding.ModelHooks
	coll       *binding.CollectionHooks
	log        *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger the client reports through.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithFactory sets the factory nested references rehydrate through.
func WithFactory(f binding.Factory) Option {
	return func(c *Client) { c.model = binding.NewModelHooks(f, c.log) }
}

// New creates a client from a request configuration. The config must carry
// an endpoint and name this adapter type.
func New(cfg binding.RequestConfig, opts ...Option) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.InvalidInput("url", "request config has no endpoint")
	}
	if cfg.Adapter.Type != binding.AdapterTypeRESTAPI {
		return nil, errors.InvalidInput("adapter", fmt.Sprintf("unsupported adapter type %q", cfg.Adapter.Type))
	}

	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logger.GetGlobalLogger()
	}
	c.log = c.log.WithComponent("restapi")
	if c.model == nil {
		c.model = binding.NewMapFactory(c.log).Hooks()
	}
	c.coll = binding.NewCollectionHooks(c.log)
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return c, nil
}

// Get fetches a single object by id.
func (c *Client) Get(ctx context.Context, objectID string) (binding.Attributes, error) {
	raw, err := c.do(ctx, http.MethodGet, c.objectURL(objectID), nil, nil)
	if err != nil {
		return nil, err
	}
	return toAttributes(c.model.OnParse(raw)), nil
}

// Query fetches every object matching the options and returns the
// normalized records.
func (c *Client) Query(ctx context.Context, opts binding.FetchOptions) ([]binding.Attributes, error) {
	opts, err := c.model.OnFetch(opts)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, http.MethodGet, c.cfg.URL, opts.Data, nil)
	if err != nil {
		return nil, err
	}
	return c.coll.OnParse(raw), nil
}

// First fetches the single object matching the options, nil when nothing
// matched.
func (c *Client) First(ctx context.Context, opts binding.FetchOptions) (binding.Attributes, error) {
	opts, err := c.model.OnFetch(opts)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, http.MethodGet, c.cfg.URL, opts.Data, nil)
	if err != nil {
		return nil, err
	}
	return toAttributes(c.model.OnParse(raw)), nil
}

// Create stores a new object and returns the backend-assigned fields,
// typically objectId and createdAt.
func (c *Client) Create(ctx context.Context, attrs binding.Attributes) (binding.Attributes, error) {
	body := c.model.OnSerialize(attrs)
	raw, err := c.do(ctx, http.MethodPost, c.cfg.URL, nil, body)
	if err != nil {
		return nil, err
	}
	return toAttributes(raw), nil
}

// Update modifies an existing object and returns the backend-assigned
// fields, typically updatedAt.
func (c *Client) Update(ctx context.Context, objectID string, attrs binding.Attributes) (binding.Attributes, error) {
	body := c.model.OnSerialize(attrs)
	raw, err := c.do(ctx, http.MethodPut, c.objectURL(objectID), nil, body)
	if err != nil {
		return nil, err
	}
	return toAttributes(raw), nil
}

// Delete removes an object by id.
func (c *Client) Delete(ctx context.Context, objectID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.objectURL(objectID), nil, nil)
	return err
}

func (c *Client) objectURL(objectID string) string {
	return c.cfg.URL + "/" + objectID
}

// do executes one request and decodes the JSON response.
func (c *Client) do(ctx context.Context, method, url string, query map[string]string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.InvalidInput("body", fmt.Sprintf("encode body: %v", err))
		}
		reader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.InvalidInput("request", fmt.Sprintf("create request: %v", err))
	}

	if len(query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.cfg.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Timeout(err)
		}
		return nil, errors.ConnectionFailed(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ConnectionFailed(fmt.Errorf("read response body: %w", err))
	}

	if c.cfg.Debug {
		c.log.Debug("request completed", logger.Fields(
			logger.FieldOperation, method,
			logger.FieldRequestID, requestID,
			logger.FieldStatus, resp.StatusCode,
			logger.FieldDuration, time.Since(start).Milliseconds(),
			"url", httpReq.URL.String(),
		))
	}

	if resp.StatusCode >= 400 {
		return nil, classifyResponse(resp.StatusCode, respBody)
	}

	if len(respBody) == 0 {
		return nil, nil
	}
	var raw any
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, errors.ConnectionFailed(fmt.Errorf("decode response: %w", err))
	}
	return raw, nil
}

// toAttributes normalizes a parsed response value to Attributes, nil when
// the value is not a record.
func toAttributes(v any) binding.Attributes {
	switch m := v.(type) {
	case binding.Attributes:
		return m
	case map[string]any:
		return binding.Attributes(m)
	}
	return nil
}
