package gateway

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client wraps the remote entity store. Every request carries the static
// api_key header; failures surface as *APIError and are never retried.
type Client struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

type APIError struct {
	Entity    string
	Status    int
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %s request failed with status %d (request %s)", e.Entity, e.Status, e.RequestID)
}

func NewClient(baseURL, appID, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) entityURL(entity string, id string) string {
	u := fmt.Sprintf("%s/api/apps/%s/entities/%s", c.baseURL, c.appID, entity)
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, entity, id string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode %s payload: %w", entity, err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.entityURL(entity, id)
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("gateway: build %s request: %w", entity, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("entity request failed",
			zap.String("entity", entity),
			zap.String("method", method),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("gateway: %s request: %w", entity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Entity: entity, Status: resp.StatusCode, RequestID: requestID}
		c.logger.Error("entity request rejected",
			zap.String("entity", entity),
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decode %s response: %w", entity, err)
	}
	return nil
}

// Collection is a typed accessor for one remote entity collection.
type Collection[T any] struct {
	client *Client
	entity string
}

func NewCollection[T any](client *Client, entity string) Collection[T] {
	return Collection[T]{client: client, entity: entity}
}

func listQuery(order string, limit int) url.Values {
	query := url.Values{}
	if order != "" {
		query.Set("sort", order)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return query
}

// List fetches up to limit records ordered by the given field. A leading
// '-' on order means descending, e.g. "-created_date".
func (c Collection[T]) List(ctx context.Context, order string, limit int) ([]T, error) {
	var records []T
	if err := c.client.do(ctx, http.MethodGet, c.entity, "", listQuery(order, limit), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Filter fetches records matching all equality predicates in where.
func (c Collection[T]) Filter(ctx context.Context, where map[string]any, order string, limit int) ([]T, error) {
	query := listQuery(order, limit)
	if len(where) > 0 {
		encoded, err := json.Marshal(where)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode %s filter: %w", c.entity, err)
		}
		query.Set("q", string(encoded))
	}

	var records []T
	if err := c.client.do(ctx, http.MethodGet, c.entity, "", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var record T
	if err := c.client.do(ctx, http.MethodGet, c.entity, id, nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c Collection[T]) Create(ctx context.Context, data T) (*T, error) {
	var record T
	if err := c.client.do(ctx, http.MethodPost, c.entity, "", nil, data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces the full record; the store has no partial update.
func (c Collection[T]) Update(ctx context.Context, id string, data T) (*T, error) {
	var record T
	if err := c.client.do(ctx, http.MethodPut, c.entity, id, nil, data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
