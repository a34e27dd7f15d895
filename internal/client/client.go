package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed HTTP client for the scheduler API. Every call is a single
// fire-and-forget request: no retries, no caching, failures surface
// immediately.
type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient is used by tests to inject an httptest client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// Event mirrors the API's event model.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	CreatorName  string    `json:"creator_name"`
	CreatorEmail string    `json:"creator_email"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EventInput is the client-supplied field set for create and update.
type EventInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	CreatorName  string `json:"creator_name"`
	CreatorEmail string `json:"creator_email"`
	Location     string `json:"location"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError carries the server's status code and its error message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var body struct {
		Events []Event `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &body); err != nil {
		return nil, err
	}
	return body.Events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	var body struct {
		Event Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, &body); err != nil {
		return nil, err
	}
	return &body.Event, nil
}

func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*Event, error) {
	var body struct {
		Message string `json:"message"`
		Event   Event  `json:"event"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/events", in, &body); err != nil {
		return nil, err
	}
	return &body.Event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in EventInput) error {
	return c.do(ctx, http.MethodPut, "/api/events/"+url.PathEscape(id), in, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListEventsInRange(ctx context.Context, startDate, endDate string) ([]Event, error) {
	var body struct {
		Events []Event `json:"events"`
	}
	path := "/api/events/range/" + url.PathEscape(startDate) + "/" + url.PathEscape(endDate)
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	return body.Events, nil
}

func (c *Client) GetHealth(ctx context.Context) (*Health, error) {
	var body Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &APIError{StatusCode: resp.StatusCode, Message: eb.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
