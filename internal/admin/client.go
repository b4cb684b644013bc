package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/flightadmin/internal/domain"
)

const tokenHeader = "X-Admin-Token"

// Client implements FlightAPI over the flight service's REST endpoints.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) ListAllFlights(ctx context.Context) ([]domain.Flight, error) {
	var flights []domain.Flight
	if err := c.do(ctx, http.MethodGet, "/api/flights", nil, http.StatusOK, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *Client) CreateFlight(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	var flight domain.Flight
	if err := c.do(ctx, http.MethodPost, "/api/flights", input, http.StatusCreated, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (c *Client) UpdateFlight(ctx context.Context, id int64, input domain.FlightInput) (*domain.Flight, error) {
	var flight domain.Flight
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/flights/%d", id), input, http.StatusOK, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (c *Client) DeleteFlight(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/flights/%d", id), nil, http.StatusNoContent, nil)
}

// Login exchanges the admin password for a session token. It is not part of
// FlightAPI; the console calls it before the view mounts.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", body, http.StatusOK, &resp); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/admin/logout", nil, http.StatusNoContent, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

var _ FlightAPI = (*Client)(nil)
