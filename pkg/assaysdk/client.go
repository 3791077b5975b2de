package assaysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a minimal HTTP client for the assay service. Authenticated calls
// take the session token returned by Login; the client holds no session
// state of its own.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SignUp registers a new identity.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (SignUpResponse, error) {
	var out SignUpResponse
	err := c.do(ctx, http.MethodPost, "/v1/signup", "", req, &out)
	return out, err
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, userID, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/login", "", LoginRequest{UserID: userID, Password: password}, &out)
	return out, err
}

// SaveAssay creates a record owned by the token's user.
func (c *Client) SaveAssay(ctx context.Context, token string, req SaveAssayRequest) (AssayResponse, error) {
	var out AssayResponse
	err := c.do(ctx, http.MethodPost, "/v1/assays", token, req, &out)
	return out, err
}

// ListAssays returns the token user's records, newest first.
func (c *Client) ListAssays(ctx context.Context, token string) (ListAssaysResponse, error) {
	var out ListAssaysResponse
	err := c.do(ctx, http.MethodGet, "/v1/assays", token, nil, &out)
	return out, err
}

// AssayDetail returns one record by id, scoped to the token's user.
func (c *Client) AssayDetail(ctx context.Context, token string, recordID int64) (AssayResponse, error) {
	var out AssayResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/assays/%d", recordID), token, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("assaysdk: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("assaysdk: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("assaysdk: send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("assaysdk: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("assaysdk: decode response: %w", err)
		}
	}
	return nil
}

// parseErrorResponse turns an HTTP error body into a typed *APIError. Bodies
// that are not the service envelope still come back as an APIError carrying
// the status code.
func parseErrorResponse(status int, body []byte) error {
	var envelope struct {
		Code        string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Code == "" {
		return &APIError{
			StatusCode:  status,
			Code:        ErrorCodeServerError,
			Description: http.StatusText(status),
		}
	}
	return &APIError{
		StatusCode:  status,
		Code:        envelope.Code,
		Description: envelope.Description,
	}
}
