package foliosdk

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
)

// SDKClient talks to a folio server. Unauthenticated calls hang off the
// client; Login and Register return a Session for the rest.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a 10 second timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with an email or username.
func (c *SDKClient) Login(ctx context.Context, identifier, password string) (*Session, error) {
	var out LoginResponse
	err := c.do(ctx, "", http.MethodPost, "/api/auth/login",
		LoginRequest{Email: identifier, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Register creates an account and returns its first session.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var out LoginResponse
	if err := c.do(ctx, "", http.MethodPost, "/api/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// GetProfile fetches a profile by email or username.
func (c *SDKClient) GetProfile(ctx context.Context, identifier string) (*Profile, error) {
	var out ProfileResponse
	if err := c.do(ctx, "", http.MethodGet, "/api/users/"+url.PathEscape(identifier), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ListProfiles lists up to limit profiles, newest first. Zero uses the
// server default.
func (c *SDKClient) ListProfiles(ctx context.Context, limit int) ([]Profile, error) {
	var out ProfileListResponse
	if err := c.do(ctx, "", http.MethodGet, "/api/users"+limitQuery(limit), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Followers lists the profiles following email.
func (c *SDKClient) Followers(ctx context.Context, email string) ([]Profile, error) {
	var out ProfileListResponse
	if err := c.do(ctx, "", http.MethodGet, "/api/users/"+url.PathEscape(email)+"/followers", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Following lists the profiles email follows.
func (c *SDKClient) Following(ctx context.Context, email string) ([]Profile, error) {
	var out ProfileListResponse
	if err := c.do(ctx, "", http.MethodGet, "/api/users/"+url.PathEscape(email)+"/following", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// VerifySession checks a raw token without building a Session.
func (c *SDKClient) VerifySession(ctx context.Context, token string) (*VerifySessionResponse, error) {
	var out VerifySessionResponse
	if err := c.do(ctx, token, http.MethodGet, "/api/auth/verify-session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends body as JSON (when non-nil), with token as a bearer credential
// (when non-empty), and decodes a response with status expected into out.
func (c *SDKClient) do(ctx context.Context, token, method, path string, body, out any, expected int) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expected {
		if apiErr := parseErrorResponse(resp, raw); apiErr != nil {
			return apiErr
		}
		return &APIError{StatusCode: resp.StatusCode, Message: "unexpected status"}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func limitQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	return "?limit=" + strconv.Itoa(limit)
}
