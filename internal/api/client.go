// Package api is the REST client for the Dev-Hub backend. It is the only
// place the hub state containers touch the network.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alshawwaf/dev-hub/internal/domain"
)

// ErrUnreachable wraps transport-level failures, as opposed to errors the
// backend reported itself.
var ErrUnreachable = errors.New("unable to reach service")

// Error is a non-2xx response from the backend, carrying its detail message
// when one was provided.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// TokenSource supplies the bearer token for authenticated requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL     string
	tokenSource TokenSource
	httpClient  *http.Client
}

func NewClient(baseURL string, tokenSource TokenSource) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		tokenSource: tokenSource,
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
	}
}

type Identity struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type LoginResult struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        Identity `json:"user"`
}

// Login submits the credential pair form-encoded and returns the issued
// token with the identity it belongs to.
func (c *Client) Login(ctx context.Context, username string, password string) (LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return LoginResult{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var result LoginResult
	if err := c.do(req, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

type AppInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	GithubURL   string `json:"github_url"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	IsLive      bool   `json:"is_live"`
}

func (c *Client) ListApps(ctx context.Context) ([]domain.Application, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/apps/", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	apps := make([]domain.Application, 0)
	if err := c.do(req, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) CreateApp(ctx context.Context, input AppInput) (domain.Application, error) {
	var app domain.Application
	req, err := c.jsonRequest(ctx, "POST", c.baseURL+"/apps/", input)
	if err != nil {
		return app, err
	}
	if err := c.do(req, &app); err != nil {
		return app, err
	}
	return app, nil
}

func (c *Client) UpdateApp(ctx context.Context, id int64, input AppInput) (domain.Application, error) {
	var app domain.Application
	req, err := c.jsonRequest(ctx, "PUT", fmt.Sprintf("%s/apps/%d", c.baseURL, id), input)
	if err != nil {
		return app, err
	}
	if err := c.do(req, &app); err != nil {
		return app, err
	}
	return app, nil
}

func (c *Client) DeleteApp(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", fmt.Sprintf("%s/apps/%d", c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) jsonRequest(ctx context.Context, method string, requestURL string, body any) (*http.Request, error) {
	bodyJson, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(bodyJson))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	if c.tokenSource != nil {
		if token := c.tokenSource.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		detail := detailResponse{}
		if err := json.Unmarshal(respBytes, &detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(respBytes, out)
}

type detailResponse struct {
	Detail string `json:"detail"`
}
