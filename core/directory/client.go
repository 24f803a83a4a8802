package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// scope grants application-level access to the directory API.
const scope = "https://graph.microsoft.com/.default"

// Client defines the directory operations used by the sync.
type Client interface {
	// FindByPrincipalName returns the account with the given principal name,
	// selecting only the listed attributes, or nil when no account matches.
	// When the directory returns more than one match the first one wins.
	FindByPrincipalName(ctx context.Context, principalName string, selectFields []string) (*Account, error)
	// Create creates a new account and returns it as stored by the directory.
	Create(ctx context.Context, payload Payload) (*Account, error)
	// Update applies a partial update to the account with the given ID.
	Update(ctx context.Context, accountID string, payload Payload) error
	// Delete removes the account with the given ID.
	Delete(ctx context.Context, accountID string) error
	// ListAll enumerates every account in the directory, selecting only the
	// listed attributes, and calls fn for each one. Enumeration stops when fn
	// returns false. Pagination is internal; an error returned after fn has
	// been called means the enumeration is truncated, not empty.
	ListAll(ctx context.Context, selectFields []string, fn func(Account) bool) error
}

// APIError is a directory-level error response.
type APIError struct {
	// StatusCode is the HTTP status of the failed call.
	StatusCode int
	// Code is the directory error code (e.g. "Request_BadRequest").
	Code string
	// Message is the human-readable error description.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("directory error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient performs the client-credential token exchange and returns a
// directory client. The token is acquired eagerly so that credential
// failures abort the run before any record is processed.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.tokenURL(),
		Scopes:       []string{scope},
	}

	if _, err := cc.Token(ctx); err != nil {
		return nil, fmt.Errorf("failed to acquire directory token: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	httpClient := cc.Client(ctx)
	httpClient.Timeout = time.Duration(timeout) * time.Second

	return NewWithHTTPClient(cfg, httpClient), nil
}

// NewWithHTTPClient returns a directory client using the provided HTTP
// client as-is. The caller is responsible for authentication and timeouts.
func NewWithHTTPClient(cfg Config, httpClient *http.Client) Client {
	return &client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// accountPage is one page of a list response.
type accountPage struct {
	Value    []Account `json:"value"`
	NextLink string    `json:"@odata.nextLink"`
}

func (c *client) FindByPrincipalName(ctx context.Context, principalName string, selectFields []string) (*Account, error) {
	// Single quotes in OData string literals are escaped by doubling.
	escaped := strings.ReplaceAll(principalName, "'", "''")

	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("userPrincipalName eq '%s'", escaped))
	query.Set("$select", strings.Join(selectFields, ","))

	var page accountPage
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/users?"+query.Encode(), nil, &page); err != nil {
		return nil, err
	}

	if len(page.Value) == 0 {
		return nil, nil
	}
	return &page.Value[0], nil
}

func (c *client) Create(ctx context.Context, payload Payload) (*Account, error) {
	var created Account
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/users", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *client) Update(ctx context.Context, accountID string, payload Payload) error {
	return c.do(ctx, http.MethodPatch, c.baseURL+"/users/"+url.PathEscape(accountID), payload, nil)
}

func (c *client) Delete(ctx context.Context, accountID string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/users/"+url.PathEscape(accountID), nil, nil)
}

func (c *client) ListAll(ctx context.Context, selectFields []string, fn func(Account) bool) error {
	query := url.Values{}
	query.Set("$select", strings.Join(selectFields, ","))

	next := c.baseURL + "/users?" + query.Encode()

	for next != "" {
		var page accountPage
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return err
		}

		for _, account := range page.Value {
			if !fn(account) {
				return nil
			}
		}

		// The next link is an opaque absolute URL; absence ends enumeration.
		next = page.NextLink
	}

	return nil
}

// do performs one API call. Bodies are JSON; error responses are decoded
// into an APIError. Calls are never retried.
func (c *client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("directory call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode directory response: %w", err)
		}
	}

	return nil
}

// decodeError turns an error response into an APIError, falling back to the
// raw body when it is not the expected JSON shape.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var wrapper struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Error.Code != "" {
		apiErr.Code = wrapper.Error.Code
		apiErr.Message = wrapper.Error.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	return apiErr
}
