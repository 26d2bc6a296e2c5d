package platform

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	signinPath  = "/api/auth/signin"
	graphqlPath = "/api/graphql-engine/v1/graphql"
)

// Client talks to the platform's identity and GraphQL endpoints. Every call is
// a single attempt; there are no retries and no query batching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Signin exchanges credentials for a platform token using Basic auth framing.
// The success body is a JSON-encoded token string.
func (c *Client) Signin(ctx context.Context, identifier, secret string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+signinPath, nil)
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(identifier + ":" + secret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ConnectivityError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RequestError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	var token string
	if err := json.Unmarshal(body, &token); err != nil {
		// Some deployments return the bare token instead of a JSON string.
		token = strings.TrimSpace(string(body))
	}
	if token == "" {
		return "", &RequestError{StatusCode: resp.StatusCode, Message: "signin returned an empty token"}
	}
	return token, nil
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Execute posts one query document with a bearer credential and returns the
// data member of the response envelope.
func (c *Client) Execute(ctx context.Context, token, query string) (json.RawMessage, error) {
	payload, err := json.Marshal(graphqlRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+graphqlPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: "unreadable GraphQL response"}
	}
	if len(envelope.Errors) > 0 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: envelope.Errors[0].Message}
	}
	return envelope.Data, nil
}

// errorMessage extracts the server-provided error field from a failure body,
// falling back to the HTTP status text.
func errorMessage(status int, body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return http.StatusText(status)
}
