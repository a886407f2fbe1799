/*
Copyright 2026 Accion Labs.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

const (
	headerContentType = "Content-Type"
	mediaTypeForm     = "application/x-www-form-urlencoded"
)

// APIClient is the plain HTTP implementation of Requester. It applies the
// session headers to every request and hands back fully buffered responses
// whatever their status.
type APIClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	config  *TestConfig
}

var _ Requester = &APIClient{}

func NewAPIClient(session *Session) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(session.BaseURL, "/"),
		client: &http.Client{
			Timeout: session.Config.RequestTimeout,
		},
		headers: session.Credentials.Headers(),
		config:  session.Config,
	}
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

func (c *APIClient) Get(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.doRequest(ctx, http.MethodGet, url, options)
}

func (c *APIClient) Post(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.doRequest(ctx, http.MethodPost, url, options)
}

func (c *APIClient) Put(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.doRequest(ctx, http.MethodPut, url, options)
}

func (c *APIClient) Patch(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.doRequest(ctx, http.MethodPatch, url, options)
}

func (c *APIClient) Delete(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.doRequest(ctx, http.MethodDelete, url, options)
}

func (c *APIClient) Head(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.doRequest(ctx, http.MethodHead, url, options)
}

// logError logs a transport error with trace context.
func (c *APIClient) logError(method, target string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, target, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh one per request means a failing call can be found in the server logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// resolve turns a target into an absolute URL with the query parameters applied.
func (c *APIClient) resolve(target string, params map[string]string) (string, error) {
	if !strings.Contains(target, "://") {
		target = c.baseURL + "/" + strings.TrimPrefix(target, "/")
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parsing url %q: %w", target, err)
	}

	if len(params) > 0 {
		query := u.Query()

		for k, v := range params {
			query.Set(k, v)
		}

		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

// encodeBody returns the request body and the content type it implies, if any.
func encodeBody(options *RequestOptions) (io.Reader, string, error) {
	switch {
	case options.Data != nil:
		switch data := options.Data.(type) {
		case string:
			return strings.NewReader(data), "", nil
		case []byte:
			return bytes.NewReader(data), "", nil
		default:
			encoded, err := json.Marshal(data)
			if err != nil {
				return nil, "", fmt.Errorf("marshaling request body: %w", err)
			}

			return bytes.NewReader(encoded), mediaTypeJSON, nil
		}
	case options.Form != nil:
		return strings.NewReader(options.Form.Encode()), mediaTypeForm, nil
	}

	return nil, "", nil
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, target string, options *RequestOptions) (*APIResponse, error) {
	if options == nil {
		options = &RequestOptions{}
	}

	fullURL, err := c.resolve(target, options.Params)
	if err != nil {
		return nil, err
	}

	body, impliedContentType, err := encodeBody(options)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if impliedContentType != "" {
		req.Header.Set(headerContentType, impliedContentType)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	for k, v := range options.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, target, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, target, duration, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, target, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, target, string(respBody))
	}

	return NewAPIResponse(req, resp.StatusCode, resp.Header, respBody), nil
}
