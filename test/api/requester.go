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

//go:generate go tool mockgen -source=requester.go -destination=mock/requester.go -package=mock

package api

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"
)

// Requester is the generic request capability the suites are written against.
// Every verb takes a URL, absolute or relative to BaseURL, and optional options.
type Requester interface {
	BaseURL() string
	Get(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error)
	Post(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error)
	Put(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error)
	Patch(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error)
	Delete(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error)
	Head(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error)
}

// RequestOptions describes everything about a request other than its method and URL.
type RequestOptions struct {
	// Headers are applied after the session headers and win on conflict.
	Headers map[string]string `json:"headers,omitempty"`
	// Data is the request body. Strings and byte slices are sent verbatim,
	// anything else is encoded as JSON.
	Data any `json:"data,omitempty"`
	// Form is sent form-urlencoded. It is ignored when Data is set.
	Form url.Values `json:"form,omitempty"`
	// Params are added to the query string.
	Params map[string]string `json:"params,omitempty"`
}

// APIResponse is a fully buffered HTTP response.
type APIResponse struct {
	status     int
	statusText string
	url        string
	header     http.Header
	body       []byte
	request    *http.Request
}

// NewAPIResponse builds a response from its parts.
func NewAPIResponse(request *http.Request, status int, header http.Header, body []byte) *APIResponse {
	r := &APIResponse{
		status:     status,
		statusText: http.StatusText(status),
		header:     header,
		body:       body,
		request:    request,
	}

	if request != nil && request.URL != nil {
		r.url = request.URL.String()
	}

	if r.header == nil {
		r.header = http.Header{}
	}

	return r
}

func (r *APIResponse) Status() int {
	return r.status
}

func (r *APIResponse) StatusText() string {
	return r.statusText
}

// OK reports whether the status is in the 2xx range.
func (r *APIResponse) OK() bool {
	return r.status >= 200 && r.status < 300
}

func (r *APIResponse) URL() string {
	return r.url
}

func (r *APIResponse) Header() http.Header {
	return r.header
}

// Headers returns the response headers keyed by lower-case name. Repeated
// headers are joined with newlines.
func (r *APIResponse) Headers() map[string]string {
	headers := make(map[string]string, len(r.header))

	for name, values := range r.header {
		headers[strings.ToLower(name)] = strings.Join(values, "\n")
	}

	return headers
}

func (r *APIResponse) Body() []byte {
	return r.body
}

func (r *APIResponse) Text() string {
	return string(r.body)
}

func (r *APIResponse) JSON(v any) error {
	return json.Unmarshal(r.body, v)
}

func (r *APIResponse) XML(v any) error {
	return xml.Unmarshal(r.body, v)
}

// Request is the request that produced this response.
func (r *APIResponse) Request() *http.Request {
	return r.request
}
