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

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const (
	requestDetails  = "Request Details"
	responseDetails = "Response Details"

	noCookies       = "No cookies"
	notApplicable   = "N/A"
	headerSetCookie = "set-cookie"
	headerCTLower   = "content-type"
)

// RequestRecord is the evidence captured before a call is made.
type RequestRecord struct {
	Method  string          `json:"method"`
	URL     string          `json:"url"`
	Options *RequestOptions `json:"options"`
}

// ResponseRecord is the evidence captured once a call completes.
type ResponseRecord struct {
	Status      int               `json:"status"`
	Headers     map[string]string `json:"headers"`
	Cookies     string            `json:"cookies"`
	ContentType string            `json:"contentType"`
	Body        Body              `json:"body"`
}

// InstrumentedClient decorates a Requester so every verb call is reported as
// a request step and a response step. Arguments and results pass through
// untouched.
type InstrumentedClient struct {
	next     Requester
	reporter Reporter
}

var _ Requester = &InstrumentedClient{}

func NewInstrumentedClient(next Requester, reporter Reporter) *InstrumentedClient {
	return &InstrumentedClient{
		next:     next,
		reporter: reporter,
	}
}

// Unwrap returns the decorated Requester.
func (c *InstrumentedClient) Unwrap() Requester {
	return c.next
}

// BaseURL is not a call and is not reported.
func (c *InstrumentedClient) BaseURL() string {
	return c.next.BaseURL()
}

func (c *InstrumentedClient) Get(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.instrument(ctx, http.MethodGet, url, options, c.next.Get)
}

func (c *InstrumentedClient) Post(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.instrument(ctx, http.MethodPost, url, options, c.next.Post)
}

func (c *InstrumentedClient) Put(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.instrument(ctx, http.MethodPut, url, options, c.next.Put)
}

func (c *InstrumentedClient) Patch(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.instrument(ctx, http.MethodPatch, url, options, c.next.Patch)
}

func (c *InstrumentedClient) Delete(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.instrument(ctx, http.MethodDelete, url, options, c.next.Delete)
}

func (c *InstrumentedClient) Head(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error) {
	return c.instrument(ctx, http.MethodHead, url, options, c.next.Head)
}

type verbFunc func(ctx context.Context, url string, options *RequestOptions) (*APIResponse, error)

func (c *InstrumentedClient) instrument(ctx context.Context, method, url string, options *RequestOptions, call verbFunc) (*APIResponse, error) {
	recorded := options
	if recorded == nil {
		recorded = &RequestOptions{}
	}

	c.reporter.Step(fmt.Sprintf("API Request: %s %s", method, url), func() {
		c.attach(requestDetails, RequestRecord{
			Method:  method,
			URL:     url,
			Options: recorded,
		})
	})

	// The caller's options, nil included, go to the underlying call.
	response, err := call(ctx, url, options)
	if err != nil {
		return nil, err
	}

	record := newResponseRecord(response)

	c.reporter.Step("API Response: "+strconv.Itoa(record.Status)+" "+url, func() {
		c.attach(responseDetails, record)
	})

	return response, nil
}

func newResponseRecord(response *APIResponse) ResponseRecord {
	headers := response.Headers()

	record := ResponseRecord{
		Status:      response.Status(),
		Headers:     headers,
		Cookies:     noCookies,
		ContentType: notApplicable,
		Body:        InterpretBody(response.Body()),
	}

	if cookies, ok := headers[headerSetCookie]; ok && cookies != "" {
		record.Cookies = cookies
	}

	if contentType, ok := headers[headerCTLower]; ok && contentType != "" {
		record.ContentType = contentType
	}

	return record
}

func (c *InstrumentedClient) attach(name string, record any) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		// Evidence must never break the call it describes.
		data, _ = json.Marshal(map[string]string{"error": err.Error()})
	}

	c.reporter.Attach(name, data, mediaTypeJSON)
}
