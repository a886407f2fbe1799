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
	"encoding/base64"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Environment variables the credential assembler reads.
const (
	EnvAPIKeyValue       = "API_KEY_VALUE"
	EnvOAuthAccessToken  = "OAUTH_ACCESS_TOKEN"
	EnvBasicAuthUsername = "BASIC_AUTH_USERNAME"
	EnvBasicAuthPassword = "BASIC_AUTH_PASSWORD"
)

const (
	// APIKeyHeader is the header name the pet-store registers for its
	// api_key security scheme.
	APIKeyHeader = "api_key"

	AuthorizationHeader = "Authorization"
)

var (
	ErrNoCredentials    = errors.New("no authentication credentials found")
	ErrPartialBasicAuth = errors.New("incomplete basic authentication credentials")
)

// LookupFunc resolves a named input, reporting whether it was set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// CredentialSet is the merged set of outgoing authentication headers.
// It cannot be modified once assembled.
type CredentialSet struct {
	headers map[string]string
}

// NewCredentialSet wraps an existing header mapping, e.g. one loaded
// from persisted session state.
func NewCredentialSet(headers map[string]string) *CredentialSet {
	return &CredentialSet{
		headers: maps.Clone(headers),
	}
}

// Headers returns a copy of the header mapping.
func (c *CredentialSet) Headers() map[string]string {
	if c == nil {
		return map[string]string{}
	}

	return maps.Clone(c.headers)
}

// Get returns a single header value.
func (c *CredentialSet) Get(name string) (string, bool) {
	if c == nil {
		return "", false
	}

	value, ok := c.headers[name]

	return value, ok
}

// Len returns the number of headers in the set.
func (c *CredentialSet) Len() int {
	if c == nil {
		return 0
	}

	return len(c.headers)
}

// Names returns the header names in sorted order.
func (c *CredentialSet) Names() []string {
	if c == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(c.headers))
}

// AssembleCredentials builds the outgoing header set from up to three
// authentication schemes. Schemes are evaluated in a fixed order: API key,
// bearer token, then basic auth. Bearer and basic auth both populate the
// Authorization header, so when both are configured basic auth wins.
// Empty values are treated the same as unset ones.
func AssembleCredentials(lookup LookupFunc) (*CredentialSet, error) {
	get := func(key string) string {
		value, _ := lookup(key)
		return value
	}

	headers := map[string]string{}

	if apiKey := get(EnvAPIKeyValue); apiKey != "" {
		headers[APIKeyHeader] = apiKey
	}

	if token := get(EnvOAuthAccessToken); token != "" {
		headers[AuthorizationHeader] = "Bearer " + token
	}

	username := get(EnvBasicAuthUsername)
	password := get(EnvBasicAuthPassword)

	switch {
	case username != "" && password != "":
		headers[AuthorizationHeader] = "Basic " + basicAuth(username, password)
	case username != "" || password != "":
		return nil, fmt.Errorf("%w: both %s and %s must be set for HTTP Basic authentication", ErrPartialBasicAuth, EnvBasicAuthUsername, EnvBasicAuthPassword)
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: set %s, %s, or %s/%s", ErrNoCredentials, EnvAPIKeyValue, EnvOAuthAccessToken, EnvBasicAuthUsername, EnvBasicAuthPassword)
	}

	return &CredentialSet{headers: headers}, nil
}

func basicAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
