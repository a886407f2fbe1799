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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SessionState is the document persisted between the bootstrap and the
// test processes that consume it.
type SessionState struct {
	ExtraHTTPHeaders map[string]string `json:"extraHTTPHeaders"`
}

// SaveSessionState writes the credential set to path, replacing any state
// left behind by a previous run.
func SaveSessionState(path string, credentials *CredentialSet) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating session state directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(SessionState{ExtraHTTPHeaders: credentials.Headers()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}

	return nil
}

// LoadSessionState reads a credential set previously written by SaveSessionState.
func LoadSessionState(path string) (*CredentialSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session state: %w", err)
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshaling session state %s: %w", path, err)
	}

	if len(state.ExtraHTTPHeaders) == 0 {
		return nil, fmt.Errorf("%w: session state %s has no headers", ErrNoCredentials, path)
	}

	return NewCredentialSet(state.ExtraHTTPHeaders), nil
}

// Session is everything a test process needs to talk to the pet-store.
// It is built once and passed explicitly to whatever needs it.
type Session struct {
	BaseURL     string
	Credentials *CredentialSet
	Config      *TestConfig
}

// NewSession loads the persisted credentials for config.
func NewSession(config *TestConfig) (*Session, error) {
	credentials, err := LoadSessionState(config.SessionStatePath)
	if err != nil {
		return nil, err
	}

	return &Session{
		BaseURL:     config.BaseURL,
		Credentials: credentials,
		Config:      config,
	}, nil
}

// NewRequester builds the instrumented client for one test, reporting to reporter.
func (s *Session) NewRequester(reporter Reporter) *InstrumentedClient {
	return NewInstrumentedClient(NewAPIClient(s), reporter)
}
