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

// Package api provides integration test utilities for the pet-store API.
//
// # Session Bootstrap
//
// Bootstrap runs once per test run. It assembles the authentication headers
// from the environment (API key, bearer token, basic auth, in that order),
// persists them to a session state file and writes the report environment
// metadata. Every Ginkgo process then builds a Session from that file, so no
// process-wide mutable state is shared between specs.
//
// # Instrumented Requests
//
// Suites talk to the pet-store through a Requester. APIClient is the plain
// net/http implementation; InstrumentedClient decorates any Requester and
// reports every call as two steps, one before the request is sent and one
// after the response arrives, each carrying a JSON attachment. Responses are
// returned exactly as the decorated Requester produced them, and a non-2xx
// status is a normal response, not an error.
//
// Response bodies are interpreted for the report with InterpretBody, which
// yields either decoded JSON or the raw text and never fails.
package api
