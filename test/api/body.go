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
)

// Body is a response body interpreted for reporting. It holds either a
// decoded JSON value or, when the body is not valid JSON, the raw text.
type Body struct {
	structured any
	text       string
	isJSON     bool
}

// InterpretBody decodes raw as JSON, falling back to text. It cannot fail.
func InterpretBody(raw []byte) Body {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return Body{text: string(raw)}
	}

	return Body{structured: value, text: string(raw), isJSON: true}
}

// Structured returns the decoded JSON value, if there is one.
func (b Body) Structured() (any, bool) {
	return b.structured, b.isJSON
}

// Text returns the body as received.
func (b Body) Text() string {
	return b.text
}

// MarshalJSON embeds structured bodies as JSON and raw ones as a string.
func (b Body) MarshalJSON() ([]byte, error) {
	if b.isJSON {
		return json.Marshal(b.structured)
	}

	return json.Marshal(b.text)
}
