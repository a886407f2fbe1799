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
	"net/url"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Media types the pet-store negotiates.
const (
	MediaTypeJSON = mediaTypeJSON
	MediaTypeXML  = "application/xml"
	MediaTypeForm = mediaTypeForm
)

const (
	// ForceErrorHeader makes the pet-store answer with its default error response.
	ForceErrorHeader = "X-Force-Error"

	ExistingPetID   = 10
	MissingPetID    = 123456789
	InvalidPetID    = "invalidId"
	ServerErrorPet  = 0
	UpdatablePetID  = 123
	DefaultPetName  = "doggie"
	UpdatedPetName  = "UpdatedDoggie"
	UpdatedPetState = "sold"
)

// UnexpectedErrorStatuses are the statuses accepted for the "default" response.
//
//nolint:gochecknoglobals
var UnexpectedErrorStatuses = sets.New(500, 501, 502, 503)

// Headers builds request headers for a request/response media type pair.
// An empty contentType leaves Content-Type to the client.
func Headers(accept, contentType string) map[string]string {
	headers := map[string]string{
		"Accept": accept,
	}

	if contentType != "" {
		headers[headerContentType] = contentType
	}

	return headers
}

// WithForcedError returns a copy of headers carrying the forced-error trigger.
func WithForcedError(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers)+1)

	for k, v := range headers {
		out[k] = v
	}

	out[ForceErrorHeader] = "true"

	return out
}

// ExamplePetXML is the pet-store's XML example for a new pet.
const ExamplePetXML = `<?xml version="1.0" encoding="UTF-8"?>
  <pet>
    <id>10</id>
    <name>doggie</name>
    <category>
      <id>1</id>
      <name>Dogs</name>
    </category>
    <photoUrls>
      <photoUrl>string</photoUrl>
    </photoUrls>
    <tags>
      <tag>
        <id>0</id>
        <name>string</name>
      </tag>
    </tags>
    <status>available</status>
  </pet>`

// ExamplePetForm is the form-urlencoded equivalent of NewPetPayload().Build().
func ExamplePetForm() url.Values {
	return url.Values{
		"id":            {"10"},
		"name":          {DefaultPetName},
		"category.id":   {"1"},
		"category.name": {"Dogs"},
		"photoUrls":     {"http://example.com/photo1"},
		"tags[0].id":    {"1"},
		"tags[0].name":  {"tag1"},
		"status":        {"available"},
	}
}

// UpdatePetForm is the form used to update an existing pet.
func UpdatePetForm() url.Values {
	return url.Values{
		"name":   {UpdatedPetName},
		"status": {UpdatedPetState},
	}
}

// ExampleUserXML is the pet-store's XML example for a new user.
const ExampleUserXML = `<?xml version="1.0" encoding="UTF-8"?>
<User>
  <id>1</id>
  <username>testUser</username>
  <firstName>Test</firstName>
  <lastName>User</lastName>
  <email>test@example.com</email>
  <password>password123</password>
  <phone>123-456-7890</phone>
  <userStatus>1</userStatus>
</User>`

// ExampleUserForm is the form-urlencoded equivalent of NewUserPayload().Build().
func ExampleUserForm() url.Values {
	return url.Values{
		"id":         {"1"},
		"username":   {"testUser"},
		"firstName":  {"Test"},
		"lastName":   {"User"},
		"email":      {"test@example.com"},
		"password":   {"password123"},
		"phone":      {"123-456-7890"},
		"userStatus": {"1"},
	}
}

// Payloads the pet-store rejects. MalformedXML does not parse at all,
// UnknownPetXML parses but has no pet fields and InvalidPetXML has the
// required fields left empty.
const (
	MalformedXML  = ` < invalid > < data / > < / invalid > `
	UnknownPetXML = `<pet><invalid></invalid></pet>`
	InvalidPetXML = `<pet><name></name><photoUrls/></pet>`
)

// InvalidPet has the required fields left empty.
func InvalidPet() map[string]any {
	return map[string]any{"name": "", "photoUrls": []string{}}
}

// BadForm carries no field the pet-store recognises.
func BadForm() url.Values {
	return url.Values{"wrong": {"data"}}
}

// InvalidPetForm carries the required fields, empty.
func InvalidPetForm() url.Values {
	return url.Values{"name": {""}, "photoUrls": {""}}
}

// InvalidJSON is a JSON body without any pet or user field.
func InvalidJSON() map[string]any {
	return map[string]any{"invalid": "payload"}
}
