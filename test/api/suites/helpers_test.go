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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/accionlabs/petstore-api-tests/test/api"
)

// payload is one request body in each of the representations the pet-store accepts.
type payload struct {
	JSON any
	XML  string
	Form url.Values
}

// withPayload builds request options sending p as contentType and asking for accept.
func withPayload(accept, contentType string, p payload) *api.RequestOptions {
	options := &api.RequestOptions{
		Headers: api.Headers(accept, contentType),
	}

	switch contentType {
	case api.MediaTypeJSON:
		options.Data = p.JSON
	case api.MediaTypeXML:
		options.Data = p.XML
	case api.MediaTypeForm:
		options.Form = p.Form
	}

	return options
}

func forcingError(options *api.RequestOptions) *api.RequestOptions {
	options.Headers = api.WithForcedError(options.Headers)
	return options
}

// mediaName labels a media type in container descriptions.
func mediaName(mediaType string) string {
	switch mediaType {
	case api.MediaTypeJSON:
		return "JSON"
	case api.MediaTypeXML:
		return "XML"
	case api.MediaTypeForm:
		return "FORM"
	}

	return mediaType
}

func decodeJSONObject(response *api.APIResponse) map[string]any {
	GinkgoHelper()

	var body map[string]any
	Expect(response.JSON(&body)).To(Succeed(), "body is not a JSON object: %s", response.Text())

	return body
}

// expectPet checks a successful pet response in either representation.
func expectPet(response *api.APIResponse, pathTemplate, accept, name string) {
	GinkgoHelper()

	Expect(response.Status()).To(Equal(http.StatusOK), response.Text())

	if accept == api.MediaTypeXML {
		Expect(response.Text()).To(ContainSubstring("<Pet>"))
		Expect(response.Text()).To(ContainSubstring("<name>" + name + "</name>"))

		return
	}

	body := decodeJSONObject(response)
	Expect(body).To(HaveKey("id"))
	Expect(body).To(HaveKeyWithValue("name", name))
	Expect(body).To(HaveKeyWithValue("photoUrls", BeAssignableToTypeOf([]any{})))
	Expect(validator.ValidateJSONResponse(ctx, pathTemplate, response)).To(Succeed())
}

// expectUnexpectedError checks a response to the forced-error trigger.
func expectUnexpectedError(response *api.APIResponse, accept string) {
	GinkgoHelper()

	Expect(api.UnexpectedErrorStatuses.Has(response.Status())).To(BeTrue(),
		"expected one of %v, got %d: %s", api.UnexpectedErrorStatuses.UnsortedList(), response.Status(), response.Text())

	if accept == api.MediaTypeJSON {
		body := decodeJSONObject(response)
		Expect(body).To(HaveKey("code"))
		Expect(body).To(HaveKey("message"))
	}
}
