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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/accionlabs/petstore-api-tests/test/api"
)

var _ = Describe("Pet Creation", func() {
	validPet := payload{
		JSON: api.NewPetPayload().Build(),
		XML:  api.ExamplePetXML,
		Form: api.ExamplePetForm(),
	}

	unknownPet := payload{
		JSON: api.InvalidJSON(),
		XML:  api.UnknownPetXML,
		Form: api.BadForm(),
	}

	malformedPet := payload{
		JSON: api.InvalidJSON(),
		XML:  api.MalformedXML,
		Form: api.BadForm(),
	}

	invalidPet := payload{
		JSON: api.InvalidPet(),
		XML:  api.InvalidPetXML,
		Form: api.InvalidPetForm(),
	}

	for _, contentType := range []string{api.MediaTypeJSON, api.MediaTypeXML, api.MediaTypeForm} {
		for _, accept := range []string{api.MediaTypeJSON, api.MediaTypeXML} {
			Context("When adding a pet as "+mediaName(contentType)+" and accepting "+mediaName(accept), func() {
				Describe("Given a well formed pet", func() {
					It("should return the stored pet", func() {
						response, err := client.Post(ctx, endpoints.Pet(), withPayload(accept, contentType, validPet))
						Expect(err).NotTo(HaveOccurred())

						expectPet(response, api.PetPath, accept, api.DefaultPetName)
					})
				})

				Describe("Given a body without any pet fields", func() {
					It("should reject the request as invalid input", func() {
						response, err := client.Post(ctx, endpoints.Pet(), withPayload(accept, contentType, unknownPet))
						Expect(err).NotTo(HaveOccurred())

						Expect(response.Status()).To(Equal(http.StatusBadRequest), response.Text())
					})
				})

				Describe("Given a pet with empty required fields", func() {
					It("should reject the request with a validation exception", func() {
						response, err := client.Post(ctx, endpoints.Pet(), withPayload(accept, contentType, invalidPet))
						Expect(err).NotTo(HaveOccurred())

						Expect(response.Status()).To(Equal(http.StatusUnprocessableEntity), response.Text())
					})
				})

				Describe("Given the server is forced to fail", func() {
					It("should return the unexpected error response", func() {
						response, err := client.Post(ctx, endpoints.Pet(), forcingError(withPayload(accept, contentType, malformedPet)))
						Expect(err).NotTo(HaveOccurred())

						expectUnexpectedError(response, accept)
					})
				})
			})
		}
	}

	Context("When adding a pet through the raw XML body", func() {
		Describe("Given the XML does not parse", func() {
			It("should reject the request as invalid input", func() {
				response, err := client.Post(ctx, endpoints.Pet(), withPayload(api.MediaTypeJSON, api.MediaTypeXML, malformedPet))
				Expect(err).NotTo(HaveOccurred())

				Expect(response.Status()).To(Equal(http.StatusBadRequest), response.Text())
			})
		})
	})
})
