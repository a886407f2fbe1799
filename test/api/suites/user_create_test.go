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

var _ = Describe("User Creation", func() {
	user := api.NewUserPayload().Build()

	validUser := payload{
		JSON: user,
		XML:  api.ExampleUserXML,
		Form: api.ExampleUserForm(),
	}

	for _, contentType := range []string{api.MediaTypeJSON, api.MediaTypeXML, api.MediaTypeForm} {
		for _, accept := range []string{api.MediaTypeJSON, api.MediaTypeXML} {
			Context("When creating a user as "+mediaName(contentType)+" and accepting "+mediaName(accept), func() {
				Describe("Given a complete user", func() {
					It("should return the created user", func() {
						response, err := client.Post(ctx, endpoints.User(), withPayload(accept, contentType, validUser))
						Expect(err).NotTo(HaveOccurred())
						Expect(response.Status()).To(Equal(http.StatusOK), response.Text())

						if accept == api.MediaTypeXML {
							Expect(response.Text()).To(ContainSubstring("<User>"))
							Expect(response.Text()).To(ContainSubstring("<username>" + user.Username + "</username>"))

							var created api.User
							Expect(response.XML(&created)).To(Succeed())
							Expect(created.Email).To(Equal(user.Email))

							return
						}

						body := decodeJSONObject(response)
						Expect(body).To(HaveKeyWithValue("id", BeEquivalentTo(user.ID)))
						Expect(body).To(HaveKeyWithValue("username", user.Username))
						Expect(body).To(HaveKeyWithValue("email", user.Email))
						Expect(validator.ValidateJSONResponse(ctx, api.UserPath, response)).To(Succeed())
					})
				})

				Describe("Given the server is forced to fail", func() {
					It("should return the unexpected error response", func() {
						response, err := client.Post(ctx, endpoints.User(), forcingError(withPayload(accept, contentType, validUser)))
						Expect(err).NotTo(HaveOccurred())

						expectUnexpectedError(response, accept)
					})
				})
			})
		}
	}
})
