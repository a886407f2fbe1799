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

var _ = Describe("User List Creation", func() {
	users := api.NewUserList(2)
	last := users[len(users)-1]

	Context("When creating users from a JSON list and accepting JSON", func() {
		Describe("Given a list of complete users", func() {
			It("should return a created user with every field", func() {
				response, err := client.Post(ctx, endpoints.UserCreateWithList(), withPayload(api.MediaTypeJSON, api.MediaTypeJSON, payload{JSON: users}))
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status()).To(Equal(http.StatusOK), response.Text())

				body := decodeJSONObject(response)
				Expect(body).To(HaveKeyWithValue("id", BeEquivalentTo(last.ID)))
				Expect(body).To(HaveKeyWithValue("username", last.Username))
				Expect(body).To(HaveKeyWithValue("firstName", last.FirstName))
				Expect(body).To(HaveKeyWithValue("lastName", last.LastName))
				Expect(body).To(HaveKeyWithValue("email", last.Email))
				Expect(body).To(HaveKeyWithValue("password", last.Password))
				Expect(body).To(HaveKeyWithValue("phone", last.Phone))
				Expect(body).To(HaveKeyWithValue("userStatus", BeEquivalentTo(last.UserStatus)))
				Expect(validator.ValidateJSONResponse(ctx, api.UserCreateWithListPath, response)).To(Succeed())
			})
		})

		Describe("Given the server is forced to fail", func() {
			It("should return the unexpected error response", func() {
				response, err := client.Post(ctx, endpoints.UserCreateWithList(), forcingError(withPayload(api.MediaTypeJSON, api.MediaTypeJSON, payload{JSON: users})))
				Expect(err).NotTo(HaveOccurred())

				expectUnexpectedError(response, api.MediaTypeJSON)
			})
		})
	})

	Context("When creating users from a JSON list and accepting XML", func() {
		Describe("Given a list of complete users", func() {
			It("should return a created user with every element", func() {
				response, err := client.Post(ctx, endpoints.UserCreateWithList(), withPayload(api.MediaTypeXML, api.MediaTypeJSON, payload{JSON: users}))
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Status()).To(Equal(http.StatusOK), response.Text())

				Expect(response.Text()).To(ContainSubstring("<User>"))

				for _, tag := range []string{"id", "username", "firstName", "lastName", "email", "password", "phone", "userStatus"} {
					Expect(response.Text()).To(ContainSubstring("<"+tag+">"), "missing element %s", tag)
				}
			})
		})

		Describe("Given the server is forced to fail", func() {
			It("should return the unexpected error response", func() {
				response, err := client.Post(ctx, endpoints.UserCreateWithList(), forcingError(withPayload(api.MediaTypeXML, api.MediaTypeJSON, payload{JSON: users})))
				Expect(err).NotTo(HaveOccurred())

				expectUnexpectedError(response, api.MediaTypeXML)
			})
		})
	})
})
