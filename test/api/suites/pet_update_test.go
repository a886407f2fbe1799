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

var _ = Describe("Pet Update", func() {
	update := payload{Form: api.UpdatePetForm()}
	badUpdate := payload{Form: api.BadForm()}

	for _, accept := range []string{api.MediaTypeJSON, api.MediaTypeXML} {
		Context("When updating a pet with form data and accepting "+mediaName(accept), func() {
			Describe("Given a new name and status", func() {
				It("should return the updated pet", func() {
					response, err := client.Post(ctx, endpoints.PetByID(api.UpdatablePetID), withPayload(accept, api.MediaTypeForm, update))
					Expect(err).NotTo(HaveOccurred())
					Expect(response.Status()).To(Equal(http.StatusOK), response.Text())

					if accept == api.MediaTypeXML {
						Expect(response.Text()).To(ContainSubstring("<Pet>"))
						Expect(response.Text()).To(ContainSubstring("<name>" + api.UpdatedPetName + "</name>"))
						Expect(response.Text()).To(ContainSubstring("<status>" + api.UpdatedPetState + "</status>"))

						return
					}

					body := decodeJSONObject(response)
					Expect(body).To(HaveKey("id"))
					Expect(body).To(HaveKeyWithValue("name", api.UpdatedPetName))
					Expect(body).To(HaveKeyWithValue("status", api.UpdatedPetState))
					Expect(validator.ValidateJSONResponse(ctx, api.PetByIDPath, response)).To(Succeed())
				})
			})

			Describe("Given no recognised form fields", func() {
				It("should reject the request as invalid input", func() {
					response, err := client.Post(ctx, endpoints.PetByID(api.UpdatablePetID), withPayload(accept, api.MediaTypeForm, badUpdate))
					Expect(err).NotTo(HaveOccurred())

					Expect(response.Status()).To(Equal(http.StatusBadRequest), response.Text())
				})
			})

			Describe("Given the server is forced to fail", func() {
				It("should return the unexpected error response", func() {
					response, err := client.Post(ctx, endpoints.PetByID(api.UpdatablePetID), forcingError(withPayload(accept, api.MediaTypeForm, update)))
					Expect(err).NotTo(HaveOccurred())

					expectUnexpectedError(response, accept)
				})
			})
		})
	}
})
