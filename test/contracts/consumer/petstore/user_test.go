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
package petstore_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"

	"github.com/accionlabs/petstore-api-tests/test/api"
)

var _ = Describe("User Contract", func() {
	var pact *consumer.V4HTTPMockProvider

	BeforeEach(func() {
		pact = newPact()
	})

	userBody := func(user api.User) map[string]interface{} {
		return map[string]interface{}{
			"id":         matchers.Integer(int(user.ID)),
			"username":   matchers.String(user.Username),
			"firstName":  matchers.String(user.FirstName),
			"lastName":   matchers.String(user.LastName),
			"email":      matchers.String(user.Email),
			"password":   matchers.String(user.Password),
			"phone":      matchers.String(user.Phone),
			"userStatus": matchers.Integer(int(user.UserStatus)),
		}
	}

	Describe("CreateUser", func() {
		It("returns the created user", func(ctx SpecContext) {
			user := api.NewUserPayload().Build()

			pact.AddInteraction().
				Given("the pet store accepts new users").
				UponReceiving("a request to create a user").
				WithRequest("POST", api.UserPath, func(b *consumer.V4RequestBuilder) {
					withCredentials(b)
					b.JSONBody(user)
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(userBody(user))
				})

			test := func(config consumer.MockServerConfig) error {
				response, err := createClient(config).Post(ctx, api.UserPath, &api.RequestOptions{Data: user})
				if err != nil {
					return fmt.Errorf("creating user: %w", err)
				}

				var created api.User
				Expect(response.JSON(&created)).To(Succeed())
				Expect(created).To(Equal(user))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("CreateUsersWithListInput", func() {
		It("returns the last user created", func(ctx SpecContext) {
			users := api.NewUserList(2)

			pact.AddInteraction().
				Given("the pet store accepts new users").
				UponReceiving("a request to create a list of users").
				WithRequest("POST", api.UserCreateWithListPath, func(b *consumer.V4RequestBuilder) {
					withCredentials(b)
					b.JSONBody(users)
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(userBody(users[1]))
				})

			test := func(config consumer.MockServerConfig) error {
				response, err := createClient(config).Post(ctx, api.UserCreateWithListPath, &api.RequestOptions{Data: users})
				if err != nil {
					return fmt.Errorf("creating users: %w", err)
				}

				var created api.User
				Expect(response.JSON(&created)).To(Succeed())
				Expect(created.Username).To(Equal(users[1].Username))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})
})
