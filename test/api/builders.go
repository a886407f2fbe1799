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
	"fmt"

	"k8s.io/utils/ptr"
)

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet Pet
}

// NewPetPayload creates a builder primed with the pet-store's example pet.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: Pet{
			ID:        ptr.To[int64](ExistingPetID),
			Name:      DefaultPetName,
			Category:  &Category{ID: 1, Name: "Dogs"},
			PhotoURLs: []string{"http://example.com/photo1"},
			Tags:      []Tag{{ID: 1, Name: "tag1"}},
			Status:    "available",
		},
	}
}

// WithID sets the pet ID.
func (b *PetPayloadBuilder) WithID(id int64) *PetPayloadBuilder {
	b.pet.ID = ptr.To(id)
	return b
}

// WithoutID omits the pet ID so the server allocates one.
func (b *PetPayloadBuilder) WithoutID() *PetPayloadBuilder {
	b.pet.ID = nil
	return b
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

// WithStatus sets the pet status.
func (b *PetPayloadBuilder) WithStatus(status string) *PetPayloadBuilder {
	b.pet.Status = status
	return b
}

// WithPhotoURLs replaces the photo URLs.
func (b *PetPayloadBuilder) WithPhotoURLs(urls ...string) *PetPayloadBuilder {
	b.pet.PhotoURLs = urls
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() Pet {
	return b.pet
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	user User
}

// NewUserPayload creates a builder primed with the suite's example user.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		user: User{
			ID:         1,
			Username:   "testUser",
			FirstName:  "Test",
			LastName:   "User",
			Email:      "test@example.com",
			Password:   "password123",
			Phone:      "123-456-7890",
			UserStatus: 1,
		},
	}
}

// WithID sets the user ID.
func (b *UserPayloadBuilder) WithID(id int64) *UserPayloadBuilder {
	b.user.ID = id
	return b
}

// WithUsername sets the username.
func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.user.Username = username
	return b
}

// WithEmail sets the email address.
func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.user.Email = email
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() User {
	return b.user
}

// NewUserList builds count distinct users, numbered from 1.
func NewUserList(count int) []User {
	users := make([]User, 0, count)

	for i := 1; i <= count; i++ {
		users = append(users, NewUserPayload().
			WithID(int64(i)).
			WithUsername(fmt.Sprintf("testUser%d", i)).
			WithEmail(fmt.Sprintf("test%d@example.com", i)).
			Build())
	}

	return users
}
