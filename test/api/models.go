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
	"encoding/xml"
)

type Category struct {
	ID   int64  `json:"id,omitempty" xml:"id,omitempty"`
	Name string `json:"name,omitempty" xml:"name,omitempty"`
}

type Tag struct {
	ID   int64  `json:"id,omitempty" xml:"id,omitempty"`
	Name string `json:"name,omitempty" xml:"name,omitempty"`
}

// Pet marshals to XML as <Pet> and unmarshals from any root element.
type Pet struct {
	ID        *int64    `json:"id,omitempty" xml:"id,omitempty"`
	Name      string    `json:"name" xml:"name"`
	Category  *Category `json:"category,omitempty" xml:"category,omitempty"`
	PhotoURLs []string  `json:"photoUrls" xml:"photoUrls>photoUrl"`
	Tags      []Tag     `json:"tags,omitempty" xml:"tags>tag,omitempty"`
	Status    string    `json:"status,omitempty" xml:"status,omitempty"`
}

// User marshals to XML as <User> and unmarshals from any root element.
type User struct {
	ID         int64  `json:"id,omitempty" xml:"id,omitempty"`
	Username   string `json:"username,omitempty" xml:"username,omitempty"`
	FirstName  string `json:"firstName,omitempty" xml:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty" xml:"lastName,omitempty"`
	Email      string `json:"email,omitempty" xml:"email,omitempty"`
	Password   string `json:"password,omitempty" xml:"password,omitempty"`
	Phone      string `json:"phone,omitempty" xml:"phone,omitempty"`
	UserStatus int32  `json:"userStatus,omitempty" xml:"userStatus,omitempty"`
}

// APIError is the body of the pet-store's default error response.
type APIError struct {
	XMLName xml.Name `json:"-" xml:"Error"`
	Code    string   `json:"code" xml:"code"`
	Message string   `json:"message" xml:"message"`
}
