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

	"github.com/oapi-codegen/runtime"
)

// Path templates as they appear in the OpenAPI document.
const (
	PetPath                = "/pet"
	PetByIDPath            = "/pet/{petId}"
	UserPath               = "/user"
	UserCreateWithListPath = "/user/createWithList"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Pet endpoints.
func (e *Endpoints) Pet() string {
	return PetPath
}

// PetByID takes any so suites can also send ids the server must reject.
func (e *Endpoints) PetByID(petID any) string {
	param, err := runtime.StyleParamWithLocation("simple", false, "petId", runtime.ParamLocationPath, petID)
	if err != nil {
		// Only unsupported Go types fail to style, which is a bug in the caller.
		panic(fmt.Sprintf("styling petId %v: %v", petID, err))
	}

	return "/pet/" + param
}

// User endpoints.
func (e *Endpoints) User() string {
	return UserPath
}

func (e *Endpoints) UserCreateWithList() string {
	return UserCreateWithListPath
}
