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
	"context"
	_ "embed"
	"errors"
	"fmt"
	"mime"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

//go:embed openapi/petstore.yaml
var petStoreSpec []byte

var (
	ErrUnknownOperation     = errors.New("operation not described by the pet-store schema")
	ErrUnsupportedMediaType = errors.New("only JSON responses can be validated")
)

// SchemaValidator checks responses against the pet-store OpenAPI document.
type SchemaValidator struct {
	doc *openapi3.T
}

func NewSchemaValidator(ctx context.Context) (*SchemaValidator, error) {
	doc, err := openapi3.NewLoader().LoadFromData(petStoreSpec)
	if err != nil {
		return nil, fmt.Errorf("loading pet-store schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating pet-store schema: %w", err)
	}

	return &SchemaValidator{doc: doc}, nil
}

// ValidateJSONResponse checks a JSON response to the operation at
// pathTemplate (e.g. PetByIDPath) against its documented status and schema.
func (v *SchemaValidator) ValidateJSONResponse(ctx context.Context, pathTemplate string, response *APIResponse) error {
	request := response.Request()
	if request == nil {
		return fmt.Errorf("%w: response has no request", ErrUnknownOperation)
	}

	mediaType, _, err := mime.ParseMediaType(response.Header().Get(headerContentType))
	if err != nil || mediaType != mediaTypeJSON {
		return fmt.Errorf("%w: got %q", ErrUnsupportedMediaType, response.Header().Get(headerContentType))
	}

	pathItem := v.doc.Paths.Value(pathTemplate)
	if pathItem == nil {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, pathTemplate)
	}

	operation := pathItem.GetOperation(request.Method)
	if operation == nil {
		return fmt.Errorf("%w: %s %s", ErrUnknownOperation, request.Method, pathTemplate)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: request,
			Route: &routers.Route{
				Spec:      v.doc,
				Path:      pathTemplate,
				PathItem:  pathItem,
				Method:    request.Method,
				Operation: operation,
			},
		},
		Status: response.Status(),
		Header: response.Header(),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(response.Body())

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s returned %d: %w", request.Method, pathTemplate, response.Status(), err)
	}

	return nil
}
