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

// Package petstoretest provides an in-memory pet-store for running the
// suites without network access. It only implements the operations and
// content negotiation the suites exercise.
package petstoretest

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/accionlabs/petstore-api-tests/test/api"
)

// BasePath mirrors the public deployment's API prefix.
const BasePath = "/api/v3"

var errBadInput = errors.New("invalid input")

// Server is a running fake pet-store.
type Server struct {
	*httptest.Server

	lock     sync.Mutex
	pets     map[int64]api.Pet
	nextID   int64
	received []http.Header
}

// NewServer starts a fake seeded with the pets the suites expect to exist.
func NewServer() *Server {
	s := &Server{
		pets:   map[int64]api.Pet{},
		nextID: 1000,
	}

	s.pets[api.ExistingPetID] = api.NewPetPayload().Build()
	s.pets[api.UpdatablePetID] = api.NewPetPayload().WithID(api.UpdatablePetID).Build()

	s.Server = httptest.NewServer(s.routes())

	return s
}

// BaseURL is the URL to configure clients with.
func (s *Server) BaseURL() string {
	return s.URL + BasePath
}

// Received returns the headers of every request seen so far.
func (s *Server) Received() []http.Header {
	s.lock.Lock()
	defer s.lock.Unlock()

	out := make([]http.Header, len(s.received))
	for i, h := range s.received {
		out[i] = h.Clone()
	}

	return out
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Route(BasePath, func(r chi.Router) {
		r.Use(s.recordHeaders, requireCredentials, forcedError)

		r.Post("/pet", s.addPet)
		r.Get("/pet/{petId}", s.getPetByID)
		r.Post("/pet/{petId}", s.updatePetWithForm)
		r.Post("/user", s.createUser)
		r.Post("/user/createWithList", s.createUsersWithList)
	})

	return r
}

func (s *Server) recordHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.received = append(s.received, r.Header.Clone())
		s.lock.Unlock()

		next.ServeHTTP(w, r)
	})
}

func requireCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(api.APIKeyHeader) == "" && r.Header.Get(api.AuthorizationHeader) == "" {
			writeError(w, r, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func forcedError(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(api.ForceErrorHeader) == "true" {
			writeError(w, r, http.StatusInternalServerError, "forced error")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func wantsXML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), api.MediaTypeXML)
}

func write(w http.ResponseWriter, r *http.Request, status int, v any) {
	var (
		data        []byte
		err         error
		contentType string
	)

	if wantsXML(r) {
		contentType = api.MediaTypeXML
		data, err = xml.Marshal(v)
	} else {
		contentType = api.MediaTypeJSON
		data, err = json.Marshal(v)
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	write(w, r, status, api.APIError{Code: strconv.Itoa(status), Message: message})
}

// petFields reports which pet fields a request body carried, independently
// of whether they hold usable values.
type petFields struct {
	Name      *string  `json:"name" xml:"name"`
	PhotoURLs []string `json:"photoUrls" xml:"photoUrls>photoUrl"`
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case api.MediaTypeJSON:
		return json.Unmarshal(body, v)
	case api.MediaTypeXML:
		return xml.Unmarshal(body, v)
	}

	return errBadInput
}

func decodePet(r *http.Request) (api.Pet, petFields, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == api.MediaTypeForm {
		return decodePetForm(r)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return api.Pet{}, petFields{}, err
	}

	var (
		pet    api.Pet
		fields petFields
	)

	switch mediaType {
	case api.MediaTypeJSON:
		if err := json.Unmarshal(body, &fields); err != nil {
			return pet, fields, err
		}

		err = json.Unmarshal(body, &pet)
	case api.MediaTypeXML:
		if err := xml.Unmarshal(body, &fields); err != nil {
			return pet, fields, err
		}

		err = xml.Unmarshal(body, &pet)
	default:
		err = errBadInput
	}

	return pet, fields, err
}

func decodePetForm(r *http.Request) (api.Pet, petFields, error) {
	if err := r.ParseForm(); err != nil {
		return api.Pet{}, petFields{}, err
	}

	form := r.PostForm

	var (
		pet    api.Pet
		fields petFields
	)

	if form.Has("name") {
		name := form.Get("name")
		pet.Name = name
		fields.Name = &name
	}

	for _, u := range form["photoUrls"] {
		if u != "" {
			pet.PhotoURLs = append(pet.PhotoURLs, u)
		}
	}

	fields.PhotoURLs = pet.PhotoURLs
	pet.Status = form.Get("status")

	if id, ok, err := formInt(form, "id"); err != nil {
		return pet, fields, err
	} else if ok {
		pet.ID = &id
	}

	if form.Has("category.name") {
		categoryID, _, err := formInt(form, "category.id")
		if err != nil {
			return pet, fields, err
		}

		pet.Category = &api.Category{ID: categoryID, Name: form.Get("category.name")}
	}

	if form.Has("tags[0].name") {
		tagID, _, err := formInt(form, "tags[0].id")
		if err != nil {
			return pet, fields, err
		}

		pet.Tags = []api.Tag{{ID: tagID, Name: form.Get("tags[0].name")}}
	}

	return pet, fields, nil
}

func formInt(form url.Values, key string) (int64, bool, error) {
	if !form.Has(key) {
		return 0, false, nil
	}

	v, err := strconv.ParseInt(form.Get(key), 10, 64)

	return v, true, err
}

func (s *Server) addPet(w http.ResponseWriter, r *http.Request) {
	pet, fields, err := decodePet(r)
	if err != nil || fields.Name == nil {
		writeError(w, r, http.StatusBadRequest, "Invalid input")
		return
	}

	if *fields.Name == "" || len(fields.PhotoURLs) == 0 {
		writeError(w, r, http.StatusUnprocessableEntity, "Validation exception")
		return
	}

	s.lock.Lock()

	if pet.ID == nil {
		id := s.nextID
		s.nextID++
		pet.ID = &id
	}

	s.pets[*pet.ID] = pet
	s.lock.Unlock()

	write(w, r, http.StatusOK, pet)
}

func (s *Server) lookupPet(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petId"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}

	// The public deployment fails internally for pet 0, the suites rely on it.
	if id == 0 {
		writeError(w, r, http.StatusInternalServerError, "unexpected error")
		return 0, false
	}

	s.lock.Lock()
	_, ok := s.pets[id]
	s.lock.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "Pet not found")
		return 0, false
	}

	return id, true
}

func (s *Server) getPetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.lookupPet(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	pet := s.pets[id]
	s.lock.Unlock()

	write(w, r, http.StatusOK, pet)
}

func (s *Server) updatePetWithForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid input")
		return
	}

	name, status := r.Form.Get("name"), r.Form.Get("status")
	if name == "" && status == "" {
		writeError(w, r, http.StatusBadRequest, "Invalid input")
		return
	}

	id, ok := s.lookupPet(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	pet := s.pets[id]

	if name != "" {
		pet.Name = name
	}

	if status != "" {
		pet.Status = status
	}

	s.pets[id] = pet
	s.lock.Unlock()

	write(w, r, http.StatusOK, pet)
}

func decodeUser(r *http.Request) (api.User, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != api.MediaTypeForm {
		var user api.User
		err := decodeBody(r, &user)

		return user, err
	}

	if err := r.ParseForm(); err != nil {
		return api.User{}, err
	}

	form := r.PostForm

	id, _, err := formInt(form, "id")
	if err != nil {
		return api.User{}, err
	}

	userStatus, _, err := formInt(form, "userStatus")
	if err != nil {
		return api.User{}, err
	}

	return api.User{
		ID:         id,
		Username:   form.Get("username"),
		FirstName:  form.Get("firstName"),
		LastName:   form.Get("lastName"),
		Email:      form.Get("email"),
		Password:   form.Get("password"),
		Phone:      form.Get("phone"),
		UserStatus: int32(userStatus), //nolint:gosec // fake data
	}, nil
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	user, err := decodeUser(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid input")
		return
	}

	write(w, r, http.StatusOK, user)
}

func (s *Server) createUsersWithList(w http.ResponseWriter, r *http.Request) {
	var users []api.User
	if err := decodeBody(r, &users); err != nil || len(users) == 0 {
		writeError(w, r, http.StatusBadRequest, "Invalid input")
		return
	}

	// Like the public deployment, answer with the last user created.
	write(w, r, http.StatusOK, users[len(users)-1])
}
