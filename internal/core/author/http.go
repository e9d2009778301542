// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package author manages the people credited on books.

# Routing

  - CRUD: GET/POST /api/author, GET/PUT/DELETE /api/author/{id}
  - Relations: GET /api/author/{id}/books, GET /api/author/{id}/country
*/
package author

import (
	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/crud"
)

// Handler implements the HTTP layer for author operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new author [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with author endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	crud.Mount[*Author, Input](router, Path, handler.service)
	router.Get("/{id}/books", crud.Related(handler.service.BooksOf))
	router.Get("/{id}/country", crud.Related(handler.service.CountryOf))

	return router
}
