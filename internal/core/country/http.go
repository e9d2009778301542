// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package country manages the countries authors are attributed to.

# Routing

  - CRUD: GET/POST /api/country, GET/PUT/DELETE /api/country/{id}
  - Relations: GET /api/country/{id}/authors
*/
package country

import (
	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/crud"
)

// Handler implements the HTTP layer for country operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new country [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with country endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	crud.Mount[*Country, Input](router, Path, handler.service)
	router.Get("/{id}/authors", crud.Related(handler.service.AuthorsOf))

	return router
}
