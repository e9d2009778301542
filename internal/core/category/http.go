// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package category manages the genres books are filed under.
package category

import (
	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/crud"
)

// Handler implements the HTTP layer for category operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the CRUD routes and GET /{id}/books.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	crud.Mount[*Category, Input](router, Path, handler.service)
	router.Get("/{id}/books", crud.Related(handler.service.BooksOf))

	return router
}
