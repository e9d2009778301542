// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reviewer manages the critics who write reviews.

# Routing

  - CRUD: GET/POST /api/reviewer, GET/PUT/DELETE /api/reviewer/{id}
  - Relations: GET /api/reviewer/{id}/reviews

The review package serves GET /api/review/{id}/reviewer through [Service.OfReviewID].
*/
package reviewer

import (
	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/crud"
)

// Handler implements the HTTP layer for reviewer operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reviewer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with reviewer endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	crud.Mount[*Reviewer, Input](router, Path, handler.service)
	router.Get("/{id}/reviews", crud.Related(handler.service.ReviewsOf))

	return router
}
