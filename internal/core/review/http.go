// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package review manages reviewers' rated critiques of books.

# Routing

  - CRUD: GET/POST /api/review, GET/PUT/DELETE /api/review/{id}
  - Bulk delete: DELETE /api/review?ids=1,2,3
  - Relations: GET /api/review/{id}/book, GET /api/review/{id}/reviewer
*/
package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/core/reviewer"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/crud"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/pkg/query"
)

// Handler implements the HTTP layer for review operations.
type Handler struct {
	service   *Service
	reviewers *reviewer.Service
}

// NewHandler constructs a new review [Handler]. reviewers answers the
// /{id}/reviewer lookup.
func NewHandler(service *Service, reviewers *reviewer.Service) *Handler {
	return &Handler{service: service, reviewers: reviewers}
}

// Routes returns a [chi.Router] configured with review endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	crud.Mount[*Review, Input](router, Path, handler.service)
	router.Delete("/", handler.deleteMany)
	router.Get("/{id}/book", crud.Related(handler.service.BookOf))
	router.Get("/{id}/reviewer", crud.Related(handler.reviewers.OfReviewID))

	return router
}

func (handler *Handler) deleteMany(writer http.ResponseWriter, request *http.Request) {
	ids, ok := query.IntList(request.URL.Query()[IDsParam])
	if !ok {
		respond.Error(writer, request, apperr.BadRequest("Query parameter ids must be a list of integers"))
		return
	}

	if err := handler.service.DeleteMany(request.Context(), ids); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
