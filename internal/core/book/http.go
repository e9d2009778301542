// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book manages published titles and their links to authors and categories.

# Routing

  - CRUD: GET/POST /api/book, GET/PUT/DELETE /api/book/{id}
  - Lookup: GET /api/book/isbn/{isbn}
  - Relations: GET /api/book/{id}/authors, /categories, /reviews, /rating

Creating or updating a book writes the book row and both link tables in one
transaction.
*/
package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/crud"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

// Handler implements the HTTP layer for book operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new book [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with book endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	crud.Mount[*Book, Input](router, Path, handler.service)
	router.Get("/isbn/{isbn}", handler.getByISBN)

	router.Get("/{id}/authors", crud.Related(handler.service.AuthorsOf))
	router.Get("/{id}/categories", crud.Related(handler.service.CategoriesOf))
	router.Get("/{id}/reviews", crud.Related(handler.service.ReviewsOf))
	router.Get("/{id}/rating", crud.Related(handler.service.RatingOf))

	return router
}

/*
GET /api/book/isbn/{isbn}.

Description: Looks a book up by ISBN. Hyphens and case in the path are ignored.

Response:
  - 200: Book
  - 404: NOT_FOUND
*/
func (handler *Handler) getByISBN(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.GetByISBN(request.Context(), requestutil.Param(request, "isbn"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}
