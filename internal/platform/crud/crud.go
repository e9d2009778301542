// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package crud defines the uniform contract every catalogue entity exposes and
mounts it onto a chi router.

Each entity service implements [Service] for its read record T and write
payload In. [Mount] then registers the five resource routes:

	GET    /      list (optionally paged with ?page=&limit=)
	GET    /{id}  fetch one
	POST   /      create, 201 with Location
	PUT    /{id}  full overwrite, 204
	DELETE /{id}  remove, 204

Entity packages add their relationship routes to the same router after
mounting.
*/
package crud

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/pkg/pagination"
)

// IDParam is the URL parameter name of the resource identifier.
const IDParam = "id"

// Entity is a stored record addressable by an integer key.
type Entity interface {
	Key() int
}

// Service is the storage-agnostic CRUD contract of one entity.
//
// List returns the requested page and the total number of rows; an
// unbounded [pagination.Params] returns every row.
type Service[T Entity, In any] interface {
	List(ctx context.Context, page pagination.Params) ([]T, int, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, input *In) (T, error)
	Update(ctx context.Context, id int, input *In) error
	Delete(ctx context.Context, id int) error
}

type resource[T Entity, In any] struct {
	basePath string
	service  Service[T, In]
}

/*
Mount registers the resource routes for service on router.

basePath is the public mount point of router (for example "/api/country") and
is used to build the Location header of created resources.
*/
func Mount[T Entity, In any](router chi.Router, basePath string, service Service[T, In]) {
	res := &resource[T, In]{basePath: strings.TrimSuffix(basePath, "/"), service: service}

	router.Get("/", res.list)
	router.Post("/", res.create)
	router.Get("/{id}", res.get)
	router.Put("/{id}", res.update)
	router.Delete("/{id}", res.delete)
}

func (res *resource[T, In]) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	items, total, err := res.service.List(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if items == nil {
		items = []T{}
	}

	if page.IsZero() {
		respond.List(writer, items, nil)
		return
	}

	meta := pagination.NewMeta(page.Page, page.Limit, total)
	respond.List(writer, items, &meta)
}

func (res *resource[T, In]) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, IDParam)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := res.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

func (res *resource[T, In]) create(writer http.ResponseWriter, request *http.Request) {
	input, err := requestutil.Body[In](writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := res.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, res.basePath+"/"+strconv.Itoa(item.Key()), item)
}

func (res *resource[T, In]) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, IDParam)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := requestutil.Body[In](writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := res.service.Update(request.Context(), id, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (res *resource[T, In]) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, IDParam)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := res.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Related adapts a lookup keyed by the {id} path parameter into a handler
// that answers 200 with the lookup's result.
func Related[R any](lookup func(ctx context.Context, id int) (R, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.IntID(request, IDParam)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		result, err := lookup(request.Context(), id)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, result)
	}
}
