// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/crud"
	"github.com/taibuivan/folio/pkg/pagination"
)

type widget struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (w *widget) Key() int { return w.ID }

type widgetInput struct {
	Name string `json:"name"`
}

type memoryService struct {
	rows    []*widget
	updated map[int]string
}

func (s *memoryService) List(_ context.Context, page pagination.Params) ([]*widget, int, error) {
	if page.IsZero() {
		return s.rows, len(s.rows), nil
	}
	start := min(page.Offset(), len(s.rows))
	end := min(start+page.Limit, len(s.rows))
	return s.rows[start:end], len(s.rows), nil
}

func (s *memoryService) Get(_ context.Context, id int) (*widget, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, apperr.NotFound("Widget")
}

func (s *memoryService) Create(_ context.Context, input *widgetInput) (*widget, error) {
	row := &widget{ID: len(s.rows) + 1, Name: input.Name}
	s.rows = append(s.rows, row)
	return row, nil
}

func (s *memoryService) Update(ctx context.Context, id int, input *widgetInput) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	s.updated[id] = input.Name
	return nil
}

func (s *memoryService) Delete(ctx context.Context, id int) error {
	_, err := s.Get(ctx, id)
	return err
}

func newRouter(service *memoryService) http.Handler {
	router := chi.NewRouter()
	router.Route("/api/widget", func(r chi.Router) {
		crud.Mount(r, "/api/widget", service)
		r.Get("/{id}/shout", crud.Related(func(ctx context.Context, id int) (string, error) {
			row, err := service.Get(ctx, id)
			if err != nil {
				return "", err
			}
			return strings.ToUpper(row.Name), nil
		}))
	})
	return router
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

/*
TestMount_Routes walks every mounted route through its happy and failure paths.
*/
func TestMount_Routes(t *testing.T) {
	service := &memoryService{
		rows:    []*widget{{ID: 1, Name: "bolt"}, {ID: 2, Name: "nut"}},
		updated: map[int]string{},
	}
	router := newRouter(service)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"list", http.MethodGet, "/api/widget", "", http.StatusOK, `[{"id":1,"name":"bolt"},{"id":2,"name":"nut"}]`},
		{"get", http.MethodGet, "/api/widget/2", "", http.StatusOK, `{"id":2,"name":"nut"}`},
		{"get missing", http.MethodGet, "/api/widget/9", "", http.StatusNotFound, ""},
		{"get bad id", http.MethodGet, "/api/widget/abc", "", http.StatusBadRequest, ""},
		{"get zero id", http.MethodGet, "/api/widget/0", "", http.StatusBadRequest, ""},
		{"update", http.MethodPut, "/api/widget/1", `{"name":"screw"}`, http.StatusNoContent, ""},
		{"update null body", http.MethodPut, "/api/widget/1", `null`, http.StatusBadRequest, ""},
		{"delete", http.MethodDelete, "/api/widget/2", "", http.StatusNoContent, ""},
		{"delete missing", http.MethodDelete, "/api/widget/99", "", http.StatusNotFound, ""},
		{"related", http.MethodGet, "/api/widget/1/shout", "", http.StatusOK, `"BOLT"`},
		{"related missing", http.MethodGet, "/api/widget/7/shout", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}

	assert.Equal(t, "screw", service.updated[1])
}

/*
TestMount_Create verifies 201, the Location header, and empty-body rejection.
*/
func TestMount_Create(t *testing.T) {
	service := &memoryService{updated: map[int]string{}}
	router := newRouter(service)

	recorder := serve(router, http.MethodPost, "/api/widget", `{"name":"gear"}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "/api/widget/1", recorder.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"name":"gear"}`, recorder.Body.String())

	recorder = serve(router, http.MethodPost, "/api/widget", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid JSON payload")
}

/*
TestMount_ListPaged verifies paging headers and that an empty table lists as [].
*/
func TestMount_ListPaged(t *testing.T) {
	service := &memoryService{
		rows:    []*widget{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}},
		updated: map[int]string{},
	}

	recorder := serve(newRouter(service), http.MethodGet, "/api/widget?page=2&limit=2", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[{"id":3,"name":"c"}]`, recorder.Body.String())
	assert.Equal(t, "3", recorder.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", recorder.Header().Get("X-Total-Pages"))

	recorder = serve(newRouter(&memoryService{}), http.MethodGet, "/api/widget", "")
	assert.JSONEq(t, `[]`, recorder.Body.String())
	assert.Empty(t, recorder.Header().Get("X-Total-Count"))
}
