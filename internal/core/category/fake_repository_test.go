// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/core/category"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
)

type fakeRepository struct {
	rows   map[int]*category.Category
	books  map[int][]category.BookSummary
	nextID int
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{rows: map[int]*category.Category{}, books: map[int][]category.BookSummary{}, nextID: 1}
	for _, name := range []string{"Fiction", "Non-Fiction", "Biography", "Children's", "Mystery"} {
		_ = repo.Create(context.Background(), &category.Category{Name: name})
	}
	repo.books[1] = []category.BookSummary{
		{ID: 3, ISBN: "9780385490818", Title: "The Handmaid's Tale", PublishedAt: date.New(1985, time.February, 17)},
		{ID: 4, ISBN: "9780330412388", Title: "Cloudstreet", PublishedAt: date.New(1991, time.May, 23)},
	}
	return repo
}

func (r *fakeRepository) List(_ context.Context, page pagination.Params) ([]*category.Category, int, error) {
	var out []*category.Category
	for id := 1; id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			copied := *row
			out = append(out, &copied)
		}
	}
	total := len(out)
	if !page.IsZero() {
		start := min(page.Offset(), total)
		out = out[start:min(start+page.Limit, total)]
	}
	return out, total, nil
}

func (r *fakeRepository) FindByID(_ context.Context, id int) (*category.Category, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Category")
	}
	copied := *row
	return &copied, nil
}

func (r *fakeRepository) NameTaken(_ context.Context, name string, excludeID int) (bool, error) {
	for id, row := range r.rows {
		if id != excludeID && strings.EqualFold(row.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) Create(_ context.Context, c *category.Category) error {
	c.ID = r.nextID
	r.nextID++
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *fakeRepository) Update(_ context.Context, c *category.Category) error {
	if _, ok := r.rows[c.ID]; !ok {
		return apperr.NotFound("Category")
	}
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Category")
	}
	delete(r.rows, id)
	delete(r.books, id)
	return nil
}

func (r *fakeRepository) ListBooks(_ context.Context, categoryID int) ([]category.BookSummary, error) {
	return r.books[categoryID], nil
}

func newService(repo category.Repository) *category.Service {
	return category.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
