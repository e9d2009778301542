// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country_test

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/core/country"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/pagination"
)

// fakeRepository is an in-memory [country.Repository] seeded like the catalogue.
type fakeRepository struct {
	rows    map[int]*country.Country
	authors map[int][]country.AuthorSummary
	nextID  int
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{
		rows:    map[int]*country.Country{},
		authors: map[int][]country.AuthorSummary{},
		nextID:  1,
	}
	for _, name := range []string{"United States", "United Kingdom", "Canada", "Australia", "India"} {
		_ = repo.Create(context.Background(), &country.Country{Name: name})
	}
	repo.authors[1] = []country.AuthorSummary{{ID: 1, FirstName: "Stephen", LastName: "King"}}
	return repo
}

func (r *fakeRepository) List(_ context.Context, page pagination.Params) ([]*country.Country, int, error) {
	var out []*country.Country
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

func (r *fakeRepository) FindByID(_ context.Context, id int) (*country.Country, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Country")
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

func (r *fakeRepository) Create(_ context.Context, c *country.Country) error {
	c.ID = r.nextID
	r.nextID++
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *fakeRepository) Update(_ context.Context, c *country.Country) error {
	if _, ok := r.rows[c.ID]; !ok {
		return apperr.NotFound("Country")
	}
	copied := *c
	r.rows[c.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Country")
	}
	if len(r.authors[id]) > 0 {
		return apperr.Conflict("Country is still referenced by authors")
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeRepository) ListAuthors(_ context.Context, countryID int) ([]country.AuthorSummary, error) {
	return r.authors[countryID], nil
}

func newService(repo country.Repository) *country.Service {
	return country.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
