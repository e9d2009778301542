// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/core/author"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
)

type fakeRepository struct {
	rows      map[int]*author.Author
	countries map[int]string
	books     map[int][]author.BookSummary
	nextID    int
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{
		rows:      map[int]*author.Author{},
		countries: map[int]string{1: "United States", 2: "United Kingdom", 3: "Canada", 4: "Australia", 5: "India"},
		books:     map[int][]author.BookSummary{},
		nextID:    1,
	}
	seed := []author.Author{
		{FirstName: "Stephen", LastName: "King", CountryID: 1},
		{FirstName: "J.K.", LastName: "Rowling", CountryID: 2},
		{FirstName: "Margaret", LastName: "Atwood", CountryID: 3},
		{FirstName: "Tim", LastName: "Winton", CountryID: 4},
		{FirstName: "Arundhati", LastName: "Roy", CountryID: 5},
	}
	for i := range seed {
		_ = repo.Create(context.Background(), &seed[i])
	}
	repo.books[1] = []author.BookSummary{
		{ID: 1, ISBN: "9781501142970", Title: "It", PublishedAt: date.New(1986, time.September, 15)},
	}
	return repo
}

func (r *fakeRepository) List(_ context.Context, page pagination.Params) ([]*author.Author, int, error) {
	var out []*author.Author
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

func (r *fakeRepository) FindByID(_ context.Context, id int) (*author.Author, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	copied := *row
	return &copied, nil
}

func (r *fakeRepository) NameTaken(_ context.Context, firstName, lastName string, excludeID int) (bool, error) {
	for id, row := range r.rows {
		if id != excludeID && strings.EqualFold(row.FirstName, firstName) && strings.EqualFold(row.LastName, lastName) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) CountryExists(_ context.Context, countryID int) (bool, error) {
	_, ok := r.countries[countryID]
	return ok, nil
}

func (r *fakeRepository) Create(_ context.Context, a *author.Author) error {
	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.rows[a.ID] = &copied
	return nil
}

func (r *fakeRepository) Update(_ context.Context, a *author.Author) error {
	if _, ok := r.rows[a.ID]; !ok {
		return apperr.NotFound("Author")
	}
	copied := *a
	r.rows[a.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Author")
	}
	delete(r.rows, id)
	delete(r.books, id)
	return nil
}

func (r *fakeRepository) ListBooks(_ context.Context, authorID int) ([]author.BookSummary, error) {
	return r.books[authorID], nil
}

func (r *fakeRepository) FindCountry(_ context.Context, countryID int) (*author.CountrySummary, error) {
	name, ok := r.countries[countryID]
	if !ok {
		return nil, apperr.NotFound("Country")
	}
	return &author.CountrySummary{ID: countryID, Name: name}, nil
}

func newService(repo author.Repository) *author.Service {
	return author.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
