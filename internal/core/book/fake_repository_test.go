// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/core/book"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/slice"
)

type fakeRepository struct {
	rows       map[int]*book.Book
	authors    map[int]book.AuthorSummary
	categories map[int]book.CategorySummary
	links      map[int][2][]int
	reviews    map[int][]book.ReviewSummary
	nextID     int
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{
		rows: map[int]*book.Book{},
		authors: map[int]book.AuthorSummary{
			1: {ID: 1, FirstName: "Stephen", LastName: "King"},
			2: {ID: 2, FirstName: "J.K.", LastName: "Rowling"},
			3: {ID: 3, FirstName: "Margaret", LastName: "Atwood"},
		},
		categories: map[int]book.CategorySummary{
			1: {ID: 1, Name: "Fiction"},
			5: {ID: 5, Name: "Mystery"},
		},
		links:   map[int][2][]int{},
		reviews: map[int][]book.ReviewSummary{},
		nextID:  1,
	}

	_ = repo.Create(context.Background(), &book.Book{
		ISBN: "9781501142970", Title: "It", PublishedAt: date.New(1986, time.September, 15),
	}, []int{1}, []int{5})
	_ = repo.Create(context.Background(), &book.Book{
		ISBN: "9780385490818", Title: "The Handmaid's Tale", PublishedAt: date.New(1985, time.February, 17),
	}, []int{3}, []int{1})

	repo.reviews[1] = []book.ReviewSummary{
		{ID: 1, Headline: "Terrifying Read", ReviewText: "A journey into fear.", Rating: 5, ReviewerID: 1, Reviewer: "James Wood"},
		{ID: 6, Headline: "Too long for me", ReviewText: "Could lose 400 pages.", Rating: 2, ReviewerID: 2, Reviewer: "Michiko Kakutani"},
	}
	return repo
}

func (r *fakeRepository) List(_ context.Context, page pagination.Params) ([]*book.Book, int, error) {
	var out []*book.Book
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

func (r *fakeRepository) FindByID(_ context.Context, id int) (*book.Book, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Book")
	}
	copied := *row
	return &copied, nil
}

func (r *fakeRepository) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	for _, row := range r.rows {
		if strings.EqualFold(row.ISBN, isbn) {
			copied := *row
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Book")
}

func (r *fakeRepository) ISBNTaken(_ context.Context, isbn string, excludeID int) (bool, error) {
	for id, row := range r.rows {
		if id != excludeID && strings.EqualFold(row.ISBN, isbn) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) TitleTaken(_ context.Context, title string, excludeID int) (bool, error) {
	for id, row := range r.rows {
		if id != excludeID && strings.EqualFold(row.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) MissingAuthors(_ context.Context, ids []int) ([]int, error) {
	return slice.Filter(ids, func(id int) bool { _, ok := r.authors[id]; return !ok }), nil
}

func (r *fakeRepository) MissingCategories(_ context.Context, ids []int) ([]int, error) {
	return slice.Filter(ids, func(id int) bool { _, ok := r.categories[id]; return !ok }), nil
}

func (r *fakeRepository) Create(_ context.Context, b *book.Book, authorIDs, categoryIDs []int) error {
	b.ID = r.nextID
	r.nextID++
	copied := *b
	r.rows[b.ID] = &copied
	r.links[b.ID] = [2][]int{authorIDs, categoryIDs}
	return nil
}

func (r *fakeRepository) Update(_ context.Context, b *book.Book, authorIDs, categoryIDs []int) error {
	if _, ok := r.rows[b.ID]; !ok {
		return apperr.NotFound("Book")
	}
	copied := *b
	r.rows[b.ID] = &copied
	r.links[b.ID] = [2][]int{authorIDs, categoryIDs}
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Book")
	}
	delete(r.rows, id)
	delete(r.links, id)
	delete(r.reviews, id)
	return nil
}

func (r *fakeRepository) ListAuthors(_ context.Context, bookID int) ([]book.AuthorSummary, error) {
	return slice.Map(r.links[bookID][0], func(id int) book.AuthorSummary { return r.authors[id] }), nil
}

func (r *fakeRepository) ListCategories(_ context.Context, bookID int) ([]book.CategorySummary, error) {
	return slice.Map(r.links[bookID][1], func(id int) book.CategorySummary { return r.categories[id] }), nil
}

func (r *fakeRepository) ListReviews(_ context.Context, bookID int) ([]book.ReviewSummary, error) {
	return r.reviews[bookID], nil
}

func (r *fakeRepository) AverageRating(_ context.Context, bookID int) (float64, error) {
	reviews := r.reviews[bookID]
	if len(reviews) == 0 {
		return 0, nil
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}

func newService(repo book.Repository) *book.Service {
	return book.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
