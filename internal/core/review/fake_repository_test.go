// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/core/review"
	"github.com/taibuivan/folio/internal/core/reviewer"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/slice"
)

type fakeRepository struct {
	rows      map[int]*review.Review
	books     map[int]review.BookSummary
	reviewers map[int]reviewer.Reviewer
	nextID    int
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{
		rows: map[int]*review.Review{},
		books: map[int]review.BookSummary{
			1: {ID: 1, ISBN: "9781501142970", Title: "It", PublishedAt: date.New(1986, time.September, 15)},
			2: {ID: 2, ISBN: "9780747532699", Title: "Harry Potter and the Philosopher's Stone", PublishedAt: date.New(1997, time.June, 26)},
		},
		reviewers: map[int]reviewer.Reviewer{
			1: {ID: 1, FirstName: "James", LastName: "Wood"},
			2: {ID: 2, FirstName: "Michiko", LastName: "Kakutani"},
		},
		nextID: 1,
	}

	_ = repo.Create(context.Background(), &review.Review{
		Headline: "Terrifying Read", ReviewText: "A terrifying journey into the depths of fear.", Rating: 5, BookID: 1, ReviewerID: 1,
	})
	_ = repo.Create(context.Background(), &review.Review{
		Headline: "Magical Adventure", ReviewText: "A magical adventure for all ages.", Rating: 5, BookID: 2, ReviewerID: 2,
	})
	_ = repo.Create(context.Background(), &review.Review{
		Headline: "Overlong but Gripping", ReviewText: "Could lose a few hundred pages.", Rating: 3, BookID: 1, ReviewerID: 2,
	})
	return repo
}

func (r *fakeRepository) List(_ context.Context, page pagination.Params) ([]*review.Review, int, error) {
	var out []*review.Review
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

func (r *fakeRepository) FindByID(_ context.Context, id int) (*review.Review, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	copied := *row
	return &copied, nil
}

func (r *fakeRepository) FindBook(_ context.Context, reviewID int) (*review.BookSummary, error) {
	row, ok := r.rows[reviewID]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	book := r.books[row.BookID]
	return &book, nil
}

func (r *fakeRepository) BookExists(_ context.Context, id int) (bool, error) {
	_, ok := r.books[id]
	return ok, nil
}

func (r *fakeRepository) ReviewerExists(_ context.Context, id int) (bool, error) {
	_, ok := r.reviewers[id]
	return ok, nil
}

func (r *fakeRepository) Create(_ context.Context, rv *review.Review) error {
	rv.ID = r.nextID
	r.nextID++
	copied := *rv
	r.rows[rv.ID] = &copied
	return nil
}

func (r *fakeRepository) Update(_ context.Context, rv *review.Review) error {
	if _, ok := r.rows[rv.ID]; !ok {
		return apperr.NotFound("Review")
	}
	copied := *rv
	r.rows[rv.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Review")
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeRepository) DeleteMany(_ context.Context, ids []int) error {
	missing := slice.Filter(ids, func(id int) bool {
		_, ok := r.rows[id]
		return !ok
	})
	if len(missing) > 0 {
		return review.MissingError(missing)
	}
	for _, id := range ids {
		delete(r.rows, id)
	}
	return nil
}

// reviewerLookup serves the reviewer-of-review route from the review fake.
type reviewerLookup struct {
	reviewer.Repository
	reviews *fakeRepository
}

func (l reviewerLookup) FindByReview(_ context.Context, reviewID int) (*reviewer.Reviewer, error) {
	row, ok := l.reviews.rows[reviewID]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	author := l.reviews.reviewers[row.ReviewerID]
	return &author, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(repo review.Repository) *review.Service {
	return review.NewService(repo, discardLogger())
}

func newHandler(repo *fakeRepository) *review.Handler {
	reviewers := reviewer.NewService(reviewerLookup{reviews: repo}, discardLogger())
	return review.NewHandler(newService(repo), reviewers)
}
