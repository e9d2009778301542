// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reviewer_test

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/core/reviewer"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/pagination"
)

type fakeRepository struct {
	rows    map[int]*reviewer.Reviewer
	reviews map[int][]reviewer.ReviewSummary
	nextID  int
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{rows: map[int]*reviewer.Reviewer{}, reviews: map[int][]reviewer.ReviewSummary{}, nextID: 1}
	for _, name := range [][2]string{{"James", "Wood"}, {"Michiko", "Kakutani"}, {"Ron", "Charles"}} {
		_ = repo.Create(context.Background(), &reviewer.Reviewer{FirstName: name[0], LastName: name[1]})
	}
	repo.reviews[2] = []reviewer.ReviewSummary{
		{ID: 2, Headline: "Magical Adventure", ReviewText: "A magical adventure for all ages.", Rating: 5, BookID: 2},
	}
	return repo
}

func (r *fakeRepository) List(_ context.Context, page pagination.Params) ([]*reviewer.Reviewer, int, error) {
	var out []*reviewer.Reviewer
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

func (r *fakeRepository) FindByID(_ context.Context, id int) (*reviewer.Reviewer, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("Reviewer")
	}
	copied := *row
	return &copied, nil
}

func (r *fakeRepository) FindByReview(ctx context.Context, reviewID int) (*reviewer.Reviewer, error) {
	for reviewerID, reviews := range r.reviews {
		for _, review := range reviews {
			if review.ID == reviewID {
				return r.FindByID(ctx, reviewerID)
			}
		}
	}
	return nil, apperr.NotFound("Review")
}

func (r *fakeRepository) NameTaken(_ context.Context, firstName, lastName string, excludeID int) (bool, error) {
	for id, row := range r.rows {
		if id != excludeID && strings.EqualFold(row.FirstName, firstName) && strings.EqualFold(row.LastName, lastName) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) Create(_ context.Context, rv *reviewer.Reviewer) error {
	rv.ID = r.nextID
	r.nextID++
	copied := *rv
	r.rows[rv.ID] = &copied
	return nil
}

func (r *fakeRepository) Update(_ context.Context, rv *reviewer.Reviewer) error {
	if _, ok := r.rows[rv.ID]; !ok {
		return apperr.NotFound("Reviewer")
	}
	copied := *rv
	r.rows[rv.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Reviewer")
	}
	delete(r.rows, id)
	delete(r.reviews, id)
	return nil
}

func (r *fakeRepository) ListReviews(_ context.Context, reviewerID int) ([]reviewer.ReviewSummary, error) {
	return r.reviews[reviewerID], nil
}

func newService(repo reviewer.Repository) *reviewer.Service {
	return reviewer.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
