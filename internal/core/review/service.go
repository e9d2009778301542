// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/slice"
	"github.com/taibuivan/folio/pkg/textnorm"
)

// # Service Layer

// Service orchestrates business rules for reviews.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new review [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # CRUD

// List returns one page of reviews ordered by id, and the total count.
func (service *Service) List(context context.Context, page pagination.Params) ([]*Review, int, error) {
	return service.repo.List(context, page)
}

// Get returns the review with the given id.
func (service *Service) Get(context context.Context, id int) (*Review, error) {
	return service.repo.FindByID(context, id)
}

// Create stores a new review. The book and the reviewer must both exist.
func (service *Service) Create(context context.Context, input *Input) (*Review, error) {
	review, err := service.prepare(context, input, 0)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_created",
		slog.Int("review_id", review.ID),
		slog.Int("book_id", review.BookID),
		slog.Int("reviewer_id", review.ReviewerID),
	)
	return review, nil
}

// Update overwrites the review at id.
func (service *Service) Update(context context.Context, id int, input *Input) error {
	if err := validate.IDMatch(id, input.ID); err != nil {
		return err
	}

	review, err := service.prepare(context, input, id)
	if err != nil {
		return err
	}

	if err := service.repo.Update(context, review); err != nil {
		return err
	}

	service.logger.Info("review_updated", slog.Int("review_id", id))
	return nil
}

// Delete removes one review.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("review_deleted", slog.Int("review_id", id))
	return nil
}

/*
DeleteMany removes a batch of reviews atomically.

Repeated ids count once. Every id must be a valid key and name an existing review;
otherwise nothing is deleted.
*/
func (service *Service) DeleteMany(context context.Context, ids []int) error {
	ids = slice.Unique(ids)

	validator := &validate.Validator{}
	validator.Custom(FieldIDs, len(ids) == 0, "At least one review id is required")
	for _, id := range ids {
		validator.Range(FieldIDs, id, 1, constants.MaxID)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteMany(context, ids); err != nil {
		return err
	}

	service.logger.Warn("reviews_deleted", slog.Any("review_ids", ids))
	return nil
}

// # Relations

// BookOf returns the book the review is about.
func (service *Service) BookOf(context context.Context, id int) (*WithBook, error) {
	book, err := service.repo.FindBook(context, id)
	if err != nil {
		return nil, err
	}

	return &WithBook{ReviewID: id, Book: *book}, nil
}

// # Helpers

func (service *Service) prepare(context context.Context, input *Input, id int) (*Review, error) {
	input.Headline = textnorm.Name(input.Headline)
	input.ReviewText = strings.TrimSpace(input.ReviewText)

	validator := &validate.Validator{}
	if err := validator.Struct(input).Err(); err != nil {
		return nil, err
	}

	if id != 0 {
		if _, err := service.repo.FindByID(context, id); err != nil {
			return nil, err
		}
	}

	bookFound, err := service.repo.BookExists(context, input.BookID)
	if err != nil {
		return nil, err
	}
	reviewerFound, err := service.repo.ReviewerExists(context, input.ReviewerID)
	if err != nil {
		return nil, err
	}

	validator.
		Custom(FieldBookID, !bookFound, fmt.Sprintf("Book %d does not exist", input.BookID)).
		Custom(FieldReviewerID, !reviewerFound, fmt.Sprintf("Reviewer %d does not exist", input.ReviewerID))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Review{
		ID:         id,
		Headline:   input.Headline,
		ReviewText: input.ReviewText,
		Rating:     input.Rating,
		BookID:     input.BookID,
		ReviewerID: input.ReviewerID,
	}, nil
}
