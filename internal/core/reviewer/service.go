// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reviewer

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/textnorm"
)

// # Service Layer

// Service orchestrates business rules for reviewers.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new reviewer [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # CRUD

// List returns one page of reviewers ordered by id, and the total count.
func (service *Service) List(context context.Context, page pagination.Params) ([]*Reviewer, int, error) {
	return service.repo.List(context, page)
}

// Get returns the reviewer with the given id.
func (service *Service) Get(context context.Context, id int) (*Reviewer, error) {
	return service.repo.FindByID(context, id)
}

// Create stores a new reviewer.
func (service *Service) Create(context context.Context, input *Input) (*Reviewer, error) {
	reviewer, err := service.prepare(context, input, 0)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, reviewer); err != nil {
		return nil, err
	}

	service.logger.Info("reviewer_created", slog.Int("reviewer_id", reviewer.ID))
	return reviewer, nil
}

// Update overwrites the reviewer at id.
func (service *Service) Update(context context.Context, id int, input *Input) error {
	if err := validate.IDMatch(id, input.ID); err != nil {
		return err
	}

	reviewer, err := service.prepare(context, input, id)
	if err != nil {
		return err
	}

	if err := service.repo.Update(context, reviewer); err != nil {
		return err
	}

	service.logger.Info("reviewer_updated", slog.Int("reviewer_id", id))
	return nil
}

// Delete removes a reviewer together with their reviews.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("reviewer_deleted", slog.Int("reviewer_id", id))
	return nil
}

// # Relations

// ReviewsOf returns the reviewer with every review they wrote.
func (service *Service) ReviewsOf(context context.Context, id int) (*WithReviews, error) {
	reviewer, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	reviews, err := service.repo.ListReviews(context, id)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []ReviewSummary{}
	}

	return &WithReviews{
		ID:        reviewer.ID,
		FirstName: reviewer.FirstName,
		LastName:  reviewer.LastName,
		Reviews:   reviews,
	}, nil
}

// OfReviewID returns the reviewer who wrote the review with the given id.
func (service *Service) OfReviewID(context context.Context, reviewID int) (*OfReview, error) {
	reviewer, err := service.repo.FindByReview(context, reviewID)
	if err != nil {
		return nil, err
	}

	return &OfReview{ReviewID: reviewID, Reviewer: *reviewer}, nil
}

// # Helpers

func (service *Service) prepare(context context.Context, input *Input, id int) (*Reviewer, error) {
	input.FirstName = textnorm.Name(input.FirstName)
	input.LastName = textnorm.Name(input.LastName)

	validator := &validate.Validator{}
	if err := validator.Struct(input).Err(); err != nil {
		return nil, err
	}

	if id != 0 {
		if _, err := service.repo.FindByID(context, id); err != nil {
			return nil, err
		}
	}

	taken, err := service.repo.NameTaken(context, input.FirstName, input.LastName, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("A reviewer with this first and last name already exists")
	}

	return &Reviewer{ID: id, FirstName: input.FirstName, LastName: input.LastName}, nil
}
