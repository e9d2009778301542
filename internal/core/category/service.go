// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/textnorm"
)

// Service orchestrates business rules for categories.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new category [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns one page of categories ordered by id, and the total count.
func (service *Service) List(context context.Context, page pagination.Params) ([]*Category, int, error) {
	return service.repo.List(context, page)
}

// Get returns the category with the given id.
func (service *Service) Get(context context.Context, id int) (*Category, error) {
	return service.repo.FindByID(context, id)
}

// Create stores a new category.
func (service *Service) Create(context context.Context, input *Input) (*Category, error) {
	category, err := service.prepare(context, input, 0)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created", slog.Int("category_id", category.ID))
	return category, nil
}

// Update overwrites the category at id.
func (service *Service) Update(context context.Context, id int, input *Input) error {
	if err := validate.IDMatch(id, input.ID); err != nil {
		return err
	}

	category, err := service.prepare(context, input, id)
	if err != nil {
		return err
	}

	if err := service.repo.Update(context, category); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.Int("category_id", id))
	return nil
}

// Delete removes a category; books filed under it lose that link.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.Int("category_id", id))
	return nil
}

// BooksOf returns the category with every book filed under it.
func (service *Service) BooksOf(context context.Context, id int) (*WithBooks, error) {
	category, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	books, err := service.repo.ListBooks(context, id)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []BookSummary{}
	}

	return &WithBooks{ID: category.ID, Name: category.Name, Books: books}, nil
}

func (service *Service) prepare(context context.Context, input *Input, id int) (*Category, error) {
	input.Name = textnorm.Name(input.Name)

	validator := &validate.Validator{}
	if err := validator.Struct(input).Err(); err != nil {
		return nil, err
	}

	if id != 0 {
		if _, err := service.repo.FindByID(context, id); err != nil {
			return nil, err
		}
	}

	taken, err := service.repo.NameTaken(context, input.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("A category with this name already exists")
	}

	return &Category{ID: id, Name: input.Name}, nil
}
