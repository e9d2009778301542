// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/textnorm"
)

// # Service Layer

// Service orchestrates business rules for countries.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new country [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # CRUD

// List returns one page of countries ordered by id, and the total count.
func (service *Service) List(context context.Context, page pagination.Params) ([]*Country, int, error) {
	return service.repo.List(context, page)
}

// Get returns the country with the given id.
func (service *Service) Get(context context.Context, id int) (*Country, error) {
	return service.repo.FindByID(context, id)
}

/*
Create stores a new country.

Returns:
  - *Country: The stored row with its generated id
  - error: VALIDATION_ERROR on bad input, CONFLICT if the name is taken
*/
func (service *Service) Create(context context.Context, input *Input) (*Country, error) {
	country, err := service.prepare(context, input, 0)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, country); err != nil {
		return nil, err
	}

	service.logger.Info("country_created", slog.Int("country_id", country.ID))
	return country, nil
}

/*
Update overwrites the country at id.

A non-zero input.ID that differs from id is rejected before anything else
is checked, so a mismatched request never mutates state.
*/
func (service *Service) Update(context context.Context, id int, input *Input) error {
	if err := validate.IDMatch(id, input.ID); err != nil {
		return err
	}

	country, err := service.prepare(context, input, id)
	if err != nil {
		return err
	}

	if err := service.repo.Update(context, country); err != nil {
		return err
	}

	service.logger.Info("country_updated", slog.Int("country_id", id))
	return nil
}

// Delete removes a country. Countries still referenced by authors cannot be deleted.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("country_deleted", slog.Int("country_id", id))
	return nil
}

// # Relations

// AuthorsOf returns the country with every author attributed to it.
func (service *Service) AuthorsOf(context context.Context, id int) (*WithAuthors, error) {
	country, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	authors, err := service.repo.ListAuthors(context, id)
	if err != nil {
		return nil, err
	}

	return &WithAuthors{ID: country.ID, Name: country.Name, Authors: nonNil(authors)}, nil
}

// # Helpers

// prepare canonicalises and validates input for the row at id (0 on create)
// and checks that the name is free.
func (service *Service) prepare(context context.Context, input *Input, id int) (*Country, error) {
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
		return nil, apperr.Conflict("A country with this name already exists")
	}

	return &Country{ID: id, Name: input.Name}, nil
}

func nonNil(authors []AuthorSummary) []AuthorSummary {
	if authors == nil {
		return []AuthorSummary{}
	}
	return authors
}
