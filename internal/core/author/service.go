// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/textnorm"
)

// # Service Layer

// Service orchestrates business rules for authors.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new author [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # CRUD

// List returns one page of authors ordered by id, and the total count.
func (service *Service) List(context context.Context, page pagination.Params) ([]*Author, int, error) {
	return service.repo.List(context, page)
}

// Get returns the author with the given id.
func (service *Service) Get(context context.Context, id int) (*Author, error) {
	return service.repo.FindByID(context, id)
}

/*
Create stores a new author.

Returns:
  - *Author: The stored row with its generated id
  - error: VALIDATION_ERROR on bad input or an unknown country, CONFLICT on a duplicate name
*/
func (service *Service) Create(context context.Context, input *Input) (*Author, error) {
	author, err := service.prepare(context, input, 0)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created",
		slog.Int("author_id", author.ID),
		slog.Int("country_id", author.CountryID),
	)
	return author, nil
}

// Update overwrites the author at id. A mismatched body id is rejected first.
func (service *Service) Update(context context.Context, id int, input *Input) error {
	if err := validate.IDMatch(id, input.ID); err != nil {
		return err
	}

	author, err := service.prepare(context, input, id)
	if err != nil {
		return err
	}

	if err := service.repo.Update(context, author); err != nil {
		return err
	}

	service.logger.Info("author_updated", slog.Int("author_id", id))
	return nil
}

// Delete removes an author and unlinks them from their books.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.Int("author_id", id))
	return nil
}

// # Relations

// BooksOf returns the author with every book they are credited on.
func (service *Service) BooksOf(context context.Context, id int) (*WithBooks, error) {
	author, err := service.repo.FindByID(context, id)
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

	return &WithBooks{
		ID:        author.ID,
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Books:     books,
	}, nil
}

// CountryOf returns the author with their country.
func (service *Service) CountryOf(context context.Context, id int) (*WithCountry, error) {
	author, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	country, err := service.repo.FindCountry(context, author.CountryID)
	if err != nil {
		return nil, err
	}

	return &WithCountry{
		ID:        author.ID,
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Country:   *country,
	}, nil
}

// # Helpers

// prepare canonicalises and validates input for the row at id (0 on create).
func (service *Service) prepare(context context.Context, input *Input, id int) (*Author, error) {
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

	exists, err := service.repo.CountryExists(context, input.CountryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, validate.RequiredError(FieldCountryID, fmt.Sprintf("Country %d does not exist", input.CountryID))
	}

	taken, err := service.repo.NameTaken(context, input.FirstName, input.LastName, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("An author with this first and last name already exists")
	}

	return &Author{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CountryID: input.CountryID,
	}, nil
}
