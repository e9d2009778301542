// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/slice"
	"github.com/taibuivan/folio/pkg/textnorm"
)

// # Service Layer

// Service orchestrates business rules for books and their links.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new book [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # CRUD

// List returns one page of books ordered by id, and the total count.
func (service *Service) List(context context.Context, page pagination.Params) ([]*Book, int, error) {
	return service.repo.List(context, page)
}

// Get returns the book with the given id.
func (service *Service) Get(context context.Context, id int) (*Book, error) {
	return service.repo.FindByID(context, id)
}

// GetByISBN returns the book with the given ISBN, ignoring hyphens and case.
func (service *Service) GetByISBN(context context.Context, isbn string) (*Book, error) {
	return service.repo.FindByISBN(context, textnorm.ISBN(isbn))
}

/*
Create stores a new book and links it to its authors and categories.

Every referenced author and category must exist; otherwise nothing is
written and a VALIDATION_ERROR names the missing ids.
*/
func (service *Service) Create(context context.Context, input *Input) (*Book, error) {
	book, err := service.prepare(context, input, 0)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, book, input.AuthorIDs, input.CategoryIDs); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.Int("book_id", book.ID),
		slog.Int("authors", len(input.AuthorIDs)),
		slog.Int("categories", len(input.CategoryIDs)),
	)
	return book, nil
}

// Update overwrites the book at id and replaces its links. A mismatched body
// id is rejected first.
func (service *Service) Update(context context.Context, id int, input *Input) error {
	if err := validate.IDMatch(id, input.ID); err != nil {
		return err
	}

	book, err := service.prepare(context, input, id)
	if err != nil {
		return err
	}

	if err := service.repo.Update(context, book, input.AuthorIDs, input.CategoryIDs); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.Int("book_id", id))
	return nil
}

// Delete removes a book together with its links and reviews.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

// # Relations

// AuthorsOf returns the book with its authors.
func (service *Service) AuthorsOf(context context.Context, id int) (*WithAuthors, error) {
	book, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	authors, err := service.repo.ListAuthors(context, id)
	if err != nil {
		return nil, err
	}

	return &WithAuthors{ID: book.ID, ISBN: book.ISBN, Title: book.Title, Authors: nonNil(authors)}, nil
}

// CategoriesOf returns the book with its categories.
func (service *Service) CategoriesOf(context context.Context, id int) (*WithCategories, error) {
	book, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	categories, err := service.repo.ListCategories(context, id)
	if err != nil {
		return nil, err
	}

	return &WithCategories{ID: book.ID, ISBN: book.ISBN, Title: book.Title, Categories: nonNil(categories)}, nil
}

// ReviewsOf returns the book with its reviews.
func (service *Service) ReviewsOf(context context.Context, id int) (*WithReviews, error) {
	book, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	reviews, err := service.repo.ListReviews(context, id)
	if err != nil {
		return nil, err
	}

	return &WithReviews{ID: book.ID, ISBN: book.ISBN, Title: book.Title, Reviews: nonNil(reviews)}, nil
}

// RatingOf returns the mean review rating of a book, 0 when it has none.
func (service *Service) RatingOf(context context.Context, id int) (*Rating, error) {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return nil, err
	}

	rating, err := service.repo.AverageRating(context, id)
	if err != nil {
		return nil, err
	}

	return &Rating{BookID: id, Rating: rating}, nil
}

// # Helpers

// prepare canonicalises and validates input for the row at id (0 on create),
// then checks references and uniqueness in that order.
func (service *Service) prepare(context context.Context, input *Input, id int) (*Book, error) {
	input.ISBN = textnorm.ISBN(input.ISBN)
	input.Title = textnorm.Name(input.Title)
	input.AuthorIDs = slice.Unique(input.AuthorIDs)
	input.CategoryIDs = slice.Unique(input.CategoryIDs)

	validator := &validate.Validator{}
	validator.
		Required(FieldISBN, input.ISBN).
		MinLen(FieldISBN, input.ISBN, MinISBNLength).
		MaxLen(FieldISBN, input.ISBN, MaxISBNLength).
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		Custom(FieldPublishedAt, input.PublishedAt.IsZero(), "This field is required").
		Struct(input)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if id != 0 {
		if _, err := service.repo.FindByID(context, id); err != nil {
			return nil, err
		}
	}

	if err := service.checkReferences(context, input); err != nil {
		return nil, err
	}

	if taken, err := service.repo.ISBNTaken(context, input.ISBN, id); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("A book with this ISBN already exists")
	}

	if taken, err := service.repo.TitleTaken(context, input.Title, id); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("A book with this title already exists")
	}

	return &Book{
		ID:          id,
		ISBN:        input.ISBN,
		Title:       input.Title,
		PublishedAt: input.PublishedAt,
	}, nil
}

func (service *Service) checkReferences(context context.Context, input *Input) error {
	missingAuthors, err := service.repo.MissingAuthors(context, input.AuthorIDs)
	if err != nil {
		return err
	}

	missingCategories, err := service.repo.MissingCategories(context, input.CategoryIDs)
	if err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldAuthorIDs, len(missingAuthors) > 0, "Unknown author ids: "+joinIDs(missingAuthors)).
		Custom(FieldCategoryIDs, len(missingCategories) > 0, "Unknown category ids: "+joinIDs(missingCategories))

	return validator.Err()
}

func joinIDs(ids []int) string {
	return strings.Join(slice.Map(ids, strconv.Itoa), ", ")
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
