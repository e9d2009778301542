// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"

	"github.com/taibuivan/folio/pkg/pagination"
)

// Repository defines the data access contract for books and their links.
type Repository interface {
	List(context context.Context, page pagination.Params) ([]*Book, int, error)
	FindByID(context context.Context, id int) (*Book, error)
	FindByISBN(context context.Context, isbn string) (*Book, error)

	// ISBNTaken and TitleTaken ignore the row at excludeID. Titles compare
	// case-insensitively.
	ISBNTaken(context context.Context, isbn string, excludeID int) (bool, error)
	TitleTaken(context context.Context, title string, excludeID int) (bool, error)

	// MissingAuthors and MissingCategories return the ids that match no row.
	MissingAuthors(context context.Context, ids []int) ([]int, error)
	MissingCategories(context context.Context, ids []int) ([]int, error)

	// Create and Update write the book row and both link sets atomically.
	Create(context context.Context, book *Book, authorIDs, categoryIDs []int) error
	Update(context context.Context, book *Book, authorIDs, categoryIDs []int) error
	Delete(context context.Context, id int) error

	ListAuthors(context context.Context, bookID int) ([]AuthorSummary, error)
	ListCategories(context context.Context, bookID int) ([]CategorySummary, error)
	ListReviews(context context.Context, bookID int) ([]ReviewSummary, error)
	AverageRating(context context.Context, bookID int) (float64, error)
}
