// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"

	"github.com/taibuivan/folio/pkg/pagination"
)

// Repository defines the data access contract for authors.
type Repository interface {
	List(context context.Context, page pagination.Params) ([]*Author, int, error)
	FindByID(context context.Context, id int) (*Author, error)

	// NameTaken reports whether an author other than excludeID already has
	// this first and last name, compared case-insensitively.
	NameTaken(context context.Context, firstName, lastName string, excludeID int) (bool, error)
	CountryExists(context context.Context, countryID int) (bool, error)

	Create(context context.Context, author *Author) error
	Update(context context.Context, author *Author) error
	Delete(context context.Context, id int) error

	ListBooks(context context.Context, authorID int) ([]BookSummary, error)
	FindCountry(context context.Context, countryID int) (*CountrySummary, error)
}
