// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"

	"github.com/taibuivan/folio/pkg/pagination"
)

// Repository defines the data access contract for countries.
type Repository interface {
	List(context context.Context, page pagination.Params) ([]*Country, int, error)
	FindByID(context context.Context, id int) (*Country, error)

	// NameTaken reports whether a country other than excludeID already uses
	// name, compared case-insensitively.
	NameTaken(context context.Context, name string, excludeID int) (bool, error)

	Create(context context.Context, country *Country) error
	Update(context context.Context, country *Country) error
	Delete(context context.Context, id int) error

	ListAuthors(context context.Context, countryID int) ([]AuthorSummary, error)
}
