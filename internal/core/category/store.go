// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"

	"github.com/taibuivan/folio/pkg/pagination"
)

// Repository defines the data access contract for categories.
type Repository interface {
	List(context context.Context, page pagination.Params) ([]*Category, int, error)
	FindByID(context context.Context, id int) (*Category, error)
	NameTaken(context context.Context, name string, excludeID int) (bool, error)

	Create(context context.Context, category *Category) error
	Update(context context.Context, category *Category) error
	Delete(context context.Context, id int) error

	ListBooks(context context.Context, categoryID int) ([]BookSummary, error)
}
