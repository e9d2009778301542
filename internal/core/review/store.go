// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"

	"github.com/taibuivan/folio/pkg/pagination"
)

// Repository defines the data access contract for reviews.
type Repository interface {
	List(context context.Context, page pagination.Params) ([]*Review, int, error)
	FindByID(context context.Context, id int) (*Review, error)
	FindBook(context context.Context, reviewID int) (*BookSummary, error)

	BookExists(context context.Context, id int) (bool, error)
	ReviewerExists(context context.Context, id int) (bool, error)

	Create(context context.Context, review *Review) error
	Update(context context.Context, review *Review) error
	Delete(context context.Context, id int) error

	// DeleteMany removes every review in ids or none of them. When some ids
	// match no row it fails with NOT_FOUND naming them.
	DeleteMany(context context.Context, ids []int) error
}
