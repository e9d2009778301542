// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reviewer

import (
	"context"

	"github.com/taibuivan/folio/pkg/pagination"
)

// Repository defines the data access contract for reviewers.
type Repository interface {
	List(context context.Context, page pagination.Params) ([]*Reviewer, int, error)
	FindByID(context context.Context, id int) (*Reviewer, error)

	// FindByReview returns the reviewer who wrote reviewID.
	FindByReview(context context.Context, reviewID int) (*Reviewer, error)
	NameTaken(context context.Context, firstName, lastName string, excludeID int) (bool, error)

	Create(context context.Context, reviewer *Reviewer) error
	Update(context context.Context, reviewer *Reviewer) error
	Delete(context context.Context, id int) error

	ListReviews(context context.Context, reviewerID int) ([]ReviewSummary, error)
}
