// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reviewer

// Path is the public mount point of the reviewer resource.
const Path = "/api/reviewer"

// Field names used in validation errors.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
)

// Reviewer is a critic who writes reviews.
type Reviewer struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Key implements [crud.Entity].
//
// [crud.Entity]: github.com/taibuivan/folio/internal/platform/crud.Entity
func (r *Reviewer) Key() int { return r.ID }

// Input is the write payload of POST and PUT.
type Input struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required,max=32"`
	LastName  string `json:"lastName"  validate:"required,max=32"`
}

// ReviewSummary is a review as listed under its reviewer.
type ReviewSummary struct {
	ID         int    `json:"id"`
	Headline   string `json:"headline"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
	BookID     int    `json:"bookId"`
}

// WithReviews is a reviewer together with the reviews they wrote.
type WithReviews struct {
	ID        int             `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Reviews   []ReviewSummary `json:"reviews"`
}

// OfReview is the author of one review.
type OfReview struct {
	ReviewID int      `json:"reviewId"`
	Reviewer Reviewer `json:"reviewer"`
}
