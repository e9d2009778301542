// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"strconv"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/slice"
)

// Path is the public mount point of the review resource.
const Path = "/api/review"

// IDsParam is the query parameter carrying the ids of a bulk delete.
const IDsParam = "ids"

// Field names used in validation errors.
const (
	FieldHeadline   = "headline"
	FieldReviewText = "reviewText"
	FieldRating     = "rating"
	FieldBookID     = "bookId"
	FieldReviewerID = "reviewerId"
	FieldIDs        = "ids"
)

// Review is one reviewer's rated critique of one book.
type Review struct {
	ID         int    `json:"id"`
	Headline   string `json:"headline"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
	BookID     int    `json:"bookId"`
	ReviewerID int    `json:"reviewerId"`
}

// Key implements [crud.Entity].
//
// [crud.Entity]: github.com/taibuivan/folio/internal/platform/crud.Entity
func (r *Review) Key() int { return r.ID }

// Input is the write payload of POST and PUT.
type Input struct {
	ID         int    `json:"id"`
	Headline   string `json:"headline"   validate:"required,min=10,max=100"`
	ReviewText string `json:"reviewText" validate:"required,min=10,max=1000"`
	Rating     int    `json:"rating"     validate:"min=1,max=5"`
	BookID     int    `json:"bookId"     validate:"gt=0,lte=2147483647"`
	ReviewerID int    `json:"reviewerId" validate:"gt=0,lte=2147483647"`
}

// BookSummary is the book a review is about.
type BookSummary struct {
	ID          int       `json:"id"`
	ISBN        string    `json:"isbn"`
	Title       string    `json:"title"`
	PublishedAt date.Date `json:"publishedAt"`
}

// WithBook is a review id together with the reviewed book.
type WithBook struct {
	ReviewID int         `json:"reviewId"`
	Book     BookSummary `json:"book"`
}

// MissingError is the NOT_FOUND of a bulk delete naming the absent ids.
func MissingError(ids []int) *apperr.AppError {
	return apperr.NotFound("Reviews " + strings.Join(slice.Map(ids, strconv.Itoa), ", "))
}
