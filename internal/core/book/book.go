// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "github.com/taibuivan/folio/pkg/date"

// Path is the public mount point of the book resource.
const Path = "/api/book"

// Field names used in validation errors.
const (
	FieldISBN        = "isbn"
	FieldTitle       = "title"
	FieldPublishedAt = "publishedAt"
	FieldAuthorIDs   = "authorIds"
	FieldCategoryIDs = "categoryIds"
)

// Length bounds, in characters, applied after canonicalisation.
const (
	MinISBNLength  = 5
	MaxISBNLength  = 10
	MaxTitleLength = 32
)

// Book is a published title.
type Book struct {
	ID          int       `json:"id"`
	ISBN        string    `json:"isbn"`
	Title       string    `json:"title"`
	PublishedAt date.Date `json:"publishedAt"`
}

// Key implements [crud.Entity].
//
// [crud.Entity]: github.com/taibuivan/folio/internal/platform/crud.Entity
func (b *Book) Key() int { return b.ID }

// Input is the write payload of POST and PUT. The author and category lists
// replace the book's links wholesale.
type Input struct {
	ID          int       `json:"id"`
	ISBN        string    `json:"isbn"`
	Title       string    `json:"title"`
	PublishedAt date.Date `json:"publishedAt" validate:"-"`
	AuthorIDs   []int     `json:"authorIds"   validate:"required,min=1,dive,gt=0,lte=2147483647"`
	CategoryIDs []int     `json:"categoryIds" validate:"required,min=1,dive,gt=0,lte=2147483647"`
}

// AuthorSummary is an author credited on a book.
type AuthorSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CategorySummary is a category a book is filed under.
type CategorySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReviewSummary is a review of a book, signed with the reviewer's full name.
type ReviewSummary struct {
	ID         int    `json:"id"`
	Headline   string `json:"headline"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
	ReviewerID int    `json:"reviewerId"`
	Reviewer   string `json:"reviewer"`
}

// WithAuthors is a book together with its authors.
type WithAuthors struct {
	ID      int             `json:"id"`
	ISBN    string          `json:"isbn"`
	Title   string          `json:"title"`
	Authors []AuthorSummary `json:"authors"`
}

// WithCategories is a book together with its categories.
type WithCategories struct {
	ID         int               `json:"id"`
	ISBN       string            `json:"isbn"`
	Title      string            `json:"title"`
	Categories []CategorySummary `json:"categories"`
}

// WithReviews is a book together with its reviews.
type WithReviews struct {
	ID      int             `json:"id"`
	ISBN    string          `json:"isbn"`
	Title   string          `json:"title"`
	Reviews []ReviewSummary `json:"reviews"`
}

// Rating is the mean review rating of a book; 0 when it has no reviews.
type Rating struct {
	BookID int     `json:"bookId"`
	Rating float64 `json:"rating"`
}
