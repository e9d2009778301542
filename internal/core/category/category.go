// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "github.com/taibuivan/folio/pkg/date"

// Path is the public mount point of the category resource.
const Path = "/api/category"

// FieldName is the validated field of [Input].
const FieldName = "name"

// MaxNameLength bounds a category name in characters.
const MaxNameLength = 32

// Category is a genre books are filed under.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Key implements [crud.Entity].
//
// [crud.Entity]: github.com/taibuivan/folio/internal/platform/crud.Entity
func (c *Category) Key() int { return c.ID }

// Input is the write payload of POST and PUT.
type Input struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,max=32"`
}

// BookSummary is a book as listed under its category.
type BookSummary struct {
	ID          int       `json:"id"`
	ISBN        string    `json:"isbn"`
	Title       string    `json:"title"`
	PublishedAt date.Date `json:"publishedAt"`
}

// WithBooks is a category together with the books filed under it.
type WithBooks struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Books []BookSummary `json:"books"`
}
