// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

// Path is the public mount point of the country resource.
const Path = "/api/country"

// Field names used in validation errors.
const (
	FieldID   = "id"
	FieldName = "name"
)

// MaxNameLength bounds a country name in characters.
const MaxNameLength = 32

// Country is a nation an author can be attributed to.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Key implements [crud.Entity].
//
// [crud.Entity]: github.com/taibuivan/folio/internal/platform/crud.Entity
func (c *Country) Key() int { return c.ID }

// Input is the write payload of POST and PUT. ID is optional and, when set
// on PUT, must equal the path id.
type Input struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,max=32"`
}

// AuthorSummary is an author as listed under its country.
type AuthorSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// WithAuthors is a country together with the authors attributed to it.
type WithAuthors struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Authors []AuthorSummary `json:"authors"`
}
