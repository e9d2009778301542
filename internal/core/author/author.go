// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "github.com/taibuivan/folio/pkg/date"

// Path is the public mount point of the author resource.
const Path = "/api/author"

// Field names used in validation errors.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldCountryID = "countryId"
)

// MaxNameLength bounds each name part in characters.
const MaxNameLength = 32

// Author is a person credited on books.
type Author struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CountryID int    `json:"countryId"`
}

// Key implements [crud.Entity].
//
// [crud.Entity]: github.com/taibuivan/folio/internal/platform/crud.Entity
func (a *Author) Key() int { return a.ID }

// Input is the write payload of POST and PUT.
type Input struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required,max=32"`
	LastName  string `json:"lastName"  validate:"required,max=32"`
	CountryID int    `json:"countryId" validate:"gt=0,lte=2147483647"`
}

// BookSummary is a book as listed under one of its authors.
type BookSummary struct {
	ID          int       `json:"id"`
	ISBN        string    `json:"isbn"`
	Title       string    `json:"title"`
	PublishedAt date.Date `json:"publishedAt"`
}

// CountrySummary is the country an author is attributed to.
type CountrySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WithBooks is an author together with the books they are credited on.
type WithBooks struct {
	ID        int           `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Books     []BookSummary `json:"books"`
}

// WithCountry is an author together with their country.
type WithCountry struct {
	ID        int            `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Country   CountrySummary `json:"country"`
}
