// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// constraintMessages maps named constraints to client-safe conflict messages.
// Unknown constraints fall back to a generic message.
var constraintMessages = map[string]string{
	"uq_country_name":       "A country with this name already exists",
	"uq_author_fullname":    "An author with this first and last name already exists",
	"uq_book_isbn":          "A book with this ISBN already exists",
	"uq_book_title":         "A book with this title already exists",
	"uq_category_name":      "A category with this name already exists",
	"uq_reviewer_fullname":  "A reviewer with this first and last name already exists",
	"author_countryid_fkey": "Country is still referenced by authors",
	"bookauthor_pkey":       "Author is already linked to this book",
	"bookcategory_pkey":     "Category is already linked to this book",
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	return classify(err, ErrNotFound, action)
}

// WrapEntity behaves like [Wrap] but names the entity in not-found responses
// (e.g. "Book not found").
func WrapEntity(err error, entity, action string) error {
	return classify(err, apperr.NotFound(entity), action)
}

func classify(err error, notFound *apperr.AppError, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack.
	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	// 2. Constraint violations reported by Postgres
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			conflict := apperr.Conflict(constraintMessage(pgErr.ConstraintName, "Record already exists"))
			conflict.Cause = err
			return conflict
		case pgerrcode.ForeignKeyViolation:
			// The referencing side reports "insert or update on table ...".
			if strings.HasPrefix(pgErr.Message, "insert or update") {
				invalid := apperr.ValidationError("Referenced record does not exist")
				invalid.Cause = err
				return invalid
			}
			conflict := apperr.Conflict(constraintMessage(pgErr.ConstraintName, "Record is still referenced by another record"))
			conflict.Cause = err
			return conflict
		case pgerrcode.CheckViolation:
			invalid := apperr.ValidationError("Value violates a data constraint")
			invalid.Cause = err
			return invalid
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// RequireAffected returns a not-found error naming entity when an UPDATE or
// DELETE matched no rows.
func RequireAffected(tag pgconn.CommandTag, entity string) error {
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(entity)
	}
	return nil
}

func constraintMessage(constraint, fallback string) string {
	if msg, ok := constraintMessages[constraint]; ok {
		return msg
	}
	return fallback
}
