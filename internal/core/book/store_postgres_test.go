// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/book"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/postgres/pgtest"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
)

/*
TestPostgresRepository_Writes verifies the transactional create and update paths.
*/
func TestPostgresRepository_Writes(t *testing.T) {
	ctx := context.Background()
	repo := book.NewPostgresRepository(pgtest.Open(t))

	misery := &book.Book{ISBN: "045152493X", Title: "Misery", PublishedAt: date.New(1987, time.June, 8)}
	require.NoError(t, repo.Create(ctx, misery, []int{1}, []int{1, 5}))
	assert.Equal(t, 6, misery.ID)

	categories, err := repo.ListCategories(ctx, misery.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	// A dangling author aborts the whole transaction.
	orphan := &book.Book{ISBN: "0451524934", Title: "1984", PublishedAt: date.New(1949, time.June, 8)}
	err = repo.Create(ctx, orphan, []int{99}, []int{1})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = repo.FindByISBN(ctx, "0451524934")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	misery.Title = "Misery (Reissue)"
	require.NoError(t, repo.Update(ctx, misery, []int{1, 2}, []int{5}))

	authors, err := repo.ListAuthors(ctx, misery.ID)
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	categories, err = repo.ListCategories(ctx, misery.ID)
	require.NoError(t, err)
	assert.Equal(t, []book.CategorySummary{{ID: 5, Name: "Mystery"}}, categories)

	err = repo.Create(ctx, &book.Book{ISBN: "045152493x", Title: "Other", PublishedAt: misery.PublishedAt}, []int{1}, []int{1})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestPostgresRepository_Reads verifies lookups, relations and the rating aggregate.
*/
func TestPostgresRepository_Reads(t *testing.T) {
	ctx := context.Background()
	repo := book.NewPostgresRepository(pgtest.Open(t))

	books, total, err := repo.List(ctx, pagination.All)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, "1986-09-15", books[0].PublishedAt.String())

	missing, err := repo.MissingAuthors(ctx, []int{1, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7}, missing)

	reviews, err := repo.ListReviews(ctx, 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "James Wood", reviews[0].Reviewer)

	rating, err := repo.AverageRating(ctx, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rating, 1e-9)

	require.NoError(t, repo.Delete(ctx, 4))
	rating, err = repo.AverageRating(ctx, 4)
	require.NoError(t, err)
	assert.Zero(t, rating, "reviews cascade with their book")
}
