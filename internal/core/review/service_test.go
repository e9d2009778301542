// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/review"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

func validInput() *review.Input {
	return &review.Input{
		Headline:   "Still Haunting",
		ReviewText: "Decades later the clown still lingers.",
		Rating:     4,
		BookID:     1,
		ReviewerID: 2,
	}
}

/*
TestService_Create_Rejections verifies field bounds and reference checks.
*/
func TestService_Create_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *review.Input)
		field  string
	}{
		{name: "short headline", mutate: func(in *review.Input) { in.Headline = "Too short" }, field: review.FieldHeadline},
		{name: "long headline", mutate: func(in *review.Input) { in.Headline = strings.Repeat("h", 101) }, field: review.FieldHeadline},
		{name: "short text", mutate: func(in *review.Input) { in.ReviewText = "   Meh.   " }, field: review.FieldReviewText},
		{name: "long text", mutate: func(in *review.Input) { in.ReviewText = strings.Repeat("t", 1001) }, field: review.FieldReviewText},
		{name: "rating zero", mutate: func(in *review.Input) { in.Rating = 0 }, field: review.FieldRating},
		{name: "rating six", mutate: func(in *review.Input) { in.Rating = 6 }, field: review.FieldRating},
		{name: "unknown book", mutate: func(in *review.Input) { in.BookID = 9 }, field: review.FieldBookID},
		{name: "oversized book", mutate: func(in *review.Input) { in.BookID = 2147483648 }, field: review.FieldBookID},
		{name: "unknown reviewer", mutate: func(in *review.Input) { in.ReviewerID = 9 }, field: review.FieldReviewerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			input := validInput()
			tt.mutate(input)

			_, err := newService(repo).Create(context.Background(), input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
			assert.Len(t, repo.rows, 3)
		})
	}
}

/*
TestService_Create verifies the stored review is canonicalised.
*/
func TestService_Create(t *testing.T) {
	input := validInput()
	input.Headline = "  Still   Haunting  "

	created, err := newService(newFakeRepository()).Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "Still Haunting", created.Headline)
}

/*
TestService_Update verifies id handling on full overwrite.
*/
func TestService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	service := newService(repo)

	input := validInput()
	input.ID = 2
	err := service.Update(ctx, 3, input)
	assert.True(t, apperr.HasCode(err, apperr.CodeBadRequest))
	assert.Equal(t, 3, repo.rows[3].Rating)

	err = service.Update(ctx, 42, validInput())
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	require.NoError(t, service.Update(ctx, 3, validInput()))
	assert.Equal(t, 4, repo.rows[3].Rating)
}

/*
TestService_DeleteMany verifies the all-or-nothing batch delete.
*/
func TestService_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id deletes nothing", func(t *testing.T) {
		repo := newFakeRepository()
		err := newService(repo).DeleteMany(ctx, []int{1, 7, 2})

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperr.CodeNotFound, appErr.Code)
		assert.Equal(t, "Reviews 7 not found", appErr.Message)
		assert.Len(t, repo.rows, 3)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		repo := newFakeRepository()
		require.NoError(t, newService(repo).DeleteMany(ctx, []int{1, 3, 1}))
		assert.Len(t, repo.rows, 1)
		assert.Contains(t, repo.rows, 2)
	})

	t.Run("empty and non-positive", func(t *testing.T) {
		service := newService(newFakeRepository())
		assert.True(t, apperr.HasCode(service.DeleteMany(ctx, nil), apperr.CodeValidation))
		assert.True(t, apperr.HasCode(service.DeleteMany(ctx, []int{0}), apperr.CodeValidation))
		assert.True(t, apperr.HasCode(service.DeleteMany(ctx, []int{1, 2147483648}), apperr.CodeValidation))
	})
}
