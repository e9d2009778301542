// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reviewer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/reviewer"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

/*
TestService_Create verifies the name-pair rules.
*/
func TestService_Create(t *testing.T) {
	ctx := context.Background()
	service := newService(newFakeRepository())

	created, err := service.Create(ctx, &reviewer.Input{FirstName: "Maureen", LastName: "Corrigan"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	// Same last name, different first name is allowed.
	_, err = service.Create(ctx, &reviewer.Input{FirstName: "Ray", LastName: "Charles"})
	assert.NoError(t, err)

	_, err = service.Create(ctx, &reviewer.Input{FirstName: "JAMES", LastName: "wood"})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	_, err = service.Create(ctx, &reviewer.Input{FirstName: "James"})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestService_OfReviewID verifies the reverse lookup from a review.
*/
func TestService_OfReviewID(t *testing.T) {
	ctx := context.Background()
	service := newService(newFakeRepository())

	result, err := service.OfReviewID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, reviewer.OfReview{
		ReviewID: 2,
		Reviewer: reviewer.Reviewer{ID: 2, FirstName: "Michiko", LastName: "Kakutani"},
	}, *result)

	_, err = service.OfReviewID(ctx, 99)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
