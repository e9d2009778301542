// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reviewer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/pagination"
)

const entityName = "Reviewer"

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanReviewer(row pgx.Row) (*Reviewer, error) {
	r := &Reviewer{}
	err := row.Scan(&r.ID, &r.FirstName, &r.LastName)
	return r, err
}

func (repository *PostgresRepository) List(context context.Context, page pagination.Params) ([]*Reviewer, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogReviewer.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_reviewers")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2;
	`,
		schema.CatalogReviewer.ID,
		schema.CatalogReviewer.FirstName,
		schema.CatalogReviewer.LastName,
		schema.CatalogReviewer.Table,
		schema.CatalogReviewer.ID,
	)

	rows, err := repository.db.Query(context, query, page.SQLLimit(), page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviewers")
	}

	reviewers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Reviewer, error) {
		return scanReviewer(row)
	})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_reviewer")
	}

	return reviewers, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Reviewer, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogReviewer.ID, schema.CatalogReviewer.FirstName, schema.CatalogReviewer.LastName,
		schema.CatalogReviewer.Table, schema.CatalogReviewer.ID,
	)

	r, err := scanReviewer(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_reviewer")
	}

	return r, nil
}

func (repository *PostgresRepository) FindByReview(context context.Context, reviewID int) (*Reviewer, error) {
	query := fmt.Sprintf(`
		SELECT rv.%s, rv.%s, rv.%s
		FROM %s rv
		JOIN %s r ON r.%s = rv.%s
		WHERE r.%s = $1;
	`,
		schema.CatalogReviewer.ID, schema.CatalogReviewer.FirstName, schema.CatalogReviewer.LastName,
		schema.CatalogReviewer.Table,
		schema.CatalogReview.Table, schema.CatalogReview.ReviewerID, schema.CatalogReviewer.ID,
		schema.CatalogReview.ID,
	)

	r, err := scanReviewer(repository.db.QueryRow(context, query, reviewID))
	if err != nil {
		return nil, dberr.WrapEntity(err, "Review", "get_review_reviewer")
	}

	return r, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, firstName, lastName string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE lower(%s) = lower($1) AND lower(%s) = lower($2) AND %s <> $3
		)
	`,
		schema.CatalogReviewer.Table,
		schema.CatalogReviewer.FirstName,
		schema.CatalogReviewer.LastName,
		schema.CatalogReviewer.ID,
	)

	var taken bool
	err := repository.db.QueryRow(context, query, firstName, lastName, excludeID).Scan(&taken)
	return taken, dberr.Wrap(err, "check_reviewer_name")
}

func (repository *PostgresRepository) Create(context context.Context, reviewer *Reviewer) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.CatalogReviewer.Table,
		schema.CatalogReviewer.FirstName, schema.CatalogReviewer.LastName,
		schema.CatalogReviewer.ID,
	)

	err := repository.db.QueryRow(context, query, reviewer.FirstName, reviewer.LastName).Scan(&reviewer.ID)
	return dberr.Wrap(err, "create_reviewer")
}

func (repository *PostgresRepository) Update(context context.Context, reviewer *Reviewer) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		schema.CatalogReviewer.Table,
		schema.CatalogReviewer.FirstName, schema.CatalogReviewer.LastName,
		schema.CatalogReviewer.ID,
	)

	tag, err := repository.db.Exec(context, query, reviewer.FirstName, reviewer.LastName, reviewer.ID)
	if err != nil {
		return dberr.Wrap(err, "update_reviewer")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogReviewer.Table, schema.CatalogReviewer.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_reviewer")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) ListReviews(context context.Context, reviewerID int) ([]ReviewSummary, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.CatalogReview.ID, schema.CatalogReview.Headline, schema.CatalogReview.ReviewText,
		schema.CatalogReview.Rating, schema.CatalogReview.BookID,
		schema.CatalogReview.Table,
		schema.CatalogReview.ReviewerID,
		schema.CatalogReview.ID,
	)

	rows, err := repository.db.Query(context, query, reviewerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviewer_reviews")
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ReviewSummary, error) {
		var r ReviewSummary
		err := row.Scan(&r.ID, &r.Headline, &r.ReviewText, &r.Rating, &r.BookID)
		return r, err
	})
	return reviews, dberr.Wrap(err, "scan_reviewer_review")
}
