// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/postgres"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/slice"
)

const entityName = "Review"

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var reviewColumns = strings.Join(schema.CatalogReview.Columns(), ", ")

func scanReview(row pgx.Row) (*Review, error) {
	r := &Review{}
	err := row.Scan(&r.ID, &r.Headline, &r.ReviewText, &r.Rating, &r.BookID, &r.ReviewerID)
	return r, err
}

// # Reads

func (repository *PostgresRepository) List(context context.Context, page pagination.Params) ([]*Review, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogReview.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_reviews")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2;
	`, reviewColumns, schema.CatalogReview.Table, schema.CatalogReview.ID)

	rows, err := repository.pool.Query(context, query, page.SQLLimit(), page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviews")
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Review, error) {
		return scanReview(row)
	})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_review")
	}

	return reviews, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		reviewColumns, schema.CatalogReview.Table, schema.CatalogReview.ID,
	)

	r, err := scanReview(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_review")
	}

	return r, nil
}

func (repository *PostgresRepository) FindBook(context context.Context, reviewID int) (*BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s, b.%s
		FROM %s b
		JOIN %s r ON r.%s = b.%s
		WHERE r.%s = $1;
	`,
		schema.CatalogBook.ID, schema.CatalogBook.ISBN, schema.CatalogBook.Title, schema.CatalogBook.PublishedAt,
		schema.CatalogBook.Table,
		schema.CatalogReview.Table, schema.CatalogReview.BookID, schema.CatalogBook.ID,
		schema.CatalogReview.ID,
	)

	var (
		book        BookSummary
		publishedAt time.Time
	)
	err := repository.pool.QueryRow(context, query, reviewID).Scan(&book.ID, &book.ISBN, &book.Title, &publishedAt)
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_review_book")
	}

	book.PublishedAt = date.Of(publishedAt)
	return &book, nil
}

func (repository *PostgresRepository) BookExists(context context.Context, id int) (bool, error) {
	return repository.exists(context, schema.CatalogBook.Table, schema.CatalogBook.ID, id)
}

func (repository *PostgresRepository) ReviewerExists(context context.Context, id int) (bool, error) {
	return repository.exists(context, schema.CatalogReviewer.Table, schema.CatalogReviewer.ID, id)
}

func (repository *PostgresRepository) exists(context context.Context, table, idColumn string, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, idColumn)

	var found bool
	err := repository.pool.QueryRow(context, query, id).Scan(&found)
	return found, dberr.Wrap(err, "check_"+table)
}

// # Writes

func (repository *PostgresRepository) Create(context context.Context, review *Review) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5) RETURNING %s`,
		schema.CatalogReview.Table,
		schema.CatalogReview.Headline, schema.CatalogReview.ReviewText, schema.CatalogReview.Rating,
		schema.CatalogReview.BookID, schema.CatalogReview.ReviewerID,
		schema.CatalogReview.ID,
	)

	err := repository.pool.QueryRow(context, query,
		review.Headline, review.ReviewText, review.Rating, review.BookID, review.ReviewerID,
	).Scan(&review.ID)
	return dberr.Wrap(err, "create_review")
}

func (repository *PostgresRepository) Update(context context.Context, review *Review) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $6`,
		schema.CatalogReview.Table,
		schema.CatalogReview.Headline, schema.CatalogReview.ReviewText, schema.CatalogReview.Rating,
		schema.CatalogReview.BookID, schema.CatalogReview.ReviewerID,
		schema.CatalogReview.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		review.Headline, review.ReviewText, review.Rating, review.BookID, review.ReviewerID, review.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_review")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogReview.Table, schema.CatalogReview.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) DeleteMany(context context.Context, ids []int) error {
	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		// Lock the matched rows so the existence check holds until commit.
		lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1) FOR UPDATE`,
			schema.CatalogReview.ID, schema.CatalogReview.Table, schema.CatalogReview.ID,
		)

		rows, err := tx.Query(context, lockQuery, ids)
		if err != nil {
			return dberr.Wrap(err, "lock_reviews")
		}

		found, err := pgx.CollectRows(rows, pgx.RowTo[int])
		if err != nil {
			return dberr.Wrap(err, "scan_review_ids")
		}

		if missing := slice.Missing(ids, found); len(missing) > 0 {
			return MissingError(missing)
		}

		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1)`,
			schema.CatalogReview.Table, schema.CatalogReview.ID,
		)
		if _, err := tx.Exec(context, deleteQuery, ids); err != nil {
			return dberr.Wrap(err, "delete_reviews")
		}

		return nil
	})
}
