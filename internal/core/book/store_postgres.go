// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
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

const entityName = "Book"

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var bookColumns = fmt.Sprintf("%s, %s, %s, %s",
	schema.CatalogBook.ID,
	schema.CatalogBook.ISBN,
	schema.CatalogBook.Title,
	schema.CatalogBook.PublishedAt,
)

// scanBook reads one row selected with bookColumns.
func scanBook(row pgx.Row) (*Book, error) {
	var publishedAt time.Time
	b := &Book{}
	if err := row.Scan(&b.ID, &b.ISBN, &b.Title, &publishedAt); err != nil {
		return nil, err
	}
	b.PublishedAt = date.Of(publishedAt)
	return b, nil
}

// # Reads

func (repository *PostgresRepository) List(context context.Context, page pagination.Params) ([]*Book, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogBook.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_books")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2;
	`, bookColumns, schema.CatalogBook.Table, schema.CatalogBook.ID)

	rows, err := repository.pool.Query(context, query, page.SQLLimit(), page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := make([]*Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, total, dberr.Wrap(rows.Err(), "iterate_books")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookColumns, schema.CatalogBook.Table, schema.CatalogBook.ID,
	)

	b, err := scanBook(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_book")
	}

	return b, nil
}

func (repository *PostgresRepository) FindByISBN(context context.Context, isbn string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE upper(%s) = upper($1)`,
		bookColumns, schema.CatalogBook.Table, schema.CatalogBook.ISBN,
	)

	b, err := scanBook(repository.pool.QueryRow(context, query, isbn))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_book_by_isbn")
	}

	return b, nil
}

func (repository *PostgresRepository) ISBNTaken(context context.Context, isbn string, excludeID int) (bool, error) {
	return repository.taken(context, schema.CatalogBook.ISBN, "upper", isbn, excludeID)
}

func (repository *PostgresRepository) TitleTaken(context context.Context, title string, excludeID int) (bool, error) {
	return repository.taken(context, schema.CatalogBook.Title, "lower", title, excludeID)
}

// taken mirrors the functional unique indexes: fold is the SQL function
// applied to both sides of the comparison.
func (repository *PostgresRepository) taken(context context.Context, column, fold, value string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s(%s) = %s($1) AND %s <> $2)`,
		schema.CatalogBook.Table, fold, column, fold, schema.CatalogBook.ID,
	)

	var taken bool
	err := repository.pool.QueryRow(context, query, value, excludeID).Scan(&taken)
	return taken, dberr.Wrap(err, "check_book_"+column)
}

func (repository *PostgresRepository) MissingAuthors(context context.Context, ids []int) ([]int, error) {
	return repository.missing(context, schema.CatalogAuthor.Table, schema.CatalogAuthor.ID, ids)
}

func (repository *PostgresRepository) MissingCategories(context context.Context, ids []int) ([]int, error) {
	return repository.missing(context, schema.CatalogCategory.Table, schema.CatalogCategory.ID, ids)
}

func (repository *PostgresRepository) missing(context context.Context, table, idColumn string, ids []int) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`, idColumn, table, idColumn)

	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "check_"+table)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_"+table)
	}

	return slice.Missing(ids, found), nil
}

// # Writes

func (repository *PostgresRepository) Create(context context.Context, book *Book, authorIDs, categoryIDs []int) error {
	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
			schema.CatalogBook.Table,
			schema.CatalogBook.ISBN, schema.CatalogBook.Title, schema.CatalogBook.PublishedAt,
			schema.CatalogBook.ID,
		)

		err := tx.QueryRow(context, query, book.ISBN, book.Title, book.PublishedAt.Time).Scan(&book.ID)
		if err != nil {
			return dberr.Wrap(err, "create_book")
		}

		return linkAll(context, tx, book.ID, authorIDs, categoryIDs)
	})
}

func (repository *PostgresRepository) Update(context context.Context, book *Book, authorIDs, categoryIDs []int) error {
	return postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4`,
			schema.CatalogBook.Table,
			schema.CatalogBook.ISBN, schema.CatalogBook.Title, schema.CatalogBook.PublishedAt,
			schema.CatalogBook.ID,
		)

		tag, err := tx.Exec(context, query, book.ISBN, book.Title, book.PublishedAt.Time, book.ID)
		if err != nil {
			return dberr.Wrap(err, "update_book")
		}
		if err := dberr.RequireAffected(tag, entityName); err != nil {
			return err
		}

		// Links are replaced wholesale.
		for _, unlink := range []struct{ table, column string }{
			{schema.BookAuthor.Table, schema.BookAuthor.BookID},
			{schema.BookCategory.Table, schema.BookCategory.BookID},
		} {
			deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, unlink.table, unlink.column)
			if _, err := tx.Exec(context, deleteQuery, book.ID); err != nil {
				return dberr.Wrap(err, "unlink_book")
			}
		}

		return linkAll(context, tx, book.ID, authorIDs, categoryIDs)
	})
}

// linkAll inserts the BookAuthor and BookCategory rows of a book.
func linkAll(context context.Context, querier postgres.Querier, bookID int, authorIDs, categoryIDs []int) error {
	authorQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) SELECT $1, unnest($2::int[])`,
		schema.BookAuthor.Table, schema.BookAuthor.BookID, schema.BookAuthor.AuthorID,
	)
	if _, err := querier.Exec(context, authorQuery, bookID, authorIDs); err != nil {
		return dberr.Wrap(err, "link_book_authors")
	}

	categoryQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) SELECT $1, unnest($2::int[])`,
		schema.BookCategory.Table, schema.BookCategory.BookID, schema.BookCategory.CategoryID,
	)
	if _, err := querier.Exec(context, categoryQuery, bookID, categoryIDs); err != nil {
		return dberr.Wrap(err, "link_book_categories")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogBook.Table, schema.CatalogBook.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	return dberr.RequireAffected(tag, entityName)
}

// # Relations

func (repository *PostgresRepository) ListAuthors(context context.Context, bookID int) ([]AuthorSummary, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s ba ON ba.%s = a.%s
		WHERE ba.%s = $1
		ORDER BY a.%s ASC;
	`,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.Table,
		schema.BookAuthor.Table, schema.BookAuthor.AuthorID, schema.CatalogAuthor.ID,
		schema.BookAuthor.BookID,
		schema.CatalogAuthor.ID,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_authors")
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (AuthorSummary, error) {
		var a AuthorSummary
		err := row.Scan(&a.ID, &a.FirstName, &a.LastName)
		return a, err
	})
	return authors, dberr.Wrap(err, "scan_book_author")
}

func (repository *PostgresRepository) ListCategories(context context.Context, bookID int) ([]CategorySummary, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s
		FROM %s c
		JOIN %s bc ON bc.%s = c.%s
		WHERE bc.%s = $1
		ORDER BY c.%s ASC;
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name,
		schema.CatalogCategory.Table,
		schema.BookCategory.Table, schema.BookCategory.CategoryID, schema.CatalogCategory.ID,
		schema.BookCategory.BookID,
		schema.CatalogCategory.ID,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_categories")
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (CategorySummary, error) {
		var c CategorySummary
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
	return categories, dberr.Wrap(err, "scan_book_category")
}

func (repository *PostgresRepository) ListReviews(context context.Context, bookID int) ([]ReviewSummary, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, r.%s, r.%s, rv.%s || ' ' || rv.%s
		FROM %s r
		JOIN %s rv ON rv.%s = r.%s
		WHERE r.%s = $1
		ORDER BY r.%s ASC;
	`,
		schema.CatalogReview.ID, schema.CatalogReview.Headline, schema.CatalogReview.ReviewText,
		schema.CatalogReview.Rating, schema.CatalogReview.ReviewerID,
		schema.CatalogReviewer.FirstName, schema.CatalogReviewer.LastName,
		schema.CatalogReview.Table,
		schema.CatalogReviewer.Table, schema.CatalogReviewer.ID, schema.CatalogReview.ReviewerID,
		schema.CatalogReview.BookID,
		schema.CatalogReview.ID,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_reviews")
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ReviewSummary, error) {
		var r ReviewSummary
		err := row.Scan(&r.ID, &r.Headline, &r.ReviewText, &r.Rating, &r.ReviewerID, &r.Reviewer)
		return r, err
	})
	return reviews, dberr.Wrap(err, "scan_book_review")
}

func (repository *PostgresRepository) AverageRating(context context.Context, bookID int) (float64, error) {
	query := fmt.Sprintf(`SELECT COALESCE(AVG(%s), 0)::float8 FROM %s WHERE %s = $1`,
		schema.CatalogReview.Rating, schema.CatalogReview.Table, schema.CatalogReview.BookID,
	)

	var rating float64
	err := repository.pool.QueryRow(context, query, bookID).Scan(&rating)
	return rating, dberr.Wrap(err, "average_book_rating")
}
