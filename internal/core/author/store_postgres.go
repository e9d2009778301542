// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
)

const entityName = "Author"

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, page pagination.Params) ([]*Author, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogAuthor.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_authors")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2;
	`,
		schema.CatalogAuthor.ID,
		schema.CatalogAuthor.FirstName,
		schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.CountryID,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.ID,
	)

	rows, err := repository.db.Query(context, query, page.SQLLimit(), page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := make([]*Author, 0)
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.CountryID); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, total, dberr.Wrap(rows.Err(), "iterate_authors")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogAuthor.ID, schema.CatalogAuthor.FirstName,
		schema.CatalogAuthor.LastName, schema.CatalogAuthor.CountryID,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID,
	)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.CountryID)
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_author")
	}

	return a, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, firstName, lastName string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE lower(%s) = lower($1) AND lower(%s) = lower($2) AND %s <> $3
		)
	`,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.FirstName,
		schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.ID,
	)

	var taken bool
	err := repository.db.QueryRow(context, query, firstName, lastName, excludeID).Scan(&taken)
	return taken, dberr.Wrap(err, "check_author_name")
}

func (repository *PostgresRepository) CountryExists(context context.Context, countryID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogCountry.Table, schema.CatalogCountry.ID,
	)

	var exists bool
	err := repository.db.QueryRow(context, query, countryID).Scan(&exists)
	return exists, dberr.Wrap(err, "check_author_country")
}

func (repository *PostgresRepository) Create(context context.Context, author *Author) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName, schema.CatalogAuthor.CountryID,
		schema.CatalogAuthor.ID,
	)

	err := repository.db.QueryRow(context, query, author.FirstName, author.LastName, author.CountryID).Scan(&author.ID)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) Update(context context.Context, author *Author) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4`,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.FirstName, schema.CatalogAuthor.LastName, schema.CatalogAuthor.CountryID,
		schema.CatalogAuthor.ID,
	)

	tag, err := repository.db.Exec(context, query, author.FirstName, author.LastName, author.CountryID, author.ID)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogAuthor.Table, schema.CatalogAuthor.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) ListBooks(context context.Context, authorID int) ([]BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s, b.%s
		FROM %s b
		JOIN %s ba ON ba.%s = b.%s
		WHERE ba.%s = $1
		ORDER BY b.%s ASC;
	`,
		schema.CatalogBook.ID, schema.CatalogBook.ISBN, schema.CatalogBook.Title, schema.CatalogBook.PublishedAt,
		schema.CatalogBook.Table,
		schema.BookAuthor.Table, schema.BookAuthor.BookID, schema.CatalogBook.ID,
		schema.BookAuthor.AuthorID,
		schema.CatalogBook.ID,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}
	defer rows.Close()

	books := make([]BookSummary, 0)
	for rows.Next() {
		var b BookSummary
		var publishedAt time.Time
		if err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &publishedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author_book")
		}
		b.PublishedAt = date.Of(publishedAt)
		books = append(books, b)
	}

	return books, dberr.Wrap(rows.Err(), "iterate_author_books")
}

func (repository *PostgresRepository) FindCountry(context context.Context, countryID int) (*CountrySummary, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogCountry.ID, schema.CatalogCountry.Name,
		schema.CatalogCountry.Table, schema.CatalogCountry.ID,
	)

	c := &CountrySummary{}
	if err := repository.db.QueryRow(context, query, countryID).Scan(&c.ID, &c.Name); err != nil {
		return nil, dberr.WrapEntity(err, "Country", "get_author_country")
	}

	return c, nil
}
