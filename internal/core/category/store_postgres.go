// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/date"
	"github.com/taibuivan/folio/pkg/pagination"
)

const entityName = "Category"

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, page pagination.Params) ([]*Category, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogCategory.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_categories")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2;
	`,
		schema.CatalogCategory.ID,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.ID,
	)

	rows, err := repository.db.Query(context, query, page.SQLLimit(), page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_categories")
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Category, error) {
		c := &Category{}
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_category")
	}

	return categories, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID,
	)

	c := &Category{}
	if err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name); err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_category")
	}

	return c, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, name string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE lower(%s) = lower($1) AND %s <> $2)`,
		schema.CatalogCategory.Table, schema.CatalogCategory.Name, schema.CatalogCategory.ID,
	)

	var taken bool
	err := repository.db.QueryRow(context, query, name, excludeID).Scan(&taken)
	return taken, dberr.Wrap(err, "check_category_name")
}

func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.CatalogCategory.Table, schema.CatalogCategory.Name, schema.CatalogCategory.ID,
	)

	err := repository.db.QueryRow(context, query, category.Name).Scan(&category.ID)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) Update(context context.Context, category *Category) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.CatalogCategory.Table, schema.CatalogCategory.Name, schema.CatalogCategory.ID,
	)

	tag, err := repository.db.Exec(context, query, category.Name, category.ID)
	if err != nil {
		return dberr.Wrap(err, "update_category")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) ListBooks(context context.Context, categoryID int) ([]BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s, b.%s
		FROM %s b
		JOIN %s bc ON bc.%s = b.%s
		WHERE bc.%s = $1
		ORDER BY b.%s ASC;
	`,
		schema.CatalogBook.ID, schema.CatalogBook.ISBN, schema.CatalogBook.Title, schema.CatalogBook.PublishedAt,
		schema.CatalogBook.Table,
		schema.BookCategory.Table, schema.BookCategory.BookID, schema.CatalogBook.ID,
		schema.BookCategory.CategoryID,
		schema.CatalogBook.ID,
	)

	rows, err := repository.db.Query(context, query, categoryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_category_books")
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookSummary, error) {
		var b BookSummary
		var publishedAt time.Time
		err := row.Scan(&b.ID, &b.ISBN, &b.Title, &publishedAt)
		b.PublishedAt = date.Of(publishedAt)
		return b, err
	})
	return books, dberr.Wrap(err, "scan_category_book")
}
