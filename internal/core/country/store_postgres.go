// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/pagination"
)

const entityName = "Country"

// PostgresRepository implements [Repository] on the catalog schema.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, page pagination.Params) ([]*Country, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogCountry.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_countries")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2;
	`,
		schema.CatalogCountry.ID,
		schema.CatalogCountry.Name,
		schema.CatalogCountry.Table,
		schema.CatalogCountry.ID,
	)

	rows, err := repository.db.Query(context, query, page.SQLLimit(), page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_countries")
	}
	defer rows.Close()

	countries := make([]*Country, 0)
	for rows.Next() {
		c := &Country{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_country")
		}
		countries = append(countries, c)
	}

	return countries, total, dberr.Wrap(rows.Err(), "iterate_countries")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Country, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogCountry.ID, schema.CatalogCountry.Name,
		schema.CatalogCountry.Table, schema.CatalogCountry.ID,
	)

	c := &Country{}
	if err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name); err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_country")
	}

	return c, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, name string, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE lower(%s) = lower($1) AND %s <> $2)`,
		schema.CatalogCountry.Table, schema.CatalogCountry.Name, schema.CatalogCountry.ID,
	)

	var taken bool
	err := repository.db.QueryRow(context, query, name, excludeID).Scan(&taken)
	return taken, dberr.Wrap(err, "check_country_name")
}

func (repository *PostgresRepository) Create(context context.Context, country *Country) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.CatalogCountry.Table, schema.CatalogCountry.Name, schema.CatalogCountry.ID,
	)

	err := repository.db.QueryRow(context, query, country.Name).Scan(&country.ID)
	return dberr.Wrap(err, "create_country")
}

func (repository *PostgresRepository) Update(context context.Context, country *Country) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.CatalogCountry.Table, schema.CatalogCountry.Name, schema.CatalogCountry.ID,
	)

	tag, err := repository.db.Exec(context, query, country.Name, country.ID)
	if err != nil {
		return dberr.Wrap(err, "update_country")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogCountry.Table, schema.CatalogCountry.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_country")
	}

	return dberr.RequireAffected(tag, entityName)
}

func (repository *PostgresRepository) ListAuthors(context context.Context, countryID int) ([]AuthorSummary, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.CatalogAuthor.ID,
		schema.CatalogAuthor.FirstName,
		schema.CatalogAuthor.LastName,
		schema.CatalogAuthor.Table,
		schema.CatalogAuthor.CountryID,
		schema.CatalogAuthor.ID,
	)

	rows, err := repository.db.Query(context, query, countryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_country_authors")
	}
	defer rows.Close()

	authors := make([]AuthorSummary, 0)
	for rows.Next() {
		var a AuthorSummary
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, dberr.Wrap(err, "scan_country_author")
		}
		authors = append(authors, a)
	}

	return authors, dberr.Wrap(rows.Err(), "iterate_country_authors")
}
