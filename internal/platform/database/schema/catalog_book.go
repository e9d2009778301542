package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table       string
	ID          string
	ISBN        string
	Title       string
	PublishedAt string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:       "catalog.book",
	ID:          "id",
	ISBN:        "isbn",
	Title:       "title",
	PublishedAt: "publishedat",
}

func (t CatalogBookTable) Columns() []string {
	return []string{t.ID, t.ISBN, t.Title, t.PublishedAt}
}
