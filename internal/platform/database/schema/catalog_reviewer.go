package schema

// CatalogReviewerTable represents the 'catalog.reviewer' table
type CatalogReviewerTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
}

// CatalogReviewer is the schema definition for catalog.reviewer
var CatalogReviewer = CatalogReviewerTable{
	Table:     "catalog.reviewer",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
}

func (t CatalogReviewerTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName}
}
