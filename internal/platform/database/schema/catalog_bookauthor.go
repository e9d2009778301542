package schema

// BookAuthorTable represents the 'catalog.bookauthor' table
type BookAuthorTable struct {
	Table    string
	BookID   string
	AuthorID string
}

// BookAuthor is the schema definition for catalog.bookauthor
var BookAuthor = BookAuthorTable{
	Table:    "catalog.bookauthor",
	BookID:   "bookid",
	AuthorID: "authorid",
}
