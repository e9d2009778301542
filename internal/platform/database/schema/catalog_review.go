package schema

// CatalogReviewTable represents the 'catalog.review' table
type CatalogReviewTable struct {
	Table      string
	ID         string
	Headline   string
	ReviewText string
	Rating     string
	BookID     string
	ReviewerID string
}

// CatalogReview is the schema definition for catalog.review
var CatalogReview = CatalogReviewTable{
	Table:      "catalog.review",
	ID:         "id",
	Headline:   "headline",
	ReviewText: "reviewtext",
	Rating:     "rating",
	BookID:     "bookid",
	ReviewerID: "reviewerid",
}

func (t CatalogReviewTable) Columns() []string {
	return []string{t.ID, t.Headline, t.ReviewText, t.Rating, t.BookID, t.ReviewerID}
}
