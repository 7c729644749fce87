package store

// PageQuery carries caller-supplied pagination for list queries. Page is
// 1-based. Filter, when non-empty, restricts results to names containing the
// string (resource queries only).
type PageQuery struct {
	Page   int
	Size   int
	Filter string
}

// Offset returns the row offset for the query.
func (q PageQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Size
}

// Page is one page of results plus the total row count across all pages.
type Page[T any] struct {
	Items      []T
	TotalCount int64
}
