package storage

// ListPostsFilter narrows a posts listing. Zero values mean "no filter": an
// empty Category matches every category and an empty Search skips the
// substring test. Both set means both must match.
type ListPostsFilter struct {
	// Category is compared for exact, case-sensitive equality.
	Category string
	// Search is a case-insensitive substring matched against title or content.
	Search string
}

func (f ListPostsFilter) IsZero() bool {
	return f.Category == "" && f.Search == ""
}
