package data

// Pagination describes one page of a larger result set.
type Pagination struct {
	Total      int64
	TotalPages int64
	Page       int
	PerPage    int
	HasNext    bool
	HasPrev    bool
}

// ListParams selects one page of a listing. CategoryID and Search are
// mutually exclusive filters: when CategoryID is set, Search is ignored.
type ListParams struct {
	Page       int
	PerPage    int
	CategoryID *int64
	Search     string
}

// Paginate computes page metadata for a total row count. Page and perPage
// are clamped to sane values; an out-of-range page yields valid metadata
// and the caller gets an empty row slice, never an error.
func Paginate(total int64, page, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	totalPages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		totalPages++
	}

	return Pagination{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// PageBounds returns the LIMIT and OFFSET for a clamped page request.
func PageBounds(page, perPage int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	return perPage, (page - 1) * perPage
}
