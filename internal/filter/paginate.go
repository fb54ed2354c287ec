package filter

// PageWindow is one page of results plus the metadata the pagination controls
// need. TotalCount is the pre-slice size of the result set.
type PageWindow[T any] struct {
	Items      []T `json:"items"`
	PageIndex  int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// DefaultPageSize matches the listing grids, which render results in rows of
// three.
const DefaultPageSize = 9

// Paginate slices items into a 1-based page window. A page index past the end
// clamps to the last page, so a non-empty result set never yields an empty
// window; it never returns an error.
func Paginate[T any](items []T, pageIndex, pageSize int) PageWindow[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageIndex > totalPages {
		pageIndex = totalPages
	}

	start := (pageIndex - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageWindow[T]{
		Items:      items[start:end],
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}
}

// Window builds a page window around an externally paginated result: the
// backend already returned exactly one page of items together with the total
// match count. The index is still clamped against that total.
func Window[T any](items []T, pageIndex, pageSize, totalCount int) PageWindow[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if totalCount < len(items) {
		totalCount = len(items)
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageIndex > totalPages {
		pageIndex = totalPages
	}

	if len(items) > pageSize {
		items = items[:pageSize]
	}

	return PageWindow[T]{
		Items:      items,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
