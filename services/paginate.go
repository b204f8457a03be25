package services

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// clampPage normalizes pagination arguments: page is at least 1, pageSize is
// clamped into [1, maxPageSize] (0 selects the default).
func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// pageSlice returns the [ (page-1)*size, page*size ) window of items; an
// out-of-range page yields an empty slice, never an error.
func pageSlice[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
