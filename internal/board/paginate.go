package board

// PageBounds returns the half-open slice [start, end) of page within total items
func PageBounds(page, pageSize, total int) (start, end int) {
	if page < 0 || pageSize < 1 {
		return 0, 0
	}
	start = page * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// HasMore reports whether items remain after page
func HasMore(page, pageSize, total int) bool {
	if page < 0 || pageSize < 1 {
		return false
	}
	return (page+1)*pageSize < total
}

// PageOf returns the items on page
func PageOf[T any](items []T, page, pageSize int) []T {
	start, end := PageBounds(page, pageSize, len(items))
	return items[start:end]
}
