package util

// Page trims rows fetched with limit+1 down to limit, reporting whether an
// extra row existed beyond the page boundary.
func Page[T any](rows []T, limit int) (page []T, hasMore bool) {
	if limit > 0 && len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
