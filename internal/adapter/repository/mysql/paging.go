package mysql

const (
	defaultLimit = 20
	maxLimit     = 100
)

func pageLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func pageOffset(page, limit int) int {
	if page <= 1 {
		return 0
	}
	return (page - 1) * pageLimit(limit)
}
