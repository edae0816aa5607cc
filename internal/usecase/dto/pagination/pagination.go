package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Pagination struct {
	CurrentPage  int32
	TotalPages   int32
	TotalItems   int32
	ItemsPerPage int32
}

// Normalize clamps page and limit to the supported range.
func Normalize(page, limit int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func New(page, limit int32, total int64) Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   int32(totalPages),
		TotalItems:   int32(total),
		ItemsPerPage: limit,
	}
}
