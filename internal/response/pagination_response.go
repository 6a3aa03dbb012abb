package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination derives the page window for a list of totalItems entries.
// Page is 1-based; From and To are zero when the page is past the end.
func NewPagination(page, pageSize int, totalItems int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	totalPages := (totalItems + int64(pageSize) - 1) / int64(pageSize)

	from := (page-1)*pageSize + 1
	to := page * pageSize
	if int64(to) > totalItems {
		to = int(totalItems)
	}
	if int64(from) > totalItems {
		from, to = 0, 0
	}

	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
