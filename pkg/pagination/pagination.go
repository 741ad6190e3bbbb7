package pagination

// DefaultPageSize matches the listing views' page length.
const DefaultPageSize = 10

// Params describes the requested page. Page numbers are 1-based.
type Params struct {
	Page    int
	PerPage int
}

// NewParams clamps out-of-range values: pages below 1 become page 1,
// non-positive sizes fall back to DefaultPageSize.
func NewParams(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	return Params{Page: page, PerPage: perPage}
}

func (p Params) Limit() int {
	return p.PerPage
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Metadata is the page envelope returned alongside every list response.
type Metadata struct {
	TotalCount  int  `json:"total_count"`
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

func NewMetadata(total int, p Params) Metadata {
	totalPages := (total + p.PerPage - 1) / p.PerPage
	return Metadata{
		TotalCount:  total,
		Page:        p.Page,
		PerPage:     p.PerPage,
		TotalPages:  totalPages,
		HasNext:     p.Page < totalPages,
		HasPrevious: p.Page > 1 && total > 0,
	}
}
