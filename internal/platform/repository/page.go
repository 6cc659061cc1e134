package repository

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 500
)

// PageRequest describes one page of a filtered, ordered listing. Page
// numbers are 1-based; out-of-range values normalize to defaults instead of
// failing, so requests assembled straight from query strings stay valid.
type PageRequest struct {
	page     int
	pageSize int
	criteria *Criteria
	orders   []string // "name ASC", "created_at DESC"
}

func NewPageRequest(page, pageSize int) *PageRequest {
	return &PageRequest{page: page, pageSize: pageSize}
}

func (p *PageRequest) WithCriteria(c *Criteria) *PageRequest {
	p.criteria = c
	return p
}

func (p *PageRequest) OrderBy(orders ...string) *PageRequest {
	p.orders = append(p.orders, orders...)
	return p
}

func (p *PageRequest) Page() int {
	if p.page < 1 {
		return DefaultPage
	}
	return p.page
}

func (p *PageRequest) PageSize() int {
	if p.pageSize < 1 {
		return DefaultPageSize
	}
	if p.pageSize > MaxPageSize {
		return MaxPageSize
	}
	return p.pageSize
}

func (p *PageRequest) Offset() int {
	return (p.Page() - 1) * p.PageSize()
}

func (p *PageRequest) Criteria() *Criteria {
	return p.criteria
}

func (p *PageRequest) Orders() []string {
	return p.orders
}

// Page is the serialization-safe paginated result. Every field is exported
// and JSON-tagged and Items is never nil, so the value survives being
// encoded, shipped to another service, and decoded again without custom
// marshalling hooks.
type Page[T any] struct {
	PageNumber   int  `json:"page"`
	PageSize     int  `json:"pageSize"`
	TotalRecords int  `json:"totalRecords"`
	Items        []*T `json:"items"`
}

// NewPage returns an empty page shaped after the request.
func NewPage[T any](req *PageRequest) *Page[T] {
	return &Page[T]{
		PageNumber:   req.Page(),
		PageSize:     req.PageSize(),
		TotalRecords: 0,
		Items:        make([]*T, 0),
	}
}

// TotalPages derives the page count from TotalRecords and PageSize.
func (p *Page[T]) TotalPages() int {
	if p.PageSize < 1 {
		return 0
	}
	return (p.TotalRecords + p.PageSize - 1) / p.PageSize
}

// HasNext reports whether pages exist beyond this one.
func (p *Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}
