package listing

import "fmt"

// TotalPages is ceil(total/perPage).
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Paginate returns records[(page-1)*size : page*size], clipped to the slice.
func Paginate[T any](records []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(records) {
		return []T{}
	}
	end := min(start+size, len(records))
	return records[start:end]
}

// Pager tracks the current page of a list. CurrentPage always stays within
// [1, max(1, TotalPages)].
type Pager struct {
	CurrentPage  int
	ItemsPerPage int
	TotalItems   int
}

// NewPager creates a Pager on page 1.
func NewPager(perPage int) Pager {
	return Pager{CurrentPage: 1, ItemsPerPage: perPage}
}

// TotalPages returns the number of pages.
func (p Pager) TotalPages() int {
	return TotalPages(p.TotalItems, p.ItemsPerPage)
}

func (p Pager) lastPage() int {
	return max(1, p.TotalPages())
}

// SetTotal updates the item count and clamps the current page.
func (p *Pager) SetTotal(total int) {
	p.TotalItems = total
	p.GoTo(p.CurrentPage)
}

// GoTo moves to page, clamped to the valid range.
func (p *Pager) GoTo(page int) {
	p.CurrentPage = min(max(page, 1), p.lastPage())
}

// Next advances one page. It is a no-op on the last page.
func (p *Pager) Next() {
	p.GoTo(p.CurrentPage + 1)
}

// Prev goes back one page. It is a no-op on page 1.
func (p *Pager) Prev() {
	p.GoTo(p.CurrentPage - 1)
}

// Reset returns to page 1.
func (p *Pager) Reset() {
	p.CurrentPage = 1
}

// ShowControls reports whether pagination controls should render: there are
// items and they do not fit one page.
func (p Pager) ShowControls() bool {
	return p.TotalPages() > 1
}

// Range returns the 1-based positions of the first and last item on the
// current page, or (0, 0) when empty.
func (p Pager) Range() (from, to int) {
	if p.TotalItems == 0 {
		return 0, 0
	}
	from = (p.CurrentPage-1)*p.ItemsPerPage + 1
	to = min(p.CurrentPage*p.ItemsPerPage, p.TotalItems)
	return from, to
}

// RangeText renders Range for the list footer.
func (p Pager) RangeText() string {
	from, to := p.Range()
	return fmt.Sprintf("Mostrando %d a %d de %d registros", from, to, p.TotalItems)
}
