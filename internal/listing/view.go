package listing

// View combines records with the criteria, sort state and pager of one list.
type View[T Record] struct {
	records  []T
	criteria Criteria
	sort     SortState
	columns  Columns[T]
	pager    Pager

	derived []T
}

// NewView creates an empty view sorted by initial.
func NewView[T Record](columns Columns[T], initial SortState, perPage int) *View[T] {
	v := &View[T]{
		columns: columns,
		sort:    initial,
		pager:   NewPager(perPage),
	}
	v.refresh()
	return v
}

func (v *View[T]) refresh() {
	v.derived = Sort(ApplyFilters(v.records, v.criteria), v.sort, v.columns)
	v.pager.SetTotal(len(v.derived))
}

// SetRecords replaces the underlying records, keeping criteria and sort.
func (v *View[T]) SetRecords(records []T) {
	v.records = records
	v.refresh()
}

// SetCriteria replaces the filters and returns to page 1.
func (v *View[T]) SetCriteria(c Criteria) {
	v.criteria = c
	v.pager.Reset()
	v.refresh()
}

// Criteria returns the active filters.
func (v *View[T]) Criteria() Criteria {
	return v.criteria
}

// RequestSort toggles or switches the sort column.
func (v *View[T]) RequestSort(key string) {
	v.SetSort(v.sort.Request(key))
}

// SetSort replaces the sort state.
func (v *View[T]) SetSort(s SortState) {
	v.sort = s
	v.refresh()
}

// SortState returns the active sort.
func (v *View[T]) SortState() SortState {
	return v.sort
}

// GoTo moves to page, clamped.
func (v *View[T]) GoTo(page int) {
	v.pager.GoTo(page)
}

// Next advances one page.
func (v *View[T]) Next() {
	v.pager.Next()
}

// Prev goes back one page.
func (v *View[T]) Prev() {
	v.pager.Prev()
}

// Items returns every filtered, sorted record. Exports use this.
func (v *View[T]) Items() []T {
	return v.derived
}

// Page returns the records on the current page.
func (v *View[T]) Page() []T {
	return Paginate(v.derived, v.pager.CurrentPage, v.pager.ItemsPerPage)
}

// Pager returns a copy of the pager state.
func (v *View[T]) Pager() Pager {
	return v.pager
}
