package listing

import "strings"

// Request is a fetch issued by a state transition. Generation tags the filter state it
// was issued for, so a response arriving after a newer filter change can be dropped.
type Request struct {
	Query      Query
	Generation uint64
	Append     bool
}

// State is the observable state of one listing. Transitions are pure: they return a new
// State and never modify the receiver or its Items.
type State[T any] struct {
	ActiveCategory string
	ActiveSearch   string
	Items          []T
	CurrentPage    int
	Total          int
	IsLoading      bool
	HasMore        bool
	PageSize       int

	// Generation increases on every filter change.
	Generation uint64
	// Settled is set once any fetch has completed.
	Settled bool
}

func NewState[T any](pageSize int) State[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	return State[T]{
		ActiveCategory: AllCategories,
		PageSize:       pageSize,
	}
}

// Initial reports whether nothing has been fetched yet.
func (s State[T]) Initial() bool {
	return !s.Settled
}

// Empty reports the explicit "no results" state: a fetch completed and nothing matched.
func (s State[T]) Empty() bool {
	return s.Settled && !s.IsLoading && len(s.Items) == 0
}

// ChangeFilter resets the listing to page 0 of the given filters and discards the
// accumulated items.
func (s State[T]) ChangeFilter(category, search string) (State[T], Request) {
	if category == "" {
		category = AllCategories
	}

	s.Generation++
	s.ActiveCategory = category
	s.ActiveSearch = strings.TrimSpace(search)
	s.CurrentPage = 0
	s.Items = nil
	s.Total = 0
	s.HasMore = false
	s.IsLoading = true

	return s, Request{Query: s.query(0), Generation: s.Generation}
}

// SelectCategory switches the category and keeps the active search.
func (s State[T]) SelectCategory(category string) (State[T], Request) {
	return s.ChangeFilter(category, s.ActiveSearch)
}

// CommitSearch applies a new search term and keeps the active category.
func (s State[T]) CommitSearch(term string) (State[T], Request) {
	return s.ChangeFilter(s.ActiveCategory, term)
}

func (s State[T]) ClearSearch() (State[T], Request) {
	return s.ChangeFilter(s.ActiveCategory, "")
}

// LoadMore requests the next page when the sentinel is visible, more rows exist and
// no fetch is in flight. Otherwise the trigger is dropped and ok is false.
func (s State[T]) LoadMore(sentinelVisible bool) (next State[T], req Request, ok bool) {
	if !sentinelVisible || !s.HasMore || s.IsLoading {
		return s, Request{}, false
	}

	s.CurrentPage++
	s.IsLoading = true

	return s, Request{Query: s.query(s.CurrentPage), Generation: s.Generation, Append: true}, true
}

// Apply merges the response to req. Responses issued for an older filter generation,
// or for a page other than the current one, are stale and leave the state unchanged.
func (s State[T]) Apply(req Request, page Page[T]) (State[T], bool) {
	if req.Generation != s.Generation || req.Query.Page != s.CurrentPage {
		return s, false
	}

	if req.Append {
		items := make([]T, 0, len(s.Items)+len(page.Items))
		items = append(items, s.Items...)
		s.Items = append(items, page.Items...)
	} else {
		s.Items = append([]T(nil), page.Items...)
	}

	// the fetcher may clamp the requested size; later offsets follow what it applied
	if page.PageSize > 0 {
		s.PageSize = page.PageSize
	}

	s.Total = page.Total
	s.HasMore = HasMore(s.CurrentPage, s.PageSize, s.Total)
	s.IsLoading = false
	s.Settled = true

	return s, true
}

func (s State[T]) query(page int) Query {
	return Query{
		Category: s.ActiveCategory,
		Search:   s.ActiveSearch,
		Page:     page,
		PageSize: s.PageSize,
	}
}
