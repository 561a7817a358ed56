package listing

import (
	"context"
	"sync"
)

// Fetcher retrieves one page of a listing. Implementations are fail-soft: a failed
// retrieval returns an empty page.
type Fetcher[T any] interface {
	FetchPage(ctx context.Context, q Query) Page[T]
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc[T any] func(ctx context.Context, q Query) Page[T]

func (f FetcherFunc[T]) FetchPage(ctx context.Context, q Query) Page[T] {
	return f(ctx, q)
}

// Controller applies State transitions and runs the fetches they issue. Fetches run
// outside the lock; their responses are merged by State.Apply, which drops stale ones.
type Controller[T any] struct {
	mu      sync.Mutex
	state   State[T]
	fetcher Fetcher[T]
}

func NewController[T any](fetcher Fetcher[T], pageSize int) *Controller[T] {
	return &Controller[T]{
		state:   NewState[T](pageSize),
		fetcher: fetcher,
	}
}

// State returns a snapshot of the current state.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load fetches the first page of the current filters.
func (c *Controller[T]) Load(ctx context.Context) State[T] {
	return c.transition(ctx, func(s State[T]) (State[T], Request) {
		return s.ChangeFilter(s.ActiveCategory, s.ActiveSearch)
	})
}

func (c *Controller[T]) SelectCategory(ctx context.Context, category string) State[T] {
	return c.transition(ctx, func(s State[T]) (State[T], Request) {
		return s.SelectCategory(category)
	})
}

func (c *Controller[T]) Search(ctx context.Context, term string) State[T] {
	return c.transition(ctx, func(s State[T]) (State[T], Request) {
		return s.CommitSearch(term)
	})
}

func (c *Controller[T]) ClearSearch(ctx context.Context) State[T] {
	return c.transition(ctx, State[T].ClearSearch)
}

// LoadMore fetches the next page if the state allows it. It reports whether a fetch
// was issued.
func (c *Controller[T]) LoadMore(ctx context.Context, sentinelVisible bool) (State[T], bool) {
	c.mu.Lock()
	next, req, ok := c.state.LoadMore(sentinelVisible)
	c.state = next
	c.mu.Unlock()

	if !ok {
		return next, false
	}

	return c.fetch(ctx, req), true
}

func (c *Controller[T]) transition(ctx context.Context, fn func(State[T]) (State[T], Request)) State[T] {
	c.mu.Lock()
	next, req := fn(c.state)
	c.state = next
	c.mu.Unlock()

	return c.fetch(ctx, req)
}

func (c *Controller[T]) fetch(ctx context.Context, req Request) State[T] {
	page := c.fetcher.FetchPage(ctx, req.Query)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state, _ = c.state.Apply(req, page)
	return c.state
}
