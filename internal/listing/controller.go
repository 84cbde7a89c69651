package listing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/pkg/debounce"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=controller.go -destination=../mocks/listing.go -package=mocks

const (
	DefaultPageSize = 10
	DefaultDebounce = 500 * time.Millisecond

	searchKey = "search"
)

type Fetcher interface {
	ListApplications(ctx context.Context, q entity.ListQuery) (entity.Page, error)
}

type Options struct {
	PageSize int
	Debounce time.Duration
	Logger   *slog.Logger
}

// Controller drives a State: it issues fetches, debounces search input and applies
// responses in issue order, dropping the stale ones.
type Controller struct {
	fetcher   Fetcher
	log       *slog.Logger
	debouncer *debounce.Debouncer

	mu     sync.Mutex
	state  State
	subs   []func(State)
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	wg sync.WaitGroup
}

func New(fetcher Fetcher, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		fetcher:   fetcher,
		log:       opts.Logger.With("component", "listing"),
		debouncer: debounce.New(opts.Debounce),
		state:     NewState(opts.PageSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Subscribe registers fn to be called with every new state. fn runs on the goroutine that
// caused the change and must not call back into the controller synchronously.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subs = append(c.subs, fn)
}

// Start binds the controller to ctx and performs the initial fetch.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.cancel()
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	c.update(func(s State) (State, bool) { return s, true })
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// SetPage fetches page. It reports false when page is out of range or already current.
func (c *Controller) SetPage(page int) bool {
	return c.update(func(s State) (State, bool) { return s.WithPage(page) })
}

func (c *Controller) NextPage() bool {
	return c.update(func(s State) (State, bool) { return s.WithPage(s.Page + 1) })
}

func (c *Controller) PrevPage() bool {
	return c.update(func(s State) (State, bool) { return s.WithPage(s.Page - 1) })
}

// Refresh fetches the current page again when token differs from the last one seen.
func (c *Controller) Refresh(token uint64) bool {
	return c.update(func(s State) (State, bool) { return s.WithRefresh(token) })
}

// SetSearch resets to the first page and fetches once the input has been quiet for the
// debounce delay. Every call restarts the delay.
func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	next, changed := c.state.WithSearch(term)
	if !changed {
		c.mu.Unlock()
		return
	}

	c.state = next
	snap, subs := c.state, c.subs

	c.debouncer.Trigger(searchKey, func() {
		c.update(func(s State) (State, bool) { return s, true })
	})
	c.mu.Unlock()

	notify(subs, snap)
}

// Close cancels a pending search, in-flight fetches and waits for them to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.closed = true
	c.mu.Unlock()

	c.debouncer.Stop()
	c.cancel()
	c.wg.Wait()
}

// update applies fn and, when it reports a change, starts a fetch of the resulting state.
func (c *Controller) update(fn func(State) (State, bool)) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	next, changed := fn(c.state)
	if !changed {
		c.mu.Unlock()
		return false
	}

	next, q := next.BeginFetch()
	c.state = next
	ctx := c.ctx
	snap, subs := c.state, c.subs

	// The fetch already carries the current search term.
	c.debouncer.Cancel(searchKey)

	c.wg.Add(1)
	c.mu.Unlock()

	notify(subs, snap)

	go c.fetch(ctx, q)

	return true
}

func (c *Controller) fetch(ctx context.Context, q Query) {
	defer c.wg.Done()

	page, err := c.call(ctx, q.ListQuery)
	if err != nil {
		c.log.ErrorContext(ctx, "fetch applications",
			"error", err, "page", q.Page, "search", q.Search, "seq", q.Seq)
	}

	c.mu.Lock()

	next, applied := c.state.Apply(q, page, err)
	if !applied {
		c.mu.Unlock()
		c.log.DebugContext(ctx, "stale response dropped", "seq", q.Seq)

		return
	}

	c.state = next
	snap, subs := c.state, c.subs
	c.mu.Unlock()

	notify(subs, snap)
}

func (c *Controller) call(ctx context.Context, q entity.ListQuery) (page entity.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetcher panic: %v", r)
		}
	}()

	return c.fetcher.ListApplications(ctx, q)
}

func notify(subs []func(State), s State) {
	for _, fn := range subs {
		fn(s)
	}
}
