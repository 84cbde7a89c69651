package listing

import (
	"github.com/samandr77/microservices/onboarding/internal/entity"
)

type Status int

const (
	Idle Status = iota
	Fetching
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	default:
		return "unknown"
	}
}

// State is the list view. Transitions are value methods that return the next state.
type State struct {
	Items         []entity.Application
	Page          int
	PageSize      int
	TotalPages    int
	TotalElements int
	Search        string
	Status        Status
	// Seq is the sequence number of the latest issued fetch.
	Seq     uint64
	Refresh uint64
}

// Query is one fetch tagged with its sequence number.
type Query struct {
	entity.ListQuery
	Seq uint64
}

func NewState(pageSize int) State {
	return State{
		Page:     1,
		PageSize: pageSize,
	}
}

func (s State) Loading() bool {
	return s.Status == Fetching
}

// WithPage moves to page. Pages outside [1, TotalPages] and the current page are rejected.
func (s State) WithPage(page int) (State, bool) {
	if page < 1 || page > s.TotalPages || page == s.Page {
		return s, false
	}

	s.Page = page

	return s, true
}

// WithSearch sets the search term and goes back to the first page. Fetches issued for the
// previous term become stale and the state stays Fetching until the next fetch lands.
func (s State) WithSearch(term string) (State, bool) {
	if term == s.Search {
		return s, false
	}

	s.Search = term
	s.Page = 1
	s.Seq++
	s.Status = Fetching

	return s, true
}

func (s State) WithRefresh(token uint64) (State, bool) {
	if token == s.Refresh {
		return s, false
	}

	s.Refresh = token

	return s, true
}

func (s State) BeginFetch() (State, Query) {
	s.Seq++
	s.Status = Fetching

	return s, Query{
		ListQuery: entity.ListQuery{
			Page:   s.Page,
			Size:   s.PageSize,
			Search: s.Search,
		},
		Seq: s.Seq,
	}
}

// Apply stores the outcome of q. Outcomes of superseded queries are dropped and Apply
// reports false. A failed fetch empties the list.
func (s State) Apply(q Query, page entity.Page, err error) (State, bool) {
	if q.Seq != s.Seq {
		return s, false
	}

	s.Status = Idle

	if err != nil {
		s.Items = nil
		s.TotalPages = 0
		s.TotalElements = 0

		return s, true
	}

	s.Items = page.Items
	s.TotalPages = page.TotalPages
	s.TotalElements = page.TotalElements

	return s, true
}

// Range returns the one-based indexes of the first and last visible item.
func (s State) Range() (first, last int) {
	return entity.Range(s.Page, s.PageSize, s.TotalElements)
}
