package listing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/internal/listing"
)

func TestState_WithPage(t *testing.T) {
	t.Parallel()

	s := listing.NewState(10)
	s.TotalPages = 3

	tests := []struct {
		name string
		page int
		want bool
	}{
		{name: "current", page: 1, want: false},
		{name: "zero", page: 0, want: false},
		{name: "negative", page: -1, want: false},
		{name: "past last", page: 4, want: false},
		{name: "middle", page: 2, want: true},
		{name: "last", page: 3, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, ok := s.WithPage(tt.page)
			require.Equal(t, tt.want, ok)

			if ok {
				require.Equal(t, tt.page, next.Page)
			} else {
				require.Equal(t, s, next)
			}
		})
	}
}

func TestState_WithSearch(t *testing.T) {
	t.Parallel()

	s := listing.NewState(10)
	s.TotalPages = 5
	s.Page = 4

	next, ok := s.WithSearch("corner")
	require.True(t, ok)
	require.Equal(t, 1, next.Page)
	require.Equal(t, "corner", next.Search)

	_, ok = next.WithSearch("corner")
	require.False(t, ok)
}

func TestState_WithSearchSupersedesFetch(t *testing.T) {
	t.Parallel()

	s := listing.NewState(10)
	s.TotalPages = 3

	s, _ = s.WithPage(2)
	s, q := s.BeginFetch()

	s, ok := s.WithSearch("chai")
	require.True(t, ok)
	require.True(t, s.Loading())
	require.Greater(t, s.Seq, q.Seq)

	next, applied := s.Apply(q, entity.Page{Items: make([]entity.Application, 10), TotalPages: 3, TotalElements: 30}, nil)
	require.False(t, applied)
	require.Equal(t, s, next)
}

func TestState_FetchLifecycle(t *testing.T) {
	t.Parallel()

	s := listing.NewState(15)
	s.Page = 3

	s, q := s.BeginFetch()
	require.True(t, s.Loading())
	require.Equal(t, entity.ListQuery{Page: 3, Size: 15}, q.ListQuery)
	require.Equal(t, uint64(1), q.Seq)

	s, applied := s.Apply(q, entity.Page{Items: make([]entity.Application, 12), TotalPages: 3, TotalElements: 42}, nil)
	require.True(t, applied)
	require.False(t, s.Loading())
	require.Equal(t, listing.Idle, s.Status)

	first, last := s.Range()
	require.Equal(t, 31, first)
	require.Equal(t, 42, last)
}

func TestState_ApplyDropsStale(t *testing.T) {
	t.Parallel()

	s := listing.NewState(10)

	s, older := s.BeginFetch()
	s, newer := s.BeginFetch()

	_, applied := s.Apply(older, entity.Page{TotalElements: 99}, nil)
	require.False(t, applied)

	s, applied = s.Apply(newer, entity.Page{TotalPages: 1, TotalElements: 1}, nil)
	require.True(t, applied)
	require.Equal(t, 1, s.TotalElements)
}

func TestState_ApplyErrorClears(t *testing.T) {
	t.Parallel()

	s := listing.NewState(10)
	s.Items = make([]entity.Application, 10)
	s.TotalPages = 2
	s.TotalElements = 11

	s, q := s.BeginFetch()
	s, applied := s.Apply(q, entity.Page{TotalElements: 5}, errors.New("timeout"))
	require.True(t, applied)
	require.Nil(t, s.Items)
	require.Zero(t, s.TotalPages)
	require.Zero(t, s.TotalElements)
	require.False(t, s.Loading())
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", listing.Idle.String())
	require.Equal(t, "fetching", listing.Fetching.String())
	require.Equal(t, "unknown", listing.Status(7).String())
}
