package tui_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/internal/listing"
	"github.com/samandr77/microservices/onboarding/internal/tui"
)

type fakeController struct {
	state    listing.State
	started  bool
	searches []string
	next     int
	prev     int
}

func (f *fakeController) Start(context.Context) { f.started = true }

func (f *fakeController) Snapshot() listing.State { return f.state }

func (f *fakeController) SetSearch(term string) { f.searches = append(f.searches, term) }

func (f *fakeController) NextPage() bool {
	f.next++
	return true
}

func (f *fakeController) PrevPage() bool {
	f.prev++
	return true
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_TypingSearches(t *testing.T) {
	t.Parallel()

	fc := &fakeController{state: listing.NewState(10)}

	var m tea.Model = tui.New(context.Background(), fc)

	for _, r := range "cor" {
		m, _ = m.Update(runeKey(r))
	}

	require.Equal(t, []string{"c", "co", "cor"}, fc.searches)
}

func TestModel_Paging(t *testing.T) {
	t.Parallel()

	fc := &fakeController{state: listing.NewState(10)}

	var m tea.Model = tui.New(context.Background(), fc)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgUp})

	require.Equal(t, 2, fc.next)
	require.Equal(t, 1, fc.prev)
	require.Empty(t, fc.searches)
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	fc := &fakeController{state: listing.NewState(10)}

	_, cmd := tui.New(context.Background(), fc).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	fc := &fakeController{state: listing.NewState(15)}

	m := tui.New(context.Background(), fc)
	require.Contains(t, m.View(), "No applications found.")

	fc.state.Page = 3
	fc.state.TotalPages = 3
	fc.state.TotalElements = 42
	fc.state.Items = []entity.Application{{Name: "Corner Store", Firm: "Corner Store Pvt", Status: entity.StatusDraft}}

	updated, _ := m.Update(tui.StateMsg{})
	view := updated.View()

	require.Contains(t, view, "Corner Store")
	require.Contains(t, view, "Showing 31-42 of 42 (page 3/3)")
	require.False(t, strings.Contains(view, "No applications found."))
}

func TestModel_InitStartsController(t *testing.T) {
	t.Parallel()

	fc := &fakeController{state: listing.NewState(10)}

	cmd := tui.New(context.Background(), fc).Init()
	require.NotNil(t, cmd)

	msg := cmd()

	batch, ok := msg.(tea.BatchMsg)
	require.True(t, ok)

	for _, c := range batch {
		if c != nil {
			c()
		}
	}

	require.True(t, fc.started)
}
