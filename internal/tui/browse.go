package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/samandr77/microservices/onboarding/internal/listing"
)

// Controller is the part of listing.Controller the browser drives.
type Controller interface {
	Start(ctx context.Context)
	Snapshot() listing.State
	SetSearch(term string)
	NextPage() bool
	PrevPage() bool
}

// StateMsg tells the model the controller state changed.
type StateMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	helpText   = "type to search - pgup/pgdn or ctrl+p/ctrl+n page - up/down select - esc quit"
)

// Model is the interactive application browser.
type Model struct {
	ctx   context.Context
	c     Controller
	state listing.State

	search textinput.Model
	table  table.Model

	width  int
	height int
}

func New(ctx context.Context, c Controller) Model {
	columns := make([]table.Column, 0, len(Headers))
	for _, h := range Headers {
		columns = append(columns, table.Column{Title: h, Width: 18})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	si := textinput.New()
	si.Placeholder = "Search by name, firm, city or mobile..."
	si.Prompt = "Search: "
	si.CharLimit = 64
	si.Width = 48
	si.Focus()

	return Model{
		ctx:    ctx,
		c:      c,
		state:  c.Snapshot(),
		search: si,
		table:  t,
	}
}

// Subscriber returns a callback for listing.Controller.Subscribe that forwards changes to p.
// Sending happens on its own goroutine because the controller may notify from inside Update.
func Subscriber(p *tea.Program) func(listing.State) {
	return func(listing.State) {
		go p.Send(StateMsg{})
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		m.c.Start(m.ctx)
		return nil
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg:
		m.state = m.c.Snapshot()
		m.table.SetRows(rows(m.state))

		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 3))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "pgdown", "ctrl+n":
			m.c.NextPage()
			return m, nil
		case "pgup", "ctrl+p":
			m.c.PrevPage()
			return m, nil
		case "up", "down":
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)

			return m, cmd
		}
	}

	var cmd tea.Cmd

	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)

	if after := m.search.Value(); after != before {
		m.c.SetSearch(after)
	}

	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Merchant applications"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.state.Loading() && len(m.state.Items) == 0:
		b.WriteString(mutedStyle.Render("Loading..."))
	case len(m.state.Items) == 0:
		b.WriteString(mutedStyle.Render(emptyList))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")

	footer := Footer(m.state.Page, m.state.PageSize, m.state.TotalPages, m.state.TotalElements)
	if m.state.Loading() {
		footer += " - loading"
	}

	b.WriteString(mutedStyle.Render(footer))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(helpText))

	return b.String()
}

func rows(s listing.State) []table.Row {
	out := make([]table.Row, 0, len(s.Items))
	for _, app := range s.Items {
		out = append(out, table.Row(Row(app)))
	}

	return out
}
