package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adelgado/libreta/pkg/client"
	"github.com/adelgado/libreta/pkg/models"
	"github.com/adelgado/libreta/pkg/persisters"
)

// debounceInterval is the quiet period after the last query change before a
// fetch is dispatched.
const debounceInterval = 500 * time.Millisecond

var perPageSteps = []int{10, 25, 50}

type debounceMsg struct {
	seq int
}

type contactsFetchedMsg struct {
	seq  int
	page models.ContactPage
}

type contactsErrorMsg struct {
	seq int
	err error
}

type contactDeletedMsg struct{}

type contactDeleteErrorMsg struct {
	err error
}

// openEditorMsg asks the root model to stage a contact (or a blank template)
// in the editor.
type openEditorMsg struct {
	contact *models.Contact
}

// ListModel is the reactive query state of the contact list: search text,
// page, page size and sort drive a debounced re-fetch, and only the most
// recent scheduled fetch within the quiet period survives.
type ListModel struct {
	client *client.Client

	searchQuery   string
	searchFocused bool
	page          int
	perPage       int
	sort          string
	dir           string

	loading  bool
	envelope models.ContactPage
	cursor   int
	err      error

	confirmingDelete bool

	// debounceSeq identifies the newest scheduled fetch; older ticks are
	// superseded and dropped. fetchSeq identifies the newest dispatched
	// fetch so out-of-order responses are discarded.
	debounceSeq int
	fetchSeq    int
}

func NewListModel(c *client.Client) *ListModel {
	return &ListModel{
		client: c,

		page:    1,
		perPage: persisters.DefaultPerPage,
		sort:    persisters.SortByCreatedAt,
		dir:     persisters.DirDesc,
	}
}

func (m *ListModel) Init() tea.Cmd {
	return m.FetchNow()
}

func fetchContactsCmd(c *client.Client, seq int, opts client.ListContactsOptions) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		page, err := c.ListContacts(ctx, opts)
		if err != nil {
			return contactsErrorMsg{seq: seq, err: err}
		}

		return contactsFetchedMsg{seq: seq, page: page}
	}
}

func deleteContactCmd(c *client.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.DeleteContact(ctx, id); err != nil {
			return contactDeleteErrorMsg{err: err}
		}

		return contactDeletedMsg{}
	}
}

func (m *ListModel) options() client.ListContactsOptions {
	return client.ListContactsOptions{
		Query:   m.searchQuery,
		Sort:    m.sort,
		Dir:     m.dir,
		Page:    m.page,
		PerPage: m.perPage,
	}
}

// ScheduleFetch arms the debounce timer, superseding any pending schedule.
func (m *ListModel) ScheduleFetch() tea.Cmd {
	m.debounceSeq++
	seq := m.debounceSeq

	return tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// FetchNow dispatches a fetch immediately, bypassing the debounce window.
func (m *ListModel) FetchNow() tea.Cmd {
	m.fetchSeq++
	m.loading = true

	return fetchContactsCmd(m.client, m.fetchSeq, m.options())
}

func (m *ListModel) toggleSort(column string) tea.Cmd {
	if m.sort == column {
		if m.dir == persisters.DirAsc {
			m.dir = persisters.DirDesc
		} else {
			m.dir = persisters.DirAsc
		}
	} else {
		m.sort = column
		m.dir = persisters.DirAsc
	}

	m.page = 1

	return m.ScheduleFetch()
}

func (m *ListModel) lastPage() int {
	if m.envelope.LastPage < 1 {
		return 1
	}

	return m.envelope.LastPage
}

func (m *ListModel) selected() *models.Contact {
	if m.cursor < 0 || m.cursor >= len(m.envelope.Data) {
		return nil
	}

	contact := m.envelope.Data[m.cursor]

	return &contact
}

func (m *ListModel) Update(msg tea.Msg) (*ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		// A newer schedule supersedes this one.
		if msg.seq != m.debounceSeq {
			return m, nil
		}

		return m, m.FetchNow()

	case contactsFetchedMsg:
		// A response to an older query may arrive after a newer one; keep
		// only the newest.
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		m.err = nil
		m.envelope = msg.page
		if m.cursor >= len(m.envelope.Data) {
			m.cursor = len(m.envelope.Data) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

		return m, nil

	case contactsErrorMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		m.err = msg.err

		return m, nil

	case contactDeletedMsg:
		return m, m.FetchNow()

	case contactDeleteErrorMsg:
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) (*ListModel, tea.Cmd) {
	if m.confirmingDelete {
		m.confirmingDelete = false

		if msg.String() == "y" {
			if contact := m.selected(); contact != nil {
				return m, deleteContactCmd(m.client, contact.ID)
			}
		}

		// Any other key declines; nothing is dispatched.
		return m, nil
	}

	if m.searchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocused = false

		case "backspace":
			if m.searchQuery != "" {
				m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
				m.page = 1

				return m, m.ScheduleFetch()
			}

		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.searchQuery += string(msg.Runes)
				m.page = 1

				return m, m.ScheduleFetch()
			}
		}

		return m, nil
	}

	switch msg.String() {
	case "/":
		m.searchFocused = true

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.envelope.Data)-1 {
			m.cursor++
		}

	case "left", "h":
		if m.page > 1 {
			m.page--

			return m, m.ScheduleFetch()
		}

	case "right", "l":
		if m.page < m.lastPage() {
			m.page++

			return m, m.ScheduleFetch()
		}

	case "p":
		for i, step := range perPageSteps {
			if step == m.perPage {
				m.perPage = perPageSteps[(i+1)%len(perPageSteps)]
				break
			}
		}
		m.page = 1

		return m, m.ScheduleFetch()

	case "n":
		return m, m.toggleSort(persisters.SortByName)

	case "t":
		return m, m.toggleSort(persisters.SortByCreatedAt)

	case "r":
		return m, m.FetchNow()

	case "a":
		return m, func() tea.Msg {
			return openEditorMsg{}
		}

	case "enter", "e":
		if contact := m.selected(); contact != nil {
			return m, func() tea.Msg {
				return openEditorMsg{contact: contact}
			}
		}

	case "d":
		if m.selected() != nil {
			m.confirmingDelete = true
		}
	}

	return m, nil
}

func sortIndicator(active bool, dir string) string {
	if !active {
		return ""
	}

	if dir == persisters.DirAsc {
		return " ↑"
	}

	return " ↓"
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen-3]) + "..."
}

func (m *ListModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Libreta — Contacts"))
	b.WriteString("\n\n")

	search := "Search: " + m.searchQuery
	if m.searchFocused {
		search += "█"
	}
	b.WriteString(itemStyle.Render(search))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-25v %-30v %-20v %v",
		"Name"+sortIndicator(m.sort == persisters.SortByName, m.dir),
		"Email",
		"Company",
		"Tags",
	)))
	b.WriteString("\n")

	for i, contact := range m.envelope.Data {
		row := fmt.Sprintf(
			"%-25v %-30v %-20v %v",
			truncate(contact.Name, 25),
			truncate(contact.Email, 30),
			truncate(contact.Company, 20),
			truncate(strings.Join(contact.Tags, ", "), 20),
		)

		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(row))
		} else {
			b.WriteString(itemStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if len(m.envelope.Data) <= 0 && !m.loading {
		b.WriteString(infoStyle.Render("  No contacts found"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("Page %v/%v • %v per page • %v total", m.page, m.lastPage(), m.perPage, m.envelope.Total)
	if m.loading {
		status += " • loading..."
	}
	b.WriteString(infoStyle.Render(status))

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}

	if m.confirmingDelete {
		if contact := m.selected(); contact != nil {
			b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Delete %q? [y/N]", contact.Name)))
		}
	}

	b.WriteString("\n" + helpStyle.Render("/: search • ←/→: page • p: page size • n/t: sort by name/created • a: add • e: edit • d: delete • r: refresh • ctrl+c: quit"))

	return b.String()
}
