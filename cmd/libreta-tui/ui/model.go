// Package ui implements the terminal frontend: a login view, the searchable
// contact list and the modal contact editor, multiplexed by a root model.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adelgado/libreta/pkg/client"
	"github.com/adelgado/libreta/pkg/models"
)

type View int

const (
	LoginView View = iota
	ListView
	EditView
)

// AuthExpiredMsg forces re-authentication. The client's 401 hook injects it
// whenever a session dies server-side; logout reuses it.
type AuthExpiredMsg struct{}

type Model struct {
	client *client.Client

	currentView View
	login       *LoginModel
	list        *ListModel
	edit        *EditModel

	user models.User

	width  int
	height int
}

func NewModel(c *client.Client) Model {
	return Model{
		client: c,

		currentView: LoginView,
		login:       NewLoginModel(c),
		list:        NewListModel(c),
		edit:        NewEditModel(c),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func logoutCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = c.Logout(ctx)

		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case AuthExpiredMsg:
		// Already on the login view: nothing to do, keep any error shown.
		if m.currentView == LoginView {
			return m, nil
		}

		m.user = models.User{}
		m.login.reset()
		m.currentView = LoginView

		return m, nil

	case loginSuccessMsg:
		m.user = msg.user
		m.currentView = ListView

		return m, m.list.FetchNow()

	case openEditorMsg:
		m.edit.Open(msg.contact)
		m.currentView = EditView

		return m, nil

	case editorClosedMsg:
		m.currentView = ListView

		return m, nil

	case contactSavedMsg:
		m.currentView = ListView

		return m, m.list.FetchNow()

	// Fetch results and delete acknowledgments always belong to the list,
	// whatever view is on top when they arrive.
	case debounceMsg, contactsFetchedMsg, contactsErrorMsg, contactDeletedMsg, contactDeleteErrorMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)

		return m, cmd

	case contactSaveErrorMsg:
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)

		return m, cmd

	case loginErrorMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ListView && !m.list.searchFocused && msg.String() == "L" {
			m.user = models.User{}
			m.login.reset()
			m.currentView = LoginView

			return m, logoutCmd(m.client)
		}
	}

	var cmd tea.Cmd
	switch m.currentView {
	case LoginView:
		m.login, cmd = m.login.Update(msg)

	case ListView:
		m.list, cmd = m.list.Update(msg)

	case EditView:
		m.edit, cmd = m.edit.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	switch m.currentView {
	case ListView:
		return m.list.View()

	case EditView:
		return m.edit.View()

	default:
		return m.login.View()
	}
}
