package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adelgado/libreta/pkg/client"
	"github.com/adelgado/libreta/pkg/models"
)

type loginSuccessMsg struct {
	user models.User
}

type loginErrorMsg struct {
	err error
}

type LoginModel struct {
	client *client.Client

	emailInput    string
	passwordInput string
	focusedInput  int
	loading       bool
	err           error
}

func NewLoginModel(c *client.Client) *LoginModel {
	return &LoginModel{
		client: c,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return nil
}

// reset clears the form so a forced re-authentication starts from a clean
// slate.
func (m *LoginModel) reset() {
	m.emailInput = ""
	m.passwordInput = ""
	m.focusedInput = 0
	m.loading = false
	m.err = nil
}

func loginCmd(c *client.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := c.Login(ctx, email, password)
		if err != nil {
			return loginErrorMsg{err: err}
		}

		return loginSuccessMsg{user: user}
	}
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginErrorMsg:
		m.loading = false
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focusedInput = (m.focusedInput + 1) % 2

		case "enter":
			if m.emailInput == "" {
				m.err = errors.New("email cannot be empty")

				return m, nil
			}
			if m.passwordInput == "" {
				m.err = errors.New("password cannot be empty")

				return m, nil
			}

			m.loading = true
			m.err = nil

			return m, loginCmd(m.client, m.emailInput, m.passwordInput)

		case "backspace":
			if m.focusedInput == 0 && m.emailInput != "" {
				m.emailInput = m.emailInput[:len(m.emailInput)-1]
			} else if m.focusedInput == 1 && m.passwordInput != "" {
				m.passwordInput = m.passwordInput[:len(m.passwordInput)-1]
			}

		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				if m.focusedInput == 0 {
					m.emailInput += string(msg.Runes)
				} else {
					m.passwordInput += string(msg.Runes)
				}
			}
		}
	}

	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Libreta — Log in"))
	b.WriteString("\n\n")

	emailLabel := labelStyle
	passwordLabel := labelStyle
	if m.focusedInput == 0 {
		emailLabel = focusedLabelStyle
	} else {
		passwordLabel = focusedLabelStyle
	}

	b.WriteString(emailLabel.Render("Email:    "))
	b.WriteString(m.emailInput)
	if m.focusedInput == 0 {
		b.WriteString("█")
	}
	b.WriteString("\n")

	b.WriteString(passwordLabel.Render("Password: "))
	b.WriteString(strings.Repeat("*", len(m.passwordInput)))
	if m.focusedInput == 1 {
		b.WriteString("█")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\n" + infoStyle.Render("Logging in..."))
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n" + helpStyle.Render("tab: switch field • enter: log in • ctrl+c: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(boxStyle.Render(b.String()))
}
