package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adelgado/libreta/pkg/client"
	"github.com/adelgado/libreta/pkg/models"
)

type contactSavedMsg struct {
	contact models.Contact
}

type contactSaveErrorMsg struct {
	err error
}

// editorClosedMsg asks the root model to return to the list without saving.
type editorClosedMsg struct{}

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCompany
	fieldTags
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Company", "Tags", "Notes"}

// fieldKeys map editor fields to the error keys of the validation response.
var fieldKeys = [fieldCount]string{"name", "email", "phone", "company", "tags", "notes"}

// EditModel is the modal create/update form. A staged contact without an id
// dispatches a create, one with an id a full-field update.
type EditModel struct {
	client *client.Client

	staged models.Contact
	fields [fieldCount]string

	focused     int
	saving      bool
	fieldErrors map[string][]string
	err         error
}

func NewEditModel(c *client.Client) *EditModel {
	return &EditModel{
		client: c,
	}
}

func (m *EditModel) Init() tea.Cmd {
	return nil
}

// Open clears prior field-error state and stages the given contact, or a
// blank template when nil.
func (m *EditModel) Open(contact *models.Contact) {
	m.fieldErrors = map[string][]string{}
	m.err = nil
	m.saving = false
	m.focused = 0

	if contact == nil {
		m.staged = models.Contact{}
		m.fields = [fieldCount]string{}

		return
	}

	m.staged = *contact
	m.fields = [fieldCount]string{
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Company,
		strings.Join(contact.Tags, ", "),
		contact.Notes,
	}
}

func saveContactCmd(c *client.Client, id int64, params models.ContactParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var (
			contact models.Contact
			err     error
		)
		if id == 0 {
			contact, err = c.CreateContact(ctx, params)
		} else {
			contact, err = c.UpdateContact(ctx, id, params)
		}
		if err != nil {
			return contactSaveErrorMsg{err: err}
		}

		return contactSavedMsg{contact: contact}
	}
}

func (m *EditModel) save() tea.Cmd {
	m.fieldErrors = map[string][]string{}
	m.err = nil
	m.saving = true

	params := models.ContactParams{
		Name:    m.fields[fieldName],
		Email:   m.fields[fieldEmail],
		Phone:   m.fields[fieldPhone],
		Company: m.fields[fieldCompany],
		Tags:    models.ParseTags(m.fields[fieldTags]),
		Notes:   m.fields[fieldNotes],
	}

	return saveContactCmd(m.client, m.staged.ID, params)
}

func (m *EditModel) Update(msg tea.Msg) (*EditModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contactSaveErrorMsg:
		m.saving = false

		verr := &client.ValidationError{}
		if errors.As(msg.err, &verr) {
			m.fieldErrors = verr.Errors

			return m, nil
		}

		// Non-validation failures keep the modal open without field errors.
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return editorClosedMsg{}
			}

		case "tab", "down":
			m.focused = (m.focused + 1) % fieldCount

		case "shift+tab", "up":
			m.focused = (m.focused + fieldCount - 1) % fieldCount

		case "enter":
			return m, m.save()

		case "backspace":
			if m.fields[m.focused] != "" {
				m.fields[m.focused] = m.fields[m.focused][:len(m.fields[m.focused])-1]
			}

		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.fields[m.focused] += string(msg.Runes)
			}
		}
	}

	return m, nil
}

func (m *EditModel) View() string {
	var b strings.Builder

	if m.staged.ID == 0 {
		b.WriteString(titleStyle.Render("New contact"))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Edit contact #%v", m.staged.ID)))
	}
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := labelStyle
		cursor := ""
		if i == m.focused {
			label = focusedLabelStyle
			cursor = "█"
		}

		b.WriteString(label.Render(fmt.Sprintf("%-9v", fieldLabels[i]+":")))
		b.WriteString(m.fields[i] + cursor)
		b.WriteString("\n")

		for _, message := range m.fieldErrors[fieldKeys[i]] {
			b.WriteString(fieldErrorStyle.Render(message))
			b.WriteString("\n")
		}
	}

	if m.saving {
		b.WriteString("\n" + infoStyle.Render("Saving..."))
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n" + helpStyle.Render("tab: next field • enter: save • esc: cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(boxStyle.Render(b.String()))
}
