package ui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adelgado/libreta/pkg/client"
	"github.com/adelgado/libreta/pkg/models"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewModel(client.NewClient(log, "http://localhost:0", nil, nil))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)

	next, ok := updated.(Model)
	require.True(t, ok)

	return next, cmd
}

func TestLoginSuccessSwitchesToListAndFetches(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, loginSuccessMsg{user: models.User{ID: 1, Name: "Ada"}})

	assert.Equal(t, ListView, m.currentView)
	assert.Equal(t, "Ada", m.user.Name)
	assert.NotNil(t, cmd)
}

func TestAuthExpiryForcesReLogin(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, loginSuccessMsg{user: models.User{ID: 1, Name: "Ada"}})

	m, cmd := update(t, m, AuthExpiredMsg{})

	assert.Equal(t, LoginView, m.currentView)
	assert.Zero(t, m.user.ID)
	assert.Nil(t, cmd)
}

func TestAuthExpiryOnLoginViewIsIgnored(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, AuthExpiredMsg{})

	assert.Equal(t, LoginView, m.currentView)
	assert.Nil(t, cmd)
}

func TestEditorOpensAndCloses(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, loginSuccessMsg{user: models.User{ID: 1}})

	m, _ = update(t, m, openEditorMsg{contact: &models.Contact{ID: 7, Name: "Grace"}})
	assert.Equal(t, EditView, m.currentView)
	assert.Equal(t, "Grace", m.edit.fields[fieldName])

	m, _ = update(t, m, editorClosedMsg{})
	assert.Equal(t, ListView, m.currentView)
}

func TestSaveReturnsToListAndRefetches(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, loginSuccessMsg{user: models.User{ID: 1}})
	m, _ = update(t, m, openEditorMsg{})

	m, cmd := update(t, m, contactSavedMsg{contact: models.Contact{ID: 7}})

	assert.Equal(t, ListView, m.currentView)
	assert.NotNil(t, cmd)
}

func TestFetchResultsReachTheListFromAnyView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, loginSuccessMsg{user: models.User{ID: 1}})
	m, _ = update(t, m, openEditorMsg{})

	m, _ = update(t, m, contactsFetchedMsg{seq: m.list.fetchSeq, page: pageWith(
		models.Contact{ID: 1, Name: "Ada"},
	)})

	assert.Equal(t, EditView, m.currentView)
	require.Len(t, m.list.envelope.Data, 1)
	assert.False(t, m.list.loading)
}

func TestLogoutKeySwitchesToLogin(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, loginSuccessMsg{user: models.User{ID: 1, Name: "Ada"}})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})

	assert.Equal(t, LoginView, m.currentView)
	assert.Zero(t, m.user.ID)
	assert.NotNil(t, cmd)
}

func TestLogoutKeyIsTypedIntoFocusedSearch(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, loginSuccessMsg{user: models.User{ID: 1}})
	m.list.searchFocused = true

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})

	assert.Equal(t, ListView, m.currentView)
	assert.Equal(t, "L", m.list.searchQuery)
}
