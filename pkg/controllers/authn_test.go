package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adelgado/libreta/pkg/models"
)

func TestLoginAndMe(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada@example.com")

	res := s.request(t, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	user := decode[models.User](t, res)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestLoginResponseOmitsPasswordHash(t *testing.T) {
	s := newTestServer(t)

	res := s.request(t, http.MethodPost, "/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decode[map[string]any](t, res)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)

	for key := range user {
		assert.NotContains(t, strings.ToLower(key), "password")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	for _, tt := range []struct {
		name  string
		email string
	}{
		{"wrong password", "ada@example.com"},
		{"unknown email", "nobody@example.com"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res := s.request(t, http.MethodPost, "/login", "", map[string]string{
				"email":    tt.email,
				"password": "wrong",
			})

			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		})
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, s.URL+"/login", strings.NewReader("{"))
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ada@example.com")

	res := s.request(t, http.MethodPost, "/logout", token, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res = s.request(t, http.MethodGet, "/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogoutWithoutTokenSucceeds(t *testing.T) {
	s := newTestServer(t)

	res := s.request(t, http.MethodPost, "/logout", "", nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestTokensAreIndependentSessions(t *testing.T) {
	s := newTestServer(t)
	first := s.login(t, "ada@example.com")
	second := s.login(t, "ada@example.com")
	require.NotEqual(t, first, second)

	res := s.request(t, http.MethodPost, "/logout", first, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	// The other session stays valid.
	res = s.request(t, http.MethodGet, "/me", second, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
