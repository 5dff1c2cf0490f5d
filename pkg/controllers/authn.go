package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adelgado/libreta/pkg/authn"
	"github.com/adelgado/libreta/pkg/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	c.log.Debug("Handling login")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.log.Warn("Could not handle login", "err", errors.Join(errCouldNotReadRequest, err))

		http.Error(w, errCouldNotReadRequest.Error(), http.StatusBadRequest)

		return
	}

	user, token, err := c.authner.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authn.ErrInvalidCredentials) {
			http.Error(w, authn.ErrInvalidCredentials.Error(), http.StatusUnauthorized)

			return
		}

		c.log.Warn("Could not handle login", "err", errors.Join(errCouldNotFetchFromDB, err))

		http.Error(w, errCouldNotFetchFromDB.Error(), http.StatusInternalServerError)

		return
	}

	c.writeJSON(w, c.log.With("email", user.Email), http.StatusOK, loginResponse{
		User:        user,
		AccessToken: token,
	})
}

func (c *Controller) HandleLogout(w http.ResponseWriter, r *http.Request) {
	c.log.Debug("Handling logout")

	if err := c.authner.Logout(r.Context(), bearerToken(r)); err != nil {
		// Logout is idempotent towards the client; a failed session delete
		// only concerns us.
		c.log.Warn("Could not delete session", "err", errors.Join(errCouldNotDeleteFromDB, err))
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := c.authenticate(w, r)
	if !ok {
		return
	}

	log := c.log.With("email", user.Email)

	log.Debug("Handling me")

	c.writeJSON(w, log, http.StatusOK, user)
}
