// Package controllers exposes the REST resource handlers. Each handler
// authenticates the request, delegates to the store and translates domain
// errors into HTTP status codes (401, 403, 404, 422).
package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/adelgado/libreta/pkg/authn"
	"github.com/adelgado/libreta/pkg/models"
	"github.com/adelgado/libreta/pkg/persisters"
)

var (
	errCouldNotFetchFromDB    = errors.New("could not fetch from DB")
	errCouldNotInsertIntoDB   = errors.New("could not insert into DB")
	errCouldNotUpdateInDB     = errors.New("could not update in DB")
	errCouldNotDeleteFromDB   = errors.New("could not delete from DB")
	errCouldNotEncodeResponse = errors.New("could not encode response")
	errCouldNotReadRequest    = errors.New("could not read request")
)

type Controller struct {
	log *slog.Logger

	store   persisters.Store
	authner *authn.Authner
}

func NewController(
	log *slog.Logger,

	store persisters.Store,
	authner *authn.Authner,
) *Controller {
	return &Controller{
		log: log,

		store:   store,
		authner: authner,
	}
}

func bearerToken(r *http.Request) string {
	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")

	return token
}

// authenticate resolves the bearer token of a request to its user, writing
// a 401 itself when that fails.
func (c *Controller) authenticate(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, err := c.authner.CurrentUser(r.Context(), bearerToken(r))
	if err != nil {
		if !errors.Is(err, authn.ErrInvalidToken) {
			c.log.Warn("Could not resolve current user", "err", errors.Join(errCouldNotFetchFromDB, err))
		}

		http.Error(w, authn.ErrInvalidToken.Error(), http.StatusUnauthorized)

		return models.User{}, false
	}

	return user, true
}

func (c *Controller) writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("Could not write response", "err", errors.Join(errCouldNotEncodeResponse, err))
	}
}
