package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adelgado/libreta/pkg/models"
	"github.com/adelgado/libreta/pkg/persisters"
	"github.com/adelgado/libreta/pkg/validation"
)

type validationResponse struct {
	Errors validation.Errors `json:"errors"`
}

func (c *Controller) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	user, ok := c.authenticate(w, r)
	if !ok {
		return
	}

	log := c.log.With("email", user.Email)

	log.Debug("Handling list contacts")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	params := persisters.ListContactsParams{
		Query:   r.URL.Query().Get("q"),
		Sort:    r.URL.Query().Get("sort"),
		Dir:     r.URL.Query().Get("dir"),
		Page:    page,
		PerPage: perPage,
	}

	contacts, total, err := c.store.ListContacts(r.Context(), user.ID, params)
	if err != nil {
		log.Warn("Could not list contacts", "err", errors.Join(errCouldNotFetchFromDB, err))

		http.Error(w, errCouldNotFetchFromDB.Error(), http.StatusInternalServerError)

		return
	}

	lastPage := int((total + int64(params.PageSize()) - 1) / int64(params.PageSize()))
	if lastPage < 1 {
		lastPage = 1
	}

	c.writeJSON(w, log, http.StatusOK, models.ContactPage{
		Data:        contacts,
		CurrentPage: params.PageNumber(),
		LastPage:    lastPage,
		PerPage:     params.PageSize(),
		Total:       total,
	})
}

// ownedContact fetches the contact of the request path and enforces that it
// belongs to the given user, writing the 404 or 403 itself otherwise.
func (c *Controller) ownedContact(w http.ResponseWriter, r *http.Request, log *slog.Logger, user models.User) (models.Contact, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, models.ErrNotFound.Error(), http.StatusNotFound)

		return models.Contact{}, false
	}

	contact, err := c.store.GetContact(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, models.ErrNotFound.Error(), http.StatusNotFound)

			return models.Contact{}, false
		}

		log.Warn("Could not get contact", "err", errors.Join(errCouldNotFetchFromDB, err))

		http.Error(w, errCouldNotFetchFromDB.Error(), http.StatusInternalServerError)

		return models.Contact{}, false
	}

	if contact.UserID != user.ID {
		http.Error(w, models.ErrForbidden.Error(), http.StatusForbidden)

		return models.Contact{}, false
	}

	return contact, true
}

// contactParams decodes and validates the request body, writing the 400 or
// the 422 with its per-field error map itself on failure.
func (c *Controller) contactParams(w http.ResponseWriter, r *http.Request, log *slog.Logger) (models.ContactParams, bool) {
	var params models.ContactParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Warn("Could not read contact", "err", errors.Join(errCouldNotReadRequest, err))

		http.Error(w, errCouldNotReadRequest.Error(), http.StatusBadRequest)

		return models.ContactParams{}, false
	}

	if errs := validation.ValidateContact(params); errs != nil {
		log.Debug("Rejecting invalid contact", "err", errs)

		c.writeJSON(w, log, http.StatusUnprocessableEntity, validationResponse{
			Errors: errs,
		})

		return models.ContactParams{}, false
	}

	return params, true
}

func (c *Controller) HandleCreateContact(w http.ResponseWriter, r *http.Request) {
	user, ok := c.authenticate(w, r)
	if !ok {
		return
	}

	log := c.log.With("email", user.Email)

	log.Debug("Handling create contact")

	params, ok := c.contactParams(w, r, log)
	if !ok {
		return
	}

	contact, err := c.store.CreateContact(r.Context(), user.ID, params)
	if err != nil {
		log.Warn("Could not create contact", "err", errors.Join(errCouldNotInsertIntoDB, err))

		http.Error(w, errCouldNotInsertIntoDB.Error(), http.StatusInternalServerError)

		return
	}

	c.writeJSON(w, log, http.StatusCreated, contact)
}

func (c *Controller) HandleGetContact(w http.ResponseWriter, r *http.Request) {
	user, ok := c.authenticate(w, r)
	if !ok {
		return
	}

	log := c.log.With("email", user.Email)

	log.Debug("Handling get contact")

	contact, ok := c.ownedContact(w, r, log, user)
	if !ok {
		return
	}

	c.writeJSON(w, log, http.StatusOK, contact)
}

func (c *Controller) HandleUpdateContact(w http.ResponseWriter, r *http.Request) {
	user, ok := c.authenticate(w, r)
	if !ok {
		return
	}

	log := c.log.With("email", user.Email)

	log.Debug("Handling update contact")

	contact, ok := c.ownedContact(w, r, log, user)
	if !ok {
		return
	}

	params, ok := c.contactParams(w, r, log)
	if !ok {
		return
	}

	updated, err := c.store.UpdateContact(r.Context(), contact.ID, params)
	if err != nil {
		log.Warn("Could not update contact", "err", errors.Join(errCouldNotUpdateInDB, err))

		http.Error(w, errCouldNotUpdateInDB.Error(), http.StatusInternalServerError)

		return
	}

	c.writeJSON(w, log, http.StatusOK, updated)
}

func (c *Controller) HandleDeleteContact(w http.ResponseWriter, r *http.Request) {
	user, ok := c.authenticate(w, r)
	if !ok {
		return
	}

	log := c.log.With("email", user.Email)

	log.Debug("Handling delete contact")

	contact, ok := c.ownedContact(w, r, log, user)
	if !ok {
		return
	}

	if err := c.store.DeleteContact(r.Context(), contact.ID); err != nil {
		log.Warn("Could not delete contact", "err", errors.Join(errCouldNotDeleteFromDB, err))

		http.Error(w, errCouldNotDeleteFromDB.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
