// Package client wraps the REST API for frontends. It attaches the bearer
// token to every authenticated request and funnels authentication failures
// into a single hook so callers can force re-login in one place.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/adelgado/libreta/pkg/models"
	"github.com/adelgado/libreta/pkg/persisters"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)

// ValidationError carries the per-field messages of a rejected write so
// forms can surface them inline.
type ValidationError struct {
	Errors map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}

	return "validation failed for fields: " + strings.Join(fields, ", ")
}

type loginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

// ListContactsOptions are the query parameters of a contact listing. Zero
// values are simply omitted and the server applies its defaults.
type ListContactsOptions struct {
	Query   string
	Sort    string
	Dir     string
	Page    int
	PerPage int
}

type Client struct {
	log *slog.Logger

	raddr string
	http  *http.Client

	// Commands fire from their own goroutines, so the token a 401 clears
	// may be read by another in-flight request at the same time.
	mu    sync.Mutex
	token string

	// onAuthExpired runs whenever an authenticated call comes back 401,
	// after the stored token has been dropped.
	onAuthExpired func()
}

func NewClient(
	log *slog.Logger,

	raddr string,
	httpClient *http.Client,

	onAuthExpired func(),
) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		log: log,

		raddr: strings.TrimSuffix(raddr, "/"),
		http:  httpClient,

		onAuthExpired: onAuthExpired,
	}
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, auth bool) error {
	u := c.raddr + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.Token(); auth && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("Sending request", "method", method, "path", path)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	c.log.Debug("Got response", "method", method, "path", path, "status", res.StatusCode)

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		if !auth {
			return ErrInvalidCredentials
		}

		c.SetToken("")
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}

		return ErrSessionExpired

	case res.StatusCode == http.StatusForbidden:
		return models.ErrForbidden

	case res.StatusCode == http.StatusNotFound:
		return models.ErrNotFound

	case res.StatusCode == http.StatusUnprocessableEntity:
		verr := &ValidationError{}
		if err := json.NewDecoder(res.Body).Decode(verr); err != nil {
			return err
		}

		return verr

	case res.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("unexpected status: %v", res.Status)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// Login exchanges credentials for a session, storing the token for all
// following calls.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &res, false); err != nil {
		return models.User{}, err
	}

	c.SetToken(res.AccessToken)

	return res.User, nil
}

// Logout invalidates the session server-side and always drops the stored
// token, whatever the server said.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil, nil, true)

	c.SetToken("")

	if err != nil && !errors.Is(err, ErrSessionExpired) {
		return err
	}

	return nil
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &user, true); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *Client) ListContacts(ctx context.Context, opts ListContactsOptions) (models.ContactPage, error) {
	query := url.Values{}
	if opts.Query != "" {
		query.Set("q", opts.Query)
	}
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}
	if opts.Dir != "" {
		query.Set("dir", opts.Dir)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	var page models.ContactPage
	if err := c.do(ctx, http.MethodGet, "/contacts", query, nil, &page, true); err != nil {
		return models.ContactPage{}, err
	}

	return page, nil
}

func (c *Client) CreateContact(ctx context.Context, params models.ContactParams) (models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodPost, "/contacts", nil, params, &contact, true); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (c *Client) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodGet, "/contacts/"+strconv.FormatInt(id, 10), nil, nil, &contact, true); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, id int64, params models.ContactParams) (models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodPut, "/contacts/"+strconv.FormatInt(id, 10), nil, params, &contact, true); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

func (c *Client) DeleteContact(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/contacts/"+strconv.FormatInt(id, 10), nil, nil, nil, true)
}

// The server-side fallbacks, exposed so frontends can start from the
// effective listing state.
const (
	DefaultSort    = persisters.SortByCreatedAt
	DefaultDir     = persisters.DirDesc
	DefaultPerPage = persisters.DefaultPerPage
)
