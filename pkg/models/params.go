package models

// ContactParams carries the client-settable contact fields of a create or
// update request. Updates replace every field, so there are no partial
// variants.
type ContactParams struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Company string   `json:"company"`
	Tags    []string `json:"tags"`
	Notes   string   `json:"notes"`
}
