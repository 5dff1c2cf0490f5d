package models

import (
	"strings"
	"time"
)

// Contact is a single address book entry. Every contact belongs to exactly
// one user; the owner is assigned by the server and is never client-settable.
type Contact struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactPage is the paginated envelope returned by contact listings.
type ContactPage struct {
	Data        []Contact `json:"data"`
	CurrentPage int       `json:"current_page"`
	LastPage    int       `json:"last_page"`
	PerPage     int       `json:"per_page"`
	Total       int64     `json:"total"`
}

// ParseTags turns a raw comma-separated tags line into a tag list, trimming
// whitespace and dropping empty entries.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
