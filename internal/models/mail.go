package models

import (
	"time"
)

// MailPage is one page of a message listing.
type MailPage struct {
	IDs           []string
	NextPageToken string
}

// MailMessage is the metadata-only detail record of a message.
type MailMessage struct {
	ID       string
	From     EmailAddress
	Subject  string
	Date     time.Time
	LabelIDs []string // raw ids as returned by the mail service
	Labels   []string // resolved label names, falls back to ids
}

type EmailAddress struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Display returns the sender name when present, otherwise the address.
func (a EmailAddress) Display() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Email
}

// HasLabel reports whether the raw label id list contains id.
func (m *MailMessage) HasLabel(id string) bool {
	for _, l := range m.LabelIDs {
		if l == id {
			return true
		}
	}
	return false
}
