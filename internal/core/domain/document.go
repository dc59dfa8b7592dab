package domain

import "time"

// Document is a user-owned piece of content. OwnerID is derived from the
// authenticated identity at creation time and is never client-settable;
// an empty OwnerID means the document is unowned.
type Document struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id,omitempty"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	DateCreated  time.Time `json:"date_created"`
	LastModified time.Time `json:"last_modified"`
}

// DocumentUpdate carries the fields of a partial document update. Nil fields
// are left untouched. Identifier and owner are deliberately absent: neither
// can be moved by an update.
type DocumentUpdate struct {
	Title        *string
	Content      *string
	LastModified *time.Time
}
