package model

import "time"

// User is the persisted directory entry. Email holds the normalized
// (lower-cased, trimmed) address; the repository enforces its uniqueness
// with a unique index.
type User struct {
	ID                string    `json:"id" bson:"_id"`
	Name              string    `json:"name" bson:"name"`
	Email             string    `json:"email" bson:"email"`
	Role              string    `json:"role" bson:"role"`
	NotificationState string    `json:"notification_state" bson:"notification_state"`
	NotificationError string    `json:"notification_error,omitempty" bson:"notification_error,omitempty"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// UserPage is one page of the directory listing.
type UserPage struct {
	Users []*User `json:"users"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
}

type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize applies paging defaults and caps the page size.
func (r *PageRequest) Normalize() {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.Size < 1 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
}
