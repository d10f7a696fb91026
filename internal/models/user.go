package models

import "time"

type User struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Login      *string    `json:"login,omitempty"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	Registered time.Time  `json:"registered"`
}

// UserPatch carries a partial update: nil means "leave the field alone".
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
