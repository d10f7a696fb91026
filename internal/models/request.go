package models

import "time"

// ItemRequest is a wishlist entry: a description of an item somebody wants
// but nobody has listed yet.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requester_id"`
	Created     time.Time `json:"created"`
}
