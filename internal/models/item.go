package models

type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemDetails is the item as shown in read endpoints: comments always,
// last/next approved bookings only when the caller owns the item.
type ItemDetails struct {
	Item
	LastBooking *Booking  `json:"last_booking,omitempty"`
	NextBooking *Booking  `json:"next_booking,omitempty"`
	Comments    []Comment `json:"comments"`
}
