package models

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

type Booking struct {
	ID       int64         `json:"id"`
	ItemID   int64         `json:"item_id"`
	BookerID int64         `json:"booker_id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
}

// Overlaps reports whether [b.Start, b.End] intersects [start, end].
// Boundary touches count as overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !b.Start.After(end) && !b.End.Before(start)
}

// BookingState is the listing filter, evaluated against "now" at query time.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState is case-insensitive; an empty value means ALL.
func ParseBookingState(s string) (BookingState, error) {
	if s == "" {
		return StateAll, nil
	}

	state := BookingState(strings.ToUpper(s))
	switch state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	}

	return "", fmt.Errorf("unknown state: %s", s)
}
