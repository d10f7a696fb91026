// Package storage declares the error vocabulary shared between the store
// implementations and the HTTP handlers. Handlers match these sentinels
// with errors.Is and translate them to status codes.
package storage

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")

	// ErrEmailExists signals a duplicate email on user create or patch.
	ErrEmailExists = errors.New("email already in use")

	// ErrNotOwner covers every owner-only action, including viewing a
	// booking as neither booker nor owner. Mapped to 409, not 403.
	ErrNotOwner = errors.New("user is not the owner")

	ErrOwnItemBooking  = errors.New("owner cannot book own item")
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrTimeConflict    = errors.New("item is already booked for this period")
	ErrAlreadyDecided  = errors.New("booking status already decided")

	// ErrCommentNotAllowed: the author has no completed approved booking
	// of the item.
	ErrCommentNotAllowed = errors.New("user has not completed a booking of this item")
)
