// Package identity extracts the caller's user id from the X-Sharer-User-Id
// header. Every item, booking and request endpoint identifies the caller
// this way; the header is trusted as-is, there is no token auth in scope.
package identity

import (
	"errors"
	"net/http"
	"strconv"
)

const Header = "X-Sharer-User-Id"

var (
	ErrMissing = errors.New("user id header is missing")
	ErrInvalid = errors.New("user id header is invalid")
)

func UserID(r *http.Request) (int64, error) {
	raw := r.Header.Get(Header)
	if raw == "" {
		return 0, ErrMissing
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalid
	}

	return id, nil
}
