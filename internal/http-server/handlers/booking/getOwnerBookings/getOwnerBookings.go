package getOwnerBookings

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerBookingsGetter
type OwnerBookingsGetter interface {
	BookingsByOwner(ownerID int64, state models.BookingState, from, size int) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings OwnerBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getOwnerBookings.New"

		log = log.With(slog.String("op", op))

		ownerID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		log = log.With(slog.Int64("owner_id", ownerID))

		state, err := models.ParseBookingState(r.URL.Query().Get("state"))
		if err != nil {
			log.Error("invalid state filter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		from, size, err := pageParams(r)
		if err != nil {
			log.Error("invalid page parameters", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		found, err := bookings.BookingsByOwner(ownerID, state, from, size)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(found)))

		responseOK(w, r, found)
	}
}

func pageParams(r *http.Request) (int, int, error) {
	from := 0
	size := 10

	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, errors.New("from must be a non-negative number")
		}
		from = v
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return 0, 0, errors.New("size must be a positive number")
		}
		size = v
	}

	return from, size, nil
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
