package getBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	BookingByID(bookingID, userID int64) (models.Booking, error)
}

func New(log *slog.Logger, booking BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		userID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		bookingIDStr := chi.URLParam(r, "id")
		if bookingIDStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID))

		found, err := booking.BookingByID(bookingID, userID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("only the booker or the item owner can view a booking"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get booking"))
			}
			return
		}

		log.Info("booking retrieved")

		responseOK(w, r, found)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
