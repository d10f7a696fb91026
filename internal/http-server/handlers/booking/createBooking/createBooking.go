package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type BookingRequest struct {
	ItemID int64     `json:"item_id" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(itemID, bookerID int64, start, end time.Time) (models.Booking, error)
}

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		bookerID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		log = log.With(slog.Int64("booker_id", bookerID))

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		// The period check comes before any storage lookup: an inverted
		// or empty range fails regardless of the item.
		if !req.Start.Before(req.End) {
			log.Error("invalid booking period")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("start must be before end"))
			return
		}

		booked, err := booking.CreateBooking(req.ItemID, bookerID, req.Start, req.End)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound),
				errors.Is(err, storage.ErrItemNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrOwnItemBooking),
				errors.Is(err, storage.ErrItemUnavailable),
				errors.Is(err, storage.ErrTimeConflict):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int64("booking_id", booked.ID))

		responseCreated(w, r, booked)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
