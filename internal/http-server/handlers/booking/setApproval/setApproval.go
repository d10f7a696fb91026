package setApproval

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

type ApprovalResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ApprovalSetter
type ApprovalSetter interface {
	SetApproval(bookingID, ownerID int64, approved bool) (models.Booking, error)
}

func New(log *slog.Logger, booking ApprovalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.setApproval.New"

		log = log.With(slog.String("op", op))

		ownerID, err := identity.UserID(r)
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

		approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
		if err != nil {
			log.Error("invalid approved parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("approved parameter must be true or false"))
			return
		}

		updated, err := booking.SetApproval(bookingID, ownerID, approved)
		if err != nil {
			log.Error("failed to set approval", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("only the item owner can decide a booking"))
			case errors.Is(err, storage.ErrAlreadyDecided):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking decided", slog.String("status", string(updated.Status)))

		responseOK(w, r, updated)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.JSON(w, r, ApprovalResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
