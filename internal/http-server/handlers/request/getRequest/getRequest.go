package getRequest

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

type RequestResponse struct {
	response.Response
	Request models.ItemRequest `json:"request"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestGetter
type RequestGetter interface {
	RequestByID(requestID, userID int64) (models.ItemRequest, error)
}

func New(log *slog.Logger, requests RequestGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.getRequest.New"

		log = log.With(slog.String("op", op))

		userID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		requestIDStr := chi.URLParam(r, "id")
		requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
		if err != nil {
			log.Error("invalid request id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request id format"))
			return
		}

		log = log.With(slog.Int64("request_id", requestID))

		request, err := requests.RequestByID(requestID, userID)
		if err != nil {
			log.Error("failed to get request", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrRequestNotFound),
				errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get request"))
			}
			return
		}

		log.Info("request retrieved")

		render.JSON(w, r, RequestResponse{
			Response: response.OK(),
			Request:  request,
		})
	}
}
