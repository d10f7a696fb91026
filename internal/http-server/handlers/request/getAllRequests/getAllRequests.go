package getAllRequests

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type RequestsResponse struct {
	response.Response
	Requests []models.ItemRequest `json:"requests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AllRequestsGetter
type AllRequestsGetter interface {
	AllRequests(userID int64) ([]models.ItemRequest, error)
}

func New(log *slog.Logger, requests AllRequestsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.getAllRequests.New"

		log = log.With(slog.String("op", op))

		userID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		log = log.With(slog.Int64("user_id", userID))

		list, err := requests.AllRequests(userID)
		if err != nil {
			log.Error("failed to list requests", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list requests"))
			return
		}

		log.Info("requests listed", slog.Int("count", len(list)))

		render.JSON(w, r, RequestsResponse{
			Response: response.OK(),
			Requests: list,
		})
	}
}
