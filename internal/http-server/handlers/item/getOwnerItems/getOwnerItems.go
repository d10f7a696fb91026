package getOwnerItems

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

type ItemsResponse struct {
	response.Response
	Items []models.ItemDetails `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerItemsGetter
type OwnerItemsGetter interface {
	ItemsByOwner(ownerID int64) ([]models.ItemDetails, error)
}

func New(log *slog.Logger, items OwnerItemsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.getOwnerItems.New"

		log = log.With(slog.String("op", op))

		ownerID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		log = log.With(slog.Int64("owner_id", ownerID))

		list, err := items.ItemsByOwner(ownerID)
		if err != nil {
			log.Error("failed to list items", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list items"))
			return
		}

		log.Info("items listed", slog.Int("count", len(list)))

		render.JSON(w, r, ItemsResponse{
			Response: response.OK(),
			Items:    list,
		})
	}
}
