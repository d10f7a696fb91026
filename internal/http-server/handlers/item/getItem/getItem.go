package getItem

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

type ItemResponse struct {
	response.Response
	Item models.ItemDetails `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemGetter
type ItemGetter interface {
	ItemByID(itemID, userID int64) (models.ItemDetails, error)
}

func New(log *slog.Logger, items ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.getItem.New"

		log = log.With(slog.String("op", op))

		userID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		itemIDStr := chi.URLParam(r, "id")
		itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
		if err != nil {
			log.Error("invalid item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid item id format"))
			return
		}

		log = log.With(slog.Int64("item_id", itemID))

		item, err := items.ItemByID(itemID, userID)
		if err != nil {
			log.Error("failed to get item", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrItemNotFound),
				errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get item"))
			}
			return
		}

		log.Info("item retrieved")

		render.JSON(w, r, ItemResponse{
			Response: response.OK(),
			Item:     item,
		})
	}
}
