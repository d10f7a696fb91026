package deleteItem

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
	"itemshare/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemDeleter
type ItemDeleter interface {
	DeleteItem(itemID, ownerID int64) error
}

func New(log *slog.Logger, items ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.deleteItem.New"

		log = log.With(slog.String("op", op))

		ownerID, err := identity.UserID(r)
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

		log = log.With(
			slog.Int64("item_id", itemID),
			slog.Int64("owner_id", ownerID),
		)

		err = items.DeleteItem(itemID, ownerID)
		if err != nil {
			log.Error("failed to delete item", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrItemNotFound),
				errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("only the owner can delete an item"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete item"))
			}
			return
		}

		log.Info("item deleted")

		render.JSON(w, r, response.OK())
	}
}
