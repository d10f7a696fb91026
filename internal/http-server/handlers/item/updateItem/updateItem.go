package updateItem

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

// PatchRequest fields are pointers: absent fields stay untouched.
type PatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type ItemResponse struct {
	response.Response
	Item models.Item `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemUpdater
type ItemUpdater interface {
	UpdateItem(itemID, ownerID int64, patch models.ItemPatch) (models.Item, error)
}

func New(log *slog.Logger, items ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.updateItem.New"

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

		var req PatchRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		updated, err := items.UpdateItem(itemID, ownerID, models.ItemPatch{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		})
		if err != nil {
			log.Error("failed to update item", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrItemNotFound),
				errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("only the owner can edit an item"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update item"))
			}
			return
		}

		log.Info("item updated")

		responseOK(w, r, updated)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, item models.Item) {
	render.JSON(w, r, ItemResponse{
		Response: response.OK(),
		Item:     item,
	})
}
