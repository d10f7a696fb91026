package createItem

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type ItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"request_id"`
}

type ItemResponse struct {
	response.Response
	Item models.Item `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemSaver
type ItemSaver interface {
	SaveItem(item models.Item) (models.Item, error)
}

func New(log *slog.Logger, items ItemSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.createItem.New"

		log = log.With(slog.String("op", op))

		ownerID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		log = log.With(slog.Int64("owner_id", ownerID))

		var req ItemRequest

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

		saved, err := items.SaveItem(models.Item{
			OwnerID:     ownerID,
			Name:        req.Name,
			Description: req.Description,
			Available:   *req.Available,
			RequestID:   req.RequestID,
		})
		if err != nil {
			log.Error("failed to save item", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save item"))
			return
		}

		log.Info("item created", slog.Int64("item_id", saved.ID))

		responseCreated(w, r, saved)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, item models.Item) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ItemResponse{
		Response: response.OK(),
		Item:     item,
	})
}
