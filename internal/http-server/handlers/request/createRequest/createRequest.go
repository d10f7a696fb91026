package createRequest

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

type RequestBody struct {
	Description string `json:"description" validate:"required"`
}

type RequestResponse struct {
	response.Response
	Request models.ItemRequest `json:"request"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestSaver
type RequestSaver interface {
	SaveRequest(requesterID int64, description string) (models.ItemRequest, error)
}

func New(log *slog.Logger, requests RequestSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.createRequest.New"

		log = log.With(slog.String("op", op))

		requesterID, err := identity.UserID(r)
		if err != nil {
			log.Error("failed to identify caller", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id header"))
			return
		}

		log = log.With(slog.Int64("requester_id", requesterID))

		var req RequestBody

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		saved, err := requests.SaveRequest(requesterID, req.Description)
		if err != nil {
			log.Error("failed to save request", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save request"))
			return
		}

		log.Info("request created", slog.Int64("request_id", saved.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RequestResponse{
			Response: response.OK(),
			Request:  saved,
		})
	}
}
