package updateUser

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

// PatchRequest fields are pointers: absent fields stay untouched.
type PatchRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type UserResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserUpdater
type UserUpdater interface {
	UpdateUser(id int64, patch models.UserPatch) (models.User, error)
}

func New(log *slog.Logger, users UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.updateUser.New"

		log = log.With(slog.String("op", op))

		userIDStr := chi.URLParam(r, "id")
		if userIDStr == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			log.Error("invalid user id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id format"))
			return
		}

		log = log.With(slog.Int64("user_id", userID))

		var req PatchRequest

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

		updated, err := users.UpdateUser(userID, models.UserPatch{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			log.Error("failed to update user", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrEmailExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update user"))
			}
			return
		}

		log.Info("user updated")

		responseOK(w, r, updated)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, user models.User) {
	render.JSON(w, r, UserResponse{
		Response: response.OK(),
		User:     user,
	})
}
