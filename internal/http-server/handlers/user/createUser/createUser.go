package createUser

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type UserRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Login    *string    `json:"login"`
	Birthday *time.Time `json:"birthday"`
}

type UserResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	SaveUser(user models.User) (models.User, error)
}

func New(log *slog.Logger, users UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.createUser.New"

		log = log.With(slog.String("op", op))

		var req UserRequest

		err := render.DecodeJSON(r.Body, &req)
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

		saved, err := users.SaveUser(models.User{
			Name:     req.Name,
			Email:    req.Email,
			Login:    req.Login,
			Birthday: req.Birthday,
		})
		if err != nil {
			log.Error("failed to save user", sl.Err(err))

			if errors.Is(err, storage.ErrEmailExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save user"))
			return
		}

		log.Info("user created", slog.Int64("user_id", saved.ID))

		responseCreated(w, r, saved)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, user models.User) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, UserResponse{
		Response: response.OK(),
		User:     user,
	})
}
