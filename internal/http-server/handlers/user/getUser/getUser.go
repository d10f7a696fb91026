package getUser

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type UserResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	UserByID(id int64) (models.User, error)
}

func New(log *slog.Logger, users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getUser.New"

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

		user, err := users.UserByID(userID)
		if err != nil {
			log.Error("failed to get user", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user"))
			return
		}

		log.Info("user retrieved")

		responseOK(w, r, user)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, user models.User) {
	render.JSON(w, r, UserResponse{
		Response: response.OK(),
		User:     user,
	})
}
