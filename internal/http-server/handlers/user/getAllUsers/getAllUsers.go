package getAllUsers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
)

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersGetter
type UsersGetter interface {
	AllUsers() ([]models.User, error)
}

func New(log *slog.Logger, users UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getAllUsers.New"

		log = log.With(slog.String("op", op))

		found, err := users.AllUsers()
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		log.Info("users retrieved", slog.Int("count", len(found)))

		responseOK(w, r, found)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, users []models.User) {
	render.JSON(w, r, UsersResponse{
		Response: response.OK(),
		Users:    users,
	})
}
