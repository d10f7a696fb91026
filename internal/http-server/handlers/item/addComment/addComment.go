package addComment

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentResponse struct {
	response.Response
	Comment models.Comment `json:"comment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentSaver
type CommentSaver interface {
	SaveComment(itemID, authorID int64, text string) (models.Comment, error)
}

func New(log *slog.Logger, comments CommentSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.addComment.New"

		log = log.With(slog.String("op", op))

		authorID, err := identity.UserID(r)
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
			slog.Int64("author_id", authorID),
		)

		var req CommentRequest

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

		comment, err := comments.SaveComment(itemID, authorID, req.Text)
		if err != nil {
			log.Error("failed to save comment", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrItemNotFound),
				errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrCommentNotAllowed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to save comment"))
			}
			return
		}

		log.Info("comment added", slog.Int64("comment_id", comment.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CommentResponse{
			Response: response.OK(),
			Comment:  comment,
		})
	}
}
