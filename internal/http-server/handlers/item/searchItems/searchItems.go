package searchItems

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"itemshare/internal/lib/api/response"
	"itemshare/internal/lib/logger/sl"
	"itemshare/internal/models"
)

type ItemsResponse struct {
	response.Response
	Items []models.Item `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemSearcher
type ItemSearcher interface {
	SearchItems(text string) ([]models.Item, error)
}

func New(log *slog.Logger, items ItemSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.searchItems.New"

		log = log.With(slog.String("op", op))

		text := strings.TrimSpace(r.URL.Query().Get("text"))

		// A blank query matches nothing, no point hitting the database.
		if text == "" {
			log.Info("blank search text")
			render.JSON(w, r, ItemsResponse{
				Response: response.OK(),
				Items:    []models.Item{},
			})
			return
		}

		log = log.With(slog.String("text", text))

		list, err := items.SearchItems(text)
		if err != nil {
			log.Error("failed to search items", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search items"))
			return
		}

		log.Info("items found", slog.Int("count", len(list)))

		render.JSON(w, r, ItemsResponse{
			Response: response.OK(),
			Items:    list,
		})
	}
}
