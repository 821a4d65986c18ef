package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
	apierrors "github.com/Mawa444/conso-gab-sub005/internal/transport/http/errors"
)

// feedItem — карточка гетерогенной ленты.
type feedItem struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Title     string          `json:"title"`
	Subtitle  string          `json:"subtitle,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	DistanceM float64         `json:"distance_m"`
	CreatedAt time.Time       `json:"created_at"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type feedResponse struct {
	Items      []feedItem `json:"items"`
	Offset     int32      `json:"offset"`
	NextOffset *int32     `json:"next_offset,omitempty"`
	FetchedAt  time.Time  `json:"fetched_at"`
}

// FeedPage — GET /feed.
// Страница ленты «рядом со мной» для точки запроса (lat/lng из query либо
// текущая позиция провайдера) и смещения offset. Роуминговую последовательность
// ведёт клиент: короткая страница (без next_offset) означает конец выдачи.
func (h *Handlers) FeedPage(w http.ResponseWriter, r *http.Request) {
	origin, err := h.queryOrigin(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	offset, _, err := queryInt32(r, "offset")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.FeedPage(r.Context(), origin, offset)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := feedResponse{
		Items:     feedItemsToAPI(page.Items),
		Offset:    page.Offset,
		FetchedAt: page.FetchedAt,
	}
	if page.Full(h.cfg.Feed.PageSize) {
		next := page.Offset + h.cfg.Feed.PageSize
		resp.NextOffset = &next
	}

	writeJSON(w, http.StatusOK, resp)
}

func feedItemsToAPI(items []models.FeedItem) []feedItem {
	out := make([]feedItem, 0, len(items))
	for _, it := range items {
		out = append(out, feedItem{
			ID:        it.ID.String(),
			Kind:      string(it.Kind),
			Title:     it.Title,
			Subtitle:  it.Subtitle,
			ImageURL:  it.ImageURL,
			DistanceM: it.DistanceM,
			CreatedAt: it.CreatedAt,
			Data:      it.Data,
		})
	}

	return out
}
