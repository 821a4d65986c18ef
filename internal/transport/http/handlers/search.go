package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
	apierrors "github.com/Mawa444/conso-gab-sub005/internal/transport/http/errors"
)

// rankedEntity — карточка выдачи геопоиска.
type rankedEntity struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Address       string    `json:"address,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	DistanceKm    float64   `json:"distance_km"`
	DistanceLabel string    `json:"distance_label"`
	CreatedAt     time.Time `json:"created_at"`
}

// rankedCatalog — карточка каталога с расстоянием владеющего бизнеса.
type rankedCatalog struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	DistanceKm    float64   `json:"distance_km"`
	DistanceLabel string    `json:"distance_label"`
	CreatedAt     time.Time `json:"created_at"`
}

type searchResponse struct {
	Items []rankedEntity `json:"items"`
}

type catalogsResponse struct {
	Items []rankedCatalog `json:"items"`
}

// NearbyByKind — GET /nearby/{kind}.
// Точка запроса: query-параметры lat/lng либо текущая позиция провайдера.
// Необязательные query: limit, min_results.
func (h *Handlers) NearbyByKind(w http.ResponseWriter, r *http.Request) {
	kind := models.EntityKind(chi.URLParam(r, "kind"))
	if !models.ValidEntityKind(kind) {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	req, err := h.searchRequest(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.svc.Search(r.Context(), req, kind)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Items: rankedEntitiesToAPI(items)})
}

// CatalogsNearby — GET /nearby/businesses/catalogs.
// Каталоги бизнесов из геопоиска, с унаследованным расстоянием владельца.
func (h *Handlers) CatalogsNearby(w http.ResponseWriter, r *http.Request) {
	req, err := h.searchRequest(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.svc.SearchCatalogsNearBusinesses(r.Context(), req)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, catalogsResponse{Items: rankedCatalogsToAPI(items)})
}

// searchRequest собирает запрос геопоиска из дефолтов конфигурации
// и необязательных query-переопределений.
func (h *Handlers) searchRequest(r *http.Request) (models.SearchRequest, error) {
	origin, err := h.queryOrigin(r)
	if err != nil {
		return models.SearchRequest{}, err
	}

	req := h.svc.NewSearchRequest(origin)

	if limit, ok, err := queryInt32(r, "limit"); err != nil {
		return models.SearchRequest{}, err
	} else if ok {
		req.ResultLimit = limit
	}

	if min, ok, err := queryInt32(r, "min_results"); err != nil {
		return models.SearchRequest{}, err
	} else if ok {
		req.MinResults = min
	}

	return req, nil
}

func rankedEntitiesToAPI(items []models.Ranked[models.Entity]) []rankedEntity {
	out := make([]rankedEntity, 0, len(items))
	for _, it := range items {
		out = append(out, rankedEntity{
			ID:            it.Item.ID.String(),
			Kind:          string(it.Item.Kind),
			Name:          it.Item.Name,
			Category:      it.Item.Category,
			Address:       it.Item.Address,
			ImageURL:      it.Item.ImageURL,
			Latitude:      it.Item.Latitude,
			Longitude:     it.Item.Longitude,
			DistanceKm:    it.DistanceKm,
			DistanceLabel: it.DistanceLabel,
			CreatedAt:     it.Item.CreatedAt,
		})
	}

	return out
}

func rankedCatalogsToAPI(items []models.Ranked[models.Catalog]) []rankedCatalog {
	out := make([]rankedCatalog, 0, len(items))
	for _, it := range items {
		out = append(out, rankedCatalog{
			ID:            it.Item.ID.String(),
			BusinessID:    it.Item.BusinessID.String(),
			Title:         it.Item.Title,
			Description:   it.Item.Description,
			ImageURL:      it.Item.ImageURL,
			DistanceKm:    it.DistanceKm,
			DistanceLabel: it.DistanceLabel,
			CreatedAt:     it.Item.CreatedAt,
		})
	}

	return out
}
