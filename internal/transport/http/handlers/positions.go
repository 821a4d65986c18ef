package handlers

import (
	"net/http"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
	apierrors "github.com/Mawa444/conso-gab-sub005/internal/transport/http/errors"
)

// positionFixRequest — координатный фикс от клиентского устройства.
type positionFixRequest struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	AccuracyM  *float64   `json:"accuracy_m,omitempty"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// positionResponse — текущая позиция и состояние провайдера.
type positionResponse struct {
	State      string    `json:"state"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	AccuracyM  *float64  `json:"accuracy_m,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
	Version    uint64    `json:"version"`
	Fallback   bool      `json:"fallback"`
}

// PublishPosition — POST /positions.
// Принимает фикс от устройства и отдаёт его источнику позиции.
func (h *Handlers) PublishPosition(w http.ResponseWriter, r *http.Request) {
	var req positionFixRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	capturedAt := time.Now().UTC()
	if req.CapturedAt != nil {
		capturedAt = req.CapturedAt.UTC()
	}

	pos := models.Position{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		AccuracyM:  req.AccuracyM,
		CapturedAt: capturedAt,
	}
	if !pos.Valid() {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	h.fixes.Publish(pos)

	w.WriteHeader(http.StatusAccepted)
}

// CurrentPosition — GET /positions/current.
// Снимок провайдера: позиция, версия, состояние и признак фолбэка.
func (h *Handlers) CurrentPosition(w http.ResponseWriter, r *http.Request) {
	pos, version := h.positions.Snapshot()

	writeJSON(w, http.StatusOK, positionResponse{
		State:      string(h.positions.State()),
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		AccuracyM:  pos.AccuracyM,
		CapturedAt: pos.CapturedAt,
		Version:    version,
		Fallback:   h.positions.UsingFallback(),
	})
}

// RefreshPosition — POST /positions/refresh.
// Запрашивает свежий фикс у источника и отдаёт обновлённый снимок.
// Отказ в доступе и недоступность источника транслируются фронту
// как 403/503 соответственно.
func (h *Handlers) RefreshPosition(w http.ResponseWriter, r *http.Request) {
	if _, err := h.positions.Refresh(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.CurrentPosition(w, r)
}
