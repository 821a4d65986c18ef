package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/config"
	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/Mawa444/conso-gab-sub005/internal/position"
	"github.com/Mawa444/conso-gab-sub005/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя: сервис геопоиска,
// провайдер позиции и приёмник координатных фиксов от клиентов.
type Handlers struct {
	svc       *service.Service
	positions *position.Provider
	fixes     *position.PushSource
	cfg       config.Config
}

func New(svc *service.Service, positions *position.Provider, fixes *position.PushSource, cfg config.Config) *Handlers {
	return &Handlers{
		svc:       svc,
		positions: positions,
		fixes:     fixes,
		cfg:       cfg,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> 400.
func errInvalidArgument() error {
	return fmt.Errorf("parse: %w", service.ErrInvalidArgument)
}

// queryOrigin выбирает точку запроса: явные lat/lng из query-параметров
// либо текущая позиция провайдера.
func (h *Handlers) queryOrigin(r *http.Request) (models.Position, error) {
	latRaw := r.URL.Query().Get("lat")
	lngRaw := r.URL.Query().Get("lng")

	if latRaw == "" && lngRaw == "" {
		return h.positions.Current(), nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return models.Position{}, errInvalidArgument()
	}

	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return models.Position{}, errInvalidArgument()
	}

	pos := models.Position{Latitude: lat, Longitude: lng, CapturedAt: time.Now().UTC()}
	if !pos.Valid() {
		return models.Position{}, errInvalidArgument()
	}

	return pos, nil
}

// queryInt32 парсит необязательный числовой query-параметр.
func queryInt32(r *http.Request, name string) (int32, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return 0, false, errInvalidArgument()
	}

	return int32(n), true, nil
}
