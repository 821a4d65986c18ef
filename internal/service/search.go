package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Mawa444/conso-gab-sub005/internal/geo"
	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/Mawa444/conso-gab-sub005/pkg/log"
)

// unknownDistanceLabel — подпись расстояния для результатов запасного пути.
const unknownDistanceLabel = "unknown"

// Search выполняет прогрессивный геопоиск сущностей вида kind вокруг
// req.Origin.
//
// Алгоритм:
//  1. запрос к пространственному источнику с радиусом req.InitialRadiusM;
//  2. ошибка канала запроса (не «мало результатов») — один переход на
//     непространственный запасной путь RecentActive: результаты помечаются
//     distance_label == "unknown", пространственный путь не ретраится;
//  3. результатов меньше req.MinResults и радиус ниже потолка — радиус
//     удваивается (с обрезкой по req.MaxRadiusM) и запрос повторяется;
//  4. остановка при достижении req.MinResults или потолка радиуса; короткая
//     выдача — валидный исход, не ошибка.
//
// Число запросов к источнику ограничено
// ceil(log2(MaxRadiusM/InitialRadiusM)) + 1.
//
// Ошибки:
//   - ErrInvalidArgument — битый запрос или неизвестный kind;
//   - ErrNoPosition — запрос без позиции (нарушение контракта вызова);
//   - ошибка запасного пути прокидывается как есть (дальше фолбэков нет).
func (s *Service) Search(ctx context.Context, req models.SearchRequest, kind models.EntityKind) ([]models.Ranked[models.Entity], error) {
	const op = "service.search.Search"

	lg := log.From(ctx)

	if req.Origin.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrNoPosition)
	}
	if !models.ValidEntityKind(kind) {
		return nil, fmt.Errorf("%s: unknown kind %q: %w", op, kind, ErrInvalidArgument)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, ErrInvalidArgument)
	}

	lg.Info("search_request",
		slog.String("op", op),
		slog.String("kind", string(kind)),
		slog.Float64("initial_radius_m", req.InitialRadiusM),
		slog.Float64("max_radius_m", req.MaxRadiusM),
	)

	var (
		found   []models.Entity
		queries int
	)

	radius := req.InitialRadiusM
	for {
		items, err := s.storage.NearestEntities(ctx, kind, req.Origin.Latitude, req.Origin.Longitude, radius, req.ResultLimit)
		queries++
		if err != nil {
			lg.Warn("search_spatial_failed",
				slog.String("op", op),
				slog.Float64("radius_m", radius),
				slog.String("err", err.Error()),
			)

			return s.searchFallback(ctx, kind, req.ResultLimit)
		}

		found = items

		if int32(len(found)) >= req.MinResults || radius >= req.MaxRadiusM {
			break
		}

		radius = radius * 2
		if radius > req.MaxRadiusM {
			radius = req.MaxRadiusM
		}
	}

	lg.Info("search_ok",
		slog.String("op", op),
		slog.Int("items", len(found)),
		slog.Int("queries", queries),
		slog.Float64("final_radius_m", radius),
	)

	return rankEntities(found), nil
}

// searchFallback — непространственный запасной путь: активные сущности,
// самые свежие первыми, расстояние неизвестно.
// Ошибка запасного пути — уже настоящая ошибка для вызывающего.
func (s *Service) searchFallback(ctx context.Context, kind models.EntityKind, limit int32) ([]models.Ranked[models.Entity], error) {
	const op = "service.search.searchFallback"

	lg := log.From(ctx)

	items, err := s.storage.RecentActive(ctx, kind, limit)
	if err != nil {
		lg.Error("search_fallback_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("search_fallback_ok",
		slog.String("op", op),
		slog.Int("items", len(items)),
	)

	ranked := make([]models.Ranked[models.Entity], 0, len(items))
	for _, item := range items {
		ranked = append(ranked, models.Ranked[models.Entity]{
			Item:          item,
			DistanceKm:    0,
			DistanceLabel: unknownDistanceLabel,
		})
	}

	return ranked, nil
}

// rankEntities оборачивает выдачу источника: расстояние уже посчитано
// источником и не пересчитывается, добавляется только подпись.
func rankEntities(items []models.Entity) []models.Ranked[models.Entity] {
	ranked := make([]models.Ranked[models.Entity], 0, len(items))
	for _, item := range items {
		ranked = append(ranked, models.Ranked[models.Entity]{
			Item:          item,
			DistanceKm:    item.DistanceM / 1000.0,
			DistanceLabel: geo.FormatDistance(item.DistanceM),
		})
	}

	return ranked
}
