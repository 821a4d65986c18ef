package service

import (
	"sort"

	"github.com/Mawa444/conso-gab-sub005/internal/geo"
	"github.com/Mawa444/conso-gab-sub005/internal/models"
)

// FilterByDistance — чистая клиентская фильтрация уже загруженных в память
// сущностей (без обращения к пространственному источнику):
//   - элементы без координат отбрасываются;
//   - для остальных расстояние считается локально (гаверсинус);
//   - остаются элементы с расстоянием <= radiusKm, по возрастанию расстояния.
//
// Функция не возвращает ошибок: пустой вход даёт пустой выход.
func FilterByDistance[T models.Located](items []T, origin models.Position, radiusKm float64) []models.Ranked[T] {
	if origin.IsZero() {
		return nil
	}

	ranked := make([]models.Ranked[T], 0, len(items))
	for _, item := range items {
		lat, lng, ok := item.Location()
		if !ok {
			continue
		}

		km := geo.DistanceKm(origin.Latitude, origin.Longitude, lat, lng)
		if km > radiusKm {
			continue
		}

		ranked = append(ranked, models.Ranked[T]{
			Item:          item,
			DistanceKm:    km,
			DistanceLabel: geo.FormatDistance(km * 1000.0),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
