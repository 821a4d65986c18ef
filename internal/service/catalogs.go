package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/Mawa444/conso-gab-sub005/pkg/log"
	"github.com/google/uuid"
)

// SearchCatalogsNearBusinesses — производная операция: геопоиск бизнесов,
// затем выборка каталогов найденных бизнесов. Каталоги не геопривязаны,
// поэтому каждому приписывается расстояние его владеющего бизнеса;
// итог отсортирован по унаследованному расстоянию по возрастанию.
//
// Каталоги бизнесов из запасного (непространственного) пути наследуют
// подпись "unknown".
func (s *Service) SearchCatalogsNearBusinesses(ctx context.Context, req models.SearchRequest) ([]models.Ranked[models.Catalog], error) {
	const op = "service.catalogs.SearchCatalogsNearBusinesses"

	lg := log.From(ctx)

	businesses, err := s.Search(ctx, req, models.KindBusiness)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(businesses) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(businesses))
	byBusiness := make(map[uuid.UUID]models.Ranked[models.Entity], len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.Item.ID)
		byBusiness[b.Item.ID] = b
	}

	catalogs, err := s.storage.CatalogsByBusinessIDs(ctx, ids)
	if err != nil {
		lg.Error("catalogs_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ranked := make([]models.Ranked[models.Catalog], 0, len(catalogs))
	for _, c := range catalogs {
		owner, ok := byBusiness[c.BusinessID]
		if !ok {
			// Источник вернул чужой каталог; пропускаем.
			continue
		}

		ranked = append(ranked, models.Ranked[models.Catalog]{
			Item:          c,
			DistanceKm:    owner.DistanceKm,
			DistanceLabel: owner.DistanceLabel,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	lg.Info("catalogs_ok",
		slog.String("op", op),
		slog.Int("businesses", len(businesses)),
		slog.Int("catalogs", len(ranked)),
	)

	return ranked, nil
}
