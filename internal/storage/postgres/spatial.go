package postgres

import (
	"context"
	"fmt"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Расстояние считается на стороне БД той же сферической формулой
// (гаверсинус, средний радиус 6371 км), что и у клиентской фильтрации,
// чтобы выдача источника и локальные вычисления не расходились.
const distanceExpr = `
	2 * 6371000 * asin(sqrt(
		pow(sin(radians(latitude - $1) / 2), 2) +
		cos(radians($1)) * cos(radians(latitude)) *
		pow(sin(radians(longitude - $2) / 2), 2)
	))`

// NearestEntities возвращает активные сущности вида kind в радиусе radiusM
// метров от (lat, lng), по возрастанию расстояния; тай-брейк — created_at DESC.
func (s *Storage) NearestEntities(ctx context.Context, kind models.EntityKind, lat, lng, radiusM float64, limit int32) ([]models.Entity, error) {
	const op = "storage.postgres.NearestEntities"

	if limit <= 0 {
		limit = 1
	}

	rows, err := s.db.Query(ctx, fmt.Sprintf(`
	SELECT id, kind, name, category, address, image_url, latitude, longitude, created_at, distance_m
	FROM (
		SELECT id, kind, name, category, address, image_url, latitude, longitude, created_at,
			%s AS distance_m
		FROM entities
		WHERE active AND kind = $3 AND latitude IS NOT NULL AND longitude IS NOT NULL
	) AS ranked
	WHERE distance_m <= $4
	ORDER BY distance_m ASC, created_at DESC
	LIMIT $5
	`, distanceExpr), lat, lng, string(kind), radiusM, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items, err := scanEntities(rows, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// RecentActive — непространственный запасной путь: активные сущности вида
// kind, самые свежие первыми. Расстояние не считается (DistanceM == 0).
func (s *Storage) RecentActive(ctx context.Context, kind models.EntityKind, limit int32) ([]models.Entity, error) {
	const op = "storage.postgres.RecentActive"

	if limit <= 0 {
		limit = 1
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, kind, name, category, address, image_url, latitude, longitude, created_at
	FROM entities
	WHERE active AND kind = $1
	ORDER BY created_at DESC
	LIMIT $2
	`, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items, err := scanEntities(rows, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CatalogsByBusinessIDs возвращает активные каталоги перечисленных бизнесов.
func (s *Storage) CatalogsByBusinessIDs(ctx context.Context, ids []uuid.UUID) ([]models.Catalog, error) {
	const op = "storage.postgres.CatalogsByBusinessIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, business_id, title, description, image_url, created_at
	FROM catalogs
	WHERE active AND business_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Catalog
	for rows.Next() {
		var c models.Catalog
		if scanErr := rows.Scan(
			&c.ID,
			&c.BusinessID,
			&c.Title,
			&c.Description,
			&c.ImageURL,
			&c.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		c.CreatedAt = c.CreatedAt.UTC()
		items = append(items, c)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// UnifiedFeed — страница гетерогенной ленты в радиусе radiusM от (lat, lng).
// Сортировка: расстояние ASC, created_at DESC; пагинация limit/offset.
func (s *Storage) UnifiedFeed(ctx context.Context, lat, lng, radiusM float64, limit, offset int32) ([]models.FeedItem, error) {
	const op = "storage.postgres.UnifiedFeed"

	if limit <= 0 {
		limit = 1
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Query(ctx, fmt.Sprintf(`
	SELECT id, kind, name, category, image_url, created_at, data, distance_m
	FROM (
		SELECT id, kind, name, category, image_url, created_at, data,
			%s AS distance_m
		FROM entities
		WHERE active AND latitude IS NOT NULL AND longitude IS NOT NULL
	) AS ranked
	WHERE distance_m <= $3
	ORDER BY distance_m ASC, created_at DESC
	LIMIT $4 OFFSET $5
	`, distanceExpr), lat, lng, radiusM, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.FeedItem
	for rows.Next() {
		var (
			item models.FeedItem
			kind string
			data []byte
		)
		if scanErr := rows.Scan(
			&item.ID,
			&kind,
			&item.Title,
			&item.Subtitle,
			&item.ImageURL,
			&item.CreatedAt,
			&data,
			&item.DistanceM,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		item.Kind = models.EntityKind(kind)
		item.Data = data
		item.CreatedAt = item.CreatedAt.UTC()
		items = append(items, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// scanEntities вычитывает строки сущностей; withDistance управляет наличием
// колонки distance_m в выборке.
func scanEntities(rows pgx.Rows, withDistance bool) ([]models.Entity, error) {
	var items []models.Entity
	for rows.Next() {
		var (
			e    models.Entity
			kind string
		)

		dest := []any{
			&e.ID,
			&kind,
			&e.Name,
			&e.Category,
			&e.Address,
			&e.ImageURL,
			&e.Latitude,
			&e.Longitude,
			&e.CreatedAt,
		}
		if withDistance {
			dest = append(dest, &e.DistanceM)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		e.Kind = models.EntityKind(kind)
		e.CreatedAt = e.CreatedAt.UTC()
		items = append(items, e)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows: %w", rows.Err())
	}

	return items, nil
}
