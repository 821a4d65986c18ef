// storage определяет контракты доступа к внешнему пространственному
// источнику данных для discovery-service.
//
// Движок сам не строит пространственных индексов: источник обязан уметь
// отвечать на вопрос «сущности вида K в радиусе R от точки P» и отдавать
// расстояние, посчитанное на своей стороне.
package storage

import (
	"context"
	"errors"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
)

// SpatialStorage описывает операции пространственного источника.
type SpatialStorage interface {
	// NearestEntities возвращает активные сущности вида kind в радиусе radiusM
	// метров от точки (lat, lng), не более limit штук, по возрастанию
	// расстояния; при равных расстояниях — более свежие первыми.
	// Расстояние в Entity.DistanceM посчитано источником.
	NearestEntities(ctx context.Context, kind models.EntityKind, lat, lng, radiusM float64, limit int32) ([]models.Entity, error)
	// RecentActive — непространственный запасной путь: активные сущности вида
	// kind, самые свежие первыми, не более limit штук. Координаты и расстояние
	// не гарантируются.
	RecentActive(ctx context.Context, kind models.EntityKind, limit int32) ([]models.Entity, error)
	// CatalogsByBusinessIDs возвращает активные каталоги, принадлежащие
	// перечисленным бизнесам. Порядок не специфицирован.
	CatalogsByBusinessIDs(ctx context.Context, ids []uuid.UUID) ([]models.Catalog, error)
	// UnifiedFeed — единая точка входа роуминговой ленты: гетерогенные элементы
	// в радиусе radiusM от (lat, lng), страница limit/offset, по возрастанию
	// расстояния; при равных — более свежие первыми.
	UnifiedFeed(ctx context.Context, lat, lng, radiusM float64, limit, offset int32) ([]models.FeedItem, error)
}

// Storage задаёт контракт доступа к хранилищу для discovery-service.
type Storage interface {
	SpatialStorage
	Close()
}
