package models

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind — вид сущности в выдаче геопоиска.
type EntityKind string

const (
	KindBusiness EntityKind = "business"
	KindListing  EntityKind = "listing"
	KindStory    EntityKind = "story"
)

// ValidEntityKind — проверка, что вид сущности известен движку.
func ValidEntityKind(k EntityKind) bool {
	switch k {
	case KindBusiness, KindListing, KindStory:
		return true
	default:
		return false
	}
}

// Entity — сущность, возвращаемая пространственным источником.
//
// Особенности:
//   - DistanceM заполняется самим источником (не пересчитывается движком),
//     чтобы выдача была согласована с его индексом;
//   - координаты опциональны: записи без геопривязки встречаются
//     в нефильтрованной (fallback) выдаче.
type Entity struct {
	// ID — уникальный идентификатор сущности.
	ID uuid.UUID
	// Kind — вид сущности.
	Kind EntityKind
	// Name — название.
	Name string
	// Category — категория (рубрика).
	Category string
	// Address — адрес, если есть.
	Address string
	// ImageURL — ссылка на обложку.
	ImageURL string
	// Latitude/Longitude — координаты; nil, если сущность не геопривязана.
	Latitude  *float64
	Longitude *float64
	// DistanceM — расстояние до точки запроса в метрах, посчитанное источником.
	DistanceM float64
	// CreatedAt — момент создания записи у источника (UTC).
	CreatedAt time.Time
}

// Location реализует Located.
func (e Entity) Location() (float64, float64, bool) {
	if e.Latitude == nil || e.Longitude == nil {
		return 0, 0, false
	}

	return *e.Latitude, *e.Longitude, true
}

// Catalog — каталог товаров/услуг, принадлежащий бизнесу.
// Каталоги не геопривязаны: расстояние наследуется от владеющего бизнеса.
type Catalog struct {
	// ID — уникальный идентификатор каталога.
	ID uuid.UUID
	// BusinessID — идентификатор владеющего бизнеса.
	BusinessID uuid.UUID
	// Title — название каталога.
	Title string
	// Description — краткое описание.
	Description string
	// ImageURL — ссылка на обложку.
	ImageURL string
	// CreatedAt — момент создания записи (UTC).
	CreatedAt time.Time
}

// Ranked — обёртка результата геопоиска: сущность плюс расстояние от точки
// запроса и его человекочитаемая подпись ("450 m" / "2.5 km" / "unknown").
//
// Коллекции Ranked иммутабельны после построения: новый запрос порождает
// новую коллекцию, а не мутирует старую.
type Ranked[T any] struct {
	Item T
	// DistanceKm — расстояние в километрах, >= 0.
	DistanceKm float64
	// DistanceLabel — подпись для показа пользователю.
	DistanceLabel string
}
