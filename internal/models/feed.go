package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FeedItem — элемент гетерогенной ленты «рядом со мной»
// (бизнес, объявление или история), уже с расстоянием от точки запроса.
type FeedItem struct {
	// ID — уникальный идентификатор элемента.
	ID uuid.UUID
	// Kind — вид элемента (business | listing | story).
	Kind EntityKind
	// Title — заголовок карточки.
	Title string
	// Subtitle — подзаголовок (категория, тизер).
	Subtitle string
	// ImageURL — ссылка на обложку.
	ImageURL string
	// DistanceM — расстояние от точки запроса в метрах (считает источник).
	DistanceM float64
	// CreatedAt — момент создания записи у источника (UTC).
	CreatedAt time.Time
	// Data — произвольная полезная нагрузка карточки, как её отдал источник.
	Data json.RawMessage
}

// FeedPage — одна страница ленты.
// Страницы иммутабельны после получения; накапливающуюся
// последовательность страниц ведёт пейджер, а не сама страница.
type FeedPage struct {
	// Items — элементы страницы в порядке выдачи источника.
	Items []FeedItem
	// Offset — смещение страницы (page_index * page_size).
	Offset int32
	// Origin — позиция, для которой страница была получена.
	Origin Position
	// FetchedAt — момент получения страницы (UTC).
	FetchedAt time.Time
}

// Full — true, если страница заполнена целиком (признак наличия следующей:
// короткая страница означает конец выдачи, отдельного total у источника нет).
func (p FeedPage) Full(pageSize int32) bool {
	return int32(len(p.Items)) == pageSize
}
