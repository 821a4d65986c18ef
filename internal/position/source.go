// position реализует провайдера географической позиции: получение,
// кэширование и непрерывное отслеживание позиции вызывающей стороны,
// с durable-слотом последней известной позиции и явной машиной состояний.
package position

import (
	"context"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
)

// Options — параметры запроса к платформенному источнику позиции.
type Options struct {
	// HighAccuracy — запрашивать максимально точную фиксацию.
	HighAccuracy bool
	// Timeout — сколько ждать ответа источника.
	Timeout time.Duration
	// MaxFixAge — допустимый возраст кэшированной фиксации:
	// источник вправе отдать недавнюю фиксацию вместо новой.
	MaxFixAge time.Duration
}

// Update — одно событие непрерывного отслеживания: либо позиция, либо ошибка.
type Update struct {
	Position models.Position
	Err      error
}

// Source — контракт платформенного источника позиции.
//
// Ошибки Current и Update.Err классифицируются таксономией пакета
// (ErrPermissionDenied, ErrUnavailable, ErrTimeout, ErrNotSupported).
type Source interface {
	// Current возвращает одну фиксацию позиции.
	Current(ctx context.Context, opts Options) (models.Position, error)
	// Watch запускает непрерывное отслеживание. Возвращённая функция
	// останавливает отслеживание и освобождает ресурсы источника;
	// после её вызова канал закрывается.
	Watch(ctx context.Context, opts Options) (<-chan Update, func(), error)
}
