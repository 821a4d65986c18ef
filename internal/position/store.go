package position

import (
	"context"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
)

// Store — durable-слот последней известной позиции.
//
// Слот один: каждая успешная фиксация атомарно замещает предыдущую.
// Писатель единственный (провайдер), читателей может быть много.
type Store interface {
	// Load возвращает сохранённую позицию и признак её наличия.
	Load(ctx context.Context) (models.Position, bool, error)
	// Save замещает сохранённую позицию.
	Save(ctx context.Context, pos models.Position) error
	// Close освобождает ресурсы слота.
	Close() error
}
