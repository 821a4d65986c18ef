package position

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/redis/go-redis/v9"
)

// storedPosition — сериализованное представление позиции в слоте.
type storedPosition struct {
	Latitude   float64  `json:"lat"`
	Longitude  float64  `json:"lng"`
	AccuracyM  *float64 `json:"acc,omitempty"`
	CapturedAt int64    `json:"ts"` // unix millis, UTC
}

type redisStore struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// NewRedisStore создаёт слот позиции поверх Redis из URL
// (например, redis://:pass@host:6379/0). Если key пустой — используется
// "discovery:last_position". TTL ключа равен потолку свежести: протухшую
// позицию Redis удаляет сам, так что Load стареющих значений не отдаёт.
func NewRedisStore(redisURL, key string, ttl time.Duration) (Store, error) {
	if key == "" {
		key = "discovery:last_position"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisStore{rdb: rdb, key: key, ttl: ttl}, nil
}

func (s *redisStore) Load(ctx context.Context) (models.Position, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Position{}, false, nil
		}
		return models.Position{}, false, err
	}

	var stored storedPosition
	if err := json.Unmarshal(raw, &stored); err != nil {
		// Битый слот трактуем как отсутствующий: позиция восстановится
		// при ближайшей успешной фиксации.
		return models.Position{}, false, nil
	}

	return models.Position{
		Latitude:   stored.Latitude,
		Longitude:  stored.Longitude,
		AccuracyM:  stored.AccuracyM,
		CapturedAt: time.UnixMilli(stored.CapturedAt).UTC(),
	}, true, nil
}

func (s *redisStore) Save(ctx context.Context, pos models.Position) error {
	raw, err := json.Marshal(storedPosition{
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		AccuracyM:  pos.AccuracyM,
		CapturedAt: pos.CapturedAt.UTC().UnixMilli(),
	})
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, s.key, raw, s.ttl).Err()
}

func (s *redisStore) Close() error { return s.rdb.Close() }

var _ Store = (*redisStore)(nil)
