package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/config"
	"github.com/Mawa444/conso-gab-sub005/internal/geo"
	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/Mawa444/conso-gab-sub005/internal/storage"
	"github.com/Mawa444/conso-gab-sub005/pkg/log"
)

// OriginSource — источник текущей позиции для ленты (провайдер позиции).
type OriginSource interface {
	Current() models.Position
}

// feedCacheKey — ключ кэша страниц: координаты точки запроса,
// огрублённые до 1e-5 градуса (около метра), плюс смещение страницы.
type feedCacheKey struct {
	latE5  int64
	lngE5  int64
	offset int32
}

type feedCacheEntry struct {
	items []models.FeedItem
	at    time.Time
}

// Feed — роуминговая лента: бесконечная постраничная последовательность
// гетерогенных элементов вокруг текущей позиции.
//
// Контракты:
//   - размер страницы cfg.PageSize; страница короче — однозначный конец выдачи;
//   - смещение позиции больше cfg.MovementThresholdM относительно точки
//     последней УСПЕШНОЙ выборки инвалидирует всю накопленную
//     последовательность: следующая выборка начинается с offset 0;
//   - страница для ключа (origin, offset) свежа cfg.CacheTTL — в этом окне
//     повторный запрос отдаётся из кэша;
//   - ответ, чья точка запроса разошлась с текущей позицией за порог
//     за время полёта, отбрасывается (stale-response rejection).
//
// Накопленные коллекции иммутабельны: новая выборка порождает новую
// коллекцию, Items отдаёт копию. Pager безопасен для конкурентных вызовов:
// обращения сериализуются внутренним мьютексом.
type Feed struct {
	storage storage.SpatialStorage
	origins OriginSource
	cfg     config.FeedConfig

	// now подменяется в тестах кэша.
	now func() time.Time

	mu          sync.Mutex
	items       []models.FeedItem
	fetchOrigin models.Position
	haveFetched bool
	nextOffset  int32
	lastFull    bool
	cache       map[feedCacheKey]feedCacheEntry
}

// NewFeed создаёт пейджер роуминговой ленты поверх сервиса.
func (s *Service) NewFeed(origins OriginSource) *Feed {
	return &Feed{
		storage: s.storage,
		origins: origins,
		cfg:     s.cfg.Feed,
		now:     time.Now,
		cache:   make(map[feedCacheKey]feedCacheEntry),
	}
}

// NextPage выбирает следующую страницу ленты для текущей позиции.
func (f *Feed) NextPage(ctx context.Context) (models.FeedPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.nextPageLocked(ctx)
}

// HasNextPage — true, если последняя полученная страница была полной
// (или выборка ещё не начиналась).
func (f *Feed) HasNextPage() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.haveFetched {
		return true
	}

	return f.lastFull
}

// Items возвращает накопленную последовательность элементов.
// Если позиция ушла за порог (или выборка ещё не начиналась) —
// последовательность перевыбирается с offset 0 для новой точки.
func (f *Feed) Items(ctx context.Context) ([]models.FeedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if origin := f.origins.Current(); !origin.IsZero() {
		f.invalidateIfMovedLocked(origin)
	}

	if !f.haveFetched {
		if _, err := f.nextPageLocked(ctx); err != nil {
			return nil, err
		}
	}

	out := make([]models.FeedItem, len(f.items))
	copy(out, f.items)

	return out, nil
}

// Refresh — явная инвалидация: накопленные страницы и кэш сбрасываются,
// следующая выборка начнётся с offset 0.
func (f *Feed) Refresh() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resetLocked()
	f.cache = make(map[feedCacheKey]feedCacheEntry)
}

func (f *Feed) nextPageLocked(ctx context.Context) (models.FeedPage, error) {
	const op = "service.feed.NextPage"

	lg := log.From(ctx)

	// Лимит на перевыборку после устаревшего ответа: позиция меняется
	// с человеческой скоростью, второй заход догоняет её всегда.
	for attempt := 0; ; attempt++ {
		origin := f.origins.Current()
		if origin.IsZero() {
			return models.FeedPage{}, fmt.Errorf("%s: %w", op, ErrNoPosition)
		}

		f.invalidateIfMovedLocked(origin)
		offset := f.nextOffset

		key := feedCacheKey{
			latE5:  int64(math.Round(origin.Latitude * 1e5)),
			lngE5:  int64(math.Round(origin.Longitude * 1e5)),
			offset: offset,
		}

		if entry, ok := f.cache[key]; ok && f.now().Sub(entry.at) < f.cfg.CacheTTL {
			page := models.FeedPage{Items: entry.items, Offset: offset, Origin: origin, FetchedAt: entry.at}
			f.commitLocked(origin, page)

			lg.Info("feed_page_cached",
				slog.String("op", op),
				slog.Int("offset", int(offset)),
				slog.Int("items", len(page.Items)),
			)

			return page, nil
		}

		items, err := f.storage.UnifiedFeed(ctx, origin.Latitude, origin.Longitude, f.cfg.RadiusM, f.cfg.PageSize, offset)
		if err != nil {
			lg.Error("feed_page_storage_error",
				slog.String("op", op),
				slog.Int("offset", int(offset)),
				slog.String("err", err.Error()),
			)

			return models.FeedPage{}, fmt.Errorf("%s: %w", op, err)
		}

		now := f.now().UTC()

		// Stale-response rejection: пока летел запрос, позиция могла уйти
		// за порог — такой ответ отбрасывается, выборка начинается заново
		// с offset 0 для новой точки.
		if cur := f.origins.Current(); attempt < 1 && f.movedBeyondThreshold(origin, cur) {
			lg.Info("feed_page_stale_dropped",
				slog.String("op", op),
				slog.Int("offset", int(offset)),
			)

			f.resetLocked()
			continue
		}

		f.cache[key] = feedCacheEntry{items: items, at: now}

		page := models.FeedPage{Items: items, Offset: offset, Origin: origin, FetchedAt: now}
		f.commitLocked(origin, page)

		lg.Info("feed_page_ok",
			slog.String("op", op),
			slog.Int("offset", int(offset)),
			slog.Int("items", len(page.Items)),
			slog.Bool("has_next", f.lastFull),
		)

		return page, nil
	}
}

// invalidateIfMovedLocked сбрасывает накопленную последовательность, если
// origin ушёл за порог от точки последней успешной выборки.
func (f *Feed) invalidateIfMovedLocked(origin models.Position) {
	if !f.haveFetched {
		return
	}

	if f.movedBeyondThreshold(f.fetchOrigin, origin) {
		f.resetLocked()
	}
}

func (f *Feed) movedBeyondThreshold(a, b models.Position) bool {
	return geo.DistanceM(a.Latitude, a.Longitude, b.Latitude, b.Longitude) > f.cfg.MovementThresholdM
}

// commitLocked фиксирует успешную выборку: страница дописывается
// к последовательности, якорь инвалидации переносится на её origin.
func (f *Feed) commitLocked(origin models.Position, page models.FeedPage) {
	f.items = append(f.items, page.Items...)
	f.fetchOrigin = origin
	f.haveFetched = true
	f.nextOffset = page.Offset + f.cfg.PageSize
	f.lastFull = page.Full(f.cfg.PageSize)
}

func (f *Feed) resetLocked() {
	f.items = nil
	f.fetchOrigin = models.Position{}
	f.haveFetched = false
	f.nextOffset = 0
	f.lastFull = false
}

// FeedPage — стейтлес-вариант страницы ленты для вызывающих, ведущих
// собственный пейджер (HTTP-слой): одна страница для явной точки и смещения.
func (s *Service) FeedPage(ctx context.Context, origin models.Position, offset int32) (models.FeedPage, error) {
	const op = "service.feed.FeedPage"

	lg := log.From(ctx)

	if origin.IsZero() {
		return models.FeedPage{}, fmt.Errorf("%s: %w", op, ErrNoPosition)
	}
	if !origin.Valid() {
		return models.FeedPage{}, fmt.Errorf("%s: origin out of range: %w", op, ErrInvalidArgument)
	}
	if offset < 0 {
		return models.FeedPage{}, fmt.Errorf("%s: negative offset: %w", op, ErrInvalidArgument)
	}

	items, err := s.storage.UnifiedFeed(ctx, origin.Latitude, origin.Longitude, s.cfg.Feed.RadiusM, s.cfg.Feed.PageSize, offset)
	if err != nil {
		lg.Error("feed_page_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return models.FeedPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.FeedPage{
		Items:     items,
		Offset:    offset,
		Origin:    origin,
		FetchedAt: time.Now().UTC(),
	}, nil
}
