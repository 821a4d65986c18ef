package position

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/config"
	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/Mawa444/conso-gab-sub005/pkg/log"
)

// State — состояние провайдера позиции.
type State string

const (
	StateIdle        State = "idle"
	StateRequesting  State = "requesting"
	StateAvailable   State = "available"
	StateDenied      State = "denied"
	StateUnavailable State = "unavailable"
	StateTracking    State = "tracking"
)

// Provider владеет последней известной позицией и её "слотом" в Store.
//
// Машина состояний: Idle -> Requesting -> {Available, Denied, Unavailable};
// StartTracking переводит в Tracking, каждое успешное обновление фиксирует
// Available как дискретное состояние возврата; StopTracking возвращает
// в него (не в Idle).
//
// Позиция отдаётся по значению вместе с номером версии: потребители
// сравнивают версии вместо подписки на неявную реактивность. Каждая
// успешная фиксация атомарно замещает позицию и инкрементирует версию.
type Provider struct {
	cfg   config.PositionConfig
	src   Source
	store Store

	mu sync.RWMutex
	// state — текущее состояние; prev — дискретное состояние возврата
	// после StopTracking.
	state State
	prev  State
	pos   models.Position
	// version растёт на каждой принятой фиксации; стартовая/персистентная
	// позиция имеет версию 1.
	version uint64
	lastErr error
	// fallback — позиция ещё «оптимистичная» (дефолт или сохранённая),
	// живой фиксации не было.
	fallback  bool
	stopWatch func()
}

// New создаёт провайдера в состоянии Idle. Инициализация — Init.
func New(cfg config.PositionConfig, src Source, store Store) *Provider {
	return &Provider{
		cfg:   cfg,
		src:   src,
		store: store,
		state: StateIdle,
		prev:  StateUnavailable,
	}
}

// Init выполняет двухфазный оптимистичный старт:
//  1. поднимает сохранённую позицию; если она моложе потолка свежести —
//     стартуем Available с ней, не блокируясь на живом запросе;
//  2. иначе стартуем Available с дефолтной позицией основного рынка
//     и сразу запрашиваем живую фиксацию в фоне.
//
// Init не возвращает ошибок получения позиции: браузинг не должен
// блокироваться проблемами геолокации.
func (p *Provider) Init(ctx context.Context) {
	const op = "position/provider/Init"

	lg := log.From(ctx)
	now := time.Now().UTC()

	persisted, ok, err := p.store.Load(ctx)
	if err != nil {
		lg.Warn("position_slot_load_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		ok = false
	}

	p.mu.Lock()
	if ok && persisted.FreshWithin(p.cfg.FreshnessTTL, now) {
		p.pos = persisted
		p.fallback = true
		p.state = StateAvailable
		p.prev = StateAvailable
		p.version = 1
		p.mu.Unlock()

		lg.Info("position_bootstrap_persisted",
			slog.String("op", op),
			slog.Duration("age", now.Sub(persisted.CapturedAt)),
		)
		return
	}

	p.pos = models.Position{
		Latitude:   p.cfg.DefaultLatitude,
		Longitude:  p.cfg.DefaultLongitude,
		CapturedAt: now,
	}
	p.fallback = true
	p.state = StateAvailable
	p.prev = StateAvailable
	p.version = 1
	p.mu.Unlock()

	lg.Info("position_bootstrap_default", slog.String("op", op))

	// Живой запрос в фоне; ошибка уже сконвертирована в состояние.
	go func() {
		_, _ = p.Refresh(ctx)
	}()
}

// Refresh запрашивает живую фиксацию у источника (requestPosition).
//
// Успех: позиция замещается, версия растёт, состояние Available
// (или остаётся Tracking), слот перезаписывается, ошибка сбрасывается.
// Ошибка: конвертируется в состояние (Denied/Unavailable), позиция
// и версия не меняются; ошибка также возвращается вызывающему.
func (p *Provider) Refresh(ctx context.Context) (models.Position, error) {
	const op = "position/provider/Refresh"

	lg := log.From(ctx)

	p.mu.Lock()
	tracking := p.state == StateTracking
	if !tracking {
		p.state = StateRequesting
	}
	p.mu.Unlock()

	reqCtx, cancel := context.WithTimeout(ctx, p.cfg.RequestTimeout)
	defer cancel()

	pos, err := p.src.Current(reqCtx, Options{
		HighAccuracy: true,
		Timeout:      p.cfg.RequestTimeout,
		MaxFixAge:    p.cfg.MaxFixAge,
	})
	if err != nil {
		p.fail(err)
		lg.Warn("position_request_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return models.Position{}, err
	}

	p.apply(ctx, pos)
	lg.Info("position_request_ok", slog.String("op", op))

	return pos, nil
}

// StartTracking запускает непрерывное отслеживание позиции.
// Повторный вызов при активном отслеживании — no-op.
func (p *Provider) StartTracking(ctx context.Context) error {
	const op = "position/provider/StartTracking"

	p.mu.Lock()
	if p.stopWatch != nil {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	ch, stop, err := p.src.Watch(ctx, Options{
		HighAccuracy: true,
		Timeout:      p.cfg.RequestTimeout,
		MaxFixAge:    p.cfg.MaxFixAge,
	})
	if err != nil {
		p.fail(err)
		return err
	}

	p.mu.Lock()
	p.stopWatch = stop
	p.state = StateTracking
	p.mu.Unlock()

	lg := log.From(ctx)
	lg.Info("position_tracking_start", slog.String("op", op))

	go func() {
		for upd := range ch {
			if upd.Err != nil {
				p.fail(upd.Err)
				lg.Warn("position_tracking_error",
					slog.String("op", op),
					slog.String("err", upd.Err.Error()),
				)
				continue
			}

			p.apply(ctx, upd.Position)
		}
	}()

	return nil
}

// StopTracking останавливает отслеживание и возвращает провайдера
// в дискретное состояние, предшествовавшее Tracking (не в Idle).
func (p *Provider) StopTracking() {
	p.mu.Lock()
	stop := p.stopWatch
	p.stopWatch = nil
	if p.state == StateTracking {
		p.state = p.prev
	}
	p.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Current — последняя известная позиция (возможно, стартовая/сохранённая).
func (p *Provider) Current() models.Position {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pos
}

// Snapshot — позиция вместе с номером версии для явных проверок свежести.
func (p *Provider) Snapshot() (models.Position, uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pos, p.version
}

// State — текущее состояние машины.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Err — последняя ошибка получения позиции (nil после успешной фиксации).
func (p *Provider) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// UsingFallback — true, пока живой фиксации не было и позиция
// «оптимистичная» (дефолт или поднятая из слота).
func (p *Provider) UsingFallback() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fallback
}

// apply принимает успешную фиксацию: замещает позицию, двигает версию,
// сбрасывает ошибку и перезаписывает слот (best effort).
func (p *Provider) apply(ctx context.Context, pos models.Position) {
	if pos.CapturedAt.IsZero() {
		pos.CapturedAt = time.Now().UTC()
	}

	p.mu.Lock()
	p.pos = pos
	p.version++
	p.lastErr = nil
	p.fallback = false
	if p.state == StateTracking {
		p.prev = StateAvailable
	} else {
		p.state = StateAvailable
		p.prev = StateAvailable
	}
	p.mu.Unlock()

	if err := p.store.Save(ctx, pos); err != nil {
		log.From(ctx).Warn("position_slot_save_failed",
			slog.String("op", "position/provider/apply"),
			slog.String("err", err.Error()),
		)
	}
}

// fail конвертирует ошибку источника в состояние.
// Позиция не трогается: браузинг продолжается с последней известной.
func (p *Provider) fail(err error) {
	next := StateUnavailable
	if errors.Is(err, ErrPermissionDenied) {
		next = StateDenied
	}

	p.mu.Lock()
	p.lastErr = err
	if p.state == StateTracking {
		p.prev = next
	} else {
		p.state = next
		p.prev = next
	}
	p.mu.Unlock()
}
