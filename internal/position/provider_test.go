package position

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/config"
	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/stretchr/testify/require"
)

// Тесты машины состояний провайдера позиции:
//  - оптимистичный старт: свежая сохранённая позиция -> Available без живого запроса;
//  - протухшая/отсутствующая -> дефолтная позиция + живой запрос в фоне;
//  - Refresh: успех замещает позицию/версию и перезаписывает слот;
//  - конвертация ошибок в состояние (Denied/Unavailable), позиция не теряется;
//  - трекинг: обновления двигают версию, StopTracking возвращает
//    в предшествовавшее дискретное состояние, не в Idle.

// fakeStore — слот позиции в памяти.
type fakeStore struct {
	mu    sync.Mutex
	pos   models.Position
	ok    bool
	saves int
}

func (f *fakeStore) Load(_ context.Context) (models.Position, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos, f.ok, nil
}

func (f *fakeStore) Save(_ context.Context, pos models.Position) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos, f.ok = pos, true
	f.saves++
	return nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// fakeSource — источник с заранее заданным ответом.
type fakeSource struct {
	mu       sync.Mutex
	pos      models.Position
	err      error
	requests int
}

func (f *fakeSource) Current(_ context.Context, _ Options) (models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	if f.err != nil {
		return models.Position{}, f.err
	}
	return f.pos, nil
}

func (f *fakeSource) Watch(ctx context.Context, opts Options) (<-chan Update, func(), error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	// Для трекинга в тестах используется PushSource.
	return NewPushSource().Watch(ctx, opts)
}

func (f *fakeSource) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func testCfg() config.PositionConfig {
	return config.PositionConfig{
		FreshnessTTL:     24 * time.Hour,
		DefaultLatitude:  0.4162,
		DefaultLongitude: 9.4673,
		RequestTimeout:   200 * time.Millisecond,
		MaxFixAge:        time.Minute,
	}
}

func fix(lat, lng float64, age time.Duration) models.Position {
	return models.Position{
		Latitude:   lat,
		Longitude:  lng,
		CapturedAt: time.Now().UTC().Add(-age),
	}
}

// TestInit_FreshPersisted — свежая сохранённая позиция поднимается без живого запроса.
func TestInit_FreshPersisted(t *testing.T) {
	t.Parallel()

	st := &fakeStore{pos: fix(0.45, 9.41, time.Hour), ok: true}
	src := &fakeSource{pos: fix(1, 1, 0)}
	p := New(testCfg(), src, st)

	p.Init(context.Background())

	require.Equal(t, StateAvailable, p.State())
	require.True(t, p.UsingFallback())

	pos, ver := p.Snapshot()
	require.InDelta(t, 0.45, pos.Latitude, 1e-9)
	require.Equal(t, uint64(1), ver)
	require.Equal(t, 0, src.requestCount())
}

// TestInit_StalePersisted — позиция старше потолка свежести отбрасывается
// в пользу дефолтной, живой запрос уходит в фоне.
func TestInit_StalePersisted(t *testing.T) {
	t.Parallel()

	st := &fakeStore{pos: fix(0.45, 9.41, 25*time.Hour), ok: true}
	src := &fakeSource{pos: fix(0.5, 9.5, 0)}
	p := New(testCfg(), src, st)

	p.Init(context.Background())

	pos := p.Current()
	// Сразу после Init — дефолт либо уже принятая фоновая фиксация.
	require.True(t, pos.Latitude == 0.4162 || pos.Latitude == 0.5)

	// Фоновая фиксация должна принятся.
	require.Eventually(t, func() bool {
		cur := p.Current()
		return cur.Latitude == 0.5 && !p.UsingFallback()
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, 1, src.requestCount())
}

// TestInit_NoPersisted — пустой слот: дефолт, Available.
func TestInit_NoPersisted(t *testing.T) {
	t.Parallel()

	st := &fakeStore{}
	src := &fakeSource{pos: fix(0.5, 9.5, 0)}
	p := New(testCfg(), src, st)

	p.Init(context.Background())

	require.Equal(t, StateAvailable, p.State())
	pos := p.Current()
	require.False(t, pos.IsZero())
}

// TestRefresh_Success — позиция замещена, версия растёт, слот перезаписан.
func TestRefresh_Success(t *testing.T) {
	t.Parallel()

	st := &fakeStore{pos: fix(0.45, 9.41, time.Hour), ok: true}
	src := &fakeSource{pos: fix(0.5, 9.5, 0)}
	p := New(testCfg(), src, st)
	p.Init(context.Background())

	_, verBefore := p.Snapshot()

	got, err := p.Refresh(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 0.5, got.Latitude, 1e-9)

	pos, verAfter := p.Snapshot()
	require.InDelta(t, 0.5, pos.Latitude, 1e-9)
	require.Greater(t, verAfter, verBefore)
	require.Equal(t, StateAvailable, p.State())
	require.False(t, p.UsingFallback())
	require.NoError(t, p.Err())
	require.GreaterOrEqual(t, st.saveCount(), 1)
}

// TestRefresh_Denied — отказ в доступе: состояние Denied, позиция не теряется.
func TestRefresh_Denied(t *testing.T) {
	t.Parallel()

	st := &fakeStore{pos: fix(0.45, 9.41, time.Hour), ok: true}
	src := &fakeSource{err: ErrPermissionDenied}
	p := New(testCfg(), src, st)
	p.Init(context.Background())

	_, err := p.Refresh(context.Background())
	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Equal(t, StateDenied, p.State())
	require.ErrorIs(t, p.Err(), ErrPermissionDenied)

	// Последняя известная позиция сохранена для продолжения браузинга.
	require.InDelta(t, 0.45, p.Current().Latitude, 1e-9)
}

// TestRefresh_Unavailable — прочие ошибки дают Unavailable.
func TestRefresh_Unavailable(t *testing.T) {
	t.Parallel()

	st := &fakeStore{pos: fix(0.45, 9.41, time.Hour), ok: true}
	src := &fakeSource{err: ErrTimeout}
	p := New(testCfg(), src, st)
	p.Init(context.Background())

	_, err := p.Refresh(context.Background())
	require.ErrorIs(t, err, ErrTimeout)
	require.Equal(t, StateUnavailable, p.State())
}

// TestTracking_UpdatesAndStop — обновления через Watch двигают позицию/версию
// и персистятся; StopTracking возвращает в Available.
func TestTracking_UpdatesAndStop(t *testing.T) {
	t.Parallel()

	src := NewPushSource()
	st := &fakeStore{pos: fix(0.45, 9.41, time.Hour), ok: true}
	p := New(testCfg(), src, st)
	p.Init(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, p.StartTracking(ctx))
	require.Equal(t, StateTracking, p.State())

	src.Publish(fix(0.5, 9.5, 0))
	require.Eventually(t, func() bool {
		pos, ver := p.Snapshot()
		return pos.Latitude == 0.5 && ver == 2
	}, time.Second, 10*time.Millisecond)

	src.Publish(fix(0.6, 9.6, 0))
	require.Eventually(t, func() bool {
		_, ver := p.Snapshot()
		return ver == 3
	}, time.Second, 10*time.Millisecond)

	p.StopTracking()
	require.Equal(t, StateAvailable, p.State())
	require.GreaterOrEqual(t, st.saveCount(), 2)
}

// TestTracking_StartIsIdempotent — повторный StartTracking при активном
// отслеживании не перезапускает watch.
func TestTracking_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	src := NewPushSource()
	p := New(testCfg(), src, &fakeStore{})
	p.Init(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, p.StartTracking(ctx))
	require.NoError(t, p.StartTracking(ctx))
	require.Equal(t, StateTracking, p.State())

	p.StopTracking()
}

// TestTracking_WatchNotSupported — терминальная ошибка платформы.
func TestTracking_WatchNotSupported(t *testing.T) {
	t.Parallel()

	src := &fakeSource{err: ErrNotSupported}
	p := New(testCfg(), src, &fakeStore{})

	err := p.StartTracking(context.Background())
	require.ErrorIs(t, err, ErrNotSupported)
	require.Equal(t, StateUnavailable, p.State())
}
