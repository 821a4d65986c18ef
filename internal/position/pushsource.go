package position

import (
	"context"
	"sync"
	"time"

	"github.com/Mawa444/conso-gab-sub005/internal/models"
)

// PushSource — серверная реализация Source: фиксации позиции приходят
// снаружи (клиент шлёт их по HTTP), а не от железа. Current отдаёт
// последнюю достаточно свежую фиксацию либо ждёт новую до таймаута;
// Watch раздаёт каждую опубликованную фиксацию всем подписчикам.
type PushSource struct {
	mu       sync.Mutex
	latest   models.Position
	waiters  []chan models.Position
	watchers map[int]chan Update
	nextID   int
}

// NewPushSource создаёт источник без начальной фиксации.
func NewPushSource() *PushSource {
	return &PushSource{
		watchers: make(map[int]chan Update),
	}
}

// Publish публикует новую фиксацию: будит ожидающих Current
// и рассылает событие всем активным Watch-подписчикам.
func (s *PushSource) Publish(pos models.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = pos

	for _, w := range s.waiters {
		w <- pos
	}
	s.waiters = nil

	for _, ch := range s.watchers {
		// Отставший подписчик пропускает событие, но не блокирует публикацию.
		select {
		case ch <- Update{Position: pos}:
		default:
		}
	}
}

// Current возвращает последнюю фиксацию, если она моложе opts.MaxFixAge,
// иначе ждёт следующую публикацию до opts.Timeout (ErrTimeout по истечении).
func (s *PushSource) Current(ctx context.Context, opts Options) (models.Position, error) {
	s.mu.Lock()
	if !s.latest.IsZero() && (opts.MaxFixAge <= 0 || s.latest.FreshWithin(opts.MaxFixAge, time.Now().UTC())) {
		pos := s.latest
		s.mu.Unlock()
		return pos, nil
	}

	wait := make(chan models.Position, 1)
	s.waiters = append(s.waiters, wait)
	s.mu.Unlock()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case pos := <-wait:
		return pos, nil
	case <-timer.C:
		s.dropWaiter(wait)
		return models.Position{}, ErrTimeout
	case <-ctx.Done():
		s.dropWaiter(wait)
		return models.Position{}, ErrUnavailable
	}
}

// Watch подписывает на все последующие публикации.
func (s *PushSource) Watch(ctx context.Context, _ Options) (<-chan Update, func(), error) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan Update, 16)
	s.watchers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.watchers, id)
			s.mu.Unlock()
			close(ch)
		})
	}

	go func() {
		<-ctx.Done()
		stop()
	}()

	return ch, stop, nil
}

// dropWaiter снимает ожидающего, не получившего фиксацию.
func (s *PushSource) dropWaiter(wait chan models.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.waiters {
		if w == wait {
			s.waiters = append(s.waiters[:i], s.waiters[i+1:]...)
			break
		}
	}
}

var _ Source = (*PushSource)(nil)
