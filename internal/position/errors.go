package position

import "errors"

// Таксономия ошибок получения позиции.
//
// Транспорт и вызывающие слои не обязаны обрабатывать их по отдельности:
// провайдер конвертирует их в своё состояние, а наружу ошибка отдаётся
// только явным вызовам Refresh.
var (
	// ErrPermissionDenied — пользователь отказал в доступе к геолокации.
	// «Липкая» ошибка: без явного повторного запроса не ретраится.
	ErrPermissionDenied = errors.New("position: permission denied")
	// ErrUnavailable — сбой оборудования/драйвера. Ретраится.
	ErrUnavailable = errors.New("position: unavailable")
	// ErrTimeout — источник не ответил вовремя. Ретраится.
	ErrTimeout = errors.New("position: timeout")
	// ErrNotSupported — платформа не умеет определять позицию. Терминальная.
	ErrNotSupported = errors.New("position: not supported")
)
