// models содержит доменные сущности движка геопоиска.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"
)

// Position — географическая позиция вызывающей стороны.
//
// Инвариант: широта и долгота присутствуют всегда парой — «полупустой»
// позиции не бывает; отсутствие позиции выражается нулевым значением
// структуры (IsZero).
type Position struct {
	// Latitude — широта в градусах, [-90, 90].
	Latitude float64
	// Longitude — долгота в градусах, [-180, 180].
	Longitude float64
	// AccuracyM — точность фиксации в метрах (>= 0), если источник её сообщил.
	AccuracyM *float64
	// CapturedAt — момент получения позиции (UTC).
	CapturedAt time.Time
}

// IsZero — признак «позиции нет вовсе».
func (p Position) IsZero() bool {
	return p.CapturedAt.IsZero()
}

// Valid — проверка диапазонов координат.
func (p Position) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180 &&
		(p.AccuracyM == nil || *p.AccuracyM >= 0)
}

// FreshWithin — true, если позиция получена не раньше, чем ttl назад.
func (p Position) FreshWithin(ttl time.Duration, now time.Time) bool {
	if p.IsZero() {
		return false
	}

	return now.Sub(p.CapturedAt) < ttl
}

// Location реализует Located.
func (p Position) Location() (float64, float64, bool) {
	if p.IsZero() {
		return 0, 0, false
	}

	return p.Latitude, p.Longitude, true
}

// Located — сущность с опциональными координатами.
// ok == false означает «координат нет» (такая сущность отбрасывается
// клиентской фильтрацией по расстоянию).
type Located interface {
	Location() (lat, lng float64, ok bool)
}
