package models

import (
	"errors"
	"fmt"
)

// SearchRequest — параметры прогрессивного геопоиска.
//
// Инварианты: InitialRadiusM <= MaxRadiusM; MinResults >= 1.
type SearchRequest struct {
	// Origin — точка, от которой ищем.
	Origin Position
	// InitialRadiusM — стартовый радиус, метры.
	InitialRadiusM float64
	// MaxRadiusM — потолок расширения радиуса, метры.
	MaxRadiusM float64
	// MinResults — сколько результатов считается «достаточно»
	// (порог остановки расширения, не гарантия).
	MinResults int32
	// ResultLimit — верхняя граница размера выдачи.
	ResultLimit int32
}

// Validate — проверка инвариантов запроса.
func (r SearchRequest) Validate() error {
	if r.Origin.IsZero() {
		return errors.New("origin is required")
	}
	if !r.Origin.Valid() {
		return errors.New("origin is out of range")
	}
	if r.InitialRadiusM <= 0 {
		return errors.New("initial_radius_m must be > 0")
	}
	if r.InitialRadiusM > r.MaxRadiusM {
		return fmt.Errorf("initial_radius_m (%v) must be <= max_radius_m (%v)", r.InitialRadiusM, r.MaxRadiusM)
	}
	if r.MinResults < 1 {
		return errors.New("min_results must be >= 1")
	}
	if r.ResultLimit < 1 {
		return errors.New("result_limit must be >= 1")
	}

	return nil
}
