// service содержит бизнес-логику discovery-service: прогрессивный геопоиск,
// подбор каталогов рядом с бизнесами, клиентскую фильтрацию по расстоянию
// и роуминговую ленту.
package service

import (
	"errors"

	"github.com/Mawa444/conso-gab-sub005/internal/config"
	"github.com/Mawa444/conso-gab-sub005/internal/models"
	"github.com/Mawa444/conso-gab-sub005/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoPosition — поиск вызван вообще без позиции. После инициализации
	// провайдера позиции недостижимо (дефолтная позиция есть всегда),
	// поэтому трактуется как нарушение контракта вызова, а не как
	// обрабатываемое рантайм-состояние.
	ErrNoPosition = errors.New("no position")
)

// Service — описывает бизнес-логику discovery-service.
type Service struct {
	storage storage.Storage
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// NewSearchRequest собирает запрос геопоиска с настройками по умолчанию
// из конфига.
func (s *Service) NewSearchRequest(origin models.Position) models.SearchRequest {
	return models.SearchRequest{
		Origin:         origin,
		InitialRadiusM: s.cfg.Geo.InitialRadiusM,
		MaxRadiusM:     s.cfg.Geo.MaxRadiusM,
		MinResults:     s.cfg.Geo.MinResults,
		ResultLimit:    s.cfg.Geo.ResultLimit,
	}
}
