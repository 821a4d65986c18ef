package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Mawa444/conso-gab-sub005/internal/config"
	"github.com/Mawa444/conso-gab-sub005/internal/position"
	"github.com/Mawa444/conso-gab-sub005/internal/service"
	"github.com/Mawa444/conso-gab-sub005/internal/transport/http/handlers"
	"github.com/Mawa444/conso-gab-sub005/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// Deps — зависимости хендлеров.
type Deps struct {
	Service   *service.Service
	Positions *position.Provider
	Fixes     *position.PushSource
	Config    config.Config
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(deps Deps, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(deps.Service, deps.Positions, deps.Fixes, deps.Config)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// геопоиск
	r.Get("/nearby/businesses/catalogs", h.CatalogsNearby)
	r.Get("/nearby/{kind}", h.NearbyByKind)

	// лента
	r.Get("/feed", h.FeedPage)

	// позиция
	r.Post("/positions", h.PublishPosition)
	r.Get("/positions/current", h.CurrentPosition)
	r.Post("/positions/refresh", h.RefreshPosition)
}
