package routes

import (
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/infrastructure/session"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	sessions *session.RevocationStore

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, sessions *session.RevocationStore) *Registry {
	return &Registry{
		cfg:      cfg,
		db:       db,
		sessions: sessions,
		health:   handler.NewHealthHandler(db),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.sessions)
}
