package app

import (
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	"jobboard/internal/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(ct *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: ct.Config.App.Name,
	})

	registerGlobalMiddleware(f)
	registerMetrics(f)

	routes.NewRegistry(ct.Config, ct.DB, ct.Sessions).Register(f)

	return &App{Fiber: f, Container: ct}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	ct, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(ct)
	return app, ct.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware().Middleware())
}

func registerMetrics(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
