package routes

import (
	"jobboard/internal/config"
	"jobboard/internal/database"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/infrastructure/session"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, sessions *session.RevocationStore) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, sessions)
}
