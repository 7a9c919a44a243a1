package v1

import (
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/infrastructure/session"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, sessions *session.RevocationStore) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc, sessions)

	userRepo := repository.NewPostgresUserRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc, sessions)
	userUC := usecase.NewUserUsecase(userRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	companyHandler := handler.NewCompanyHandler(companyUC)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)

	// The guard attaches per route inside each handler; a group-level
	// Use would shadow the public read surface under the same prefix.
	auth := authMw.Middleware()

	authHandler.RegisterRoutes(r.Group("/auth"), auth)
	userHandler.RegisterRoutes(r.Group("/profile"), auth)
	companyHandler.RegisterRoutes(r.Group("/companies"), auth)
	jobHandler.RegisterRoutes(r.Group("/jobs"), auth)
	applicationHandler.RegisterRoutes(r.Group("/applications"), auth)
}
