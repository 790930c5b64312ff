package router

import (
	"github.com/spszl/teacher-reviews/internal/application"
	"github.com/spszl/teacher-reviews/internal/container"
	handlers "github.com/spszl/teacher-reviews/internal/interface/http"
	"github.com/spszl/teacher-reviews/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	storage := container.GetStorage()
	sessions := container.GetSessions()

	teacherSvc := application.NewTeacherService(storage, logger)
	reviewSvc := application.NewReviewService(storage, storage, logger)
	authSvc := application.NewAuthService(
		application.NewStaticSecretVerifier(cfg.AdminPassword),
		sessions,
		logger,
	)

	teacherHandler := handlers.NewTeacherHandler(teacherSvc, logger)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, logger)
	adminHandler := handlers.NewAdminHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure, cfg.SessionTTL)

	r.Add(modules.NewTeachersModule(teacherHandler, reviewHandler, sessions))
	r.Add(modules.NewReviewsModule(reviewHandler, sessions))
	r.Add(modules.NewAdminModule(adminHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
