package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spszl/teacher-reviews/internal/container"
	handlers "github.com/spszl/teacher-reviews/internal/interface/http"
	"github.com/spszl/teacher-reviews/internal/interface/middleware"
)

// AdminModule wires the auth gate endpoints.
// Public: POST /api/admin/login, POST /api/admin/logout, GET /api/admin/session

type AdminModule struct {
	Handler *handlers.AdminHandler
}

func NewAdminModule(h *handlers.AdminHandler) *AdminModule {
	return &AdminModule{Handler: h}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	// Brute-force protection on login; no-op when Redis is not wired.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/admin/login", loginLimiter, m.Handler.Login)
	rg.POST("/admin/logout", m.Handler.Logout)
	rg.GET("/admin/session", m.Handler.Session)
}
