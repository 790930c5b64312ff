package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/spszl/teacher-reviews/internal/interface/http"
	"github.com/spszl/teacher-reviews/internal/interface/middleware"
	"github.com/spszl/teacher-reviews/pkg/session"
)

// ReviewsModule wires review submission and the moderation queue.
// Public: POST /api/reviews
// Admin:  GET /api/admin/reviews/pending, POST /api/admin/reviews/:id/approve

type ReviewsModule struct {
	Handler  *handlers.ReviewHandler
	Sessions session.Store
}

func NewReviewsModule(h *handlers.ReviewHandler, sessions session.Store) *ReviewsModule {
	return &ReviewsModule{Handler: h, Sessions: sessions}
}

func (m *ReviewsModule) Register(rg *gin.RouterGroup) {
	rg.POST("/reviews", m.Handler.Submit)

	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAdmin(m.Sessions))
	{
		admin.GET("/reviews/pending", m.Handler.Pending)
		admin.POST("/reviews/:id/approve", m.Handler.Approve)
	}
}
