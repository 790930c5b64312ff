package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/spszl/teacher-reviews/internal/interface/http"
	"github.com/spszl/teacher-reviews/internal/interface/middleware"
	"github.com/spszl/teacher-reviews/pkg/session"
)

// TeachersModule wires the teacher profile routes.
// Public: GET /api/teachers, GET /api/teachers/:id, GET /api/teachers/:id/reviews
// Admin:  POST /api/teachers, PATCH /api/teachers/:id

type TeachersModule struct {
	Teachers *handlers.TeacherHandler
	Reviews  *handlers.ReviewHandler
	Sessions session.Store
}

func NewTeachersModule(t *handlers.TeacherHandler, r *handlers.ReviewHandler, sessions session.Store) *TeachersModule {
	return &TeachersModule{Teachers: t, Reviews: r, Sessions: sessions}
}

func (m *TeachersModule) Register(rg *gin.RouterGroup) {
	rg.GET("/teachers", m.Teachers.List)
	rg.GET("/teachers/:id", m.Teachers.Get)
	rg.GET("/teachers/:id/reviews", m.Reviews.ListForTeacher)

	admin := rg.Group("/")
	admin.Use(middleware.RequireAdmin(m.Sessions))
	{
		admin.POST("/teachers", m.Teachers.Create)
		admin.PATCH("/teachers/:id", m.Teachers.Update)
	}
}
