package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/spszl/teacher-reviews/internal/application"
	repo "github.com/spszl/teacher-reviews/internal/domain/repository"
	"github.com/spszl/teacher-reviews/pkg/response"
	"github.com/spszl/teacher-reviews/pkg/validation"
)

type TeacherHandler struct {
	Svc    *application.TeacherService
	Logger *logrus.Logger
}

func NewTeacherHandler(svc *application.TeacherService, logger *logrus.Logger) *TeacherHandler {
	return &TeacherHandler{Svc: svc, Logger: logger}
}

type teacherRequest struct {
	Name        string `json:"name" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r teacherRequest) fields() repo.TeacherFields {
	return repo.TeacherFields{
		Name:        r.Name,
		Subject:     r.Subject,
		ImageURL:    r.ImageURL,
		Description: r.Description,
	}
}

// idParam parses a positive integer id from the route. Anything else is a
// validation failure, reported before the store is touched.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.Svc.List()
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to list teachers", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, teachers, "teachers", nil)
	c.JSON(resp.Status, resp)
}

func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid teacher id", nil)
		c.JSON(resp.Status, resp)
		return
	}
	t, err := h.Svc.Get(id)
	if errors.Is(err, application.ErrTeacherNotFound) {
		resp := response.Error[any](c, http.StatusNotFound, "teacher not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to get teacher", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, t, "teacher", nil)
	c.JSON(resp.Status, resp)
}

func (h *TeacherHandler) Create(c *gin.Context) {
	var req teacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	t, err := h.Svc.Create(req.fields())
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to create teacher", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, t, "teacher created", nil)
	c.JSON(resp.Status, resp)
}

func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid teacher id", nil)
		c.JSON(resp.Status, resp)
		return
	}
	var req teacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	t, err := h.Svc.Update(id, req.fields())
	if errors.Is(err, application.ErrTeacherNotFound) {
		resp := response.Error[any](c, http.StatusNotFound, "teacher not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to update teacher", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, t, "teacher updated", nil)
	c.JSON(resp.Status, resp)
}
