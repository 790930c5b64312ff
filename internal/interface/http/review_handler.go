package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/spszl/teacher-reviews/internal/application"
	repo "github.com/spszl/teacher-reviews/internal/domain/repository"
	"github.com/spszl/teacher-reviews/pkg/response"
	"github.com/spszl/teacher-reviews/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

// submitReviewRequest deliberately has no approved field: whatever the
// client sends, a new review enters the store pending.
type submitReviewRequest struct {
	TeacherID int    `json:"teacherId" binding:"required,gt=0"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required,min=10,max=500"`
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid review data", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	r, err := h.Svc.Submit(repo.ReviewFields{TeacherID: req.TeacherID, Rating: req.Rating, Comment: req.Comment})
	if errors.Is(err, application.ErrTeacherNotFound) {
		resp := response.Error[any](c, http.StatusNotFound, "teacher not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to submit review", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, r, "review submitted", nil)
	c.JSON(resp.Status, resp)
}

// ListForTeacher returns only approved reviews; pending ones are invisible
// on this path. An unknown teacher id yields an empty list, matching the
// public read contract.
func (h *ReviewHandler) ListForTeacher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid teacher id", nil)
		c.JSON(resp.Status, resp)
		return
	}
	reviews, err := h.Svc.ApprovedForTeacher(id)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to list reviews", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, reviews, "reviews", nil)
	c.JSON(resp.Status, resp)
}

func (h *ReviewHandler) Pending(c *gin.Context) {
	reviews, err := h.Svc.Pending()
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to list pending reviews", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, reviews, "pending reviews", nil)
	c.JSON(resp.Status, resp)
}

func (h *ReviewHandler) Approve(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid review id", nil)
		c.JSON(resp.Status, resp)
		return
	}
	r, err := h.Svc.Approve(id)
	if errors.Is(err, application.ErrReviewNotFound) {
		resp := response.Error[any](c, http.StatusNotFound, "review not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to approve review", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, r, "review approved", nil)
	c.JSON(resp.Status, resp)
}
