package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/spszl/teacher-reviews/internal/application"
	"github.com/spszl/teacher-reviews/pkg/helpers"
	"github.com/spszl/teacher-reviews/pkg/response"
	"github.com/spszl/teacher-reviews/pkg/validation"
)

// AdminHandler carries the login/logout/session endpoints of the auth gate.
type AdminHandler struct {
	Auth       *application.AuthService
	Logger     *logrus.Logger
	Cookies    *helpers.Manager
	SessionTTL time.Duration
}

func NewAdminHandler(auth *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool, sessionTTL time.Duration) *AdminHandler {
	return &AdminHandler{
		Auth:       auth,
		Logger:     logger,
		Cookies:    helpers.NewCookie(cookieDomain, cookieSecure),
		SessionTTL: sessionTTL,
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "password is required", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	sess, err := h.Auth.Login(c.Request.Context(), req.Password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		resp := response.Error[any](c, http.StatusUnauthorized, "invalid password", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		c.JSON(resp.Status, resp)
		return
	}
	h.Cookies.SetSession(c, sess.Token, h.SessionTTL)
	resp := response.Success[any](c, http.StatusOK, gin.H{"admin": true}, "login successful", nil)
	c.JSON(resp.Status, resp)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(helpers.SessionCookie)
	if err := h.Auth.Logout(c.Request.Context(), token); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("session delete failed on logout")
	}
	h.Cookies.Clear(c)
	resp := response.Success[any](c, http.StatusOK, gin.H{"admin": false}, "logged out", nil)
	c.JSON(resp.Status, resp)
}

// Session reports whether the caller currently holds an admin session, so
// clients can restore their state without attempting a privileged call.
func (h *AdminHandler) Session(c *gin.Context) {
	token, _ := c.Cookie(helpers.SessionCookie)
	admin, err := h.Auth.IsAdmin(c.Request.Context(), token)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "session lookup failed", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"admin": admin}, "session", nil)
	c.JSON(resp.Status, resp)
}
