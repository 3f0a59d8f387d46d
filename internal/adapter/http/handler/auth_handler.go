package handler

import (
	"net/http"

	"proxy-admin-panel/config"
	"proxy-admin-panel/internal/adapter/http/dto"
	"proxy-admin-panel/internal/adapter/http/middleware"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/pkg/apperror"
	"proxy-admin-panel/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authSvc    ports.AuthService
	sessionCfg config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, sessionCfg: sessionCfg}
}

// Login handles POST /api/v1/auth/login. The minted credential is delivered
// as an HTTP-only cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, credential, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, credential)
	response.OK(c, "login successful", dto.LoginResponse{
		AccountID: token.SubjectID,
		Email:     token.SubjectEmail,
		ExpiresAt: token.ExpiresAt,
	})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, "logged out", nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, credential string) {
	c.SetCookie(h.sessionCfg.CookieName, credential, int(h.sessionCfg.Lifetime.Seconds()), "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.sessionCfg.CookieName, "", -1, "/", "", false, true)
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
