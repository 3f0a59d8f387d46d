package handler

import (
	"strconv"

	"proxy-admin-panel/config"
	"proxy-admin-panel/internal/adapter/http/dto"
	"proxy-admin-panel/internal/adapter/http/middleware"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/pkg/apperror"
	"proxy-admin-panel/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles the admin account management endpoints.
type UserHandler struct {
	adminSvc   ports.AccountAdminService
	ledgerSvc  ports.LedgerService
	sessionSvc ports.SessionService
	sessionCfg config.SessionConfig
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	adminSvc ports.AccountAdminService,
	ledgerSvc ports.LedgerService,
	sessionSvc ports.SessionService,
	sessionCfg config.SessionConfig,
) *UserHandler {
	return &UserHandler{
		adminSvc:   adminSvc,
		ledgerSvc:  ledgerSvc,
		sessionSvc: sessionSvc,
		sessionCfg: sessionCfg,
	}
}

// List handles GET /api/v1/admin/users.
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.adminSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "ok", views)
}

// Create handles POST /api/v1/admin/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.adminSvc.Create(c.Request.Context(), ports.CreateAccountRequest{
		Email:    req.Email,
		Password: req.Password,
		RefBy:    req.RefBy,
		Balance:  req.Balance,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "account created", dto.CreateAccountResponse{
		ID:                result.Account.ID,
		Email:             result.Account.Email,
		UUID:              result.Account.UUID.String(),
		GeneratedPassword: result.GeneratedPassword,
	})
}

// Update handles PUT /api/v1/admin/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	fields, err := req.FieldUpdate()
	if err != nil {
		response.Error(c, apperror.Validation("invalid uuid"))
		return
	}

	if err := h.adminSvc.Update(c.Request.Context(), id, fields); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "account updated", nil)
}

// Delete handles DELETE /api/v1/admin/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	if err := h.adminSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "account deleted", nil)
}

// Ledger handles GET /api/v1/admin/users/:id/ledger.
func (h *UserHandler) Ledger(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	entries, err := h.ledgerSvc.History(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dto.LedgerEntryResponse{
			ID:        e.ID.String(),
			Before:    e.Before.StringFixed(2),
			After:     e.After.StringFixed(2),
			Diff:      e.Diff.StringFixed(2),
			Remark:    e.Remark,
			Seq:       e.Seq,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	response.OK(c, "ok", rows)
}

// Impersonate handles POST /api/v1/admin/users/:id/impersonate. The caller's
// own credential is embedded in the new cookie as the return path.
func (h *UserHandler) Impersonate(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	token := middleware.TokenFromContext(c)
	minted, credential, err := h.adminSvc.Impersonate(c.Request.Context(), token, id, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, credential)
	response.OK(c, "impersonation started", dto.ImpersonateResponse{
		ActingAsID:    minted.SubjectID,
		ActingAsEmail: minted.SubjectEmail,
		ExpiresAt:     minted.ExpiresAt,
	})
}

// Return handles POST /api/v1/session/return: pops the impersonation layer
// and restores the admin's original credential, untouched. Without an
// impersonation layer the session is left as it is.
func (h *UserHandler) Return(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	if token == nil {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	restored := h.sessionSvc.Restore(token)
	if restored != token {
		credential, err := h.sessionSvc.Encode(restored)
		if err != nil {
			response.Error(c, apperror.InternalError(err))
			return
		}
		h.setSessionCookie(c, credential)
	}

	response.OK(c, "session restored", dto.SessionResponse{
		AccountID: restored.SubjectID,
		Email:     restored.SubjectEmail,
		ExpiresAt: restored.ExpiresAt,
	})
}

func (h *UserHandler) setSessionCookie(c *gin.Context, credential string) {
	c.SetCookie(h.sessionCfg.CookieName, credential, int(h.sessionCfg.Lifetime.Seconds()), "/", "", false, true)
}

func parseAccountID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
