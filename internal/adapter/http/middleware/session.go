package middleware

import (
	"time"

	"proxy-admin-panel/internal/core/domain"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/pkg/apperror"
	"proxy-admin-panel/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SessionAuth validates the session cookie and loads the acting account.
// Pipeline: decode credential -> load subject -> active check -> tag
// verification against the caller's IP -> revocation mark check.
func SessionAuth(
	cookieName string,
	sessionSvc ports.SessionService,
	accounts ports.AccountDirectory,
	revocations ports.RevocationStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential, err := c.Cookie(cookieName)
		if err != nil || credential == "" {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		token, err := sessionSvc.Decode(credential)
		if err != nil {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		account, err := accounts.FindByID(c.Request.Context(), token.SubjectID)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch session subject")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if account == nil {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}
		if !account.IsActive() {
			response.Error(c, apperror.ErrAccountBanned())
			c.Abort()
			return
		}

		if err := sessionSvc.Verify(token, account.PasswordHash, c.ClientIP(), time.Now().UTC()); err != nil {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		// Credentials issued at or before the revocation mark are dead even
		// though their tags still verify.
		mark, err := revocations.RevokedAt(c.Request.Context(), token.SubjectID)
		if err != nil {
			log.Warn().Err(err).Msg("revocation check failed, allowing request")
		} else if mark > 0 {
			issuedAt := token.ExpiresAt - int64(sessionSvc.Lifetime().Seconds())
			if issuedAt <= mark {
				response.Error(c, apperror.ErrInvalidSession())
				c.Abort()
				return
			}
		}

		c.Set(CtxAccountID, account.ID)
		c.Set(CtxAccount, account)
		c.Set(CtxToken, token)

		c.Next()
	}
}

// AdminOnly requires the acting account to be an administrator. Must run
// after SessionAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := AccountFromContext(c)
		if account == nil {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}
		if !account.IsAdmin {
			response.Error(c, apperror.ErrAdminRequired())
			c.Abort()
			return
		}
		c.Next()
	}
}

// AccountFromContext returns the acting account set by SessionAuth, or nil.
func AccountFromContext(c *gin.Context) *domain.Account {
	v, exists := c.Get(CtxAccount)
	if !exists {
		return nil
	}
	account, _ := v.(*domain.Account)
	return account
}

// TokenFromContext returns the session token set by SessionAuth, or nil.
func TokenFromContext(c *gin.Context) *domain.SessionToken {
	v, exists := c.Get(CtxToken)
	if !exists {
		return nil
	}
	token, _ := v.(*domain.SessionToken)
	return token
}
