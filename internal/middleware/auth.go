package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/service"
	"github.com/rs/zerolog/log"
)

// AdminAuth rejects requests that do not carry a valid admin session cookie.
func AdminAuth(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(service.SessionCookieName)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
			return
		}
		if err := auth.Verify(token); err != nil {
			log.Warn().Str("path", ctx.Request.URL.Path).Msg("Rejected request with invalid admin session")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired session"})
			return
		}
		ctx.Next()
	}
}
