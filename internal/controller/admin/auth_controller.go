package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary (Admin) Log in to the admin area
// @Description Exchanges the admin password for a session cookie.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Admin password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Password missing"
// @Failure 401 {object} dto.ErrorResponse "Wrong password"
// @Router /admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "password is required"})
		return
	}

	token, err := c.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "incorrect password"})
			return
		}
		log.Error().Err(err).Msg("Admin login failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "login failed"})
		return
	}

	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(service.SessionCookieName, token, int(service.SessionTTL.Seconds()), "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Logout godoc
// @Summary (Admin) Log out of the admin area
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /admin/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(service.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
