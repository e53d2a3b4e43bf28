package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
)

// respondError maps a service error onto the JSON error contract. Validation
// and lookup failures keep their message; anything else collapses into the
// given fallback with a 500.
func respondError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid survey ID"})
		return 0, false
	}
	return uint(val), true
}
