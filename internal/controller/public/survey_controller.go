package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveyService service.PublicSurveyService
}

func NewSurveyController(surveyService service.PublicSurveyService) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

// ListSurveys godoc
// @Summary List surveys open for responses
// @Description Active surveys only, newest first, with questions and options.
// @Tags Public - Surveys
// @Produce json
// @Success 200 {array} dto.SurveyResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	surveys, err := c.surveyService.ListActiveSurveys()
	if err != nil {
		log.Error().Err(err).Msg("Public ListSurveys: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to fetch surveys"})
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurvey godoc
// @Summary Get one survey for answering
// @Description Returns the survey's questions and options. Inactive surveys are indistinguishable from missing ones.
// @Tags Public - Surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys/{id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	val, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid survey ID"})
		return
	}

	survey, err := c.surveyService.GetActiveSurvey(uint(val))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "survey not found"})
			return
		}
		log.Error().Err(err).Uint64("surveyID", val).Msg("Public GetSurvey: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to fetch survey"})
		return
	}
	ctx.JSON(http.StatusOK, survey)
}
