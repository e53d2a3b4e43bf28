package public

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/service"
	"github.com/rs/zerolog/log"
)

type ResponseController struct {
	submissionService service.SubmissionService
}

func NewResponseController(submissionService service.SubmissionService) *ResponseController {
	return &ResponseController{submissionService: submissionService}
}

// SubmitResponses godoc
// @Summary Submit answers to a survey
// @Description Records one respondent and their full answer set. Multi-select answers store one row per selected option.
// @Tags Public - Responses
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionDTO true "Survey id, respondent info and answers"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Missing respondent info or answers"
// @Failure 404 {object} dto.ErrorResponse "Survey missing or not accepting responses"
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys/responses [post]
func (c *ResponseController) SubmitResponses(ctx *gin.Context) {
	var req dto.SubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResponses: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "survey ID, respondent info and answers are required"})
		return
	}

	result, err := c.submissionService.Submit(req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrSurveyInactive):
			// Closed surveys look like missing ones to the public.
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "survey not found"})
		case errors.Is(err, apperr.ErrValidation):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Uint("surveyID", req.SurveyID).Msg("SubmitResponses: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to save responses"})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}
