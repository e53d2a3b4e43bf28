package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveyService  service.AdminSurveyService
	resultsService service.ResultsService
}

func NewSurveyController(surveyService service.AdminSurveyService, resultsService service.ResultsService) *SurveyController {
	return &SurveyController{surveyService: surveyService, resultsService: resultsService}
}

// ListSurveys godoc
// @Summary (Admin) List all surveys
// @Description Lists every survey with its question count, newest first. No nested detail.
// @Tags Admin - Surveys
// @Produce json
// @Success 200 {array} dto.SurveySummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	surveys, err := c.surveyService.ListSurveys()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListSurveys: service error")
		respondError(ctx, err, "failed to fetch surveys")
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// CreateSurvey godoc
// @Summary (Admin) Create a survey with its questions
// @Description Creates the survey, its questions and their options in one operation. Question and option positions are assigned from array order.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param survey body dto.SurveyCreateDTO true "Survey with at least one question"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing title or questions, or invalid question shape"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "title and at least one question are required"})
		return
	}

	survey, err := c.surveyService.CreateSurvey(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateSurvey: service error")
		respondError(ctx, err, "failed to create survey")
		return
	}
	ctx.JSON(http.StatusCreated, survey)
}

// GetSurvey godoc
// @Summary (Admin) Get one survey with full detail
// @Description Returns the survey with ordered questions, options and every collected response joined to its respondent.
// @Tags Admin - Surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	survey, err := c.surveyService.GetSurveyDetail(id)
	if err != nil {
		respondError(ctx, err, "failed to fetch survey")
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// UpdateSurvey godoc
// @Summary (Admin) Update a survey's title, description and active flag
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param survey body dto.SurveyUpdateDTO true "New field values"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid id or missing title"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id} [put]
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SurveyUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "title is required"})
		return
	}

	survey, err := c.surveyService.UpdateSurvey(id, req)
	if err != nil {
		respondError(ctx, err, "failed to update survey")
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// DeleteSurvey godoc
// @Summary (Admin) Delete a survey and everything under it
// @Description Cascades to the survey's questions, their options and all responses.
// @Tags Admin - Surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id} [delete]
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.surveyService.DeleteSurvey(id); err != nil {
		respondError(ctx, err, "failed to delete survey")
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// GetResults godoc
// @Summary (Admin) Get aggregated results for a survey
// @Description Per-question statistics: response rates, text answer lists, numeric min/max/average, option tallies with percentages.
// @Tags Admin - Results
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResultsDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id}/results [get]
func (c *SurveyController) GetResults(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	results, err := c.resultsService.GetResults(id)
	if err != nil {
		respondError(ctx, err, "failed to aggregate results")
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// ExportResultsCSV godoc
// @Summary (Admin) Download survey results as CSV
// @Description One row per distinct respondent, one column per question.
// @Tags Admin - Results
// @Produce text/csv
// @Param id path int true "Survey ID"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id}/results/export [get]
func (c *SurveyController) ExportResultsCSV(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	data, filename, err := c.resultsService.ExportCSV(id)
	if err != nil {
		respondError(ctx, err, "failed to export results")
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
