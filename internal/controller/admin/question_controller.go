package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to an existing survey
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param question body dto.QuestionCreateDTO true "Question with options where the type requires them"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "question text and type are required"})
		return
	}

	question, err := c.questionService.CreateQuestion(surveyID, req)
	if err != nil {
		respondError(ctx, err, "failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// BulkUpdateQuestions godoc
// @Summary (Admin) Apply the survey-edit question changes
// @Description Updates or creates each listed question (replacing its options) and deletes the listed question ids. Steps are independent; a failure aborts the request but already-applied steps stay committed.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param changes body dto.QuestionsBulkUpdateDTO true "Question edits and deletions"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id}/questions [put]
func (c *QuestionController) BulkUpdateQuestions(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.QuestionsBulkUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin BulkUpdateQuestions: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid question data"})
		return
	}

	questions, err := c.questionService.BulkUpdate(surveyID, req)
	if err != nil {
		respondError(ctx, err, "failed to update questions")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

// DeleteQuestion godoc
// @Summary (Admin) Delete one question
// @Description Deletes the question and its options.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param target body dto.QuestionDeleteDTO true "Question id to delete"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{id}/questions [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.QuestionDeleteDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "question_id is required"})
		return
	}

	if err := c.questionService.DeleteQuestion(surveyID, req.QuestionID); err != nil {
		respondError(ctx, err, "failed to delete question")
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
