package service

import (
	"errors"
	"fmt"

	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/model"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(surveyID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	BulkUpdate(surveyID uint, req dto.QuestionsBulkUpdateDTO) ([]dto.QuestionResponseDTO, error)
	DeleteQuestion(surveyID, questionID uint) error
}

type questionService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(surveyRepo repository.SurveyRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{surveyRepo: surveyRepo, questionRepo: questionRepo}
}

func (s *questionService) CreateQuestion(surveyID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching survey %d: %w", surveyID, err)
	}

	qType := model.QuestionType(req.QuestionType)
	if err := validateQuestionShape(qType, len(req.Options), req.MinValue, req.MaxValue, req.StepValue); err != nil {
		return nil, err
	}

	order := req.QuestionOrder
	if order < 1 {
		existing, err := s.questionRepo.FindBySurveyID(surveyID)
		if err != nil {
			return nil, fmt.Errorf("error fetching questions of survey %d: %w", surveyID, err)
		}
		order = len(existing) + 1
	}

	question := model.Question{
		SurveyID:      surveyID,
		QuestionText:  req.QuestionText,
		QuestionType:  qType,
		QuestionOrder: order,
		MinValue:      req.MinValue,
		MaxValue:      req.MaxValue,
		StepValue:     req.StepValue,
	}
	for i, oDto := range req.Options {
		question.Options = append(question.Options, model.Option{
			OptionText:  oDto.OptionText,
			OptionOrder: i + 1,
		})
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	created, err := s.questionRepo.FindByID(question.ID)
	if err != nil {
		resp := toQuestionDTO(question)
		return &resp, nil
	}
	resp := toQuestionDTO(*created)
	return &resp, nil
}

// BulkUpdate applies the survey-edit flow: delete the listed questions, then
// create or update each entry of the edit list. Steps are independent; the
// first failure aborts the request and already-applied steps stay committed.
func (s *questionService) BulkUpdate(surveyID uint, req dto.QuestionsBulkUpdateDTO) ([]dto.QuestionResponseDTO, error) {
	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching survey %d: %w", surveyID, err)
	}

	for _, questionID := range req.DeletedQuestionIDs {
		if err := s.DeleteQuestion(surveyID, questionID); err != nil {
			return nil, err
		}
	}

	results := make([]dto.QuestionResponseDTO, 0, len(req.Questions))
	for i, edit := range req.Questions {
		var (
			updated *dto.QuestionResponseDTO
			err     error
		)
		if edit.ID == nil {
			updated, err = s.CreateQuestion(surveyID, dto.QuestionCreateDTO{
				QuestionText:  edit.QuestionText,
				QuestionType:  edit.QuestionType,
				QuestionOrder: edit.QuestionOrder,
				MinValue:      edit.MinValue,
				MaxValue:      edit.MaxValue,
				StepValue:     edit.StepValue,
				Options:       edit.Options,
			})
		} else {
			updated, err = s.updateQuestion(surveyID, *edit.ID, edit)
		}
		if err != nil {
			log.Error().Err(err).Uint("surveyID", surveyID).Int("entry", i).Msg("Bulk question update failed partway")
			return nil, err
		}
		results = append(results, *updated)
	}
	return results, nil
}

// updateQuestion replaces the question's scalar fields and, when options are
// supplied or the new type no longer takes choices, its option set.
func (s *questionService) updateQuestion(surveyID, questionID uint, edit dto.QuestionEditDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}
	if question.SurveyID != surveyID {
		return nil, fmt.Errorf("question %d does not belong to survey %d: %w", questionID, surveyID, apperr.ErrValidation)
	}

	qType := model.QuestionType(edit.QuestionType)
	// Options may be omitted for a choice question whose choices are kept
	// as-is, so shape validation only sees the option count when the caller
	// sends a replacement set.
	if len(edit.Options) > 0 || !qType.RequiresOptions() {
		if err := validateQuestionShape(qType, len(edit.Options), edit.MinValue, edit.MaxValue, edit.StepValue); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{
		"question_text": edit.QuestionText,
		"question_type": string(qType),
		"min_value":     edit.MinValue,
		"max_value":     edit.MaxValue,
		"step_value":    edit.StepValue,
	}
	if err := s.questionRepo.UpdateFields(questionID, fields); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to update question")
		return nil, fmt.Errorf("database error updating question %d: %w", questionID, err)
	}

	if len(edit.Options) > 0 {
		options := make([]model.Option, 0, len(edit.Options))
		for _, oDto := range edit.Options {
			options = append(options, model.Option{OptionText: oDto.OptionText})
		}
		if err := s.questionRepo.ReplaceOptions(questionID, options); err != nil {
			log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to replace options")
			return nil, fmt.Errorf("database error replacing options of question %d: %w", questionID, err)
		}
	} else if !qType.RequiresOptions() {
		// The type no longer takes choices; clear any leftovers.
		if err := s.questionRepo.ReplaceOptions(questionID, nil); err != nil {
			log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to clear options")
			return nil, fmt.Errorf("database error clearing options of question %d: %w", questionID, err)
		}
	}

	reloaded, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, fmt.Errorf("error reloading question %d: %w", questionID, err)
	}
	resp := toQuestionDTO(*reloaded)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(surveyID, questionID uint) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("question %d: %w", questionID, apperr.ErrNotFound)
		}
		return fmt.Errorf("error fetching question %d: %w", questionID, err)
	}
	if question.SurveyID != surveyID {
		return fmt.Errorf("question %d does not belong to survey %d: %w", questionID, surveyID, apperr.ErrValidation)
	}

	if err := s.questionRepo.Delete(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to delete question")
		return fmt.Errorf("database error deleting question %d: %w", questionID, err)
	}
	return nil
}
