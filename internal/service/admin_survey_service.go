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

type AdminSurveyService interface {
	ListSurveys() ([]dto.SurveySummaryDTO, error)
	CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	GetSurveyDetail(id uint) (*dto.SurveyDetailDTO, error)
	UpdateSurvey(id uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error)
	DeleteSurvey(id uint) error
}

type adminSurveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewAdminSurveyService(surveyRepo repository.SurveyRepository) AdminSurveyService {
	return &adminSurveyService{surveyRepo: surveyRepo}
}

func (s *adminSurveyService) ListSurveys() ([]dto.SurveySummaryDTO, error) {
	surveysWithCount, err := s.surveyRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list surveys from repository")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}

	dtos := make([]dto.SurveySummaryDTO, 0, len(surveysWithCount))
	for _, swc := range surveysWithCount {
		dtos = append(dtos, dto.SurveySummaryDTO{
			ID:            swc.Survey.ID,
			Title:         swc.Survey.Title,
			Description:   swc.Survey.Description,
			IsActive:      swc.Survey.IsActive,
			QuestionCount: swc.QuestionCount,
			CreatedAt:     swc.Survey.CreatedAt,
		})
	}
	return dtos, nil
}

// CreateSurvey inserts the survey with all its questions and options. Question
// and option positions are reassigned from slice order; any positions supplied
// by the caller are ignored.
func (s *adminSurveyService) CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		qType := model.QuestionType(qDto.QuestionType)
		if err := validateQuestionShape(qType, len(qDto.Options), qDto.MinValue, qDto.MaxValue, qDto.StepValue); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}

		question := model.Question{
			QuestionText:  qDto.QuestionText,
			QuestionType:  qType,
			QuestionOrder: i + 1,
			MinValue:      qDto.MinValue,
			MaxValue:      qDto.MaxValue,
			StepValue:     qDto.StepValue,
		}
		for j, oDto := range qDto.Options {
			question.Options = append(question.Options, model.Option{
				OptionText:  oDto.OptionText,
				OptionOrder: j + 1,
			})
		}
		questions = append(questions, question)
	}

	survey := model.Survey{
		Title:       req.Title,
		Description: req.Description,
		IsActive:    true,
		Questions:   questions,
	}

	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Msg("Failed to create survey in database")
		return nil, fmt.Errorf("database error creating survey: %w", err)
	}

	created, err := s.surveyRepo.FindByIDWithQuestions(survey.ID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", survey.ID).Msg("Failed to reload created survey for response")
		fallback := toSurveyDTO(survey)
		return &fallback, nil
	}
	resp := toSurveyDTO(*created)
	return &resp, nil
}

func (s *adminSurveyService) GetSurveyDetail(id uint) (*dto.SurveyDetailDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", id, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("surveyID", id).Msg("Failed to load survey detail")
		return nil, fmt.Errorf("error fetching survey %d: %w", id, err)
	}

	detail := dto.SurveyDetailDTO{
		ID:          survey.ID,
		Title:       survey.Title,
		Description: survey.Description,
		IsActive:    survey.IsActive,
		CreatedAt:   survey.CreatedAt,
		Questions:   make([]dto.QuestionDetailDTO, 0, len(survey.Questions)),
		Responses:   make([]dto.ResponseDTO, 0, len(survey.Responses)),
	}
	for _, q := range survey.Questions {
		qd := dto.QuestionDetailDTO{
			QuestionResponseDTO: toQuestionDTO(q),
			Responses:           make([]dto.ResponseDTO, 0, len(q.Responses)),
		}
		for _, r := range q.Responses {
			qd.Responses = append(qd.Responses, toResponseDTO(r))
		}
		detail.Questions = append(detail.Questions, qd)
	}
	for _, r := range survey.Responses {
		detail.Responses = append(detail.Responses, toResponseDTO(r))
	}
	return &detail, nil
}

func (s *adminSurveyService) UpdateSurvey(id uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching survey %d: %w", id, err)
	}

	survey.Title = req.Title
	survey.Description = req.Description
	survey.IsActive = req.IsActive
	if err := s.surveyRepo.Update(survey); err != nil {
		log.Error().Err(err).Uint("surveyID", id).Msg("Failed to update survey")
		return nil, fmt.Errorf("database error updating survey %d: %w", id, err)
	}

	resp := toSurveyDTO(*survey)
	return &resp, nil
}

func (s *adminSurveyService) DeleteSurvey(id uint) error {
	if _, err := s.surveyRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("survey %d: %w", id, apperr.ErrNotFound)
		}
		return fmt.Errorf("error fetching survey %d: %w", id, err)
	}

	if err := s.surveyRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("surveyID", id).Msg("Failed to delete survey")
		return fmt.Errorf("database error deleting survey %d: %w", id, err)
	}
	log.Info().Uint("surveyID", id).Msg("Survey deleted with questions, options and responses")
	return nil
}
