package service

import (
	"errors"
	"fmt"

	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PublicSurveyService serves the anonymous response form: only active surveys
// are visible, and never with collected responses attached.
type PublicSurveyService interface {
	ListActiveSurveys() ([]dto.SurveyResponseDTO, error)
	GetActiveSurvey(id uint) (*dto.SurveyResponseDTO, error)
}

type publicSurveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewPublicSurveyService(surveyRepo repository.SurveyRepository) PublicSurveyService {
	return &publicSurveyService{surveyRepo: surveyRepo}
}

func (s *publicSurveyService) ListActiveSurveys() ([]dto.SurveyResponseDTO, error) {
	surveys, err := s.surveyRepo.FindAllActive()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list active surveys")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}

	dtos := make([]dto.SurveyResponseDTO, 0, len(surveys))
	for _, survey := range surveys {
		dtos = append(dtos, toSurveyDTO(survey))
	}
	return dtos, nil
}

func (s *publicSurveyService) GetActiveSurvey(id uint) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching survey %d: %w", id, err)
	}
	if !survey.IsActive {
		// Hidden surveys look exactly like missing ones to the public.
		return nil, fmt.Errorf("survey %d: %w", id, apperr.ErrNotFound)
	}

	resp := toSurveyDTO(*survey)
	return &resp, nil
}
