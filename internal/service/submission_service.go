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

type SubmissionService interface {
	Submit(req dto.SubmissionDTO) (*dto.SubmissionResultDTO, error)
}

type submissionService struct {
	surveyRepo repository.SurveyRepository
	db         *gorm.DB // transaction boundary for respondent + response rows
}

func NewSubmissionService(surveyRepo repository.SurveyRepository, db *gorm.DB) SubmissionService {
	return &submissionService{surveyRepo: surveyRepo, db: db}
}

// Submit records one respondent's full set of answers. Multi-select answers
// expand into one response row per selected option; everything is inserted in
// a single transaction so a failed submission persists nothing.
func (s *submissionService) Submit(req dto.SubmissionDTO) (*dto.SubmissionResultDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(req.SurveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", req.SurveyID, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("surveyID", req.SurveyID).Msg("Submit: failed to load survey")
		return nil, fmt.Errorf("error fetching survey %d: %w", req.SurveyID, err)
	}
	if !survey.IsActive {
		return nil, fmt.Errorf("survey %d: %w", req.SurveyID, apperr.ErrSurveyInactive)
	}

	questionIDs := make(map[uint]bool, len(survey.Questions))
	optionOwner := make(map[uint]uint)
	for _, q := range survey.Questions {
		questionIDs[q.ID] = true
		for _, o := range q.Options {
			optionOwner[o.ID] = q.ID
		}
	}

	var rows []model.Response
	for _, answer := range req.Answers {
		if !questionIDs[answer.QuestionID] {
			log.Warn().Uint("questionID", answer.QuestionID).Uint("surveyID", req.SurveyID).
				Msg("Submit: answer targets a question outside this survey, skipping")
			continue
		}

		if len(answer.SelectedOptions) > 0 {
			for _, optionID := range answer.SelectedOptions {
				if optionOwner[optionID] != answer.QuestionID {
					return nil, fmt.Errorf("option %d does not belong to question %d: %w", optionID, answer.QuestionID, apperr.ErrValidation)
				}
				id := optionID
				rows = append(rows, model.Response{
					SurveyID:      req.SurveyID,
					QuestionID:    answer.QuestionID,
					OptionID:      &id,
					AttemptNumber: 1,
				})
			}
			continue
		}

		if answer.OptionID != nil && optionOwner[*answer.OptionID] != answer.QuestionID {
			return nil, fmt.Errorf("option %d does not belong to question %d: %w", *answer.OptionID, answer.QuestionID, apperr.ErrValidation)
		}
		rows = append(rows, model.Response{
			SurveyID:      req.SurveyID,
			QuestionID:    answer.QuestionID,
			AnswerText:    answer.AnswerText,
			OptionID:      answer.OptionID,
			AttemptNumber: 1,
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid answers for survey %d: %w", req.SurveyID, apperr.ErrValidation)
	}

	respondent := model.Respondent{
		Name:   req.RespondentInfo.Name,
		Email:  req.RespondentInfo.Email,
		Gender: req.RespondentInfo.Gender,
		Age:    req.RespondentInfo.Age,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&respondent).Error; err != nil {
			return fmt.Errorf("failed to create respondent: %w", err)
		}
		for i := range rows {
			rows[i].RespondentID = respondent.ID
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to store responses: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("surveyID", req.SurveyID).Msg("Submit: transaction failed")
		return nil, err
	}

	log.Info().Uint("surveyID", req.SurveyID).Uint("respondentID", respondent.ID).
		Int("responseRows", len(rows)).Msg("Submission stored")

	return &dto.SubmissionResultDTO{
		Success:      true,
		Message:      "Your responses have been recorded",
		RespondentID: respondent.ID,
	}, nil
}
