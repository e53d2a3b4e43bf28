package service

import (
	"github.com/jinzhu/copier"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/model"
)

func toOptionDTO(o model.Option) dto.OptionResponseDTO {
	var out dto.OptionResponseDTO
	copier.Copy(&out, &o)
	return out
}

func toQuestionDTO(q model.Question) dto.QuestionResponseDTO {
	out := dto.QuestionResponseDTO{
		ID:            q.ID,
		SurveyID:      q.SurveyID,
		QuestionText:  q.QuestionText,
		QuestionType:  string(q.QuestionType),
		QuestionOrder: q.QuestionOrder,
		MinValue:      q.MinValue,
		MaxValue:      q.MaxValue,
		StepValue:     q.StepValue,
	}
	for _, o := range q.Options {
		out.Options = append(out.Options, toOptionDTO(o))
	}
	return out
}

func toSurveyDTO(s model.Survey) dto.SurveyResponseDTO {
	out := dto.SurveyResponseDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
	for _, q := range s.Questions {
		out.Questions = append(out.Questions, toQuestionDTO(q))
	}
	return out
}

func toResponseDTO(r model.Response) dto.ResponseDTO {
	out := dto.ResponseDTO{
		ID:            r.ID,
		SurveyID:      r.SurveyID,
		RespondentID:  r.RespondentID,
		QuestionID:    r.QuestionID,
		AnswerText:    r.AnswerText,
		OptionID:      r.OptionID,
		AttemptNumber: r.AttemptNumber,
		CreatedAt:     r.CreatedAt,
	}
	copier.Copy(&out.Respondent, &r.Respondent)
	if r.Option != nil {
		opt := toOptionDTO(*r.Option)
		out.Option = &opt
	}
	return out
}
