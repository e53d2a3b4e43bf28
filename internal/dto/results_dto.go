package dto

import "time"

// TextAnswerDTO is one free-text answer row. Rows are not deduplicated by
// respondent.
type TextAnswerDTO struct {
	RespondentID   uint      `json:"respondent_id"`
	RespondentName string    `json:"respondent_name"`
	Answer         string    `json:"answer"`
	CreatedAt      time.Time `json:"created_at"`
}

// NumericStatsDTO aggregates the parseable numeric answers of a question.
type NumericStatsDTO struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// OptionStatDTO is the per-option tally of a choice question. Percentage uses
// the survey-wide distinct respondent count as denominator so options are
// comparable across questions.
type OptionStatDTO struct {
	OptionID   uint   `json:"option_id"`
	OptionText string `json:"option_text"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

type QuestionStatsDTO struct {
	QuestionID        uint             `json:"question_id"`
	QuestionText      string           `json:"question_text"`
	QuestionType      string           `json:"question_type"`
	QuestionOrder     int              `json:"question_order"`
	UniqueRespondents int              `json:"unique_respondents"`
	ResponseRate      string           `json:"response_rate"`
	TextResponses     []TextAnswerDTO  `json:"text_responses,omitempty"`
	NumericStats      *NumericStatsDTO `json:"numeric_stats,omitempty"`
	OptionStats       []OptionStatDTO  `json:"option_stats,omitempty"`
}

// SurveyResultsDTO is the statistics structure behind the results dashboard.
// TotalResponses counts distinct respondents, not response rows.
type SurveyResultsDTO struct {
	SurveyID       uint               `json:"survey_id"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	TotalResponses int                `json:"total_responses"`
	QuestionStats  []QuestionStatsDTO `json:"question_stats"`
}
