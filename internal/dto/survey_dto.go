package dto

import "time"

// OptionCreateDTO is one option row inside a question payload. Option order is
// always reassigned from slice position, so the caller never supplies it.
type OptionCreateDTO struct {
	OptionText string `json:"option_text" binding:"required"`
}

// QuestionCreateDTO is used within SurveyCreateDTO and for standalone question
// creation. QuestionOrder is ignored on survey creation (positions come from
// the slice index) and only consulted when adding a question to an existing
// survey.
type QuestionCreateDTO struct {
	QuestionText  string            `json:"question_text" binding:"required"`
	QuestionType  string            `json:"question_type" binding:"required,oneof=TEXT_INPUT NUMBER_INPUT SINGLE_CHOICE MULTIPLE_CHOICE SLIDER COMPARISON_SLIDER"`
	QuestionOrder int               `json:"question_order"`
	MinValue      *float64          `json:"min_value"`
	MaxValue      *float64          `json:"max_value"`
	StepValue     *float64          `json:"step_value"`
	Options       []OptionCreateDTO `json:"options" binding:"omitempty,dive"`
}

// SurveyCreateDTO is for admin to create a new survey with all its questions.
type SurveyCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// SurveyUpdateDTO is a full replace of the survey's mutable scalar fields.
type SurveyUpdateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// SurveySummaryDTO is used for the admin survey list.
type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type OptionResponseDTO struct {
	ID          uint   `json:"id"`
	QuestionID  uint   `json:"question_id"`
	OptionText  string `json:"option_text"`
	OptionOrder int    `json:"option_order"`
}

type QuestionResponseDTO struct {
	ID            uint                `json:"id"`
	SurveyID      uint                `json:"survey_id"`
	QuestionText  string              `json:"question_text"`
	QuestionType  string              `json:"question_type"`
	QuestionOrder int                 `json:"question_order"`
	MinValue      *float64            `json:"min_value,omitempty"`
	MaxValue      *float64            `json:"max_value,omitempty"`
	StepValue     *float64            `json:"step_value,omitempty"`
	Options       []OptionResponseDTO `json:"options,omitempty"`
}

// SurveyResponseDTO is the public-facing survey shape: questions and options,
// no collected responses.
type SurveyResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	IsActive    bool                  `json:"is_active"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type RespondentDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Gender    *string   `json:"gender,omitempty"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ResponseDTO struct {
	ID            uint               `json:"id"`
	SurveyID      uint               `json:"survey_id"`
	RespondentID  uint               `json:"respondent_id"`
	QuestionID    uint               `json:"question_id"`
	AnswerText    *string            `json:"answer_text,omitempty"`
	OptionID      *uint              `json:"option_id,omitempty"`
	AttemptNumber int                `json:"attempt_number"`
	CreatedAt     time.Time          `json:"created_at"`
	Respondent    RespondentDTO      `json:"respondent"`
	Option        *OptionResponseDTO `json:"option,omitempty"`
}

// QuestionDetailDTO is a question with its collected responses attached, used
// by the admin survey detail view.
type QuestionDetailDTO struct {
	QuestionResponseDTO
	Responses []ResponseDTO `json:"responses"`
}

// SurveyDetailDTO is the admin survey detail: full nested questions, options
// and every collected response joined to its respondent and option.
type SurveyDetailDTO struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	IsActive    bool                `json:"is_active"`
	Questions   []QuestionDetailDTO `json:"questions"`
	Responses   []ResponseDTO       `json:"responses"`
	CreatedAt   time.Time           `json:"created_at"`
}
