package dto

// RespondentInfoDTO identifies the person submitting a survey. A new
// respondent row is created for every submission.
type RespondentInfoDTO struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Gender *string `json:"gender"`
	Age    *int    `json:"age"`
}

// AnswerDTO is one question's answer within a submission. A non-empty
// SelectedOptions expands into one response row per option id; otherwise the
// answer yields exactly one row carrying AnswerText and/or OptionID.
type AnswerDTO struct {
	QuestionID      uint    `json:"question_id" binding:"required"`
	AnswerText      *string `json:"answer_text"`
	OptionID        *uint   `json:"option_id"`
	SelectedOptions []uint  `json:"selected_options"`
}

// SubmissionDTO is the public submission payload.
type SubmissionDTO struct {
	SurveyID       uint              `json:"survey_id" binding:"required"`
	RespondentInfo RespondentInfoDTO `json:"respondent_info" binding:"required"`
	Answers        []AnswerDTO       `json:"answers" binding:"required,min=1,dive"`
}

// SubmissionResultDTO acknowledges a stored submission.
type SubmissionResultDTO struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	RespondentID uint   `json:"respondent_id"`
}
