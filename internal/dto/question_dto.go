package dto

// QuestionEditDTO is one entry of a bulk question update. An entry with a
// non-nil ID updates that question in place (scalar fields plus option
// replacement); an entry without an ID creates a new question.
type QuestionEditDTO struct {
	ID            *uint             `json:"id"`
	QuestionText  string            `json:"question_text" binding:"required"`
	QuestionType  string            `json:"question_type" binding:"required,oneof=TEXT_INPUT NUMBER_INPUT SINGLE_CHOICE MULTIPLE_CHOICE SLIDER COMPARISON_SLIDER"`
	QuestionOrder int               `json:"question_order"`
	MinValue      *float64          `json:"min_value"`
	MaxValue      *float64          `json:"max_value"`
	StepValue     *float64          `json:"step_value"`
	Options       []OptionCreateDTO `json:"options" binding:"omitempty,dive"`
}

// QuestionsBulkUpdateDTO carries the survey-edit flow payload: per-question
// edits and a parallel list of question ids to delete. Deletes and edits are
// applied independently; there is no ordering guarantee between them.
type QuestionsBulkUpdateDTO struct {
	Questions          []QuestionEditDTO `json:"questions" binding:"omitempty,dive"`
	DeletedQuestionIDs []uint            `json:"deleted_question_ids"`
}

type QuestionDeleteDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
}
