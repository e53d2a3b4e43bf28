package model

import (
	"time"

	"gorm.io/gorm"
)

// Response is one recorded answer unit. A multi-select answer produces one
// row per selected option, all sharing respondent and question. Numeric
// answers (NUMBER_INPUT, SLIDER, COMPARISON_SLIDER) are serialized into
// AnswerText.
type Response struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SurveyID      uint           `json:"survey_id" gorm:"not null;index"`
	RespondentID  uint           `json:"respondent_id" gorm:"not null;index"`
	Respondent    Respondent     `json:"respondent,omitempty" gorm:"foreignKey:RespondentID"`
	QuestionID    uint           `json:"question_id" gorm:"not null;index"`
	AnswerText    *string        `json:"answer_text,omitempty" gorm:"type:text"`
	OptionID      *uint          `json:"option_id,omitempty"`
	Option        *Option        `json:"option,omitempty" gorm:"foreignKey:OptionID"`
	AttemptNumber int            `json:"attempt_number" gorm:"not null;default:1"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
