package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType enumerates the supported answer widgets.
type QuestionType string

const (
	TypeTextInput        QuestionType = "TEXT_INPUT"
	TypeNumberInput      QuestionType = "NUMBER_INPUT"
	TypeSingleChoice     QuestionType = "SINGLE_CHOICE"
	TypeMultipleChoice   QuestionType = "MULTIPLE_CHOICE"
	TypeSlider           QuestionType = "SLIDER"
	TypeComparisonSlider QuestionType = "COMPARISON_SLIDER"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeTextInput, TypeNumberInput, TypeSingleChoice, TypeMultipleChoice, TypeSlider, TypeComparisonSlider:
		return true
	}
	return false
}

// RequiresOptions reports whether questions of this type carry an option list.
// COMPARISON_SLIDER options are its two poles.
func (t QuestionType) RequiresOptions() bool {
	return t == TypeSingleChoice || t == TypeMultipleChoice || t == TypeComparisonSlider
}

// Numeric reports whether answers are aggregated as numbers.
func (t QuestionType) Numeric() bool {
	return t == TypeNumberInput || t == TypeSlider || t == TypeComparisonSlider
}

// Ranged reports whether the min/max/step fields are meaningful.
func (t QuestionType) Ranged() bool {
	return t == TypeSlider || t == TypeComparisonSlider
}

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SurveyID      uint           `json:"survey_id" gorm:"not null;index"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  QuestionType   `json:"question_type" gorm:"not null"`
	QuestionOrder int            `json:"question_order" gorm:"not null"`
	MinValue      *float64       `json:"min_value,omitempty"`
	MaxValue      *float64       `json:"max_value,omitempty"`
	StepValue     *float64       `json:"step_value,omitempty"`
	Options       []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	Responses     []Response     `json:"responses,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
