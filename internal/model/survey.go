package model

import (
	"time"

	"gorm.io/gorm"
)

type Survey struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	IsActive    bool           `json:"is_active" gorm:"not null;default:true"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
	Responses   []Response     `json:"responses,omitempty" gorm:"foreignKey:SurveyID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
