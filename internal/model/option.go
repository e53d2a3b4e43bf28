package model

import (
	"time"

	"gorm.io/gorm"
)

type Option struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuestionID  uint           `json:"question_id" gorm:"not null;index"`
	OptionText  string         `json:"option_text" gorm:"not null"`
	OptionOrder int            `json:"option_order" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
