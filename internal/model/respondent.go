package model

import (
	"time"

	"gorm.io/gorm"
)

// Respondent is one act of answering a survey. The same person submitting
// twice creates two rows; there is no deduplication.
type Respondent struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null"`
	Gender    *string        `json:"gender,omitempty"`
	Age       *int           `json:"age,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
