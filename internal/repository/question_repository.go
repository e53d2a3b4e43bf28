package repository

import (
	"github.com/nshiba/enquete-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindBySurveyID(surveyID uint) ([]model.Question, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	ReplaceOptions(questionID uint, options []model.Option) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// Nested options, if any, are created in the same transaction.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("options.option_order ASC")
	}).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindBySurveyID(surveyID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("survey_id = ?", surveyID).
		Order("question_order ASC").
		Find(&questions).Error
	return questions, err
}

// UpdateFields does a partial scalar update; option rows are never touched
// here. A nil map value clears the column.
func (r *questionRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Question{}).Where("id = ?", id).Updates(fields).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

// ReplaceOptions deletes all of the question's options and inserts the given
// set, in one transaction. An empty slice clears the options, which is how a
// question sheds its choices when its type changes.
func (r *questionRepository) ReplaceOptions(questionID uint, options []model.Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if len(options) == 0 {
			return nil
		}
		for i := range options {
			options[i].QuestionID = questionID
			options[i].OptionOrder = i + 1
		}
		return tx.Create(&options).Error
	})
}
