package repository

import (
	"github.com/nshiba/enquete-api/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindAllWithQuestionCount() ([]struct {
		model.Survey
		QuestionCount int
	}, error)
	FindAllActive() ([]model.Survey, error)
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithQuestions(id uint) (*model.Survey, error)
	FindByIDWithDetail(id uint) (*model.Survey, error)
	Update(survey *model.Survey) error
	Delete(id uint) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// GORM creates the associated questions and their options inside a single
	// transaction, so a failed insert leaves no partial survey behind.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindAllWithQuestionCount() ([]struct {
	model.Survey
	QuestionCount int
}, error) {
	var results []struct {
		model.Survey
		QuestionCount int
	}
	err := r.db.Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count").
		Where("surveys.deleted_at IS NULL").
		Order("surveys.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *surveyRepository) FindAllActive() ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.db.Where("is_active = ?", true).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.question_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.option_order ASC")
		}).
		Order("created_at DESC").
		Find(&surveys).Error
	return surveys, err
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.First(&survey, id).Error
	return &survey, err
}

func (r *surveyRepository) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.question_order ASC")
	}).Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("options.option_order ASC")
	}).First(&survey, id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindByIDWithDetail loads the survey with ordered questions and options plus
// every response, each joined to its respondent and selected option. Responses
// are attached both at survey level (flat, insertion order) and per question.
func (r *surveyRepository) FindByIDWithDetail(id uint) (*model.Survey, error) {
	survey, err := r.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}

	var responses []model.Response
	err = r.db.Where("survey_id = ?", id).
		Preload("Respondent").
		Preload("Option").
		Order("id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	survey.Responses = responses

	byQuestion := make(map[uint][]model.Response, len(survey.Questions))
	for _, resp := range responses {
		byQuestion[resp.QuestionID] = append(byQuestion[resp.QuestionID], resp)
	}
	for i := range survey.Questions {
		survey.Questions[i].Responses = byQuestion[survey.Questions[i].ID]
	}
	return survey, nil
}

func (r *surveyRepository) Update(survey *model.Survey) error {
	return r.db.Save(survey).Error
}

// Delete cascades in dependency order: responses, options, questions, then
// the survey row, all in one transaction.
func (r *surveyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", id).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("survey_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Survey{}, id).Error
	})
}
