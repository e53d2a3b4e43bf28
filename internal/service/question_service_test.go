package service

import (
	"testing"

	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/model"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuestionService(db *gorm.DB) QuestionService {
	return NewQuestionService(repository.NewSurveyRepository(db), repository.NewQuestionRepository(db))
}

func TestCreateQuestionAppendsAtEnd(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newQuestionService(db)

	created, err := svc.CreateQuestion(survey.ID, dto.QuestionCreateDTO{
		QuestionText: "Budget per lunch?",
		QuestionType: "NUMBER_INPUT",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.QuestionOrder)
	assert.Equal(t, survey.ID, created.SurveyID)
}

func TestCreateQuestionHonorsExplicitOrder(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newQuestionService(db)

	created, err := svc.CreateQuestion(survey.ID, dto.QuestionCreateDTO{
		QuestionText:  "Dietary restrictions?",
		QuestionType:  "TEXT_INPUT",
		QuestionOrder: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.QuestionOrder)
}

func TestCreateQuestionSurveyNotFound(t *testing.T) {
	svc := newQuestionService(newTestDB(t))

	_, err := svc.CreateQuestion(77, dto.QuestionCreateDTO{
		QuestionText: "Orphan",
		QuestionType: "TEXT_INPUT",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBulkUpdateCreatesUpdatesAndDeletes(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newQuestionService(db)

	text := survey.Questions[0]
	single := survey.Questions[2]

	results, err := svc.BulkUpdate(survey.ID, dto.QuestionsBulkUpdateDTO{
		Questions: []dto.QuestionEditDTO{
			{
				ID:           &single.ID,
				QuestionText: "Favorite cuisine, updated?",
				QuestionType: "SINGLE_CHOICE",
				Options: []dto.OptionCreateDTO{
					{OptionText: "Thai"},
					{OptionText: "Mexican"},
					{OptionText: "Indian"},
				},
			},
			{
				QuestionText: "Brand new question",
				QuestionType: "TEXT_INPUT",
			},
		},
		DeletedQuestionIDs: []uint{text.ID},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Updated question got a fully replaced option set with fresh positions.
	assert.Equal(t, "Favorite cuisine, updated?", results[0].QuestionText)
	require.Len(t, results[0].Options, 3)
	assert.Equal(t, "Thai", results[0].Options[0].OptionText)
	assert.Equal(t, 1, results[0].Options[0].OptionOrder)
	assert.Equal(t, 3, results[0].Options[2].OptionOrder)

	assert.Equal(t, "Brand new question", results[1].QuestionText)

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("id = ?", text.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBulkUpdateKeepsOptionsWhenOmitted(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newQuestionService(db)

	single := survey.Questions[2]
	results, err := svc.BulkUpdate(survey.ID, dto.QuestionsBulkUpdateDTO{
		Questions: []dto.QuestionEditDTO{
			{
				ID:           &single.ID,
				QuestionText: "Renamed, choices untouched",
				QuestionType: "SINGLE_CHOICE",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Options, 2)
	assert.Equal(t, "Italian", results[0].Options[0].OptionText)
}

func TestBulkUpdateClearsOptionsOnTypeChange(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newQuestionService(db)

	single := survey.Questions[2]
	results, err := svc.BulkUpdate(survey.ID, dto.QuestionsBulkUpdateDTO{
		Questions: []dto.QuestionEditDTO{
			{
				ID:           &single.ID,
				QuestionText: "Now free text",
				QuestionType: "TEXT_INPUT",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "TEXT_INPUT", results[0].QuestionType)
	assert.Empty(t, results[0].Options)

	var options int64
	require.NoError(t, db.Model(&model.Option{}).Where("question_id = ?", single.ID).Count(&options).Error)
	assert.Zero(t, options)
}

func TestBulkUpdateRejectsQuestionOfAnotherSurvey(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)

	other := model.Survey{Title: "Other survey", IsActive: true}
	require.NoError(t, db.Create(&other).Error)

	svc := newQuestionService(db)
	questionID := survey.Questions[0].ID
	_, err := svc.BulkUpdate(other.ID, dto.QuestionsBulkUpdateDTO{
		Questions: []dto.QuestionEditDTO{
			{ID: &questionID, QuestionText: "Hijack", QuestionType: "TEXT_INPUT"},
		},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDeleteQuestionRemovesOptions(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newQuestionService(db)

	multi := survey.Questions[3]
	require.NoError(t, svc.DeleteQuestion(survey.ID, multi.ID))

	var questions, options int64
	require.NoError(t, db.Model(&model.Question{}).Where("id = ?", multi.ID).Count(&questions).Error)
	require.NoError(t, db.Model(&model.Option{}).Where("question_id = ?", multi.ID).Count(&options).Error)
	assert.Zero(t, questions)
	assert.Zero(t, options)
}

func TestDeleteQuestionOfAnotherSurvey(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)

	other := model.Survey{Title: "Other survey", IsActive: true}
	require.NoError(t, db.Create(&other).Error)

	svc := newQuestionService(db)
	err := svc.DeleteQuestion(other.ID, survey.Questions[0].ID)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
