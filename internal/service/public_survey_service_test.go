package service

import (
	"testing"

	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/model"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPublicSurveyService(db *gorm.DB) PublicSurveyService {
	return NewPublicSurveyService(repository.NewSurveyRepository(db))
}

func TestListActiveSurveysFiltersInactive(t *testing.T) {
	db := newTestDB(t)
	active := seedSurvey(t, db)
	hidden := model.Survey{Title: "Draft survey", IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	svc := newPublicSurveyService(db)
	surveys, err := svc.ListActiveSurveys()
	require.NoError(t, err)

	require.Len(t, surveys, 1)
	assert.Equal(t, active.ID, surveys[0].ID)
	require.Len(t, surveys[0].Questions, 6)
	// Questions come back in display order with their options.
	assert.Equal(t, 1, surveys[0].Questions[0].QuestionOrder)
	assert.Len(t, surveys[0].Questions[2].Options, 2)
}

func TestGetActiveSurvey(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newPublicSurveyService(db)

	loaded, err := svc.GetActiveSurvey(survey.ID)
	require.NoError(t, err)
	assert.Equal(t, survey.Title, loaded.Title)
	require.Len(t, loaded.Questions, 6)
}

func TestGetActiveSurveyHidesInactive(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	require.NoError(t, db.Model(&model.Survey{}).Where("id = ?", survey.ID).Update("is_active", false).Error)

	svc := newPublicSurveyService(db)
	_, err := svc.GetActiveSurvey(survey.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetActiveSurveyMissing(t *testing.T) {
	svc := newPublicSurveyService(newTestDB(t))

	_, err := svc.GetActiveSurvey(55)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
