package service

import (
	"fmt"
	"testing"

	"github.com/nshiba/enquete-api/internal/model"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database scoped to the test. The shared
// cache keeps the database alive across GORM's pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Survey{},
		&model.Question{},
		&model.Option{},
		&model.Respondent{},
		&model.Response{},
	)
	require.NoError(t, err)
	return db
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
func uintPtr(v uint) *uint        { return &v }

// seedSurvey inserts a survey with one question per supported type and
// returns it fully loaded.
func seedSurvey(t *testing.T, db *gorm.DB) *model.Survey {
	t.Helper()
	survey := model.Survey{
		Title:       "Team lunch preferences",
		Description: "Weekly lunch planning",
		IsActive:    true,
		Questions: []model.Question{
			{
				QuestionText:  "Any comments?",
				QuestionType:  model.TypeTextInput,
				QuestionOrder: 1,
			},
			{
				QuestionText:  "How many lunches per week?",
				QuestionType:  model.TypeNumberInput,
				QuestionOrder: 2,
			},
			{
				QuestionText:  "Favorite cuisine?",
				QuestionType:  model.TypeSingleChoice,
				QuestionOrder: 3,
				Options: []model.Option{
					{OptionText: "Italian", OptionOrder: 1},
					{OptionText: "Japanese", OptionOrder: 2},
				},
			},
			{
				QuestionText:  "Which days work?",
				QuestionType:  model.TypeMultipleChoice,
				QuestionOrder: 4,
				Options: []model.Option{
					{OptionText: "Monday", OptionOrder: 1},
					{OptionText: "Wednesday", OptionOrder: 2},
					{OptionText: "Friday", OptionOrder: 3},
				},
			},
			{
				QuestionText:  "How satisfied are you?",
				QuestionType:  model.TypeSlider,
				QuestionOrder: 5,
				MinValue:      floatPtr(0),
				MaxValue:      floatPtr(10),
				StepValue:     floatPtr(1),
			},
			{
				QuestionText:  "Price vs quality?",
				QuestionType:  model.TypeComparisonSlider,
				QuestionOrder: 6,
				MinValue:      floatPtr(-10),
				MaxValue:      floatPtr(10),
				StepValue:     floatPtr(2),
				Options: []model.Option{
					{OptionText: "Price", OptionOrder: 1},
					{OptionText: "Quality", OptionOrder: 2},
				},
			},
		},
	}
	require.NoError(t, db.Create(&survey).Error)

	loaded, err := repository.NewSurveyRepository(db).FindByIDWithQuestions(survey.ID)
	require.NoError(t, err)
	return loaded
}

// seedRespondent inserts a respondent row and returns its id.
func seedRespondent(t *testing.T, db *gorm.DB, name, email string) uint {
	t.Helper()
	respondent := model.Respondent{Name: name, Email: email}
	require.NoError(t, db.Create(&respondent).Error)
	return respondent.ID
}
