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

func newSubmissionService(db *gorm.DB) SubmissionService {
	return NewSubmissionService(repository.NewSurveyRepository(db), db)
}

func respondentInfo() dto.RespondentInfoDTO {
	return dto.RespondentInfoDTO{Name: "Alice", Email: "alice@example.com"}
}

func TestSubmitSurveyNotFound(t *testing.T) {
	svc := newSubmissionService(newTestDB(t))

	_, err := svc.Submit(dto.SubmissionDTO{
		SurveyID:       99,
		RespondentInfo: respondentInfo(),
		Answers:        []dto.AnswerDTO{{QuestionID: 1, AnswerText: strPtr("hi")}},
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSubmitInactiveSurveyPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	require.NoError(t, db.Model(&model.Survey{}).Where("id = ?", survey.ID).Update("is_active", false).Error)
	svc := newSubmissionService(db)

	_, err := svc.Submit(dto.SubmissionDTO{
		SurveyID:       survey.ID,
		RespondentInfo: respondentInfo(),
		Answers:        []dto.AnswerDTO{{QuestionID: survey.Questions[0].ID, AnswerText: strPtr("hi")}},
	})
	assert.ErrorIs(t, err, apperr.ErrSurveyInactive)

	var respondents, responses int64
	require.NoError(t, db.Model(&model.Respondent{}).Count(&respondents).Error)
	require.NoError(t, db.Model(&model.Response{}).Count(&responses).Error)
	assert.Zero(t, respondents)
	assert.Zero(t, responses)
}

func TestSubmitExpandsMultiSelect(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newSubmissionService(db)

	text := survey.Questions[0]
	multi := survey.Questions[3]

	result, err := svc.Submit(dto.SubmissionDTO{
		SurveyID:       survey.ID,
		RespondentInfo: respondentInfo(),
		Answers: []dto.AnswerDTO{
			{QuestionID: text.ID, AnswerText: strPtr("More variety")},
			{QuestionID: multi.ID, SelectedOptions: []uint{multi.Options[0].ID, multi.Options[2].ID}},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotZero(t, result.RespondentID)

	var rows []model.Response
	require.NoError(t, db.Where("question_id = ?", multi.ID).Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, multi.Options[0].ID, *rows[0].OptionID)
	assert.Equal(t, multi.Options[2].ID, *rows[1].OptionID)
	for _, row := range rows {
		assert.Equal(t, result.RespondentID, row.RespondentID)
		assert.Equal(t, survey.ID, row.SurveyID)
	}
}

func TestSubmitRejectsForeignOption(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newSubmissionService(db)

	single := survey.Questions[2]
	multi := survey.Questions[3]

	// An option id belonging to another question must not be accepted,
	// neither as a single answer nor inside a multi-select.
	_, err := svc.Submit(dto.SubmissionDTO{
		SurveyID:       survey.ID,
		RespondentInfo: respondentInfo(),
		Answers: []dto.AnswerDTO{
			{QuestionID: single.ID, OptionID: uintPtr(multi.Options[0].ID)},
		},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Submit(dto.SubmissionDTO{
		SurveyID:       survey.ID,
		RespondentInfo: respondentInfo(),
		Answers: []dto.AnswerDTO{
			{QuestionID: multi.ID, SelectedOptions: []uint{single.Options[0].ID}},
		},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var count int64
	require.NoError(t, db.Model(&model.Response{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitSkipsAnswersForForeignQuestions(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newSubmissionService(db)

	text := survey.Questions[0]
	result, err := svc.Submit(dto.SubmissionDTO{
		SurveyID:       survey.ID,
		RespondentInfo: respondentInfo(),
		Answers: []dto.AnswerDTO{
			{QuestionID: text.ID, AnswerText: strPtr("keep this")},
			{QuestionID: 9999, AnswerText: strPtr("drop this")},
		},
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Response{}).Where("respondent_id = ?", result.RespondentID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitRejectsWhenNoAnswerSurvives(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newSubmissionService(db)

	_, err := svc.Submit(dto.SubmissionDTO{
		SurveyID:       survey.ID,
		RespondentInfo: respondentInfo(),
		Answers:        []dto.AnswerDTO{{QuestionID: 9999, AnswerText: strPtr("orphan")}},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSubmitStoresRespondentProfile(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newSubmissionService(db)

	age := 34
	result, err := svc.Submit(dto.SubmissionDTO{
		SurveyID: survey.ID,
		RespondentInfo: dto.RespondentInfoDTO{
			Name:   "Bob",
			Email:  "bob@example.com",
			Gender: strPtr("male"),
			Age:    &age,
		},
		Answers: []dto.AnswerDTO{{QuestionID: survey.Questions[1].ID, AnswerText: strPtr("3")}},
	})
	require.NoError(t, err)

	var respondent model.Respondent
	require.NoError(t, db.First(&respondent, result.RespondentID).Error)
	assert.Equal(t, "Bob", respondent.Name)
	assert.Equal(t, "bob@example.com", respondent.Email)
	require.NotNil(t, respondent.Gender)
	assert.Equal(t, "male", *respondent.Gender)
	require.NotNil(t, respondent.Age)
	assert.Equal(t, 34, *respondent.Age)
}

func TestSubmitTwiceCreatesTwoRespondents(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newSubmissionService(db)

	submission := dto.SubmissionDTO{
		SurveyID:       survey.ID,
		RespondentInfo: respondentInfo(),
		Answers:        []dto.AnswerDTO{{QuestionID: survey.Questions[0].ID, AnswerText: strPtr("again")}},
	}

	first, err := svc.Submit(submission)
	require.NoError(t, err)
	second, err := svc.Submit(submission)
	require.NoError(t, err)

	// Same name and email, still two distinct respondent rows.
	assert.NotEqual(t, first.RespondentID, second.RespondentID)
}
