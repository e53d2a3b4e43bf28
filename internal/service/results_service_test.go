package service

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/model"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addResponse(t *testing.T, db *gorm.DB, surveyID, respondentID, questionID uint, text *string, optionID *uint) {
	t.Helper()
	row := model.Response{
		SurveyID:      surveyID,
		RespondentID:  respondentID,
		QuestionID:    questionID,
		AnswerText:    text,
		OptionID:      optionID,
		AttemptNumber: 1,
	}
	require.NoError(t, db.Create(&row).Error)
}

func newResultsService(db *gorm.DB) ResultsService {
	return NewResultsService(repository.NewSurveyRepository(db))
}

func TestGetResultsNotFound(t *testing.T) {
	svc := newResultsService(newTestDB(t))

	_, err := svc.GetResults(42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetResultsEmptySurvey(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newResultsService(db)

	results, err := svc.GetResults(survey.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, results.TotalResponses)
	require.Len(t, results.QuestionStats, 6)
	for _, stats := range results.QuestionStats {
		assert.Equal(t, 0, stats.UniqueRespondents)
		assert.Equal(t, "0.0", stats.ResponseRate)
		assert.Nil(t, stats.NumericStats)
	}
	// Choice questions still list every option, all at zero.
	choice := results.QuestionStats[2]
	require.Len(t, choice.OptionStats, 2)
	assert.Equal(t, 0, choice.OptionStats[0].Count)
	assert.Equal(t, "0.0", choice.OptionStats[0].Percentage)
}

func TestGetResultsOptionPercentages(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newResultsService(db)

	single := survey.Questions[2]
	italian := single.Options[0]
	japanese := single.Options[1]

	r1 := seedRespondent(t, db, "Alice", "alice@example.com")
	r2 := seedRespondent(t, db, "Bob", "bob@example.com")
	r3 := seedRespondent(t, db, "Carol", "carol@example.com")
	addResponse(t, db, survey.ID, r1, single.ID, nil, uintPtr(italian.ID))
	addResponse(t, db, survey.ID, r2, single.ID, nil, uintPtr(italian.ID))
	addResponse(t, db, survey.ID, r3, single.ID, nil, uintPtr(japanese.ID))

	results, err := svc.GetResults(survey.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, results.TotalResponses)
	stats := results.QuestionStats[2]
	assert.Equal(t, 3, stats.UniqueRespondents)
	assert.Equal(t, "100.0", stats.ResponseRate)
	require.Len(t, stats.OptionStats, 2)
	assert.Equal(t, "Italian", stats.OptionStats[0].OptionText)
	assert.Equal(t, 2, stats.OptionStats[0].Count)
	assert.Equal(t, "66.7", stats.OptionStats[0].Percentage)
	assert.Equal(t, 1, stats.OptionStats[1].Count)
	assert.Equal(t, "33.3", stats.OptionStats[1].Percentage)
}

func TestGetResultsNumericStats(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newResultsService(db)

	comparison := survey.Questions[5]
	r1 := seedRespondent(t, db, "Alice", "alice@example.com")
	r2 := seedRespondent(t, db, "Bob", "bob@example.com")
	r3 := seedRespondent(t, db, "Carol", "carol@example.com")
	addResponse(t, db, survey.ID, r1, comparison.ID, strPtr("-10"), nil)
	addResponse(t, db, survey.ID, r2, comparison.ID, strPtr("4"), nil)
	// Rows that do not parse as numbers are dropped from the aggregate.
	addResponse(t, db, survey.ID, r3, comparison.ID, strPtr("not a number"), nil)

	results, err := svc.GetResults(survey.ID)
	require.NoError(t, err)

	stats := results.QuestionStats[5]
	assert.Equal(t, 3, stats.UniqueRespondents)
	require.NotNil(t, stats.NumericStats)
	assert.Equal(t, -10.0, stats.NumericStats.Min)
	assert.Equal(t, 4.0, stats.NumericStats.Max)
	assert.InDelta(t, -3.0, stats.NumericStats.Average, 1e-9)
	assert.Equal(t, 2, stats.NumericStats.Count)
}

func TestGetResultsNumericStatsNilWhenNothingParses(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newResultsService(db)

	number := survey.Questions[1]
	r1 := seedRespondent(t, db, "Alice", "alice@example.com")
	addResponse(t, db, survey.ID, r1, number.ID, strPtr(""), nil)

	results, err := svc.GetResults(survey.ID)
	require.NoError(t, err)
	assert.Nil(t, results.QuestionStats[1].NumericStats)
}

func TestGetResultsCountsDistinctRespondents(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newResultsService(db)

	text := survey.Questions[0]
	multi := survey.Questions[3]
	r1 := seedRespondent(t, db, "Alice", "alice@example.com")
	r2 := seedRespondent(t, db, "Bob", "bob@example.com")

	// Alice answers two questions, one of them with two selected options.
	addResponse(t, db, survey.ID, r1, text.ID, strPtr("More sushi please"), nil)
	addResponse(t, db, survey.ID, r1, multi.ID, nil, uintPtr(multi.Options[0].ID))
	addResponse(t, db, survey.ID, r1, multi.ID, nil, uintPtr(multi.Options[2].ID))
	addResponse(t, db, survey.ID, r2, text.ID, strPtr("No complaints"), nil)

	results, err := svc.GetResults(survey.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, results.TotalResponses)
	assert.Equal(t, 1, results.QuestionStats[3].UniqueRespondents)
	assert.Equal(t, "50.0", results.QuestionStats[3].ResponseRate)

	// Text answers keep every row, including both of Alice's.
	textStats := results.QuestionStats[0]
	require.Len(t, textStats.TextResponses, 2)
	assert.Equal(t, "Alice", textStats.TextResponses[0].RespondentName)
	assert.Equal(t, "More sushi please", textStats.TextResponses[0].Answer)
}

func TestExportCSVNotFound(t *testing.T) {
	svc := newResultsService(newTestDB(t))

	_, _, err := svc.ExportCSV(404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestExportCSVHeaderOnlyWithoutResponses(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newResultsService(db)

	data, filename, err := svc.ExportCSV(survey.ID)
	require.NoError(t, err)
	assert.Contains(t, filename, "results.csv")

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0], 6+6)
	assert.Equal(t, "respondent_id", records[0][0])
	assert.Equal(t, "Q1: Any comments?", records[0][6])
	assert.Equal(t, "Q6: Price vs quality?", records[0][11])
}

func TestExportCSVRows(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	svc := newResultsService(db)

	text := survey.Questions[0]
	single := survey.Questions[2]
	multi := survey.Questions[3]

	r1 := seedRespondent(t, db, "Alice", "alice@example.com")
	r2 := seedRespondent(t, db, "Bob", "bob@example.com")

	// Field values with commas and quotes must survive the round trip.
	addResponse(t, db, survey.ID, r1, text.ID, strPtr(`Less "fast food", more salads`), nil)
	addResponse(t, db, survey.ID, r1, single.ID, nil, uintPtr(single.Options[1].ID))
	addResponse(t, db, survey.ID, r1, multi.ID, nil, uintPtr(multi.Options[0].ID))
	addResponse(t, db, survey.ID, r1, multi.ID, nil, uintPtr(multi.Options[1].ID))
	addResponse(t, db, survey.ID, r2, text.ID, strPtr("All good"), nil)

	data, _, err := svc.ExportCSV(survey.ID)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Rows follow first-appearance order of the respondents.
	alice := records[1]
	assert.Equal(t, "Alice", alice[1])
	assert.Equal(t, "alice@example.com", alice[2])
	assert.Equal(t, `Less "fast food", more salads`, alice[6])
	assert.Equal(t, "Japanese", alice[8])
	assert.Equal(t, "Monday; Wednesday", alice[9])
	assert.Equal(t, "", alice[10])

	bob := records[2]
	assert.Equal(t, "Bob", bob[1])
	assert.Equal(t, "All good", bob[6])
	assert.Equal(t, "", bob[8])
}
