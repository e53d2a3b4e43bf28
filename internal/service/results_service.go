package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/dto"
	"github.com/nshiba/enquete-api/internal/model"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResultsService interface {
	GetResults(surveyID uint) (*dto.SurveyResultsDTO, error)
	// ExportCSV returns the rendered file and its suggested filename.
	ExportCSV(surveyID uint) ([]byte, string, error)
}

type resultsService struct {
	surveyRepo repository.SurveyRepository
}

func NewResultsService(surveyRepo repository.SurveyRepository) ResultsService {
	return &resultsService{surveyRepo: surveyRepo}
}

// GetResults aggregates the survey's raw response rows into per-question
// statistics. TotalResponses counts distinct respondents across the whole
// survey, and that count is also the percentage denominator for every choice
// question so options stay comparable across questions.
func (s *resultsService) GetResults(surveyID uint) (*dto.SurveyResultsDTO, error) {
	survey, err := s.loadDetail(surveyID)
	if err != nil {
		return nil, err
	}

	totalResponses := countDistinctRespondents(survey.Responses)

	results := dto.SurveyResultsDTO{
		SurveyID:       survey.ID,
		Title:          survey.Title,
		Description:    survey.Description,
		TotalResponses: totalResponses,
		QuestionStats:  make([]dto.QuestionStatsDTO, 0, len(survey.Questions)),
	}

	for _, q := range survey.Questions {
		unique := countDistinctRespondents(q.Responses)
		stats := dto.QuestionStatsDTO{
			QuestionID:        q.ID,
			QuestionText:      q.QuestionText,
			QuestionType:      string(q.QuestionType),
			QuestionOrder:     q.QuestionOrder,
			UniqueRespondents: unique,
			ResponseRate:      percentage(unique, totalResponses),
		}

		switch {
		case q.QuestionType == model.TypeTextInput:
			stats.TextResponses = textAnswers(q.Responses)
		case q.QuestionType.Numeric():
			// COMPARISON_SLIDER lands here: its options are poles, not tallies.
			stats.NumericStats = numericStats(q.Responses)
		case q.QuestionType.RequiresOptions():
			stats.OptionStats = optionStats(q, totalResponses)
		}

		results.QuestionStats = append(results.QuestionStats, stats)
	}
	return &results, nil
}

func (s *resultsService) loadDetail(surveyID uint) (*model.Survey, error) {
	survey, err := s.surveyRepo.FindByIDWithDetail(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to load survey detail for results")
		return nil, fmt.Errorf("error fetching survey %d: %w", surveyID, err)
	}
	return survey, nil
}

func countDistinctRespondents(responses []model.Response) int {
	seen := make(map[uint]bool, len(responses))
	for _, r := range responses {
		seen[r.RespondentID] = true
	}
	return len(seen)
}

// percentage formats part/total as a one-decimal percent string, "0.0" when
// there is nothing to divide by.
func percentage(part, total int) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 1, 64)
}

// textAnswers lists every free-text response row. Rows are deliberately not
// deduplicated by respondent.
func textAnswers(responses []model.Response) []dto.TextAnswerDTO {
	answers := make([]dto.TextAnswerDTO, 0, len(responses))
	for _, r := range responses {
		answer := ""
		if r.AnswerText != nil {
			answer = *r.AnswerText
		}
		answers = append(answers, dto.TextAnswerDTO{
			RespondentID:   r.RespondentID,
			RespondentName: r.Respondent.Name,
			Answer:         answer,
			CreatedAt:      r.Respondent.CreatedAt,
		})
	}
	return answers
}

// numericStats parses each row's serialized answer as a float and aggregates
// the values that parse; rows that do not parse are dropped. Every valid row
// contributes one value, without respondent deduplication. Returns nil when no
// value parses.
func numericStats(responses []model.Response) *dto.NumericStatsDTO {
	var values []float64
	for _, r := range responses {
		if r.AnswerText == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(*r.AnswerText), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil
	}

	stats := dto.NumericStatsDTO{Min: values[0], Max: values[0], Count: len(values)}
	sum := 0.0
	for _, v := range values {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
	}
	stats.Average = sum / float64(len(values))
	return &stats
}

// optionStats tallies responses per option. Multi-select answers were already
// expanded to one row per option at submission time, so a plain count per
// option id is correct.
func optionStats(q model.Question, totalResponses int) []dto.OptionStatDTO {
	stats := make([]dto.OptionStatDTO, 0, len(q.Options))
	for _, option := range q.Options {
		count := 0
		for _, r := range q.Responses {
			if r.OptionID != nil && *r.OptionID == option.ID {
				count++
			}
		}
		stats = append(stats, dto.OptionStatDTO{
			OptionID:   option.ID,
			OptionText: option.OptionText,
			Count:      count,
			Percentage: percentage(count, totalResponses),
		})
	}
	return stats
}

// ExportCSV flattens the survey's responses into one row per distinct
// respondent, ordered by first appearance, with one column per question.
// Choice answers render as option text (multi-select joined with "; "), other
// answers as their stored text.
func (s *resultsService) ExportCSV(surveyID uint) ([]byte, string, error) {
	survey, err := s.loadDetail(surveyID)
	if err != nil {
		return nil, "", err
	}

	header := []string{"respondent_id", "name", "email", "gender", "age", "submitted_at"}
	for _, q := range survey.Questions {
		header = append(header, fmt.Sprintf("Q%d: %s", q.QuestionOrder, q.QuestionText))
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to render CSV: %w", err)
	}

	for _, respondent := range respondentsInOrder(survey.Responses) {
		row := []string{
			strconv.FormatUint(uint64(respondent.ID), 10),
			respondent.Name,
			respondent.Email,
			derefString(respondent.Gender),
			formatAge(respondent.Age),
			respondent.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for _, q := range survey.Questions {
			row = append(row, answerCell(q, respondent.ID))
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to render CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to render CSV: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("survey_%d_results.csv", survey.ID), nil
}

// respondentsInOrder returns each distinct respondent once, in order of their
// first response row (rows are loaded in insertion order).
func respondentsInOrder(responses []model.Response) []model.Respondent {
	seen := make(map[uint]bool)
	var respondents []model.Respondent
	for _, r := range responses {
		if seen[r.RespondentID] {
			continue
		}
		seen[r.RespondentID] = true
		respondents = append(respondents, r.Respondent)
	}
	return respondents
}

func answerCell(q model.Question, respondentID uint) string {
	var own []model.Response
	for _, r := range q.Responses {
		if r.RespondentID == respondentID {
			own = append(own, r)
		}
	}
	if len(own) == 0 {
		return ""
	}

	if q.QuestionType == model.TypeMultipleChoice {
		texts := make([]string, 0, len(own))
		for _, r := range own {
			if r.Option != nil {
				texts = append(texts, r.Option.OptionText)
			}
		}
		return strings.Join(texts, "; ")
	}

	first := own[0]
	if first.AnswerText != nil && *first.AnswerText != "" {
		return *first.AnswerText
	}
	if first.Option != nil {
		return first.Option.OptionText
	}
	return ""
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatAge(age *int) string {
	if age == nil {
		return ""
	}
	return strconv.Itoa(*age)
}
