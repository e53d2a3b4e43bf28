package service

import (
	"fmt"

	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/nshiba/enquete-api/internal/model"
)

// validateQuestionShape enforces the per-type structural invariants: choice
// types carry options (COMPARISON_SLIDER exactly two, its poles), slider types
// carry a full numeric range with min < max, and plain input types carry
// neither.
func validateQuestionShape(qType model.QuestionType, optionCount int, min, max, step *float64) error {
	if !qType.Valid() {
		return fmt.Errorf("unknown question type %q: %w", qType, apperr.ErrValidation)
	}

	switch qType {
	case model.TypeSingleChoice, model.TypeMultipleChoice:
		if optionCount < 1 {
			return fmt.Errorf("%s questions need at least one option: %w", qType, apperr.ErrValidation)
		}
	case model.TypeComparisonSlider:
		if optionCount != 2 {
			return fmt.Errorf("COMPARISON_SLIDER questions need exactly two options (the poles), got %d: %w", optionCount, apperr.ErrValidation)
		}
	default:
		if optionCount != 0 {
			return fmt.Errorf("%s questions must not have options: %w", qType, apperr.ErrValidation)
		}
	}

	if qType.Ranged() {
		if min == nil || max == nil || step == nil {
			return fmt.Errorf("%s questions need min_value, max_value and step_value: %w", qType, apperr.ErrValidation)
		}
		if *min >= *max {
			return fmt.Errorf("min_value must be less than max_value: %w", apperr.ErrValidation)
		}
	}
	return nil
}
