package apperr

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrSurveyInactive = errors.New("survey is not accepting responses")
	ErrValidation     = errors.New("invalid input")
	ErrUnauthorized   = errors.New("authentication required")
)
