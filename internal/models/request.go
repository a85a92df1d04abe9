package models

import "seatcheck/internal/dateutil"

type QueryRequest struct {
	Date string `json:"date" query:"date"`
}

func (r *QueryRequest) Validate() error {
	if r.Date == "" {
		return ErrMissingDate
	}
	if _, err := dateutil.Parse(r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingDate ValidationError = "date is required"
	ErrInvalidDate ValidationError = "date must be a valid dd/mm/yyyy date"
)
