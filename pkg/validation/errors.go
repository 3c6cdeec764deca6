package validation

import "errors"

var (
	ErrInvalidSalary          = errors.New("please enter a valid salary amount")
	ErrInvalidAmount          = errors.New("please enter a valid amount")
	ErrInvalidPercent         = errors.New("percentage must be a whole number between 0 and 100")
	ErrInvalidGoalKind        = errors.New("goal type must be flat or inflationAdjusted")
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrInvalidDate            = errors.New("date must be formatted as YYYY-MM-DD")
	ErrGoalFields             = errors.New("please fill all fields with valid values")
	ErrInvalidRate            = errors.New("rate must be a non-negative percentage")
)
