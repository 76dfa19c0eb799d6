package booking

import "fmt"

type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError(sessionID string) error {
	return &WizardError{
		Code:    "sessionNotFound",
		Message: fmt.Sprintf("booking session %s not found or expired", sessionID),
	}
}

func NewBookingNotFoundError(bookingID string) error {
	return &WizardError{
		Code:    "bookingNotFound",
		Message: fmt.Sprintf("booking %s not found", bookingID),
	}
}

func NewWrongStepError(msg string) error {
	return &WizardError{
		Code:    "wrongStep",
		Message: msg,
	}
}

func NewInsufficientCreditsError(needed, available int) error {
	return &WizardError{
		Code:    "insufficientCredits",
		Message: fmt.Sprintf("booking needs %d credits but only %d are available", needed, available),
	}
}
