package guardian

import "fmt"

type AccountError struct {
	Code    string
	Message string
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDuplicateEmailError(email string) error {
	return &AccountError{
		Code:    "duplicateEmail",
		Message: fmt.Sprintf("a guardian with email %s already exists", email),
	}
}

func NewInvalidCredentialsError() error {
	return &AccountError{
		Code:    "invalidCredentials",
		Message: "invalid email or password",
	}
}
