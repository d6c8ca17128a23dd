package apperror

import "net/http"

// AppError carries an HTTP status, a user-facing message and an optional
// diagnostic detail. Details for 5xx errors are stripped by the error
// middleware in production mode.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message, details string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Err:     err,
	}
}

// Invalid reports a schema violation. The details string names the first
// violated rule only.
func Invalid(details string) *AppError {
	return New(http.StatusBadRequest, "Invalid form data", details, nil)
}

// Delivery reports a failed hand-off to the mail transport.
func Delivery(message string, err error) *AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return New(http.StatusInternalServerError, message, details, err)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, "", nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal server error", "", err)
}
