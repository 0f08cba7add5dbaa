package utils

import "fmt"

// ErrorKind classifies a service error so the HTTP layer can pick a status
// without inspecting individual codes.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
)

// Stable machine-readable codes surfaced to callers.
const (
	CodeNotFound                = "NOT_FOUND"
	CodeDoctorNotFound          = "DOCTOR_NOT_FOUND"
	CodePatientNotFound         = "PATIENT_NOT_FOUND"
	CodePeriodNotFound          = "PERIOD_NOT_FOUND"
	CodeDoctorNotAvailable      = "DOCTOR_NOT_AVAILABLE"
	CodePeriodOccupied          = "PERIOD_OCCUPIED"
	CodePeriodPassed            = "PERIOD_PASSED"
	CodePeriodNotPassed         = "PERIOD_NOT_PASSED"
	CodePeriodTooCloseToStart   = "PERIOD_TOO_CLOSE_TO_START"
	CodeInvalidTimeGap          = "INVALID_TIME_GAP"
	CodeBoldTimeError           = "BOLD_TIME_ERROR"
	CodeNotSameDay              = "NOT_SAME_DAY"
	CodeOverlapExists           = "OVERLAP_EXISTS"
	CodeSessionAlreadyCancelled = "SESSION_ALREADY_CANCELLED"
	CodeSessionNotPaid          = "SESSION_NOT_PAID"
	CodeSessionNotCompleted     = "SESSION_NOT_COMPLETED"
	CodeCancelWindowPassed      = "CANCEL_WINDOW_PASSED"
	CodeRatingExistsAlready     = "RATING_EXISTS_ALREADY"
	CodeBadRequest              = "BAD_REQUEST"
)

// AppError is a business error carrying a stable code alongside its message.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NotFoundError(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func ConflictError(code, message string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: CodeBadRequest, Message: message}
}
