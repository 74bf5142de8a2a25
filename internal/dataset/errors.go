package dataset

import "net/http"

type ErrorCode string

const (
	ErrDatasetNotArray       ErrorCode = "DATASET_NOT_ARRAY"
	ErrDatasetInvalidJSON    ErrorCode = "DATASET_INVALID_JSON"
	ErrSpreadsheetUnreadable ErrorCode = "SPREADSHEET_UNREADABLE"
	ErrSpreadsheetEmpty      ErrorCode = "SPREADSHEET_EMPTY"
	ErrSpreadsheetNoHeader   ErrorCode = "SPREADSHEET_NO_HEADER"
)

// Error is a load-boundary failure. Row-level problems never surface here;
// they are counted by the validator. Error only covers structurally invalid
// input: payloads that are not an array, or files that cannot be read as a
// spreadsheet at all.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code ErrorCode, message string, status int) *Error {
	return &Error{Code: code, Message: message, StatusCode: status}
}

func invalidInput(code ErrorCode, message string) *Error {
	return newError(code, message, http.StatusBadRequest)
}
