package apperrors

import "errors"

var (
	// ErrDuplicateUsername is returned when signup targets an existing username.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned for any failed login, regardless of cause.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidInput is returned when a submitted feature value is not numeric.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingColumns is returned when an uploaded CSV lacks required columns.
	ErrMissingColumns = errors.New("csv missing required columns")
	// ErrBadExtension is returned when an uploaded file is not a .csv.
	ErrBadExtension = errors.New("file type not allowed")
	// ErrModelUnavailable is returned when a model artifact cannot be loaded.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrStorage is returned on underlying store I/O failure.
	ErrStorage = errors.New("storage failure")
)
