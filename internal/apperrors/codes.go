package apperrors

// ErrorCode is a machine-readable error category.
type ErrorCode string

const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	CodeConflict      ErrorCode = "CONFLICT"

	// Domain
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified    ErrorCode = "USER_NOT_VERIFIED"
	CodeInvalidOwnerType   ErrorCode = "INVALID_OWNER_TYPE"
	CodeImageAttached      ErrorCode = "IMAGE_ATTACHED"
	CodeFileTooLarge       ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType    ErrorCode = "INVALID_FILE_TYPE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
