package dto

// BaseError универсальный корневой формат ошибки
// Code — машинно-ориентированный код (snake_case)
// Message — краткое человеко-читаемое описание (может локализоваться на клиенте)
// Details — дополнительная строка (пояснение)
// Fields — для валидационных ошибок (имя поля + текст)
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError отдельная ошибка по конкретному полю
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// Семантические обёртки — совместимы по JSON, повышают читаемость swagger-доков.

// ValidationErrorResponse 422
// Code: "validation_error"
type ValidationErrorResponse BaseError

// ConflictErrorResponse 409
// Code: "conflict"
type ConflictErrorResponse BaseError

// UnauthorizedErrorResponse 401
// Code: "unauthorized"
type UnauthorizedErrorResponse BaseError

// ForbiddenErrorResponse 403
// Code: "forbidden"
type ForbiddenErrorResponse BaseError

// NotFoundErrorResponse 404
// Code: "not_found"
type NotFoundErrorResponse BaseError

// NotImplementedErrorResponse 501
// Code: "not_implemented"
type NotImplementedErrorResponse BaseError

// InternalErrorResponse 500
// Code: "internal_error"
type InternalErrorResponse BaseError

func NewValidationError(msg string, fields []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse(BaseError{Code: "validation_error", Message: msg, Fields: fields})
}
func NewConflictError(msg string) ConflictErrorResponse {
	return ConflictErrorResponse(BaseError{Code: "conflict", Message: msg})
}
func NewUnauthorizedError(msg string) UnauthorizedErrorResponse {
	return UnauthorizedErrorResponse(BaseError{Code: "unauthorized", Message: msg})
}
func NewForbiddenError(msg string) ForbiddenErrorResponse {
	return ForbiddenErrorResponse(BaseError{Code: "forbidden", Message: msg})
}
func NewNotFoundError(msg string) NotFoundErrorResponse {
	return NotFoundErrorResponse(BaseError{Code: "not_found", Message: msg})
}
func NewNotImplementedError(msg string) NotImplementedErrorResponse {
	return NotImplementedErrorResponse(BaseError{Code: "not_implemented", Message: msg})
}
func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse(BaseError{Code: "internal_error", Message: "internal server error", Details: details})
}
