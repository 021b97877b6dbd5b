package e

import (
	"fmt"
	"strings"
)

var (
	// Внутренние ошибки с векторами
	ErrEmptyVector = fmt.Errorf("embedding is empty")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidBody      = fmt.Errorf("invalid request body")
	ErrInvalidProductID = fmt.Errorf("product id must be a valid uuid")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrProductAlreadyExists = fmt.Errorf("product already exists")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// FieldError описывает нарушение одного поля входного запроса.
// Field содержит путь до поля через точку (например, "dimensions.weight").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError агрегирует все нарушения валидации одного запроса.
// Валидация атомарна: одно нарушение отклоняет весь запрос, но в ответ
// попадает полный список полей, а не только первое.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
