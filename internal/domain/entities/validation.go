package entities

import "strings"

// FieldViolation описывает одно нарушение валидации конкретного поля.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError агрегирует все нарушения валидации запроса.
// Нарушения сохраняют порядок добавления.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError создает пустую ошибку валидации.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add добавляет нарушение для указанного поля.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// HasViolations сообщает, было ли зафиксировано хотя бы одно нарушение.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// Messages группирует сообщения по полям для сериализации в ответ.
func (e *ValidationError) Messages() map[string][]string {
	messages := make(map[string][]string, len(e.Violations))
	for _, v := range e.Violations {
		messages[v.Field] = append(messages[v.Field], v.Message)
	}
	return messages
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
