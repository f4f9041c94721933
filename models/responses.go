package models

// FieldError describes a single failed validation rule on an entity field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthResponse is the success body of the register and login endpoints.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message,omitempty"`
}

// MessageResponse is a generic success body carrying a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResponse confirms the deletion of an entity.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ErrorResponse is the JSON error body returned by every failing endpoint.
// Errs carries per-field validation details when the failure is a
// validation error; it is omitted otherwise.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errs    []FieldError `json:"errors,omitempty"`
}
