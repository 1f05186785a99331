package models

// SessionState is resolved by probing the remote session endpoint. It starts
// unauthenticated and only the session service transitions it.
type SessionState struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
}

// LogoutResponse always reports an ended session; the message carries any
// upstream complaint without reviving the login state.
type LogoutResponse struct {
	Session SessionState `json:"session"`
	Message string       `json:"message,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}
