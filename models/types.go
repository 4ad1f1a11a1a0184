package models

// User role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Response types

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}

type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserInfo is the admin-facing view of a user account. Password hashes
// stay inside the credential store; they are never serialized here.
type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
}

type SubmitRegistrationResponse struct {
	Message string `json:"message"`
}

type ListRegistrationsResponse struct {
	Records []Registration `json:"records"`
	Count   int            `json:"count"`
}

type StatsResponse struct {
	UserCount      int    `json:"user_count"`
	RecordCount    int    `json:"record_count"`
	StoreSize      string `json:"store_size"`
	LastSubmission string `json:"last_submission"`
	ActiveSessions int    `json:"active_sessions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
