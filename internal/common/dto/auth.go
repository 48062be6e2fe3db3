package dto

// RegisterRequest represents an end-user registration request
type RegisterRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// LoginRequest represents an end-user login request
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// SessionInfoResponse reports the end-user slot of the current session
type SessionInfoResponse struct {
	LoggedIn bool    `json:"loggedIn"`
	Username *string `json:"username"`
}

// AdminRegisterRequest represents an admin registration request; the
// ownership paper arrives as a multipart file alongside these fields
type AdminRegisterRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Aadhaar  string `form:"aadhaar" json:"aadhaar"`
}

// AdminLoginRequest represents an admin login request
type AdminLoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// AdminSessionInfoResponse reports the admin slot of the current session
type AdminSessionInfoResponse struct {
	LoggedIn bool    `json:"loggedIn"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
}
