package models

// LoginRequest запрос POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse ответ /auth/login и /auth/register.
type AuthResponse struct {
	User                 *User  `json:"user"`
	Token                string `json:"token"`
	RequiresVerification bool   `json:"requiresVerification"`
}

// UserResponse ответ эндпоинтов, возвращающих только профиль.
type UserResponse struct {
	User *User `json:"user"`
}

// MessageResponse ответ эндпоинтов, возвращающих только сообщение.
type MessageResponse struct {
	Message string `json:"message"`
}

// VerifyEmailRequest запрос POST /auth/verify-email.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// QualificationRequest запрос POST /users/qualifications.
type QualificationRequest struct {
	Qualification string `json:"qualification" validate:"required,min=2,max=200"`
}

// QualificationsResponse ответ операций со списком квалификаций.
type QualificationsResponse struct {
	Qualifications []string `json:"qualifications"`
}
